// internal/game/rotate.go
//
// SRS-style rotation resolution: compute the target state, pick the kick
// list for the piece's kind group, and apply the first offset that yields a
// legal placement. Rotation and anchor move atomically; if no offset is
// legal the piece is left untouched.

package game

// resolveRotation attempts to rotate p in the given direction against b.
// On success it returns the updated piece and true; on failure the input
// piece and false.
func resolveRotation(b *Board, p Piece, dir RotationDir) (Piece, bool) {
	target := (p.Rotation + int(dir)) % 4
	group := groupOf(p.Kind)

	var offsets []Cell
	if dir == Rotate180 {
		offsets = kicks180[group]
	} else {
		// O has no 90° kick entries of its own; it shares the JLSTZ list,
		// where the leading (0,0) always succeeds for its fixed geometry.
		g := group
		if g == groupO {
			g = groupJLSTZ
		}
		kicks := srsKicks[g][p.Rotation][target]
		offsets = kicks[:]
	}

	for _, off := range offsets {
		if b.Legal(p.CellsAt(target, p.X+off.X, p.Y+off.Y)) {
			p.Rotation = target
			p.X += off.X
			p.Y += off.Y
			return p, true
		}
	}
	return p, false
}
