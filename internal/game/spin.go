// internal/game/spin.go
//
// T-spin classification, run immediately after a piece is committed and
// before rows are cleared. Uses the simplified corner-counting rule: look at
// the four diagonal corners around the T's pivot, treat off-board cells as
// filled, and distinguish full from mini spins by how many of the two
// "front" corners (the side the T's nose points at) are occupied.
//
// This deliberately ignores last-kick-used special cases from the full
// guideline rules.

package game

// classifySpin assumes p is the freshly committed piece. The caller gates on
// kind == T and on the last successful action having been a rotation.
func classifySpin(b *Board, p Piece) Spin {
	// Pivot is the centre of the T's 3×3 box.
	cx, cy := p.X+1, p.Y+1

	corners := [4]Cell{
		{cx - 1, cy - 1},
		{cx + 1, cy - 1},
		{cx - 1, cy + 1},
		{cx + 1, cy + 1},
	}
	filled := 0
	for _, c := range corners {
		if b.Filled(c.X, c.Y) {
			filled++
		}
	}
	if filled < 3 {
		return SpinNone
	}

	var front [2]Cell
	switch p.Rotation {
	case 0:
		front = [2]Cell{{cx - 1, cy - 1}, {cx + 1, cy - 1}}
	case 1:
		front = [2]Cell{{cx + 1, cy - 1}, {cx + 1, cy + 1}}
	case 2:
		front = [2]Cell{{cx - 1, cy + 1}, {cx + 1, cy + 1}}
	default:
		front = [2]Cell{{cx - 1, cy - 1}, {cx - 1, cy + 1}}
	}
	frontFilled := 0
	for _, c := range front {
		if b.Filled(c.X, c.Y) {
			frontFilled++
		}
	}

	if filled >= 4 {
		return SpinFull
	}
	if frontFilled < 2 {
		return SpinMini
	}
	return SpinFull
}
