// internal/game/shapes.go
//
// Static geometry for the standard rotation system: the per-kind shape
// table and the wall-kick tables. Everything here is immutable, process-wide
// lookup data shared read-only by the rest of the engine.
//
// Tables are fixed-size arrays indexed by enumerated kind/group and small
// integer rotation states, so a lookup can never miss at runtime.

package game

// shapeTable[kind.index()][rotation] lists the four occupied cell offsets
// relative to the piece anchor. Hand-authored to match SRS.
var shapeTable = [7][4][4]Cell{
	// I
	{
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	// O (rotation is geometrically a no-op)
	{
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	// T
	{
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	// S
	{
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	// Z
	{
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	// J
	{
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	// L
	{
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// kickGroup partitions kinds for kick-table purposes. O rotates in place and
// only ever attempts the (0,0) offset.
type kickGroup int8

const (
	groupJLSTZ kickGroup = iota
	groupI
	groupO
)

func groupOf(k Kind) kickGroup {
	switch k {
	case KindI:
		return groupI
	case KindO:
		return groupO
	default:
		return groupJLSTZ
	}
}

// srsKicks[group][from][to] is the ordered offset-attempt list for a single
// 90° step. Only the eight adjacent (from,to) pairs per group are populated;
// the resolver never looks up the others. First offset is always in-place.
var srsKicks = [2][4][4][5]Cell{
	groupJLSTZ: {
		0: {
			1: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
			3: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		},
		1: {
			0: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
			2: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		},
		2: {
			1: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
			3: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		},
		3: {
			2: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
			0: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		},
	},
	groupI: {
		0: {
			1: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
			3: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		},
		1: {
			0: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
			2: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		},
		2: {
			1: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
			3: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		},
		3: {
			2: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
			0: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		},
	},
}

// kicks180[group] is the lenient offset list for half turns. Unlike the 90°
// tables it is keyed by group only, not by the specific state pair.
var kicks180 = [3][]Cell{
	groupJLSTZ: {{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}, {2, 0}, {-2, 0}, {1, 1}, {-1, 1}},
	groupI:     {{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}, {2, 0}, {-2, 0}},
	groupO:     {{0, 0}},
}

// Shape returns the rotation-0 cell offsets of a kind, for preview panels
// (hold/next) that draw a piece outside the well. KindNone returns zeros.
func (k Kind) Shape() [4]Cell {
	if k == KindNone {
		return [4]Cell{}
	}
	return shapeTable[k.index()][0]
}

// Cells returns the four absolute board cells the piece occupies.
func (p Piece) Cells() [4]Cell {
	return p.CellsAt(p.Rotation, p.X, p.Y)
}

// CellsAt returns the absolute cells for a hypothetical rotation and anchor,
// without mutating the piece. Movement and rotation probe with this.
func (p Piece) CellsAt(rotation, x, y int) [4]Cell {
	var out [4]Cell
	for i, c := range shapeTable[p.Kind.index()][rotation] {
		out[i] = Cell{x + c.X, y + c.Y}
	}
	return out
}
