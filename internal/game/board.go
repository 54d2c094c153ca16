// internal/game/board.go
//
// The well: a fixed-size grid of empty-or-kind cells. The board validates
// placements, commits locked pieces, and compacts cleared rows. It knows
// nothing about scoring, timing, or the current piece.

package game

// Board is a WellW×WellH grid. Rows run top (0) to bottom (H-1); gravity
// increases the row index. Created empty, never resized.
type Board struct {
	w, h  int
	cells [][]Kind // [row][col]
}

// NewBoard creates an empty w×h well.
func NewBoard(w, h int) *Board {
	cells := make([][]Kind, h)
	for y := range cells {
		cells[y] = make([]Kind, w)
	}
	return &Board{w: w, h: h, cells: cells}
}

// Width and Height report the well dimensions.
func (b *Board) Width() int  { return b.w }
func (b *Board) Height() int { return b.h }

// Legal reports whether every cell is inside the well and currently empty.
// A single out-of-bounds or occupied cell makes the whole placement illegal.
func (b *Board) Legal(cells [4]Cell) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= b.w || c.Y < 0 || c.Y >= b.h {
			return false
		}
		if b.cells[c.Y][c.X] != KindNone {
			return false
		}
	}
	return true
}

// Filled reports whether (x,y) is occupied, treating anything outside the
// well as filled. Spin detection relies on this sentinel for off-board
// corner probes.
func (b *Board) Filled(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return true
	}
	return b.cells[y][x] != KindNone
}

// Commit writes the piece's kind tag into its four cells. The caller must
// have verified legality; committing an illegal placement is a programming
// error, so out-of-range cells are simply skipped rather than corrupting
// neighbours.
func (b *Board) Commit(p Piece) {
	for _, c := range p.Cells() {
		if c.Y >= 0 && c.Y < b.h && c.X >= 0 && c.X < b.w {
			b.cells[c.Y][c.X] = p.Kind
		}
	}
}

// ClearFullRows removes every completely filled row, shifts the remaining
// rows down preserving their order, tops the well back up with empty rows,
// and returns how many rows were removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]Kind, 0, b.h)
	cleared := 0
	for _, row := range b.cells {
		full := true
		for _, cell := range row {
			if cell == KindNone {
				full = false
				break
			}
		}
		if full {
			cleared++
		} else {
			kept = append(kept, row)
		}
	}
	for len(kept) < b.h {
		kept = append([][]Kind{make([]Kind, b.w)}, kept...)
	}
	b.cells = kept
	return cleared
}

// Grid returns a copy of the cell contents for snapshots.
func (b *Board) Grid() [][]Kind {
	out := make([][]Kind, b.h)
	for y, row := range b.cells {
		out[y] = make([]Kind, b.w)
		copy(out[y], row)
	}
	return out
}
