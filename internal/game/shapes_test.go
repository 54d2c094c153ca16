package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryKindHasFourDistinctCells(t *testing.T) {
	kinds := []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
	for _, k := range kinds {
		for r := 0; r < 4; r++ {
			p := Piece{Kind: k, Rotation: r, X: 0, Y: 0}
			cells := p.Cells()
			seen := map[Cell]bool{}
			for _, c := range cells {
				seen[c] = true
			}
			assert.Len(t, seen, 4, "kind %v rotation %d", k, r)
		}
	}
}

func TestKickListsStartInPlace(t *testing.T) {
	for g := range srsKicks {
		for from := 0; from < 4; from++ {
			for _, to := range []int{(from + 1) % 4, (from + 3) % 4} {
				kicks := srsKicks[g][from][to]
				assert.Equal(t, Cell{0, 0}, kicks[0], "group %d %d->%d", g, from, to)
			}
		}
	}
	for g, list := range kicks180 {
		assert.Equal(t, Cell{0, 0}, list[0], "180 group %d", g)
	}
}

func TestOShapeIsRotationInvariant(t *testing.T) {
	base := Piece{Kind: KindO}.Cells()
	for r := 1; r < 4; r++ {
		assert.Equal(t, base, Piece{Kind: KindO, Rotation: r}.Cells())
	}
}
