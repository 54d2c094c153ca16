package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scorer returns a Game with only the scoring state initialized, which is
// all applyScoring touches.
func scorer() *Game {
	return &Game{combo: -1, level: 1}
}

func TestScoringBaseTable(t *testing.T) {
	tests := []struct {
		desc    string
		cleared int
		spin    Spin
		want    int
		label   string
	}{
		{"single", 1, SpinNone, 100, "Single"},
		{"double", 2, SpinNone, 300, "Double"},
		{"triple", 3, SpinNone, 500, "Triple"},
		{"tetris", 4, SpinNone, 800, "Tetris"},
		{"t-spin no lines", 0, SpinFull, 400, "T-Spin"},
		{"t-spin single", 1, SpinFull, 800, "T-Spin Single"},
		{"t-spin double", 2, SpinFull, 1200, "T-Spin Double"},
		{"t-spin triple", 3, SpinFull, 1600, "T-Spin Triple"},
		{"mini no lines", 0, SpinMini, 100, "T-Spin Mini"},
		{"mini single", 1, SpinMini, 200, "T-Spin Mini Single"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			g := scorer()
			g.applyScoring(tt.cleared, tt.spin)
			assert.Equal(t, tt.want, g.score)
			assert.Equal(t, tt.label, g.lastClear)
		})
	}
}

func TestMiniClearingMultipleRowsPromotedToFull(t *testing.T) {
	g := scorer()
	g.applyScoring(2, SpinMini)
	assert.Equal(t, 1200, g.score)
	assert.Equal(t, "T-Spin Double", g.lastClear)
}

func TestBackToBackTetris(t *testing.T) {
	g := scorer()
	g.applyScoring(4, SpinNone)
	assert.Equal(t, 800, g.score)
	assert.True(t, g.b2b)

	// Second tetris in a row: 800*1.5 plus the running combo bonus.
	g.applyScoring(4, SpinNone)
	assert.Equal(t, 800+1200+50, g.score)
	assert.True(t, g.b2b)
}

func TestSpinClearsExtendTheStreak(t *testing.T) {
	g := scorer()
	g.applyScoring(4, SpinNone)
	g.combo = -1 // isolate from the combo bonus
	g.applyScoring(1, SpinFull)
	assert.Equal(t, 800+1200, g.score)
	assert.True(t, g.b2b)
}

func TestPlainClearResetsStreak(t *testing.T) {
	g := scorer()
	g.applyScoring(4, SpinNone)
	assert.True(t, g.b2b)
	g.applyScoring(1, SpinNone)
	assert.False(t, g.b2b)
}

func TestSpinWithNoLinesDoesNotTouchStreak(t *testing.T) {
	g := scorer()
	g.b2b = true
	g.applyScoring(0, SpinFull)
	assert.True(t, g.b2b)
}

func TestComboCounting(t *testing.T) {
	g := scorer()
	g.applyScoring(1, SpinNone)
	assert.Equal(t, 0, g.combo)
	g.applyScoring(1, SpinNone)
	assert.Equal(t, 1, g.combo)
	assert.Equal(t, 100+100+50, g.score)

	// A lock with no clear snaps the chain back.
	g.applyScoring(0, SpinNone)
	assert.Equal(t, -1, g.combo)
}
