package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameDefaults(t *testing.T) {
	g := New(Config{Seed: 1})
	snap := g.Snapshot()

	assert.NotEmpty(t, g.ID)
	assert.Len(t, snap.Grid, 20)
	assert.Len(t, snap.Grid[0], 10)
	assert.Len(t, snap.CurrentCells, 4)
	assert.Len(t, snap.Next, 3)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, -1, snap.Combo)
	assert.Equal(t, KindNone, snap.Hold)
	assert.False(t, snap.GameOver)
}

func TestConfigOverrides(t *testing.T) {
	g := New(Config{WellW: 8, WellH: 16, NextCount: 5, Seed: 1})
	snap := g.Snapshot()
	assert.Len(t, snap.Grid, 16)
	assert.Len(t, snap.Grid[0], 8)
	assert.Len(t, snap.Next, 5)
	assert.Equal(t, 2, g.spawnX)
}

func TestSoftDropScoresPerRow(t *testing.T) {
	g := New(Config{Seed: 2})
	y := g.current.Y
	require.True(t, g.SoftDrop())
	assert.Equal(t, y+1, g.current.Y)
	assert.Equal(t, 1, g.score)
	assert.Equal(t, 1, g.inputsThisPiece)
}

func TestHardDropScoresLocksAndRespawns(t *testing.T) {
	g := New(Config{Seed: 2})
	dist := g.GhostY() - g.current.Y
	require.Greater(t, dist, 0)

	g.HardDrop()
	assert.Equal(t, dist*2, g.score)

	// The piece is committed and a fresh one is at the spawn anchor.
	filled := 0
	for _, row := range g.board.cells {
		for _, k := range row {
			if k != KindNone {
				filled++
			}
		}
	}
	assert.Equal(t, 4, filled)
	assert.Equal(t, g.spawnX, g.current.X)
	assert.Equal(t, 0, g.current.Rotation)
	assert.Equal(t, 0, g.inputsThisPiece)
}

func TestGhostRowTracksColumnAndRotation(t *testing.T) {
	g := New(Config{Seed: 2})
	gy := g.GhostY()
	// The ghost anchor is the lowest legal row: one further is illegal.
	p := g.current
	assert.True(t, g.board.Legal(p.CellsAt(p.Rotation, p.X, gy)))
	assert.False(t, g.board.Legal(p.CellsAt(p.Rotation, p.X, gy+1)))
}

func TestGravityAdvance(t *testing.T) {
	g := New(Config{Seed: 4})
	y := g.current.Y

	// Less than one interval: no fall.
	g.Advance(0.3, false)
	assert.Equal(t, y, g.current.Y)

	// Crossing the 0.55s default interval falls one row.
	g.Advance(0.3, false)
	assert.Equal(t, y+1, g.current.Y)

	// Two whole intervals in one call fall two rows.
	g.Advance(1.1, false)
	assert.Equal(t, y+3, g.current.Y)
}

func TestSoftDropHeldUsesFastInterval(t *testing.T) {
	g := New(Config{Seed: 4})
	y := g.current.Y
	g.Advance(0.25, true) // five 0.05s intervals
	assert.Equal(t, y+5, g.current.Y)
}

func TestGroundedPieceLocksAfterLockDelay(t *testing.T) {
	g := New(Config{Seed: 5})
	for g.tryMove(0, 1, false) {
	}
	kind := g.current.Kind

	// One grounded gravity tick accrues 0.55s, past the 0.5s threshold.
	g.Advance(0.55, false)
	assert.Equal(t, 0, g.current.Y, "a fresh piece should have spawned")
	found := false
	for _, row := range g.board.cells {
		for _, k := range row {
			if k == kind {
				found = true
			}
		}
	}
	assert.True(t, found, "locked piece should be on the board")
}

func TestSuccessfulActionsResetLockDelay(t *testing.T) {
	g := New(Config{Seed: 5})
	for g.tryMove(0, 1, false) {
	}

	g.lockTimer = 0.4
	if !g.MoveLeft() {
		require.True(t, g.MoveRight())
	}
	assert.Equal(t, 0.0, g.lockTimer)

	g.lockTimer = 0.4
	if g.Rotate(RotateCW) {
		assert.Equal(t, 0.0, g.lockTimer)
	}

	// A failed action does not refresh the window.
	g.lockTimer = 0.4
	g.current.Y = g.GhostY()
	require.False(t, g.SoftDrop())
	assert.Equal(t, 0.4, g.lockTimer)
}

func TestHoldStashSwapAndOncePerPiece(t *testing.T) {
	g := New(Config{Seed: 6})
	first := g.current.Kind
	upcoming := g.next[0]

	// First use stashes and pulls from the preview queue.
	g.Hold()
	assert.Equal(t, first, g.hold)
	assert.Equal(t, upcoming, g.current.Kind)
	assert.Len(t, g.next, 3)

	// Second use without an intervening lock is a no-op.
	heldBefore, curBefore := g.hold, g.current.Kind
	g.Hold()
	assert.Equal(t, heldBefore, g.hold)
	assert.Equal(t, curBefore, g.current.Kind)

	// After a lock the slot swaps with the current piece.
	g.HardDrop()
	cur := g.current.Kind
	g.Hold()
	assert.Equal(t, cur, g.hold)
	assert.Equal(t, heldBefore, g.current.Kind)
	assert.Equal(t, g.spawnX, g.current.X)
	assert.Equal(t, 0, g.current.Rotation)
}

func TestGameOverFreezesState(t *testing.T) {
	g := New(Config{Seed: 7})
	g.gameOver = true
	before := g.Snapshot()

	g.MoveLeft()
	g.MoveRight()
	g.SoftDrop()
	g.HardDrop()
	g.Rotate(RotateCW)
	g.Hold()
	g.Advance(10, true)
	require.NoError(t, g.Apply(ActionHardDrop))

	assert.Equal(t, before, g.Snapshot())
}

func TestTopOutSetsGameOver(t *testing.T) {
	g := New(Config{Seed: 8})
	// Brick up the spawn rows so the respawn after lock cannot fit.
	for y := 2; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if x != 0 {
				g.board.cells[y][x] = KindZ
			}
		}
	}
	g.HardDrop()
	assert.True(t, g.Over())
}

func TestHoldTopOutSetsGameOver(t *testing.T) {
	g := New(Config{Seed: 8})
	g.current = Piece{Kind: KindO, Rotation: 0, X: 3, Y: 0}
	g.next[0] = KindI
	// Fill the spawn rows around the O so the incoming I cannot fit.
	occupied := map[Cell]bool{}
	for _, c := range g.current.Cells() {
		occupied[c] = true
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			if !occupied[Cell{x, y}] {
				g.board.cells[y][x] = KindZ
			}
		}
	}
	g.Hold()
	assert.True(t, g.Over())
	assert.Equal(t, KindO, g.hold)
}

func TestApplyDispatch(t *testing.T) {
	g := New(Config{Seed: 9})
	x := g.current.X
	require.NoError(t, g.Apply(ActionLeft))
	assert.Equal(t, x-1, g.current.X)

	assert.Error(t, g.Apply(Action("teleport")))
}

func TestLineClearUpdatesLinesAndLevel(t *testing.T) {
	g := New(Config{Seed: 10})
	g.lines = 9
	// Fill the bottom row except where an I piece will land flat.
	for x := 0; x < 10; x++ {
		if x < 3 || x > 6 {
			g.board.cells[19][x] = KindJ
		}
	}
	g.current = Piece{Kind: KindI, Rotation: 0, X: 3, Y: 10}
	g.lastActionRotation = false
	g.HardDrop()

	assert.Equal(t, 10, g.lines)
	assert.Equal(t, 2, g.level, "level is 1 + lines/10")
	assert.Equal(t, 0, g.combo)
	assert.Equal(t, "Single", g.lastClear)
}
