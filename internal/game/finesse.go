// internal/game/finesse.go
//
// Input-efficiency accounting. On each lock we compare the inputs actually
// spent on the piece against a theoretical minimum: one input per column of
// horizontal displacement from the spawn column, the minimal number of
// rotation actions (a half turn counts as one, since a dedicated 180 action
// exists), plus one terminating drop.

package game

// minimalInputs computes the baseline for a piece that spawned at spawnX in
// rotation 0 and locked at finalX in finalR.
func minimalInputs(spawnX, finalX, finalR int) int {
	rotDelta := ((finalR % 4) + 4) % 4
	minRot := rotDelta
	if 4-rotDelta < minRot {
		minRot = 4 - rotDelta
	}
	if rotDelta == 2 {
		minRot = 1
	}
	horiz := finalX - spawnX
	if horiz < 0 {
		horiz = -horiz
	}
	return horiz + minRot + 1
}

// recordFinesse charges any excess inputs for the just-locked piece to the
// cumulative fault counter and bumps the overused-piece counter once.
func (g *Game) recordFinesse(finalX, finalR int) {
	min := minimalInputs(g.spawnX, finalX, finalR)
	if g.inputsThisPiece > min {
		g.finesseFaults += g.inputsThisPiece - min
		g.piecesOverused++
	}
}
