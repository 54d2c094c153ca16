// internal/game/score.go
//
// Guideline-like scoring: base points keyed by (spin classification, rows
// cleared), a back-to-back streak for "difficult" clears (tetrises and spin
// clears), and a flat combo bonus for consecutive clearing locks.

package game

// Base point tables, indexed by cleared row count.
var (
	plainScores = [5]int{0, 100, 300, 500, 800}
	fullScores  = [4]int{400, 800, 1200, 1600}
	miniScores  = [2]int{100, 200}

	plainLabels = [5]string{"", "Single", "Double", "Triple", "Tetris"}
	fullLabels  = [4]string{"T-Spin", "T-Spin Single", "T-Spin Double", "T-Spin Triple"}
	miniLabels  = [2]string{"T-Spin Mini", "T-Spin Mini Single"}
)

// applyScoring maps the lock outcome to points and updates the streaks.
// A mini spin clearing more than one row is promoted to a full spin first;
// the finer-grained guideline cases are intentionally not modelled.
func (g *Game) applyScoring(cleared int, spin Spin) {
	if spin == SpinMini && cleared > 1 {
		spin = SpinFull
	}

	base, label := 0, ""
	difficult := false
	switch spin {
	case SpinNone:
		if cleared >= 1 {
			base, label = plainScores[cleared], plainLabels[cleared]
			difficult = cleared == 4
		}
	case SpinMini:
		base, label = miniScores[cleared], miniLabels[cleared]
		difficult = cleared >= 1
	case SpinFull:
		base, label = fullScores[cleared], fullLabels[cleared]
		difficult = cleared >= 1
	}

	if cleared > 0 {
		if difficult {
			if g.b2b {
				base += base / 2
			}
			g.b2b = true
		} else {
			g.b2b = false
		}
		g.combo++
		if g.combo >= 1 {
			base += 50 * g.combo
		}
	} else {
		g.combo = -1
	}

	g.score += base
	if cleared > 0 || spin != SpinNone {
		g.lastClear = label
	} else {
		g.lastClear = ""
	}
}
