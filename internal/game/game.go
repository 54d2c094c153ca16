// internal/game/game.go
//
// The session aggregate for a single run. Owns the board, the current/hold/
// next pieces, the randomizer, all timers and counters, and is the sole
// writer of every one of them. Collaborators feed discrete actions in via
// Apply (or the typed methods) and advance wall-clock time via Advance;
// everything else is read-only through Snapshot.
//
// Notes:
//   - All operations run to completion synchronously; there is no internal
//     locking. The hosting application must serialize calls per session.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	crand "crypto/rand"
	"encoding/hex"
	"errors"
	"math"
	"math/rand"
	"time"
)

// Game holds the full state of one session.
type Game struct {
	ID string

	cfg    Config
	board  *Board
	bag    *sevenBag
	spawnX int

	current  Piece
	hold     Kind
	holdUsed bool
	next     []Kind

	score     int
	lines     int
	level     int
	b2b       bool
	combo     int // -1 = no active streak, >=0 = chain length
	lastClear string

	fallTimer float64
	lockTimer float64

	inputsThisPiece int
	finesseFaults   int
	piecesOverused  int

	// Set by a successful rotation, cleared by any successful translation.
	// Read only by spin detection at lock time.
	lastActionRotation bool

	gameOver bool
}

// New constructs a session with the given tunables (zero fields take
// defaults), fills the preview queue, and spawns the first piece.
func New(cfg Config) *Game {
	cfg = cfg.withDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		ID:     randomID(),
		cfg:    cfg,
		board:  NewBoard(cfg.WellW, cfg.WellH),
		bag:    newSevenBag(rand.New(rand.NewSource(seed))),
		spawnX: (cfg.WellW - 4) / 2,
		level:  1,
		combo:  -1,
	}
	g.next = make([]Kind, 0, cfg.NextCount)
	for len(g.next) < cfg.NextCount {
		g.next = append(g.next, g.bag.next())
	}
	g.spawn(g.bag.next())
	return g
}

// Config returns the effective (defaulted) tunables.
func (g *Game) Config() Config { return g.cfg }

// Over reports whether the session has topped out.
func (g *Game) Over() bool { return g.gameOver }

// Apply dispatches one discrete input event. Unknown actions are rejected;
// everything else is a silent no-op once the game is over.
func (g *Game) Apply(a Action) error {
	switch a {
	case ActionLeft:
		g.MoveLeft()
	case ActionRight:
		g.MoveRight()
	case ActionSoftDrop:
		g.SoftDrop()
	case ActionHardDrop:
		g.HardDrop()
	case ActionRotateCW:
		g.Rotate(RotateCW)
	case ActionRotateCCW:
		g.Rotate(RotateCCW)
	case ActionRotate180:
		g.Rotate(Rotate180)
	case ActionHold:
		g.Hold()
	default:
		return errors.New("unknown action")
	}
	return nil
}

// MoveLeft and MoveRight shift the falling piece one column.
func (g *Game) MoveLeft() bool  { return g.tryMove(-1, 0, true) }
func (g *Game) MoveRight() bool { return g.tryMove(1, 0, true) }

// SoftDrop is a player-initiated one-row descent, worth one point.
func (g *Game) SoftDrop() bool {
	if g.tryMove(0, 1, true) {
		g.score++
		return true
	}
	return false
}

// HardDrop slams the piece to the floor (two points per row), counts as a
// single input, and locks immediately.
func (g *Game) HardDrop() {
	if g.gameOver {
		return
	}
	dist := 0
	for g.tryMove(0, 1, false) {
		dist++
	}
	g.score += dist * 2
	g.inputsThisPiece++
	g.lastActionRotation = false
	g.lockPiece()
}

// Rotate attempts an SRS rotation with wall kicks. A success counts as one
// input, flags the piece for spin detection, and refreshes the lock-delay
// window; a failure leaves the piece untouched.
func (g *Game) Rotate(dir RotationDir) bool {
	if g.gameOver {
		return false
	}
	p, ok := resolveRotation(g.board, g.current, dir)
	if !ok {
		return false
	}
	g.current = p
	g.inputsThisPiece++
	g.lastActionRotation = true
	g.lockTimer = 0
	return true
}

// Hold stashes the current kind, or swaps with the already-held kind, at
// most once per spawned piece. Using it while unavailable is a no-op. The
// swapped-in piece respawns at the default anchor and rotation; if that
// placement is illegal the game is over.
func (g *Game) Hold() {
	if g.gameOver || g.holdUsed {
		return
	}
	if g.hold == KindNone {
		g.hold = g.current.Kind
		g.spawnFromQueue()
	} else {
		swapped := g.hold
		g.hold = g.current.Kind
		g.spawn(swapped)
	}
	g.holdUsed = true
	g.lockTimer = 0
}

// Advance moves wall-clock time forward and runs gravity. Each whole fall
// interval attempts a one-row descent; while the piece rests on the stack
// the interval accrues to the lock-delay timer instead, and reaching the
// threshold locks the piece. Holding soft drop swaps in the fast interval.
func (g *Game) Advance(elapsed float64, softDropHeld bool) {
	if g.gameOver {
		return
	}
	g.fallTimer += elapsed
	interval := g.fallInterval(softDropHeld)
	for g.fallTimer >= interval && !g.gameOver {
		g.fallTimer -= interval
		if !g.tryMove(0, 1, false) {
			g.lockTimer += interval
			if g.lockTimer >= g.cfg.LockDelay {
				g.lockPiece()
				break
			}
		}
	}
}

// fallInterval derives the effective gravity period for the current level.
func (g *Game) fallInterval(softDropHeld bool) float64 {
	if softDropHeld {
		return g.cfg.SoftDropInterval
	}
	iv := g.cfg.BaseInterval * math.Pow(gravityDecay, float64(g.level-1))
	if iv < minFallInterval {
		iv = minFallInterval
	}
	return iv
}

// GhostY probes downward for the lowest legal anchor row of the current
// piece at its present column and rotation.
func (g *Game) GhostY() int {
	p := g.current
	gy := p.Y
	for g.board.Legal(p.CellsAt(p.Rotation, p.X, gy+1)) {
		gy++
	}
	return gy
}

// Snapshot assembles the read-only view for renderers and API clients.
func (g *Game) Snapshot() Snapshot {
	cur := g.current.Cells()
	ghostY := g.GhostY()
	ghost := g.current.CellsAt(g.current.Rotation, g.current.X, ghostY)
	next := make([]Kind, len(g.next))
	copy(next, g.next)
	return Snapshot{
		Grid:           g.board.Grid(),
		Current:        g.current.Kind,
		CurrentCells:   cur[:],
		GhostY:         ghostY,
		GhostCells:     ghost[:],
		Hold:           g.hold,
		Next:           next,
		Score:          g.score,
		Lines:          g.lines,
		Level:          g.level,
		BackToBack:     g.b2b,
		Combo:          g.combo,
		LastClear:      g.lastClear,
		FinesseFaults:  g.finesseFaults,
		PiecesOverused: g.piecesOverused,
		GameOver:       g.gameOver,
	}
}

// ---------------------------- internals ------------------------------------

// tryMove translates the piece if the target cells are legal. Player moves
// count as inputs and clear the rotation flag; any successful player action
// or downward step refreshes the lock-delay window.
func (g *Game) tryMove(dx, dy int, player bool) bool {
	if g.gameOver {
		return false
	}
	p := g.current
	if !g.board.Legal(p.CellsAt(p.Rotation, p.X+dx, p.Y+dy)) {
		return false
	}
	g.current.X += dx
	g.current.Y += dy
	if player {
		g.inputsThisPiece++
		g.lastActionRotation = false
	}
	if player || dy > 0 {
		g.lockTimer = 0
	}
	return true
}

// lockPiece runs the full lock sequence: commit, spin detection on the
// pre-clear board, line clear, scoring, finesse accounting, respawn, and
// the top-out check.
func (g *Game) lockPiece() {
	g.board.Commit(g.current)

	spin := SpinNone
	if g.current.Kind == KindT && g.lastActionRotation {
		spin = classifySpin(g.board, g.current)
	}

	cleared := g.board.ClearFullRows()
	if cleared > 0 {
		g.lines += cleared
		g.level = 1 + g.lines/10
	}
	g.applyScoring(cleared, spin)
	g.recordFinesse(g.current.X, g.current.Rotation)

	g.spawnFromQueue()
	g.lockTimer = 0
	g.fallTimer = 0
}

// spawnFromQueue pops the preview queue and tops it back up from the bag.
func (g *Game) spawnFromQueue() {
	kind := g.next[0]
	g.next = append(g.next[1:], g.bag.next())
	g.spawn(kind)
}

// spawn places a fresh piece at the spawn anchor in rotation 0 and resets
// the per-piece state. An illegal spawn placement ends the game.
func (g *Game) spawn(kind Kind) {
	g.current = Piece{Kind: kind, Rotation: 0, X: g.spawnX, Y: 0}
	g.holdUsed = false
	g.inputsThisPiece = 0
	g.lastActionRotation = false
	if !g.board.Legal(g.current.Cells()) {
		g.gameOver = true
	}
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return hex.EncodeToString(b[:])
}
