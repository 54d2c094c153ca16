// internal/game/types.go
//
// Core type definitions for the falling-block engine.
// Defines:
//   - Kind: the seven tetromino kinds (plus the empty-cell sentinel).
//   - Cell: an integer grid coordinate.
//   - Rotation directions and the Spin classification enum.
//   - Action: the discrete input events a collaborator can feed in.
//   - Config: the recognized timing/sizing tunables.
//   - Snapshot: the read-only view handed to renderers/clients.

package game

import (
	"encoding/json"
	"errors"
)

// Kind identifies a tetromino shape. KindNone marks an empty board cell.
type Kind int8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

var kindNames = [...]string{"", "I", "O", "T", "S", "Z", "J", "L"}

// String returns the conventional one-letter name, or "" for KindNone.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return ""
	}
	return kindNames[k]
}

// MarshalJSON encodes a Kind as its letter so JSON clients see "T", not 3.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts the letter form ("" for empty).
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range kindNames {
		if name == s {
			*k = Kind(i)
			return nil
		}
	}
	return errors.New("unknown kind " + s)
}

// index maps a non-empty Kind to its row in the shape table.
func (k Kind) index() int { return int(k) - 1 }

// Cell is a board coordinate. X grows rightward, Y grows downward
// (gravity increases Y).
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RotationDir selects one of the three rotation actions. The value is the
// quarter-turn count added to the current rotation state, mod 4.
type RotationDir int

const (
	RotateCW  RotationDir = 1
	RotateCCW RotationDir = 3
	Rotate180 RotationDir = 2
)

// Spin classifies a lock for scoring purposes.
type Spin int8

const (
	SpinNone Spin = iota
	SpinMini
	SpinFull
)

// Action is a discrete input event, mapped 1:1 to an engine operation.
type Action string

const (
	ActionLeft      Action = "left"
	ActionRight     Action = "right"
	ActionSoftDrop  Action = "soft-drop"
	ActionHardDrop  Action = "hard-drop"
	ActionRotateCW  Action = "rotate-cw"
	ActionRotateCCW Action = "rotate-ccw"
	ActionRotate180 Action = "rotate-180"
	ActionHold      Action = "hold"
)

// Config carries the recognized tunables. Zero values are replaced with the
// defaults below; none of these change the rules, only timing and sizing.
type Config struct {
	WellW            int     `json:"wellW"`            // columns (default 10)
	WellH            int     `json:"wellH"`            // rows (default 20)
	BaseInterval     float64 `json:"baseInterval"`     // seconds per row at level 1 (default 0.55)
	SoftDropInterval float64 `json:"softDropInterval"` // gravity while soft drop is held (default 0.05)
	LockDelay        float64 `json:"lockDelay"`        // grace period on the stack before commit (default 0.5)
	NextCount        int     `json:"nextCount"`        // preview queue length (default 3)
	Seed             int64   `json:"seed"`             // RNG seed; 0 means time-based
}

const (
	defaultWellW            = 10
	defaultWellH            = 20
	defaultBaseInterval     = 0.55
	defaultSoftDropInterval = 0.05
	defaultLockDelay        = 0.5
	defaultNextCount        = 3

	// Gravity never falls below this interval no matter the level.
	minFallInterval = 0.06
	// Per-level gravity multiplier.
	gravityDecay = 0.87
)

// withDefaults fills unset (zero/negative) fields.
func (c Config) withDefaults() Config {
	if c.WellW <= 0 {
		c.WellW = defaultWellW
	}
	if c.WellH <= 0 {
		c.WellH = defaultWellH
	}
	if c.BaseInterval <= 0 {
		c.BaseInterval = defaultBaseInterval
	}
	if c.SoftDropInterval <= 0 {
		c.SoftDropInterval = defaultSoftDropInterval
	}
	if c.LockDelay <= 0 {
		c.LockDelay = defaultLockDelay
	}
	if c.NextCount <= 0 {
		c.NextCount = defaultNextCount
	}
	return c
}

// Piece is the falling tetromino: a kind, a rotation state 0..3, and a
// board-relative anchor. Its absolute cells derive from the shape table.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// Snapshot is the read-only state surface exposed to rendering/input
// collaborators. Grid rows run top (index 0) to bottom.
type Snapshot struct {
	Grid           [][]Kind `json:"grid"`
	Current        Kind     `json:"current"`
	CurrentCells   []Cell   `json:"currentCells"`
	GhostY         int      `json:"ghostY"`
	GhostCells     []Cell   `json:"ghostCells"`
	Hold           Kind     `json:"hold"`
	Next           []Kind   `json:"next"`
	Score          int      `json:"score"`
	Lines          int      `json:"lines"`
	Level          int      `json:"level"`
	BackToBack     bool     `json:"backToBack"`
	Combo          int      `json:"combo"`
	LastClear      string   `json:"lastClear"`
	FinesseFaults  int      `json:"finesseFaults"`
	PiecesOverused int      `json:"piecesOverused"`
	GameOver       bool     `json:"gameOver"`
}
