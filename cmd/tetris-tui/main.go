// cmd/tetris-tui/main.go
//
// Local terminal client for the engine. Pure presentation: it drains key
// events into discrete engine actions, advances the session on a frame
// ticker, and redraws from snapshots. Cells are drawn double-wide so the
// well looks square-ish.
//
// Controls: a/d move, s soft drop, w hard drop, j/k rotate CCW/CW, l 180°,
// space hold, q quit.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/aquadark/tetris-server/internal/game"
)

const (
	cellRune  = '█'
	ghostRune = '·'

	holdPanelW = 16
	nextPanelW = 16
	panelGap   = 2
	frameTime  = 16 * time.Millisecond
)

var kindColors = map[game.Kind]tcell.Color{
	game.KindI: tcell.ColorAqua,
	game.KindO: tcell.ColorYellow,
	game.KindT: tcell.ColorFuchsia,
	game.KindS: tcell.ColorGreen,
	game.KindZ: tcell.ColorRed,
	game.KindJ: tcell.ColorBlue,
	game.KindL: tcell.ColorWhite,
}

type ui struct {
	screen tcell.Screen
	g      *game.Game

	border tcell.Style
	label  tcell.Style
	ghost  tcell.Style
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	u := &ui{
		screen: screen,
		g:      game.New(game.Config{}),
		border: tcell.StyleDefault.Foreground(tcell.ColorBlue),
		label:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
		ghost:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Dim(true),
	}
	u.run()
}

func (u *ui) run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- u.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	softDrop := false
	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit := u.handleKey(ev, &softDrop); quit {
					return
				}
			case *tcell.EventResize:
				u.screen.Sync()
			}

		case <-ticker.C:
			now := time.Now()
			u.g.Advance(now.Sub(last).Seconds(), softDrop)
			last = now
			softDrop = false
			u.draw()
		}
	}
}

// handleKey maps one key press to an engine action. Returns true on quit.
func (u *ui) handleKey(ev *tcell.EventKey, softDrop *bool) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case 'a', 'A':
		u.g.MoveLeft()
	case 'd', 'D':
		u.g.MoveRight()
	case 's', 'S':
		u.g.SoftDrop()
		*softDrop = true
	case 'w', 'W':
		u.g.HardDrop()
	case 'j', 'J':
		u.g.Rotate(game.RotateCCW)
	case 'k', 'K':
		u.g.Rotate(game.RotateCW)
	case 'l', 'L':
		u.g.Rotate(game.Rotate180)
	case ' ':
		u.g.Hold()
	}
	return false
}

// ------------------------------ drawing ------------------------------------

func (u *ui) draw() {
	u.screen.Clear()
	snap := u.g.Snapshot()
	cfg := u.g.Config()

	playW := cfg.WellW*2 + 2 // borders included
	playH := cfg.WellH + 2
	wellX := holdPanelW + 4
	wellY := 2

	sw, sh := u.screen.Size()
	minW := wellX + playW + panelGap + nextPanelW + 2
	minH := wellY + playH + 2
	if sw < minW || sh < minH {
		msg := fmt.Sprintf(" Resize terminal to at least %d×%d ", minW, minH)
		u.drawText((sw-len(msg))/2, sh/2, msg, u.label.Bold(true))
		u.screen.Show()
		return
	}

	nextX, nextY := wellX+playW+panelGap, wellY
	holdX, holdY := wellX-(holdPanelW+2), wellY

	u.drawBorder(wellX, wellY, playW, playH)
	u.drawBorder(holdX, holdY, holdPanelW, 8)
	u.drawBorder(nextX, nextY, nextPanelW, playH/2)
	u.drawBorder(nextX, nextY+playH/2+1, nextPanelW, playH-playH/2-1)

	u.drawText(wellX, wellY-1, " TETRIS ", u.label)
	u.drawText(holdX+2, holdY, " HOLD ", u.label)
	u.drawText(nextX+2, nextY, " NEXT ", u.label)
	u.drawText(nextX+2, nextY+playH/2+1, " INFO ", u.label)

	// settled cells
	for y, row := range snap.Grid {
		for x, k := range row {
			if k != game.KindNone {
				u.drawCell(wellX+1+x*2, wellY+1+y, cellRune, kindStyle(k))
			}
		}
	}
	// ghost under the falling piece
	for _, c := range snap.GhostCells {
		u.drawCell(wellX+1+c.X*2, wellY+1+c.Y, ghostRune, u.ghost)
	}
	// falling piece
	for _, c := range snap.CurrentCells {
		u.drawCell(wellX+1+c.X*2, wellY+1+c.Y, cellRune, kindStyle(snap.Current))
	}

	if snap.Hold != game.KindNone {
		u.drawMini(snap.Hold, holdX+3, holdY+3)
	}
	for i, k := range snap.Next {
		u.drawMini(k, nextX+2, nextY+2+i*5)
	}

	ix, iy := nextX+2, nextY+playH/2+2
	info := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Lines: %d", snap.Lines),
		fmt.Sprintf("Level: %d", snap.Level),
		fmt.Sprintf("B2B: %v", onOff(snap.BackToBack)),
		fmt.Sprintf("Combo: %d", snap.Combo),
		fmt.Sprintf("Faults: %d", snap.FinesseFaults),
		fmt.Sprintf("Overused: %d", snap.PiecesOverused),
	}
	if snap.LastClear != "" {
		info = append(info, "Last: "+snap.LastClear)
	}
	for i, line := range info {
		u.drawText(ix, iy+i, line, u.label)
	}

	if snap.GameOver {
		msg := "  GAME OVER — press q  "
		u.drawText(wellX+(playW-len(msg))/2, wellY+playH/2, msg, u.label.Bold(true))
	}

	u.screen.Show()
}

// drawCell writes one double-wide game cell.
func (u *ui) drawCell(x, y int, r rune, st tcell.Style) {
	u.screen.SetContent(x, y, r, nil, st)
	u.screen.SetContent(x+1, y, r, nil, st)
}

// drawMini renders a kind's rotation-0 shape, normalized to its top-left.
func (u *ui) drawMini(k game.Kind, x, y int) {
	shape := k.Shape()
	minX, minY := shape[0].X, shape[0].Y
	for _, c := range shape[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	for _, c := range shape {
		u.drawCell(x+(c.X-minX)*2, y+(c.Y-minY), cellRune, kindStyle(k))
	}
}

func (u *ui) drawText(x, y int, s string, st tcell.Style) {
	for i, r := range s {
		u.screen.SetContent(x+i, y, r, nil, st)
	}
}

func (u *ui) drawBorder(x, y, w, h int) {
	for i := 1; i < w-1; i++ {
		u.screen.SetContent(x+i, y, '─', nil, u.border)
		u.screen.SetContent(x+i, y+h-1, '─', nil, u.border)
	}
	for i := 1; i < h-1; i++ {
		u.screen.SetContent(x, y+i, '│', nil, u.border)
		u.screen.SetContent(x+w-1, y+i, '│', nil, u.border)
	}
	u.screen.SetContent(x, y, '┌', nil, u.border)
	u.screen.SetContent(x+w-1, y, '┐', nil, u.border)
	u.screen.SetContent(x, y+h-1, '└', nil, u.border)
	u.screen.SetContent(x+w-1, y+h-1, '┘', nil, u.border)
}

func kindStyle(k game.Kind) tcell.Style {
	return tcell.StyleDefault.Foreground(kindColors[k])
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "off"
}
