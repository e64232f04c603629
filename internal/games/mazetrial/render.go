package mazetrial

import (
	"fmt"
	"time"

	"github.com/vovakirdan/maze-trial/internal/core"
	"github.com/vovakirdan/maze-trial/internal/maze"
)

const (
	cellW     = 2 // Screen columns per maze cell
	hudHeight = 2 // Separator and status line under the maze
	spriteSz  = 8 // Source sprite size in sheet pixels
)

// Sprite sheet offsets.
const (
	roadSrcX, roadSrcY = 0, 0
	wallSrcX, wallSrcY = 8, 8
)

func newAtlas() *core.Atlas {
	a := core.NewAtlas()
	a.Define(roadSrcX, roadSrcY, spriteSz, spriteSz, core.NewTile("  ", core.ColorDefault))
	a.Define(wallSrcX, wallSrcY, spriteSz, spriteSz, core.NewTile("██", core.ColorBlue))
	return a
}

// mazeSize returns the dimensions of the maze on screen, falling back to
// the params before the first session exists.
func (g *Game) mazeSize() (int, int) {
	if g.session != nil {
		return g.session.Grid.W, g.session.Grid.H
	}
	return g.params.Width, g.params.Height
}

func (g *Game) requiredWidth() int {
	w, _ := g.mazeSize()
	return w * cellW
}

func (g *Game) requiredHeight() int {
	_, h := g.mazeSize()
	return h + hudHeight
}

// Render draws the current phase into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}
	now := g.clock.Now()
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", g.requiredWidth(), g.requiredHeight()),
			g.statusLine(now))
		return
	}

	switch g.session.State {
	case StateCountdown:
		g.renderCountdown(dst, now)
	case StateClear:
		g.renderClear(dst)
	default:
		g.renderMaze(dst)
		g.renderHUD(dst, now)
	}
}

func (g *Game) renderCountdown(dst *core.Screen, now time.Time) {
	y := dst.Height() / 2
	if n := g.session.CountdownRemaining(now); n > 0 {
		dst.DrawTextCentered(y, fmt.Sprintf("START IN %d", n), core.ColorBrightYellow)
		return
	}
	dst.DrawTextCentered(y, "START!", core.ColorBrightYellow)
}

func (g *Game) renderClear(dst *core.Screen) {
	s := g.session
	top := (dst.Height() - 9) / 2

	dst.DrawTextCentered(top, "MAZE CLEAR", core.ColorBrightYellow)
	dst.DrawTextCentered(top+2, fmt.Sprintf("TIME %s SEC", seconds(s.ClearTime)), core.ColorBrightWhite)
	dst.DrawTextCentered(top+3, fmt.Sprintf("BEST %s SEC", seconds(g.best)), core.ColorGray)
	dst.DrawTextCentered(top+4, fmt.Sprintf("MOVES %d / %d", s.Moves, s.OptimalMoves), core.ColorGray)
	dst.DrawTextCentered(top+6, "PRESS R NEXT", core.ColorBrightCyan)
	dst.DrawTextCentered(top+7, "PRESS Q QUIT", core.ColorBrightCyan)
}

// mazeOrigin returns the screen position of maze cell (0, 0).
func (g *Game) mazeOrigin(dst *core.Screen) (int, int) {
	x := (dst.Width() - g.requiredWidth()) / 2
	y := (dst.Height() - g.requiredHeight()) / 2
	return max(0, x), max(0, y)
}

func (g *Game) renderMaze(dst *core.Screen) {
	s := g.session
	ox, oy := g.mazeOrigin(dst)

	for y := 0; y < s.Grid.H; y++ {
		for x := 0; x < s.Grid.W; x++ {
			c := maze.C(x, y)
			sx, sy := ox+x*cellW, oy+y

			switch {
			case s.Revealed(c):
				dst.DrawSprite(sx, sy, g.atlas, roadSrcX, roadSrcY, spriteSz, spriteSz)
			case s.FakeWalls.Contains(c), s.Grid.Get(c) == maze.Wall:
				dst.DrawSprite(sx, sy, g.atlas, wallSrcX, wallSrcY, spriteSz, spriteSz)
			default:
				dst.DrawSprite(sx, sy, g.atlas, roadSrcX, roadSrcY, spriteSz, spriteSz)
			}
		}
	}

	dst.DrawRect(core.NewRect(ox+s.Goal.X*cellW, oy+s.Goal.Y, cellW, 1), '█', core.ColorBrightGreen)
	dst.DrawRect(core.NewRect(ox+s.Player.X*cellW, oy+s.Player.Y, cellW, 1), '█', core.ColorBrightRed)
}

func (g *Game) renderHUD(dst *core.Screen, now time.Time) {
	s := g.session
	ox, oy := g.mazeOrigin(dst)
	y := oy + s.Grid.H

	for x := 0; x < g.requiredWidth(); x++ {
		dst.SetColored(ox+x, y, '─', core.ColorNavy)
	}

	hud := fmt.Sprintf("TIME: %s sec", seconds(s.Elapsed(now)))
	dst.DrawTextColored(ox+1, y+1, hud, core.ColorBrightWhite)

	// The stopwatch always wins; the right label shrinks or goes away.
	fake := fmt.Sprintf("FAKE %d", len(s.FakeWalls))
	labels := []string{fake}
	if g.best > 0 {
		labels = []string{fmt.Sprintf("BEST %s  %s", seconds(g.best), fake), fake}
	}
	for _, right := range labels {
		if 1+len(hud)+2+len(right)+1 <= g.requiredWidth() {
			dst.DrawTextColored(ox+g.requiredWidth()-len(right)-1, y+1, right, core.ColorGray)
			break
		}
	}
}

// statusLine is a one-line summary of the current phase, shown when the
// maze itself does not fit.
func (g *Game) statusLine(now time.Time) string {
	s := g.session
	switch s.State {
	case StateCountdown:
		if n := s.CountdownRemaining(now); n > 0 {
			return fmt.Sprintf("START IN %d", n)
		}
		return "START!"
	case StateClear:
		return fmt.Sprintf("MAZE CLEAR  TIME %s SEC", seconds(s.ClearTime))
	default:
		return fmt.Sprintf("TIME: %s sec", seconds(s.Elapsed(now)))
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2, status string) {
	boxW := max(len(line1), len(line2), len(status)) + 4
	box := core.Centered(dst.Width(), dst.Height(), boxW, 7)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
	dst.DrawTextCentered(box.Y+5, status, core.ColorBrightYellow)
}

// seconds formats d with two decimals, the way the stopwatch shows it.
func seconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}
