package mazetrial

import (
	"fmt"
	"time"

	"github.com/vovakirdan/maze-trial/internal/core"
	"github.com/vovakirdan/maze-trial/internal/maze"
)

// State is the phase of a single maze run.
type State int

const (
	StateCountdown State = iota // Maze hidden, waiting for the start signal
	StatePlay                   // Stopwatch running, player may move
	StateClear                  // Goal reached, time frozen
)

// String returns the phase name reported to the platform.
func (s State) String() string {
	switch s {
	case StateCountdown:
		return "countdown"
	case StatePlay:
		return "play"
	case StateClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Params holds everything needed to build a session.
type Params struct {
	Width            int
	Height           int
	FakeWallsMin     int
	FakeWallsMax     int
	Countdown        time.Duration
	HoldMoveInterval time.Duration
}

// DefaultParams returns the classic 32x30 time trial settings.
func DefaultParams() Params {
	return Params{
		Width:            32,
		Height:           30,
		FakeWallsMin:     maze.DefaultFakeWallsMin,
		FakeWallsMax:     maze.DefaultFakeWallsMax,
		Countdown:        3 * time.Second,
		HoldMoveInterval: 80 * time.Millisecond,
	}
}

// Session is one maze run: an immutable layout plus the mutable player,
// phase and timers. A restart builds a new Session.
type Session struct {
	Params Params

	Grid         *maze.Grid
	Start        maze.Cell
	Goal         maze.Cell
	FakeWalls    maze.FakeWallSet
	OptimalMoves int

	Player maze.Cell
	State  State
	Moves  int

	CountdownStart time.Time
	PlayStart      time.Time
	LastHoldMove   time.Time // Zero until the first held move is attempted
	ClearTime      time.Duration
}

// NewSession generates a maze, locates its goal and hides fake walls in it.
// The session starts in StateCountdown at now.
func NewSession(p Params, rng maze.RNG, now time.Time) (*Session, error) {
	grid, err := maze.Generate(p.Width, p.Height, rng)
	if err != nil {
		return nil, fmt.Errorf("mazetrial: generate %dx%d maze: %w", p.Width, p.Height, err)
	}

	start := maze.Start
	goal := maze.LocateGoal(grid, start)

	fakes, err := maze.PlaceFakeWalls(grid, start, goal, rng, p.FakeWallsMin, p.FakeWallsMax)
	if err != nil {
		return nil, fmt.Errorf("mazetrial: place fake walls: %w", err)
	}

	return &Session{
		Params:         p,
		Grid:           grid,
		Start:          start,
		Goal:           goal,
		FakeWalls:      fakes,
		OptimalMoves:   maze.Distances(grid, start)[goal],
		Player:         start,
		State:          StateCountdown,
		CountdownStart: now,
	}, nil
}

// tryMove moves the player one cell in the direction of a when the target
// is a road cell. Fake walls are road cells.
func (s *Session) tryMove(a core.Action) bool {
	dx, dy := a.Delta()
	if dx == 0 && dy == 0 {
		return false
	}
	next := s.Player.Add(dx, dy)
	if !s.Grid.IsRoad(next) {
		return false
	}
	s.Player = next
	s.Moves++
	return true
}

// holdReady reports whether enough time has passed since the last held move.
func (s *Session) holdReady(now time.Time) bool {
	return s.LastHoldMove.IsZero() || now.Sub(s.LastHoldMove) >= s.Params.HoldMoveInterval
}

// Elapsed returns the stopwatch value: zero before play, running during
// play and frozen once cleared.
func (s *Session) Elapsed(now time.Time) time.Duration {
	switch s.State {
	case StatePlay:
		return now.Sub(s.PlayStart)
	case StateClear:
		return s.ClearTime
	default:
		return 0
	}
}

// CountdownRemaining returns the whole seconds left before play starts,
// rounded up. Zero means the start signal is due.
func (s *Session) CountdownRemaining(now time.Time) int {
	remain := s.Params.Countdown - now.Sub(s.CountdownStart)
	if remain <= 0 {
		return 0
	}
	return int((remain + time.Second - 1) / time.Second)
}

// Revealed reports whether the fake wall at c is currently drawn as road.
func (s *Session) Revealed(c maze.Cell) bool {
	return s.FakeWalls.Contains(c) && maze.IsRevealed(c, s.Player)
}
