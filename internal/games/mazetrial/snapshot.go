package mazetrial

import "time"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Round     int
	Seed      int64
	State     string
	Width     int
	Height    int
	PlayerX   int
	PlayerY   int
	GoalX     int
	GoalY     int
	FakeWalls int
	Moves     int
	Clears    int
	Elapsed   time.Duration
	Best      time.Duration
	TooSmall  bool
	Maze      string // Grid rendered with '#' walls and '.' roads
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Round:    g.round,
		Seed:     g.seed,
		Clears:   g.clears,
		Best:     g.best,
		TooSmall: g.tooSmall,
	}
	s := g.session
	if s == nil {
		return snap
	}

	snap.State = s.State.String()
	snap.Width = s.Grid.W
	snap.Height = s.Grid.H
	snap.PlayerX, snap.PlayerY = s.Player.X, s.Player.Y
	snap.GoalX, snap.GoalY = s.Goal.X, s.Goal.Y
	snap.FakeWalls = len(s.FakeWalls)
	snap.Moves = s.Moves
	snap.Elapsed = s.Elapsed(g.clock.Now())
	snap.Maze = s.Grid.String()
	return snap
}
