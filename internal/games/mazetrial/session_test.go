package mazetrial

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/maze-trial/internal/maze"
)

func TestNewSessionLayout(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s, err := NewSession(DefaultParams(), rand.New(rand.NewSource(seed)), epoch)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		if s.Grid.W != 32 || s.Grid.H != 30 {
			t.Errorf("seed %d: grid %dx%d, want 32x30", seed, s.Grid.W, s.Grid.H)
		}
		if s.Start != maze.Start || s.Player != maze.Start {
			t.Errorf("seed %d: start %v player %v", seed, s.Start, s.Player)
		}
		if !s.Grid.IsRoad(s.Goal) {
			t.Errorf("seed %d: goal %v is a wall", seed, s.Goal)
		}
		if s.FakeWalls.Contains(s.Start) || s.FakeWalls.Contains(s.Goal) {
			t.Errorf("seed %d: fake wall on start or goal", seed)
		}
		if s.OptimalMoves <= 0 {
			t.Errorf("seed %d: optimal moves = %d", seed, s.OptimalMoves)
		}
		if s.State != StateCountdown || !s.CountdownStart.Equal(epoch) {
			t.Errorf("seed %d: state %v started %v", seed, s.State, s.CountdownStart)
		}
	}
}

func TestNewSessionErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"grid too small", func(p *Params) { p.Width = 2 }, maze.ErrGridTooSmall},
		{"too few candidates", func(p *Params) { p.Width, p.Height = 5, 5 }, maze.ErrTooFewCandidates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			_, err := NewSession(p, rand.New(rand.NewSource(1)), epoch)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateCountdown, "countdown"},
		{StatePlay, "play"},
		{StateClear, "clear"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}
