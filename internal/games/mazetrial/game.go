// Package mazetrial implements the maze time trial: walk from the top-left
// corner to the farthest cell of a random perfect maze as fast as possible,
// through walls that are not always what they seem.
package mazetrial

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/maze-trial/internal/core"
	"github.com/vovakirdan/maze-trial/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "maze"

// Game implements registry.Game for the maze time trial.
type Game struct {
	params  Params
	clock   core.Clock
	audio   core.Audio
	rng     *rand.Rand
	seed    int64
	session *Session
	tick    uint64
	round   int

	screenW  int
	screenH  int
	tooSmall bool
	quit     bool

	best   time.Duration // Fastest clear since the game was created
	clears int
	atlas  *core.Atlas
}

// Package-level params, set by the CLI before the game is created.
var params = DefaultParams()

// SetParams sets the params used by games created afterwards.
func SetParams(p Params) {
	params = p
}

// New creates a maze game using the package-level params, the system clock
// and no sound.
func New() *Game {
	return &Game{
		params: params,
		clock:  core.SystemClock{},
		audio:  core.NopAudio{},
		atlas:  newAtlas(),
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Time Trial"
}

// SetClock replaces the time source. Call before Reset.
func (g *Game) SetClock(c core.Clock) {
	if c == nil {
		c = core.SystemClock{}
	}
	g.clock = c
}

// SetAudio replaces the sound collaborator. Call before Reset.
func (g *Game) SetAudio(a core.Audio) {
	if a == nil {
		a = core.NopAudio{}
	}
	g.audio = a
}

// Reset seeds the RNG and starts the first maze.
// It panics if the params cannot produce a maze; the CLI validates them first.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.round = 0
	g.quit = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if err := g.startRound(); err != nil {
		panic(err)
	}
}

// startRound builds a fresh session and restarts the music. The current
// session is kept if construction fails.
func (g *Game) startRound() error {
	s, err := NewSession(g.params, g.rng, g.clock.Now())
	if err != nil {
		return fmt.Errorf("mazetrial: round %d: %w", g.round+1, err)
	}
	g.session = s
	g.round++
	g.Resize(g.screenW, g.screenH)
	g.audio.PlayMusicLooped(core.MusicMaze)
	return nil
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.requiredWidth() || h < g.requiredHeight()
}

// Step advances the state machine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.quit {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	s := g.session
	now := g.clock.Now()

	switch s.State {
	case StateCountdown:
		if now.Sub(s.CountdownStart) >= s.Params.Countdown {
			s.PlayStart = now
			s.State = StatePlay
		}

	case StatePlay:
		g.stepPlay(s, in, now)
		if s.Player == s.Goal {
			return core.StepResult{State: g.State(), Clear: g.clear(s, now)}
		}

	case StateClear:
		// Both keys on one tick restart and then quit.
		if in.Has(core.ActionRestart) {
			//nolint:errcheck // Params already built one session, so this cannot fail
			g.startRound()
		}
		if in.Has(core.ActionQuit) {
			g.quit = true
		}
	}

	return core.StepResult{State: g.State()}
}

// stepPlay applies at most one move: a fresh press first, else a held
// direction once the hold interval has passed.
func (g *Game) stepPlay(s *Session, in core.InputFrame, now time.Time) {
	if a, ok := in.PressedDirection(); ok && s.tryMove(a) {
		return
	}
	if !s.holdReady(now) {
		return
	}
	if a, ok := in.HeldDirection(); ok {
		s.tryMove(a)
		s.LastHoldMove = now
	}
}

// clear freezes the stopwatch and reports the finished round.
func (g *Game) clear(s *Session, now time.Time) *core.ClearEvent {
	s.ClearTime = now.Sub(s.PlayStart)
	s.State = StateClear

	g.audio.StopMusic()
	g.audio.PlaySoundOnce(core.SoundClear)

	g.clears++
	if g.best == 0 || s.ClearTime < g.best {
		g.best = s.ClearTime
	}

	return &core.ClearEvent{
		Seed:         g.seed,
		Width:        s.Grid.W,
		Height:       s.Grid.H,
		FakeWalls:    len(s.FakeWalls),
		Moves:        s.Moves,
		OptimalMoves: s.OptimalMoves,
		Duration:     s.ClearTime,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Quit: g.quit}
	}
	s := g.session
	return core.GameState{
		Phase:   s.State.String(),
		Elapsed: s.Elapsed(g.clock.Now()),
		Cleared: s.State == StateClear,
		Quit:    g.quit,
	}
}
