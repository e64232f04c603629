package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-trial/internal/core"
	"github.com/vovakirdan/maze-trial/internal/registry"
	"github.com/vovakirdan/maze-trial/internal/storage"
)

// helpHeight is the number of terminal rows below the game screen.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options carries the optional collaborators of a Model.
type Options struct {
	Store        *storage.Store // Run log; nil disables recording
	Logger       *log.Logger    // Nil discards log output
	Clock        core.Clock     // Nil uses the system clock
	ReleaseAfter time.Duration  // Key release timeout; zero uses DefaultReleaseAfter
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	mapper     *KeyMapper
	tracker    *KeyTracker
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	clears     *int // Shared across model copies
	quitting   bool
	clock      core.Clock
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Key timing and game timers read the same clock.
	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	if c, ok := game.(registry.Clocked); ok {
		c.SetClock(clock)
	}

	keys := DefaultKeyMap()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpHeight)),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		tracker:    NewKeyTracker(opts.ReleaseAfter),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		clears:     new(int),
		clock:      clock,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	m.game.Reset(cfg)
	m.logger.Info("game started", "game", m.game.ID(), "seed", cfg.Seed,
		"screen", cfg.ScreenW, "rows", cfg.ScreenH)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey feeds key events to the tracker; the next tick consumes them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, forceQuit := m.mapper.MapKey(msg)
	if forceQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.tracker.Press(action, m.clock.Now())
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := max(0, msg.Height-helpHeight)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, h)
		return m, nil
	}

	// Games without resize support start over with the new dimensions,
	// and keys held before the restart no longer count.
	cfg := m.config
	cfg.ScreenH = h
	m.game.Reset(cfg)
	m.tracker.Reset()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tracker.Frame(m.clock.Now(), &m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Clear != nil {
		m.recordClear(*result.Clear)
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordClear logs a cleared maze and saves it to the run log.
func (m Model) recordClear(ev core.ClearEvent) {
	*m.clears++
	m.logger.Info("maze cleared",
		"round", *m.clears,
		"time", ev.Duration.Round(time.Millisecond),
		"moves", ev.Moves,
		"optimal", ev.OptimalMoves,
		"fake_walls", ev.FakeWalls)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveClear(storage.ClearRecord{
		GameID:       m.game.ID(),
		Round:        *m.clears,
		Seed:         ev.Seed,
		Width:        ev.Width,
		Height:       ev.Height,
		FakeWalls:    ev.FakeWalls,
		Moves:        ev.Moves,
		OptimalMoves: ev.OptimalMoves,
		Duration:     ev.Duration,
		ClearedAt:    m.clock.Now(),
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not record clear", "error", err)
		return
	}

	best, err := m.store.BestClear(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read best clear", "error", err)
		return
	}
	if best != nil && best.ID == id {
		m.logger.Info("new best time", "round", *m.clears, "time", ev.Duration.Round(time.Millisecond))
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game and blocks until
// it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
