package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quantum-dash/internal/core"
	"github.com/vovakirdan/quantum-dash/internal/loop"
	"github.com/vovakirdan/quantum-dash/internal/registry"
)

// Terminal grid used until the first WindowSizeMsg arrives.
const (
	defaultCols = 80
	defaultRows = 24
	footerRows  = 1
)

// Options configures the terminal frontend.
type Options struct {
	Cols, Rows   int   // initial terminal size, 0 for the default
	HoldWindowMs int64 // how long a key press counts as held
	Logger       *log.Logger
}

// Model is the Bubble Tea model for a Quantum Dash session.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	held   *HeldKeys
	clock  loop.Waiter
	pacer  *loop.Pacer
	logger *log.Logger

	clicks    []core.Vec
	gameState core.GameState
	frames    uint64
	quitting  bool
}

// NewModel creates a model for game. The world size comes from cfg, the
// terminal grid from opts.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 || rows <= footerRows {
		cols, rows = defaultCols, defaultRows
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewWorldScreen(cols, rows-footerRows, float64(cfg.ScreenW), float64(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   NewHeldKeys(opts.HoldWindowMs),
		clock:  loop.NewRealWaiter(),
		pacer:  loop.NewPacer(cfg.TickRate),
		logger: logger,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	now := m.clock.Now()
	m.pacer.Start(now)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.pacer.Next(now))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dir, isQuit := m.keys.Direction(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("session ended", "reason", "quit", "frames", m.frames, "score", m.gameState.Score)
		return m, tea.Quit
	}
	m.held.Press(dir, m.clock.Now().Milliseconds())
	return m, nil
}

// handleMouse turns a left-button press into a teleport click at the
// center of the pressed cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.X < 0 || msg.Y < 0 || msg.X >= m.screen.Width() || msg.Y >= m.screen.Height() {
		return m, nil
	}
	m.clicks = append(m.clicks, m.screen.CellToWorld(msg.X, msg.Y))
	return m, nil
}

// handleResize refits the grid. The world keeps its size, so the session
// continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := msg.Height - footerRows
	if msg.Width <= 0 || rows <= 0 {
		return m, nil
	}
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.Now()
	nowMs := now.Milliseconds()

	in := core.NewInputFrame(nowMs)
	in.Held = m.held.Held(nowMs)
	in.Clicks = m.clicks
	m.clicks = nil

	result := m.game.Step(in)
	m.gameState = result.State
	m.frames++
	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "x", ev.Pos.X, "y", ev.Pos.Y, "frame", m.frames)
	}

	if m.gameState.GameOver {
		m.logger.Info("session ended", "reason", "game_over", "frames", m.frames, "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, tickCmd(m.pacer.Next(m.clock.Now()))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + renderFooter(m.help.View(m.keys))
}

// State returns the latest game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays game in the terminal until it ends or the player quits, and
// returns the final state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: run program: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
