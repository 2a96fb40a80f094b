package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossroad/internal/audio"
	"github.com/vovakirdan/tui-crossroad/internal/core"
	"github.com/vovakirdan/tui-crossroad/internal/registry"
	"github.com/vovakirdan/tui-crossroad/internal/storage"
)

// footerRows is the space under the playfield for the help line.
const footerRows = 1

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	recordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Options carries the optional collaborators of a Model. Nil fields disable
// the matching feature.
type Options struct {
	Store  *storage.Store
	Audio  *audio.Player
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	store      *storage.Store
	sound      *audio.Player
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	runs       int
	quitting   bool
}

// NewModel creates a model and resets the game for its first session.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		store:      opts.Store,
		sound:      opts.Audio,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}

	game.Reset(cfg)
	m.gameState = game.State()
	m.refreshRecord()
	logger.Info("session started", "variant", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate,
		"sound", opts.Audio.Enabled())
	return m
}

func playfieldHeight(h int) int {
	return core.Max(h-footerRows, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session finished", "runs", m.runs, "best", m.best)
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize only resizes the buffer. The world is in pixels, so the
// running session is left alone.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step. The game gets its own copy of the
// input, since the frame is shared by every copy of the model and is
// cleared for the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame.Clone()
	m.inputFrame.Clear()

	result := m.game.Step(in)
	m.gameState = result.State
	m.handleEvents(result.Events)
	return m, tickCmd(m.config.TickRate)
}

// handleEvents logs events, plays their cues and records finished runs.
func (m *Model) handleEvents(events []core.Event) {
	if len(events) == 0 {
		return
	}
	if m.sound != nil {
		m.sound.HandleEvents(events)
	}

	for _, e := range events {
		switch {
		case e.IsRunEnd():
			m.logger.Info("run ended", "reason", e.Kind, "score", e.Score, "elapsed", fmt.Sprintf("%.2fs", e.Elapsed))
			m.saveRun(e)
		case e.Kind == core.EventRunStarted:
			m.logger.Info("run started", "variant", m.game.ID())
		default:
			m.logger.Debug("event", "kind", e.Kind, "score", e.Score)
		}
	}
}

func (m *Model) saveRun(e core.Event) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Variant: m.game.ID(),
		Score:   e.Score,
		Reason:  e.Kind.String(),
		Elapsed: e.Elapsed,
		Seed:    m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.refreshRecord()
}

// refreshRecord reloads the best score and run count shown in the footer.
func (m *Model) refreshRecord() {
	if m.store == nil {
		return
	}
	best, err := m.store.BestScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read best score", "error", err)
		return
	}
	runs, err := m.store.RunCount(m.game.ID())
	if err != nil {
		m.logger.Warn("could not count runs", "error", err)
		return
	}
	m.best, m.runs = best, runs
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// footer is the help line with the session record on the right.
func (m Model) footer() string {
	left := helpStyle.Render(m.help.View(m.keys))
	if m.store == nil {
		return left
	}

	right := recordStyle.Render(fmt.Sprintf("best %d · runs %d ", m.best, m.runs))
	gap := m.config.ScreenW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
