package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sprites"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// footerRows is the number of terminal rows below the play field.
const footerRows = 2

// restartLabel is the text on the restart button.
const restartLabel = "Restart"

// Options configures a Model.
type Options struct {
	Config   config.FlappyConfig
	Sheet    *sprites.Sheet
	Runtime  core.RuntimeConfig
	Logger   *log.Logger        // nil discards
	Renderer *lipgloss.Renderer // nil uses the default renderer
	Player   string

	// Ledger records finished runs. Optional.
	Ledger *storage.Store

	// AfterRun is called once a finished run is recorded in Ledger. Optional.
	AfterRun func()

	// Status returns extra text for the status line. Optional.
	Status func() string

	// ScreenshotDir is where Ctrl+S frames are written.
	// If empty, ~/.flappy/screenshots is used.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	session *flappy.Session
	tick    *teaDriver
	spawn   *teaDriver

	screen  *core.Screen
	surface *cellSurface
	cfg     config.FlappyConfig

	keys        KeyMap
	help        help.Model
	renderer    *lipgloss.Renderer
	statusStyle lipgloss.Style
	status      func() string

	logger        *log.Logger
	screenshotDir string
	lastShot      string
	quitting      bool
}

// NewModel creates a model and its session. The session's drivers start in Init.
func NewModel(opts Options) (Model, error) {
	if opts.Sheet == nil {
		return Model{}, fmt.Errorf("tui: %w", sprites.ErrMissingSprite)
	}
	if err := opts.Config.Validate(); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	rt := opts.Runtime
	def := core.DefaultConfig()
	if rt.ScreenW <= 0 {
		rt.ScreenW = def.ScreenW
	}
	if rt.ScreenH <= 0 {
		rt.ScreenH = def.ScreenH
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	period := opts.Config.Timing.TickInterval()
	if rt.TickRate > 0 {
		period = time.Second / time.Duration(rt.TickRate)
	}
	tick := newTeaDriver(driverSimulation, period)
	spawn := newTeaDriver(driverSpawn, opts.Config.Timing.SpawnInterval)

	session, err := flappy.NewSession(opts.Config, opts.Sheet.Images(),
		flappy.WithDrivers(tick, spawn),
		flappy.WithRand(rand.New(rand.NewSource(rt.Seed))),
		flappy.OnGameOver(func(st core.GameState) {
			logger.Info("game over", "player", player, "score", int(st.Score), "high", int(st.HighScore))
			if opts.Ledger == nil {
				return
			}
			if _, err := opts.Ledger.SaveRun(player, st.Score); err != nil {
				logger.Warn("could not record run", "error", err)
				return
			}
			if opts.AfterRun != nil {
				opts.AfterRun()
			}
		}),
		flappy.OnRestart(func(core.GameState) {
			logger.Debug("restart", "player", player)
		}),
	)
	if err != nil {
		return Model{}, err
	}

	fieldRows := core.Max(rt.ScreenH-footerRows, 1)
	screen := core.NewScreen(rt.ScreenW, fieldRows)

	h := help.New()
	h.Width = rt.ScreenW

	dir := opts.ScreenshotDir
	if dir == "" {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			dir = filepath.Join(home, ".flappy", "screenshots")
		}
	}

	m := Model{
		session:       session,
		tick:          tick,
		spawn:         spawn,
		screen:        screen,
		surface:       newCellSurface(screen, opts.Config.Board.Width, opts.Config.Board.Height, rt.ScreenW, fieldRows),
		cfg:           opts.Config,
		keys:          DefaultKeyMap(),
		help:          h,
		renderer:      renderer,
		statusStyle:   renderer.NewStyle().Foreground(lipgloss.Color("245")),
		status:        opts.Status,
		logger:        logger,
		screenshotDir: dir,
	}
	m.syncKeys()
	return m, nil
}

// Session returns the model's game session.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Init starts the session and its drivers.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	m.logger.Debug("session started", "tick", m.tick.period, "spawn", m.spawn.period)
	return m.pendingTicks()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case TickMsg:
		cmd = m.handleTick(msg)
	}

	m.syncKeys()
	return m, tea.Batch(cmd, m.pendingTicks())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		path, err := saveScreenshot(m.screenshotDir, m.frame(), time.Now())
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			return m, nil
		}
		m.lastShot = path
		m.logger.Info("screenshot saved", "path", path)
	default:
		m.session.HandleAction(action)
	}
	return m, nil
}

// handleMouse restarts on a click on the restart button and flaps on any
// other click while playing.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if m.session.RestartAvailable() {
		if m.restartButton().Contains(msg.X, msg.Y) {
			m.session.HandleAction(core.ActionRestart)
		}
		return
	}
	if msg.Y < m.screen.Height() {
		m.session.HandleAction(core.ActionJump)
	}
}

// handleResize processes window resize events. The session is not reset;
// only the mapping from board units to cells changes.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	rows := core.Max(msg.Height-footerRows, 1)
	m.screen.Resize(msg.Width, rows)
	m.surface.resize(msg.Width, rows)
	m.help.Width = msg.Width
}

// handleTick routes a driver tick to the session.
func (m Model) handleTick(msg TickMsg) tea.Cmd {
	switch {
	case m.tick.accept(msg):
		m.session.Tick()
		return m.tick.next()
	case m.spawn.accept(msg):
		m.session.SpawnPipes()
		return m.spawn.next()
	}
	return nil
}

// pendingTicks collects the first tick of every driver started since the
// last call.
func (m Model) pendingTicks() tea.Cmd {
	return tea.Batch(m.tick.pending(), m.spawn.pending())
}

// syncKeys enables bindings that only apply in the current state.
func (m *Model) syncKeys() {
	m.keys.Restart.SetEnabled(m.session.RestartAvailable())
}

// restartButton returns the restart button in cells.
func (m Model) restartButton() core.Rect {
	return m.surface.buttonRect(flappy.RestartButton(m.cfg), restartLabel)
}

// draw renders the session onto the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	m.session.Render(m.surface)
	if m.session.RestartAvailable() {
		m.surface.drawButton(m.restartButton(), restartLabel)
	}
}

// frame returns the current play field as plain text.
func (m Model) frame() string {
	m.draw()
	return m.screen.String()
}

// statusLine describes the session below the play field.
func (m Model) statusLine() string {
	line := fmt.Sprintf("score %d  best %d", int(m.session.Score()), int(m.session.HighScore()))
	if m.status != nil {
		if extra := m.status(); extra != "" {
			line += "  " + extra
		}
	}
	if m.lastShot != "" {
		line += "  saved " + filepath.Base(m.lastShot)
	}
	return line
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.renderer, m.screen) + "\n" +
		m.statusStyle.Render(m.statusLine()) + "\n" +
		m.help.View(m.keys)
}

// saveScreenshot writes frame to a timestamped file in dir and returns its path.
func saveScreenshot(dir, frame string, now time.Time) (string, error) {
	if dir == "" {
		return "", errors.New("tui: no screenshot directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(frame), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
