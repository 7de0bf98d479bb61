package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprites"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.flappy/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game and Sheet are shared by every connection; each connection
	// gets its own session.
	Game  config.FlappyConfig
	Sheet *sprites.Sheet

	// Seed seeds every connection's pipe placement. 0 = time based.
	Seed int64

	Logger *log.Logger // nil logs to stderr
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultFlappyConfig(),
	}
}

// SSHServer serves one game per SSH connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	ledger *storage.Store
	logger *log.Logger

	// status is the leaderboard line shared by all connections, rebuilt
	// whenever a run is recorded.
	mu     sync.RWMutex
	status string
}

// leaderboardSize is how many runs the status line lists.
const leaderboardSize = 3

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Sheet == nil {
		return nil, fmt.Errorf("tui: %w", sprites.ErrMissingSprite)
	}
	if err := cfg.Game.Validate(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "flappy-ssh",
		})
	}

	// The ledger lives in memory for the server's lifetime only
	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		ledger = nil
	}

	srv := &SSHServer{
		config: cfg,
		ledger: ledger,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".flappy", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if ledger != nil {
			ledger.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	model, err := NewModel(Options{
		Config: s.config.Game,
		Sheet:  s.config.Sheet,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.Game.Timing.TickRate,
			Seed:     seed,
		},
		Logger:   s.logger.With("user", sshSession.User()),
		Renderer: bubbletea.MakeRenderer(sshSession),
		Player:   sshSession.User(),
		Ledger:   s.ledger,
		AfterRun: s.refreshStatus,
		Status:   s.leaderboard,
	})
	if err != nil {
		s.logger.Error("cannot create game", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// refreshStatus rebuilds the leaderboard line from the ledger.
func (s *SSHServer) refreshStatus() {
	if s.ledger == nil {
		return
	}
	runs, err := s.ledger.TopRuns(leaderboardSize)
	if err != nil {
		s.logger.Warn("could not read leaderboard", "error", err)
		return
	}

	line := formatLeaderboard(runs)
	s.mu.Lock()
	s.status = line
	s.mu.Unlock()
}

// leaderboard returns the cached leaderboard line.
func (s *SSHServer) leaderboard() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// formatLeaderboard renders runs as "top: alice 7, bob 3".
func formatLeaderboard(runs []storage.RunEntry) string {
	if len(runs) == 0 {
		return ""
	}
	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = fmt.Sprintf("%s %d", r.Player, int(r.Score))
	}
	return "top: " + strings.Join(parts, ", ")
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.ledger != nil {
		n, countErr := s.ledger.RunCount()
		best, bestErr := s.ledger.Best()
		if countErr == nil && bestErr == nil {
			s.logger.Info("runs played", "count", n, "best", int(best))
		}
		s.ledger.Close()
	}

	return s.server.Shutdown(ctx)
}
