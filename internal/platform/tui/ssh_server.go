// Package tui provides the Bubble Tea screens of the quiz and serves them
// over SSH via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/colorquiz/internal/core"
	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/quiz"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the quiz SSH server.
type SSHServerConfig struct {
	Address string // host:port, e.g. ":23235"

	// HostKeyPath is generated on first start when missing.
	// Empty means ~/.colorquiz/ssh_host_ed25519.
	HostKeyPath string
	IdleTimeout time.Duration

	// Book is the palette every connection quizzes on.
	Book *palette.Book

	// Quiz holds per-connection engine options. Rand and Logger are
	// replaced for every connection.
	Quiz quiz.Options

	// Grade and Mode preselect the menu.
	Grade palette.Grade
	Mode  string

	// Logger receives server events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig mirrors the built-in config file.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 30 * time.Minute,
		Book:        palette.Default(),
		Grade:       palette.Grade1,
		Mode:        "color-to-name",
	}
}

// SSHServer hands every connection its own quiz session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer resolves the host key and builds the Wish server.
// Connections without a PTY are rejected before a program starts.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "colorquiz-ssh",
		})
	}
	if cfg.Book == nil {
		cfg.Book = palette.Default()
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: cfg.Logger}
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.trackSessions,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: create SSH server: %w", err)
	}
	return srv, nil
}

// hostKeyPath picks the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".colorquiz", "ssh_host_ed25519")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: create host key directory: %w", err)
	}
	return path, nil
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	model := s.newSessionModel(sess.User(), pty.Window.Width, pty.Window.Height)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// newSessionModel builds the per-connection model with its own RNG.
func (s *SSHServer) newSessionModel(user string, width, height int) SessionModel {
	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    time.Now().UnixNano(),
	}

	qopts := s.config.Quiz
	qopts.Rand = rt.Rand()
	qopts.Logger = s.logger.With("user", user)

	return NewSessionModel(SessionOptions{
		Book:    s.config.Book,
		Runtime: rt,
		Quiz:    qopts,
		Grade:   s.config.Grade,
		Mode:    s.config.Mode,
	})
}

// trackSessions logs connects and disconnects with the number of players
// online.
func (s *SSHServer) trackSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		started := time.Now()
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())

		logger.Info("player connected", "online", s.active.Add(1))
		defer func() {
			logger.Info("player left",
				"online", s.active.Add(-1),
				"duration", time.Since(started).Round(time.Second),
			)
		}()

		next(sess)
	}
}

// Active reports the number of open connections.
func (s *SSHServer) Active() int64 {
	return s.active.Load()
}

// ListenAndServe serves until ctx is done or the process gets SIGINT or
// SIGTERM, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("serving quizzes", "address", s.config.Address, "grade", s.config.Grade, "mode", s.config.Mode)
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "online", s.Active())
	return s.Shutdown()
}

// Shutdown waits up to ten seconds for open connections.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
