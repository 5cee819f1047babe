package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures `flappy serve`.
type SSHServerConfig struct {
	Address string

	// HostKeyPath defaults to ~/.flappy/host_key and is generated when missing.
	HostKeyPath string

	DBPath      string
	IdleTimeout time.Duration

	// Mode skips the menu and starts every session in this mode.
	Mode string

	// Tick overrides the mode's simulation interval when positive.
	Tick time.Duration
}

// DefaultSSHServerConfig listens on :23234 with the default database.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.flappy/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves one flappy session per SSH connection. Sessions share
// the score database and one best-score tracker per mode.
type SSHServer struct {
	cfg      SSHServerConfig
	srv      *ssh.Server
	store    *storage.Store
	trackers *highscore.Trackers
	log      *log.Logger
}

// NewSSHServer opens the database and prepares the Wish server. A database
// that cannot be opened is logged and the server runs without history.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Mode != "" && !registry.Exists(cfg.Mode) {
		return nil, fmt.Errorf("%w %q", registry.ErrUnknownGame, cfg.Mode)
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{
		cfg: cfg,
		log: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "flappy-ssh",
		}),
	}

	s.store, err = storage.Open(cfg.DBPath)
	if err != nil {
		s.log.Warn("scores disabled", "db", cfg.DBPath, "error", err)
		s.store = nil
	}
	s.trackers = highscore.NewTrackers(bestScoreStore(s.store))

	s.srv, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.session),
			s.logSessions,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: ssh server: %w", err)
	}
	return s, nil
}

func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: host key: %w", err)
		}
		path = filepath.Join(home, ".flappy", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: host key dir: %w", err)
	}
	return path, nil
}

// session builds the program for one connection. Connections without a PTY
// are refused.
func (s *SSHServer) session(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.log.Warn("no pty, closing", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Tick:    s.cfg.Tick,
		Seed:    time.Now().UnixNano(),
	}
	m := NewSessionModel(s.store, s.trackers, cfg, s.log.With("user", sess.User()), s.cfg.Mode)
	return m, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.log.Info("connect", "user", sess.User(), "remote", remote)
		next(sess)
		s.log.Info("disconnect", "user", sess.User(), "remote", remote, "duration", time.Since(start).Round(time.Second))
	}
}

// Serve accepts connections until ctx is done, then shuts down and closes
// the database.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.log.Info("listening", "address", s.cfg.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	err := s.srv.Shutdown(sctx)
	s.closeStore()
	return err
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func bestScoreStore(store *storage.Store) func(mode string) highscore.Store {
	if store == nil {
		return nil
	}
	return func(mode string) highscore.Store {
		return store.BestScores(mode)
	}
}
