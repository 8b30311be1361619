package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/bdamage/Astroid-Classic/internal/config"
	"github.com/bdamage/Astroid-Classic/internal/draw"
	"github.com/bdamage/Astroid-Classic/internal/loop"
	"github.com/bdamage/Astroid-Classic/internal/score"
)

const (
	appName            = "astroid-classic"
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/astroid_host_key"
)

// Shared by all sessions. Each connection gets its own game; only the
// leaderboard and the server-wide difficulty are common.
var (
	scores     *score.Store
	difficulty config.Difficulty
	custom     *config.Settings
)

func main() {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	difficulty = config.ParseDifficulty(config.GetEnv("GAME_DIFFICULTY", "normal"))

	if path := config.GetEnv("GAME_SETTINGS", ""); path != "" {
		settings, err := config.LoadFile(path)
		if err != nil {
			log.Fatal("could not load settings", "path", path, "err", err)
		}
		custom = &settings
	}

	var err error
	scores, err = score.Open(appName)
	if err != nil {
		log.Warn("leaderboard unavailable, scores will not persist", "err", err)
		scores = score.NewStore(nil)
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// TCP_NODELAY keeps key press latency down
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	)
	if err != nil {
		log.Fatal("could not create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("starting SSH server", "host", host, "port", port)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "err", err)
		}
	}()

	<-done
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("shutdown error", "err", err)
	}
}

// gameMiddleware runs one game session per SSH connection.
func gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		log.Info("session started",
			"user", sess.User(), "term", pty.Term,
			"width", pty.Window.Width, "height", pty.Window.Height)

		tracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				tracker.update(win.Width, win.Height)
			}
		}()

		s := loop.NewSession(bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc: tracker.getSize,
			Scores:       scores,
			Difficulty:   difficulty,
			Settings:     custom,
		})
		if err := s.Run(); err != nil {
			log.Info("session error", "user", sess.User(), "err", err)
		}

		log.Info("session ended", "user", sess.User())
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
