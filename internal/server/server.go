package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"room-crawler/internal/config"
	"room-crawler/internal/game"
	internalssh "room-crawler/internal/ssh"
)

// maxNameBytes caps the player name taken from the SSH user.
const maxNameBytes = 16

// allowedTerms lists the TERM values a client may request. Anything else
// falls back to defaultTerm so a client cannot point terminfo at arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// Server hosts one game session per SSH connection.
type Server struct {
	Addr   string
	logger *zap.Logger
	signer gossh.Signer
	cfg    atomic.Pointer[config.Config]
	active atomic.Int64

	srv *gossh.Server
}

// New creates a server that starts every session from cfg.
func New(addr string, cfg *config.Config, signer gossh.Signer, logger *zap.Logger) *Server {
	s := &Server{Addr: addr, logger: logger, signer: signer}
	s.cfg.Store(cfg)
	s.srv = &gossh.Server{
		Addr:    addr,
		Handler: s.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: meant for a private home server.
		HostSigners: []gossh.Signer{signer},
	}
	return s
}

// SetConfig swaps the configuration used by sessions that start afterwards.
func (s *Server) SetConfig(cfg *config.Config) {
	s.cfg.Store(cfg)
	s.logger.Info("config updated for new sessions", zap.Int("rooms", cfg.Rooms))
}

// Config returns the configuration new sessions start from.
func (s *Server) Config() *config.Config { return s.cfg.Load() }

// Active returns the number of connected players.
func (s *Server) Active() int64 { return s.active.Load() }

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(ln) }()
	s.logger.Info("ssh server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
		s.logger.Info("ssh server shutting down", zap.Int64("active", s.Active()))
		closeErr := s.srv.Close()
		_ = ln.Close()
		if err := <-errCh; err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		if closeErr != nil {
			return fmt.Errorf("close ssh server: %w", closeErr)
		}
		return nil
	}
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func (s *Server) handleSession(sess gossh.Session) {
	connID := uuid.New()
	log := s.logger.With(
		zap.String("conn", connID.String()),
		zap.String("user", sess.User()),
		zap.String("remote", sess.RemoteAddr().String()),
	)

	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		fmt.Fprintln(sess, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		log.Info("rejected session without pty")
		return
	}

	term := termFromEnv(sess.Environ(), pty.Term)
	tty := internalssh.NewSessionTty(sess, pty.Window, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		log.Warn("terminal setup failed", zap.String("term", term), zap.Error(err))
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(sess, "Screen init failed: %v\n", err)
		log.Warn("screen init failed", zap.Error(err))
		return
	}
	defer screen.Fini()

	cfg := sessionConfig(s.cfg.Load(), sess.User())
	g, err := newGame(cfg, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintln(sess, err)
		return
	}

	n := s.active.Add(1)
	log.Info("player connected", zap.String("session", g.ID.String()), zap.Int64("active", n))
	defer func() {
		n := s.active.Add(-1)
		log.Info("player disconnected", zap.Int64("active", n))
	}()

	// Ending the SSH channel finalizes the screen, which unblocks Run.
	go func() {
		<-sess.Context().Done()
		screen.Fini()
	}()
	g.Run(screen)
}

// newGame starts a game session. The returned error is meant for the client.
func newGame(cfg *config.Config, log *zap.Logger) (*game.Session, error) {
	g, err := game.NewSession(cfg, log)
	if err != nil {
		log.Error("session setup failed", zap.Error(err))
		return nil, fmt.Errorf("could not build a dungeon: %w", err)
	}
	return g, nil
}

// sessionConfig copies base and names the player after the SSH user.
func sessionConfig(base *config.Config, user string) *config.Config {
	cfg := *base
	if name := sanitizeName(user); name != "" {
		cfg.Player.Name = name
	}
	return &cfg
}

// termFromEnv picks TERM from the session environment, then the PTY request,
// and falls back to defaultTerm for anything not in allowedTerms.
func termFromEnv(environ []string, ptyTerm string) string {
	term := ptyTerm
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			term = v
			break
		}
	}
	if !allowedTerms[term] {
		return defaultTerm
	}
	return term
}

// sanitizeName drops control characters and caps the result at maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
