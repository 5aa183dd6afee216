package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/hyetube/hyemockd/pkg/assets"
	"github.com/hyetube/hyemockd/pkg/config"
	"github.com/hyetube/hyemockd/pkg/httputil"
	"github.com/hyetube/hyemockd/pkg/logging"
	"github.com/hyetube/hyemockd/pkg/session"
)

// Server owns the session state, the asset store, the router, and the HTTP
// listener lifecycle.
type Server struct {
	cfg        *config.Config
	log        *slog.Logger
	state      *session.State
	assets     *assets.Store
	router     *Router
	httpServer *http.Server
	addr       string
	mu         sync.Mutex
	running    bool
}

// Option is a functional option for configuring a Server.
type Option func(*Server)

// WithLogger sets the operational logger for the server.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// NewServer creates a Server from the given configuration. A nil config uses
// defaults.
func NewServer(cfg *config.Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{
		cfg: cfg,
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = session.New()
	s.assets = assets.NewStore(cfg.DataDir)
	s.router = NewRouter(s.state, s.assets, s.log)
	return s
}

// State returns the session state. Exposed so tests can seed and reset it.
func (s *Server) State() *session.State {
	return s.state
}

// Handler returns the complete HTTP handler including middleware.
func (s *Server) Handler() http.Handler {
	return AccessLog(s.log, http.HandlerFunc(s.handle))
}

// handle is the transport adapter: it parses headers (establishing login and
// cookie flags as a side effect), reads the body bounded by the declared
// content-length, routes, and writes the response back.
func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	meta := ParseHeaders(r.Header, s.state)

	body := ""
	if r.Method == http.MethodPost || r.Method == http.MethodDelete {
		buf := make([]byte, meta.ContentLength)
		if _, err := io.ReadFull(r.Body, buf); err != nil {
			s.log.Warn("failed to read request body", "error", err)
			httputil.Text(http.StatusBadRequest, "Error getting request body").Write(w)
			return
		}
		body = string(buf)
	}

	// The router sees the raw request target; the proxy handlers strip the
	// query string themselves.
	target := r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	s.router.Route(r.Method, target, body).Write(w)
}

// Start binds the listener and begins serving in a goroutine. A failure to
// bind is the only fatal startup error.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("server already running")
	}

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	s.addr = listener.Addr().String()

	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
	}
	s.running = true

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("http server stopped", "error", err)
		}
	}()

	s.log.Info("mock server listening", "addr", s.addr, "dataDir", s.cfg.DataDir)
	return nil
}

// Stop gracefully shuts the server down, waiting for in-flight requests up to
// the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false
	return s.httpServer.Shutdown(ctx)
}

// IsRunning reports whether the server is currently serving.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Addr returns the bound listener address, empty before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}
