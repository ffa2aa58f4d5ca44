// Package server is a local demo API that answers the fixed data endpoint
// the fetch client calls.
package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/mistakeknot/hellofetch/pkg/httpapi"
	"github.com/mistakeknot/hellofetch/pkg/netguard"
)

type Server struct {
	endpoint string
	fixture  Fixture
	logger   *slog.Logger
	mux      *http.ServeMux
	srv      *http.Server
}

func New(endpoint string, fixture Fixture, logger *slog.Logger) *Server {
	endpoint = httpapi.NormalizePath(endpoint)
	if endpoint == "" {
		endpoint = "/api/data"
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{endpoint: endpoint, fixture: fixture, logger: logger, mux: http.NewServeMux()}
	s.routes()
	s.srv = &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	return s
}

// Handler exposes the routes, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Endpoint is the normalized data path.
func (s *Server) Endpoint() string {
	return s.endpoint
}

// ListenAndServe serves on addr until Shutdown. A Shutdown issued before
// serving begins makes it return http.ErrServerClosed.
func (s *Server) ListenAndServe(addr string) error {
	if err := netguard.EnsureLocalOnly(addr); err != nil {
		return err
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.srv.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc(s.endpoint, s.handleData)
	if s.endpoint != "/" {
		s.mux.HandleFunc("/", s.handleNotFound)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	httpapi.WriteOK(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	s.logger.Debug("data requested", "request_id", r.Header.Get("X-Request-ID"), "status", s.fixture.Status)
	if s.fixture.Status < 200 || s.fixture.Status > 299 {
		httpapi.WriteError(w, s.fixture.Status, httpapi.ErrUnavailable, "fixture configured to fail")
		return
	}
	httpapi.WriteOK(w, s.fixture.Status, s.fixture.payload())
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	httpapi.WriteError(w, http.StatusNotFound, httpapi.ErrNotFound, "no route for "+r.URL.Path)
}

func methodNotAllowed(w http.ResponseWriter) {
	httpapi.WriteError(w, http.StatusMethodNotAllowed, httpapi.ErrInvalidRequest, "method not allowed")
}
