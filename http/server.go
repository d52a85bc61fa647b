// Package http provides the HTTP surface for the command catalog: the JSON
// API and the embedded browsing frontend. Handlers extract request
// parameters, invoke the domain services, and map application errors to
// status codes; no business logic lives here.
package http

import (
	"context"
	"embed"
	"log/slog"
	"net"
	"net/http"
	"time"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

//go:embed assets
var assetsFS embed.FS

// ShutdownTimeout is the time given to in-flight requests on Close.
const ShutdownTimeout = 5 * time.Second

// Server wires the domain services to HTTP routes.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Bind address, e.g. "0.0.0.0:8080". Set before calling Open.
	Addr string

	// EnableCORS allows any origin on API responses when set.
	EnableCORS bool

	// Popular is the curated list served by the popular endpoint.
	Popular cmdlib.PopularList

	Logger *slog.Logger

	CommandService  cmdlib.CommandService
	TipService      cmdlib.TipService
	CategoryService cmdlib.CategoryService
}

// NewServer returns a Server with defaults. Services and Addr must be set
// before Open.
func NewServer() *Server {
	return &Server{
		Logger:  slog.Default(),
		Popular: cmdlib.DefaultPopularList,
	}
}

// Handler builds the route table wrapped with the middleware stack. Exposed
// separately from Open so tests can drive it directly.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/categories/detailed", s.handleCategoriesDetailed)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/suggestions", s.handleSuggestions)
	mux.HandleFunc("GET /api/popular", s.handlePopular)
	mux.HandleFunc("GET /api/commands", s.handleCommands)
	mux.HandleFunc("GET /api/commands/{id}", s.handleCommandByID)
	mux.HandleFunc("GET /api/category/{name}", s.handleCommandsByCategory)
	mux.HandleFunc("GET /api/random-tip", s.handleRandomTip)

	mux.Handle("GET /assets/", http.FileServer(http.FS(assetsFS)))
	mux.HandleFunc("GET /{$}", s.handleIndex)

	var h http.Handler = mux
	if s.EnableCORS {
		h = corsMiddleware(h)
	}
	return requestLogger(s.Logger, h)
}

// Open begins listening and serving requests. It returns once the listener
// is bound; serving continues on a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server terminated", "error", err)
		}
	}()

	return nil
}

// URL returns the base URL of the running server. Only valid after Open.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// handleIndex serves the embedded frontend document.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	body, err := assetsFS.ReadFile("assets/index.html")
	if err != nil {
		s.respondError(w, r, cmdlib.Errorf(cmdlib.EINTERNAL, "frontend asset missing: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
