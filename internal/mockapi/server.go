package mockapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mascotas/mascotas-admin/internal/discovery"
	"github.com/mascotas/mascotas-admin/internal/logging"
	"github.com/mascotas/mascotas-admin/internal/urls"
	"github.com/mascotas/mascotas-admin/internal/version"
)

// DefaultPhotoPath is where uploaded photos are served from.
const DefaultPhotoPath = "/fotos"

// shutdownTimeout bounds how long in-flight requests may take once the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// Config holds the server configuration
type Config struct {
	Addr      string         // e.g. "127.0.0.1:8080"
	Endpoints urls.Endpoints // collection and record paths
	PhotoPath string         // prefix photos are served under

	// Advertise announces the server over mDNS under Instance
	Advertise bool
	Instance  string
}

// DefaultInstance is the mDNS instance name used when none is configured.
const DefaultInstance = "mascotas-mock"

// Server is an in-memory stand-in for the pets registry.
type Server struct {
	config  Config
	store   *Store
	handler http.Handler

	mu       sync.Mutex
	listener net.Listener
	http     *http.Server
}

// New creates a server with an empty store.
func New(config Config) *Server {
	if config.PhotoPath == "" {
		config.PhotoPath = DefaultPhotoPath
	}
	if config.Instance == "" {
		config.Instance = DefaultInstance
	}
	s := &Server{
		config: config,
		store:  NewStore(),
	}
	s.handler = s.routes()
	return s
}

// Store returns the backing store, e.g. to seed records.
func (s *Server) Store() *Store {
	return s.store
}

// Handler returns the HTTP handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the bound address once Start is listening, or "".
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	paths := urls.NewBuilder("", s.config.Endpoints)
	r.Get(paths.List(), s.listPets)
	r.Post(paths.Create(), s.createPet)
	r.Route(paths.Create()+"/{id}", func(pr chi.Router) {
		pr.Get("/", s.getPet)
		pr.Put("/", s.updatePet)
		pr.Delete("/", s.deletePet)
	})
	r.Get(s.config.PhotoPath+"/{id}", s.getPhoto)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

// Start listens on the configured address and serves until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mu.Lock()
	s.listener = listener
	s.http = srv
	s.mu.Unlock()

	logging.Info("Mock registry listening",
		zap.String("addr", listener.Addr().String()),
		zap.String("list_path", urls.NewBuilder("", s.config.Endpoints).List()),
		zap.Int("records", s.store.Len()),
	)

	if s.config.Advertise {
		port := listener.Addr().(*net.TCPAddr).Port
		adv, err := discovery.Advertise(s.config.Instance, port, s.config.Endpoints, version.Version)
		if err != nil {
			// Serving still works without the announcement
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		}
		defer adv.Shutdown()
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown requested, stopping mock registry...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Error during shutdown", zap.Error(err))
		return err
	}
	logging.Info("Mock registry stopped")
	return nil
}

// requestLogger logs one line per request with the status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logging.Info("Request handled",
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("client_request_id", r.Header.Get("X-Request-ID")),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
