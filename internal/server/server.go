package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nishanrajkantan/insta-saver/internal/instaweb"
	"github.com/nishanrajkantan/insta-saver/internal/resolver"
	"github.com/nishanrajkantan/insta-saver/pkg/config"
	"github.com/nishanrajkantan/insta-saver/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config   *config.Config
	Logger   logger.Logger
	Resolver resolver.Client
	Web      instaweb.Client
}

type Server struct {
	config   *config.Config
	logger   logger.Logger
	resolver resolver.Client
	web      instaweb.Client
	router   chi.Router

	// mediaClient fetches upstream media bytes for proxying; no overall
	// timeout so large videos can finish streaming.
	mediaClient *http.Client
}

func New(opts Opts) *Server {
	s := &Server{
		config:   opts.Config,
		logger:   opts.Logger,
		resolver: opts.Resolver,
		web:      opts.Web,
		mediaClient: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: 30 * time.Second,
			},
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/resolve", s.handleResolve)
		r.Post("/download", s.handleDownload)
		r.Get("/proxy", s.handleProxy)
		r.Post("/stories", s.handleStories)
	})

	s.router = r
	return s
}

// Handler exposes the routed handler for the HTTP server and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}
