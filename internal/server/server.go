// Package server provides the HTTP server and routing for CivicPulse.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/cityble/civicpulse/internal/config"
	"github.com/cityble/civicpulse/internal/events"
	"github.com/cityble/civicpulse/internal/modules/engagement"
	engagementhandlers "github.com/cityble/civicpulse/internal/modules/engagement/handlers"
	"github.com/cityble/civicpulse/internal/modules/environment"
	environmenthandlers "github.com/cityble/civicpulse/internal/modules/environment/handlers"
	"github.com/cityble/civicpulse/internal/modules/innovation"
	innovationhandlers "github.com/cityble/civicpulse/internal/modules/innovation/handlers"
	"github.com/cityble/civicpulse/internal/modules/mobility"
	mobilityhandlers "github.com/cityble/civicpulse/internal/modules/mobility/handlers"
	"github.com/cityble/civicpulse/internal/modules/overview"
	overviewhandlers "github.com/cityble/civicpulse/internal/modules/overview/handlers"
	"github.com/cityble/civicpulse/internal/modules/policy"
	policyhandlers "github.com/cityble/civicpulse/internal/modules/policy/handlers"
	"github.com/cityble/civicpulse/internal/telemetry"
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	Config    *config.Config
	Generator *telemetry.Generator
	Bus       *events.Bus
	Port      int
	DevMode   bool
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	cfg            *config.Config
	generator      *telemetry.Generator
	bus            *events.Bus
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		cfg:            cfg.Config,
		generator:      cfg.Generator,
		bus:            cfg.Bus,
		systemHandlers: NewSystemHandlers(cfg.Log, cfg.Config.RefreshInterval),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// Streams must register before the section routes
		eventsStreamHandler := NewEventsStreamHandler(s.bus, s.log)
		r.Get("/events/stream", eventsStreamHandler.ServeHTTP)

		liveFeedHandler := NewLiveFeedHandler(s.bus, s.log)
		r.Get("/live", liveFeedHandler.ServeHTTP)

		// System monitoring
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
		})

		// Dashboard sections, one module per tab
		overviewHandler := overviewhandlers.NewHandler(overview.NewService(s.generator, s.log), s.log)
		overviewHandler.RegisterRoutes(r)

		environmentHandler := environmenthandlers.NewHandler(environment.NewService(s.generator, s.log), s.log)
		environmentHandler.RegisterRoutes(r)

		mobilityHandler := mobilityhandlers.NewHandler(mobility.NewService(s.generator, s.log), s.log)
		mobilityHandler.RegisterRoutes(r)

		engagementHandler := engagementhandlers.NewHandler(engagement.NewService(s.generator, s.log), s.log)
		engagementHandler.RegisterRoutes(r)

		innovationHandler := innovationhandlers.NewHandler(innovation.NewService(s.generator, s.log), s.log)
		innovationHandler.RegisterRoutes(r)

		policyHandler := policyhandlers.NewHandler(policy.NewService(s.generator, s.log), s.log)
		policyHandler.RegisterRoutes(r)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
