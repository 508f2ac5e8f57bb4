package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/pages"
	"github.com/rpupo63/portfolio-site-backend/services"
)

// Dependencies are the components handlers read from. All of them are built
// once at startup and shared by every request.
type Dependencies struct {
	Store    content.Store
	Articles *services.ArticleService
	Contact  *services.ContactService
	Pages    *pages.Renderer
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg config.Config, deps Dependencies) Server {
	// Capture startup time
	startupTime := time.Now()

	router := newRouter(cfg, deps, withStartupTime(startupTime))

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout(),  // Timeout for reading the entire request
		WriteTimeout: cfg.WriteTimeout(), // Timeout for writing the response
		IdleTimeout:  cfg.IdleTimeout(),  // Timeout for idle connections
	}

	return Server{server, startupTime}
}

type routerOptions struct {
	startupTime time.Time
	requestLog  bool
}

func withStartupTime(startupTime time.Time) func(*routerOptions) {
	return func(o *routerOptions) {
		o.startupTime = startupTime
	}
}

func withoutRequestLog() func(*routerOptions) {
	return func(o *routerOptions) {
		o.requestLog = false
	}
}

func newRouter(cfg config.Config, deps Dependencies, opts ...func(*routerOptions)) *chi.Mux {
	options := routerOptions{startupTime: time.Now(), requestLog: true}
	for _, opt := range opts {
		opt(&options)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(RequestIDMiddleware)
	if options.requestLog {
		chiRouter.Use(ColoredHTTPLoggingMiddleware)
	}

	// Apply CORS middleware
	chiRouter.Use(CORSCheckMiddleware(cfg.AcceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AcceptedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	handlers := initializeHandlers(cfg, deps, options.startupTime)

	setupAPIRoutes(chiRouter, handlers)
	setupPageRoutes(chiRouter, handlers)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) StartupTime() time.Time {
	return s.startupTime
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
