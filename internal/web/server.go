package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"github.com/moodtunes/go-mood-tunes/internal/config"
	"github.com/moodtunes/go-mood-tunes/internal/recommend"
	"github.com/moodtunes/go-mood-tunes/internal/spotify"
)

// Server is the HTTP server for the mood-tunes API.
type Server struct {
	router   chi.Router
	server   *http.Server
	handlers *Handlers
	log      zerolog.Logger
}

// NewServer creates a new API server from the given configuration.
func NewServer(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	auth := spotifyauth.New(
		spotifyauth.WithClientID(cfg.ClientID),
		spotifyauth.WithClientSecret(cfg.ClientSecret),
		spotifyauth.WithRedirectURL(cfg.RedirectURI),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserTopRead,
			spotifyauth.ScopeUserReadPrivate,
			spotifyauth.ScopeUserReadEmail,
		),
	)

	svc := recommend.NewService(cfg.Market, logger)

	// One app client for the whole process; its token source renews the
	// client-credentials token as it expires.
	var appAPI recommend.MusicAPI
	if appClient, err := spotify.NewAppClient(context.Background(), cfg.ClientID, cfg.ClientSecret); err == nil {
		appAPI = appClient
	} else {
		logger.Warn().Err(err).Msg("anonymous endpoint disabled")
	}

	userClient := func(ctx context.Context, token *oauth2.Token) MusicClient {
		return spotify.NewUserClient(ctx, auth, token)
	}

	handlers := NewHandlers(auth, svc, appAPI, userClient, NewVibeStore(), logger, cfg.SecureCookies)

	router := chi.NewRouter()

	s := &Server{
		router:   router,
		handlers: handlers,
		log:      logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupMiddleware configures middleware for the router.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handlers.Health)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/auth/login", s.handlers.Login)
		r.Get("/auth/callback", s.handlers.Callback)
		r.Post("/auth/logout", s.handlers.Logout)

		r.Get("/spotify", s.handlers.MoodTracks)
		r.Get("/spotify/personalized", s.handlers.Personalized)

		r.Post("/vibe", s.handlers.ShareVibe)
		r.Get("/vibe/{id}", s.handlers.GetVibe)
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("starting server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.log.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.log.Info().Msg("server stopped")
	return nil
}
