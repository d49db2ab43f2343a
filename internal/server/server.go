// Package server assembles the record store, the managers and the HTTP
// router into a runnable service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/contentfactory/internal/config"
	"github.com/iudanet/contentfactory/internal/server/account"
	"github.com/iudanet/contentfactory/internal/server/credential"
	"github.com/iudanet/contentfactory/internal/server/handlers"
	"github.com/iudanet/contentfactory/internal/server/middleware"
	"github.com/iudanet/contentfactory/internal/server/session"
	"github.com/iudanet/contentfactory/internal/server/storage"
	"github.com/iudanet/contentfactory/internal/server/storage/backend"
)

// RouterDeps holds what the HTTP layer is built from
type RouterDeps struct {
	Logger      *slog.Logger
	Accounts    handlers.Accounts
	Credentials handlers.Credentials
	Limiter     *middleware.RateLimiter
	Health      *handlers.HealthHandler
	Cookie      handlers.CookieConfig
}

// NewRouter builds the /api/v1 routes.
func NewRouter(d RouterDeps) *chi.Mux {
	authHandler := handlers.NewAuthHandler(d.Logger, d.Accounts, d.Cookie)
	userHandler := handlers.NewUserHandler(d.Logger, d.Accounts)
	configHandler := handlers.NewConfigHandler(d.Logger, d.Credentials)
	requireAuth := middleware.AuthMiddleware(d.Logger, d.Accounts)

	router := chi.NewRouter()
	router.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.LoggingMiddleware(d.Logger, "/api/v1/health"),
		middleware.RecoveryMiddleware(d.Logger),
	)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", d.Health.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if d.Limiter != nil {
					r.Use(d.Limiter.Middleware)
				}
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
			})
			r.Post("/logout", authHandler.Logout)
			r.With(requireAuth).Get("/session", authHandler.Session)
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(requireAuth)
			r.Patch("/profile", userHandler.UpdateProfile)
			r.Put("/password", userHandler.ChangePassword)

			r.Get("/configs", configHandler.List)
			r.Put("/configs/{provider}", configHandler.Save)
			r.Delete("/configs/{provider}", configHandler.Delete)
			r.Post("/configs/{provider}/test", configHandler.RecordTest)
		})
	})

	return router
}

// Server wraps the HTTP server, the store and the session cleanup loop.
type Server struct {
	httpServer *http.Server
	store      storage.CredentialStore
	sessions   *session.Manager
	limiter    *middleware.RateLimiter
	logger     *slog.Logger
	cfg        config.Config
	kind       backend.Kind
}

// New opens the configured backend and wires the service.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, version string) (*Server, error) {
	store, kind, err := backend.Open(ctx, backend.Options{
		Kind:       cfg.Backend,
		DataDir:    cfg.DataDir,
		SQLitePath: cfg.SQLitePath,
		Serverless: cfg.Serverless,
	}, logger)
	if err != nil {
		return nil, err
	}

	sessions := session.NewManager(store, logger, session.WithTTL(cfg.SessionTTL))
	accounts := account.NewService(store, sessions, logger, nil)
	credentials := credential.NewManager(store, logger, nil)
	limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow, logger)

	health := handlers.NewHealthHandler(logger, version, string(kind), func(ctx context.Context) error {
		_, err := store.ListUsers(ctx)
		return err
	})

	router := NewRouter(RouterDeps{
		Logger:      logger,
		Accounts:    accounts,
		Credentials: credentials,
		Limiter:     limiter,
		Health:      health,
		Cookie:      handlers.CookieConfig{MaxAge: sessions.TTL(), Secure: cfg.SecureCookies},
	})

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		store:      store,
		sessions:   sessions,
		limiter:    limiter,
		logger:     logger,
		cfg:        cfg,
		kind:       kind,
	}, nil
}

// Backend reports the selected storage backend.
func (s *Server) Backend() backend.Kind {
	return s.kind
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	// Удаляем просроченные сессии сразу и затем по таймеру
	if _, err := s.sessions.Sweep(ctx); err != nil {
		s.logger.WarnContext(ctx, "initial session sweep failed", "error", err)
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sessions.Run(sweepCtx, s.cfg.CleanupInterval)

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "server listening",
			"addr", s.cfg.ListenAddr,
			"storage", s.kind,
		)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.close()
	if err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func (s *Server) close() {
	s.limiter.Stop()
	if err := s.store.Close(); err != nil {
		s.logger.Error("failed to close storage", "error", err)
	}
}
