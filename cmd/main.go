// @title Quora Backend API
// @version 1.0
// @description Question and answer API with user accounts, sessions and admin moderation

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "QUORA_BACK-END/docs" // This is required for swagger
	"QUORA_BACK-END/internal/auth"
	"QUORA_BACK-END/internal/config"
	"QUORA_BACK-END/internal/handlers"
	"QUORA_BACK-END/internal/logging"
	"QUORA_BACK-END/internal/middleware"
	"QUORA_BACK-END/internal/repository"
	"QUORA_BACK-END/internal/routes"
	"QUORA_BACK-END/internal/services"
	"QUORA_BACK-END/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "quora-backend: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.Log.Format, cfg.Log.Level)
	ctx := context.Background()
	for _, w := range cfg.Warnings() {
		logger.Warn(ctx, "configuration", "warning", w)
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := services.New(services.Deps{
		Store:     store,
		Sessions:  session.NewManager(store.AuthTokens(), auth.NewTokenGenerator(cfg.Session.Secret), cfg.Session.TTL),
		Passwords: auth.NewPasswordProvider(),
		Logger:    logger,
	})

	if cfg.IsAdminBootstrapConfigured() {
		if _, _, err := svc.Users.EnsureAdmin(ctx, cfg.Admin.UserName, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
	}

	// --- HTTP Handlers ---
	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(svc.Users, logger),
		Profile:  handlers.NewProfileHandler(svc.Users, logger),
		Question: handlers.NewQuestionHandler(svc.Questions, logger),
		Answer:   handlers.NewAnswerHandler(svc.Answers, logger),
		Admin:    handlers.NewAdminHandler(svc.Admin, logger),
		Health:   handlers.NewHealthHandler(store),
	}
	if cfg.IsGoogleOAuthConfigured() {
		h.Google = handlers.NewGoogleAuthHandler(svc.Users, cfg.GoogleOAuth, logger)
	}

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, h)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(middleware.RequestLogger(logger, mux)),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// --- HTTP Server + Graceful Shutdown ---
	serverErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "HTTP server listening", "addr", srv.Addr, "db_driver", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		logger.Info(ctx, "shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info(ctx, "server stopped")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger logging.Logger) (repository.Store, error) {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Info(ctx, "using in-memory store")
		return repository.NewMemoryStore(), nil
	}

	pool, err := repository.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Database.RunMigrations {
		if err := repository.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info(ctx, "database migrations applied")
	}
	return repository.NewPostgresStore(pool), nil
}
