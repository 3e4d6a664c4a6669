package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fittrack/fittrack-go/internal/config"
	"github.com/fittrack/fittrack-go/internal/crypto"
	"github.com/fittrack/fittrack-go/internal/handler"
	"github.com/fittrack/fittrack-go/internal/repository"
	"github.com/fittrack/fittrack-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	var (
		users    service.UserStore
		stats    service.HealthStatsStore
		workouts service.WorkoutStore
		pinger   handler.Pinger
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	cancel()
	if err != nil {
		if cfg.IsProduction() {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		slog.Warn("database connection failed, using in-memory store", "error", err)

		store := repository.NewMemoryStore()
		users, stats, workouts, pinger = store.Users(), store.HealthStats(), store.Workouts(), store
	} else {
		defer db.Close()

		if cfg.AutoMigrate {
			if err := repository.Migrate(context.Background(), db); err != nil {
				slog.Error("migration failed", "error", err)
				os.Exit(1)
			}
		}

		users = repository.NewUserRepository(db)
		stats = repository.NewHealthStatsRepository(db)
		workouts = repository.NewWorkoutRepository(db)
		pinger = db
	}

	hasher := crypto.NewPasswordHasher(cfg.HashMemoryKB, cfg.HashIterations)
	tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	router := handler.NewRouter(tokens, handler.Services{
		Auth:     service.NewAuthService(users, hasher, tokens),
		Profile:  service.NewProfileService(users),
		Stats:    service.NewStatsService(stats, users),
		Workouts: service.NewWorkoutService(workouts, users),
	}, pinger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
