package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/find-the-imposter/internal/config"
	"github.com/aaronzipp/find-the-imposter/internal/game"
	"github.com/aaronzipp/find-the-imposter/internal/handlers"
	"github.com/aaronzipp/find-the-imposter/internal/logging"
	"github.com/aaronzipp/find-the-imposter/internal/session"
	"github.com/aaronzipp/find-the-imposter/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogPretty, cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	persister, err := newPersister(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to open store")
	}

	manager := session.NewManager(
		store.NewLobbyStore(game.GenerateRoomCode),
		game.NewEngine(),
		session.WithPersister(persister),
		session.WithLogger(logger),
	)
	defer manager.Close()

	restored, err := manager.Restore(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to restore rooms")
	}
	logger.Info().Int("rooms", restored).Str("backend", cfg.StoreBackend).Msg("store ready")

	go manager.RunCleanup(ctx, cfg.CleanupInterval, cfg.RoomIdleTTL)

	limiter := handlers.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go pruneLimiter(ctx, limiter, cfg.CleanupInterval)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewRouter(
		handlers.NewContext(manager, cfg.PublicURL, cfg.CORSOrigins),
		handlers.RouterConfig{CORSOrigins: cfg.CORSOrigins, Limiter: limiter},
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Int("subscribers", manager.Disconnect()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newPersister opens the snapshot backend named by the config
func newPersister(ctx context.Context, cfg config.Config) (store.Persister, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		return store.NewRedisPersister(ctx, cfg.RedisURL, cfg.RoomIdleTTL)
	case config.BackendPostgres:
		return store.NewPostgresPersister(cfg.DatabaseURL)
	default:
		return store.NopPersister{}, nil
	}
}

func pruneLimiter(ctx context.Context, l *handlers.RateLimiter, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Prune()
		}
	}
}
