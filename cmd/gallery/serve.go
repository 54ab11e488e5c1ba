package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acmgallery/gallery/internal/catalog"
	"github.com/acmgallery/gallery/internal/config"
	"github.com/acmgallery/gallery/internal/server"
	"github.com/acmgallery/gallery/pkg/logging"
	"github.com/acmgallery/gallery/pkg/session"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const sweepInterval = time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the gallery over HTTP",
	Long: `Serves the gallery page. Configuration comes from the environment:
PORT, REDIS_URL, SESSION_TTL, LOG_LEVEL, LOG_PRETTY, GALLERY_CATALOG,
ITEMS_PER_PAGE and SHUTDOWN_TIMEOUT.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})
	logger := logging.NewLogger("main")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	photos, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	store, closeStore, err := newStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	srv, err := server.New(server.Options{
		Catalog:    photos,
		PageSize:   cfg.ItemsPerPage,
		Store:      store,
		SessionTTL: cfg.SessionTTL,
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Int("carousel_items", len(photos.Carousel)).
			Int("items_per_page", cfg.ItemsPerPage).
			Msg("Starting gallery server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down gallery server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newStore connects to Redis when REDIS_URL is set and falls back to an
// in-memory store swept in the background otherwise.
func newStore(ctx context.Context, cfg config.Config, logger zerolog.Logger) (session.Store, func(), error) {
	if cfg.RedisURL == "" {
		store := session.NewMemoryStore()
		go sweep(ctx, store, sweepInterval)
		logger.Info().Str("store", "memory").Msg("Session state kept in memory")
		return store, func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		redisClient.Close()
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisURL, err)
	}
	logger.Info().Str("store", "redis").Str("addr", cfg.RedisURL).Msg("Connected to Redis")

	return session.NewRedisStore(redisClient), func() {
		if err := redisClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}, nil
}

// sweep drops expired in-memory sessions until ctx is done.
func sweep(ctx context.Context, store *session.MemoryStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.Sweep(); removed > 0 {
				log.Debug().
					Int("removed", removed).
					Int("remaining", store.Len()).
					Msg("Swept expired sessions")
			}
		}
	}
}
