package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/FlazeIGuess/unitune-worker/internal/config"
	"github.com/FlazeIGuess/unitune-worker/internal/core/kv"
	"github.com/FlazeIGuess/unitune-worker/internal/core/metadata"
	"github.com/FlazeIGuess/unitune-worker/internal/core/ratelimit"
	"github.com/FlazeIGuess/unitune-worker/internal/observability"
	"github.com/FlazeIGuess/unitune-worker/internal/render"
	"github.com/FlazeIGuess/unitune-worker/internal/server"
	"github.com/FlazeIGuess/unitune-worker/internal/server/handlers"
)

var devMode bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server with graceful shutdown support.

Ctrl+C (SIGINT) or SIGTERM triggers a graceful shutdown: in-flight requests
finish within the configured shutdown timeout before the process exits.

With --dev the server uses an in-memory key-value store instead of Redis, so
no external services are needed for local work.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		observability.InitServerLogger(cfg.Logging.Level, cfg.Environment)
		logger := observability.ServerLogger

		logger.Info("Initializing server",
			zap.String("version", versionInfo.Version),
			zap.String("host", cfg.Server.Host),
			zap.Int("port", cfg.Server.Port),
			zap.String("environment", cfg.Environment))

		var store kv.Store
		var pinger handlers.Pinger
		switch {
		case devMode || cfg.Redis.Addr == "":
			if !devMode {
				logger.Warn("No redis.addr configured; rate limiting fails open and metadata is not cached across requests")
			}
			store = kv.NewMemoryStore()
		default:
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			redisStore := kv.NewRedisStore(rdb)
			store = redisStore
			pinger = redisStore
			logger.Info("Using redis key-value store", zap.String("addr", cfg.Redis.Addr))
		}

		client := &metadata.Client{
			SongURL:     cfg.Upstream.SongURL,
			PlaylistURL: cfg.Upstream.PlaylistURL,
			UserAgent:   "unitune-server/" + versionInfo.Version + " (+https://unitune.app)",
			HTTPClient:  &http.Client{Timeout: upstreamTimeout(cfg)},
		}

		renderer, err := render.New(cfg.Site.URL)
		if err != nil {
			return err
		}

		limiter := &ratelimit.Limiter{
			Store:      store,
			MaxTokens:  cfg.RateLimit.MaxTokens,
			RefillRate: cfg.RateLimit.RefillRate,
			Window:     cfg.RateLimit.Window,
		}

		h := &handlers.Handlers{
			Resolver:  &metadata.Resolver{Store: store, Client: client, TTL: cfg.Cache.MetadataTTL},
			Client:    client,
			Renderer:  renderer,
			Pinger:    pinger,
			Donations: cfg.Donations,
			SiteURL:   cfg.Site.URL,
		}
		handlers.SetVersionInfo(versionInfo.Version, versionInfo.Commit, versionInfo.BuildDate)

		srv := server.New(cfg.Server, limiter, h)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errChan := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()

		select {
		case err := <-errChan:
			return err
		case <-ctx.Done():
		}

		shutdownTimeout := cfg.Server.ShutdownTimeout
		if shutdownTimeout == 0 {
			shutdownTimeout = 10 * time.Second
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
			return err
		}

		logger.Info("HTTP server stopped gracefully")
		_ = logger.Sync()
		return nil
	},
}

func upstreamTimeout(cfg *config.Config) time.Duration {
	if cfg.Upstream.Timeout > 0 {
		return cfg.Upstream.Timeout
	}
	return metadata.DefaultTimeout
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "0.0.0.0", "server host")
	serveCmd.Flags().IntP("port", "p", 8080, "server port")
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "use an in-memory store instead of redis")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}
