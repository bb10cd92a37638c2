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

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	v1 "github.com/Carthago1/chat-backend/cmd/api/router/v1"
	"github.com/Carthago1/chat-backend/internal/auth"
	"github.com/Carthago1/chat-backend/internal/config"
	cacheAdapter "github.com/Carthago1/chat-backend/internal/infrastructure/cache/adapter"
	cacheport "github.com/Carthago1/chat-backend/internal/infrastructure/cache/port"
	"github.com/Carthago1/chat-backend/internal/infrastructure/database"
	queueAdapter "github.com/Carthago1/chat-backend/internal/infrastructure/queue/adapter"
	qport "github.com/Carthago1/chat-backend/internal/infrastructure/queue/port"
	"github.com/Carthago1/chat-backend/internal/infrastructure/realtime"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/application/delivery"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/application/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database on startup
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	pool, err := database.Connect(connectCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	// Redis backs both the profile cache and the task queue; the server runs
	// without either when REDIS_URL is not set.
	var cache cacheport.Cache
	var queueClient qport.Client
	if cfg.RedisURL != "" {
		rc, err := cacheAdapter.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("cache disabled")
		} else {
			cache = rc
			defer rc.Close()
		}

		qc, err := queueAdapter.NewAsynqClient(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("queued ingestion disabled")
		} else {
			queueClient = qc
			defer qc.Close()
		}
	}

	// Process-wide presence registry, shared by the socket handler and the
	// delivery dispatcher.
	registry := realtime.NewRegistry()
	dispatcher := delivery.NewDispatcher(registry, log)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// In-process worker so queued messages are handled without a separate
	// deployment and still reach the shared registry for live delivery.
	if queueClient != nil {
		worker, err := queueAdapter.NewAsynqServer(cfg.RedisURL, cfg.AsynqConcurrency, log)
		if err != nil {
			log.Warn().Err(err).Msg("queue worker disabled")
		} else {
			task.RegisterPostMessageTask(worker, pool, dispatcher, log)
			go func() {
				if err := worker.Run(ctx); err != nil {
					log.Error().Err(err).Msg("queue worker stopped")
				}
			}()
		}
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	v1.RegisterRoutes(r, v1.Deps{
		Pool:        pool,
		Cache:       cache,
		Queue:       queueClient,
		Registry:    registry,
		Dispatcher:  dispatcher,
		Issuer:      issuer,
		AllowOrigin: cfg.AllowOrigin,
		Log:         log,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	for _, s := range registry.Clear() {
		if conn, ok := s.(*realtime.Connection); ok {
			conn.Close(websocket.CloseGoingAway, "server shutdown")
		}
	}
}
