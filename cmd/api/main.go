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

	"gaps-gateway/config"
	"gaps-gateway/docs/api"
	httpHandler "gaps-gateway/internal/adapter/http/handler"
	"gaps-gateway/internal/adapter/http/middleware"
	pgStorage "gaps-gateway/internal/adapter/storage/postgres"
	redisStorage "gaps-gateway/internal/adapter/storage/redis"
	"gaps-gateway/internal/core/ports"
	"gaps-gateway/internal/service"
	"gaps-gateway/pkg/logger"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config file (default: ./config.yaml or ./config/config.yaml)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting GAPS relay")

	ctx := context.Background()

	var (
		healthCheckers []ports.HealthChecker
		auditRepo      ports.AuditRepository
		auditReader    ports.AuditReader
		rateLimitStore *redisStorage.RateLimitStore
	)

	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare relay audit schema")
		}
		repo := pgStorage.NewRelayAuditRepo(pool)
		auditRepo, auditReader = repo, repo
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	var tokenSvc ports.TokenService
	if cfg.Auth.Secret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.Auth.Secret, cfg.Auth.Expiry, cfg.Auth.Issuer)
	} else {
		log.Warn().Msg("auth.secret not set, relay accepts unauthenticated callers")
	}

	transport := service.NewTransportRouter(
		cfg.Gateway,
		service.NewGatewayHTTPClient(cfg.Gateway.Timeout),
		logger.Component(log, "transport"),
	)
	relaySvc := service.NewRelayService(transport, logger.Component(log, "relay"))
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	httpHandler.SetSwaggerSpec(api.OpenAPI)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RelaySvc:       relaySvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		RateLimit:      middleware.RateLimitRule{Limit: cfg.RateLimit.Limit, Window: cfg.RateLimit.Window},
		AuditSvc:       auditSvc,
		AuditReader:    auditReader,
		HealthCheckers: healthCheckers,
		AllowOrigin:    cfg.Proxy.AllowOrigin,
		MaxBodyBytes:   cfg.Proxy.MaxBodyBytes,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
