// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"idverify/pkg/platform/audit"
	auditkafka "idverify/pkg/platform/audit/publishers/kafka"
	auditmem "idverify/pkg/platform/audit/store/memory"
	auditpg "idverify/pkg/platform/audit/store/postgres"
	authmw "idverify/pkg/platform/middleware/auth"
	"idverify/pkg/platform/middleware/ratelimit"
	"idverify/pkg/platform/middleware/requestid"
	"idverify/pkg/platform/middleware/requesttime"

	"idverify/internal/auth"
	authhandler "idverify/internal/auth/handler"
	extracthandler "idverify/internal/extraction/handler"
	"idverify/internal/platform/config"
	"idverify/internal/platform/httpserver"
	"idverify/internal/platform/logger"
	platformredis "idverify/internal/platform/redis"
	"idverify/internal/registry"
	registryhandler "idverify/internal/registry/handler"
	"idverify/internal/token"
	"idverify/internal/verification"
	verifhandler "idverify/internal/verification/handler"
	"idverify/internal/verification/metrics"
	verifmem "idverify/internal/verification/store/memory"
	verifpg "idverify/internal/verification/store/postgres"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	// Storage: Postgres when configured, in-memory otherwise.
	var (
		runStore   verification.RunStore
		auditStore audit.Store
	)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		if err := db.PingContext(ctx); err != nil {
			log.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		runStore = verifpg.New(db)
		auditStore = auditpg.New(db)
	} else {
		runStore = verifmem.NewInMemoryStore()
		auditStore = auditmem.NewInMemoryStore()
		log.Info("no database configured, using in-memory stores")
	}

	// Audit events fan out to Kafka when brokers are configured. The broker
	// sink is drained by a worker so produce latency never touches requests.
	if len(cfg.KafkaBrokers) > 0 {
		broker, err := auditkafka.New(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
		if err != nil {
			log.Error("failed to connect audit broker", "error", err)
			os.Exit(1)
		}
		defer broker.Close()

		inbox := make(chan audit.Event, 256)
		workerCtx, stopWorker := context.WithCancel(ctx)
		defer stopWorker()
		go func() {
			_ = audit.NewWorker(broker, inbox, log).Run(workerCtx)
		}()
		auditStore = audit.Fanout(auditStore, audit.Enqueue(inbox))
	}
	auditor := audit.NewPublisher(auditStore)

	// Tokens and the seed API client.
	tokens := token.NewService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	clientStore := auth.NewInMemoryClientStore()
	authService := auth.NewService(clientStore, tokens, auditor, log)
	if _, err := authService.Provision(ctx, cfg.SeedClientID, "seed client", cfg.SeedClientSecret); err != nil {
		log.Error("failed to provision seed client", "error", err)
		os.Exit(1)
	}

	// Verification pipeline.
	verifService := verification.NewService(
		verification.MustEngine(),
		runStore,
		auditor,
		metrics.New(),
		log,
	)

	// Registry: real backend when configured, deterministic stub otherwise.
	var registryClient registry.Client
	if cfg.RegistryBaseURL != "" {
		registryClient = registry.NewHTTPClient(cfg.RegistryBaseURL, cfg.RegistryAPIKey, 0)
	} else {
		registryClient = registry.NewStubClient()
		log.Info("no registry configured, using stub client")
	}
	registryService := registry.NewService(registryClient, verifService, auditor, log)

	// Optional Redis-backed rate limiting.
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect redis", "error", err)
		os.Exit(1)
	}
	var limiter *ratelimit.Limiter
	if redisClient != nil {
		defer redisClient.Close()
		limiter = ratelimit.NewLimiter(redisClient.Client, cfg.RateLimitPerMin, cfg.RateLimitWindow, log)
	}

	router := chi.NewRouter()
	router.Use(requestid.Middleware)
	router.Use(requesttime.Middleware)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", promhttp.Handler())

	authhandler.New(authService, log).Register(router)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authmw.RequireAuth(token.NewMiddlewareAdapter(tokens), log))
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		verifhandler.New(verifService, log).Register(r)
		extracthandler.New(verifService, auditor, log).Register(r)
		registryhandler.New(registryService, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting idverify server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
