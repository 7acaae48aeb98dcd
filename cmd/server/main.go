package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"build-promotion-service/internal/adapters/primary/http/handlers"
	"build-promotion-service/internal/adapters/primary/http/middleware"
	"build-promotion-service/internal/adapters/secondary/fsstore"
	"build-promotion-service/internal/adapters/secondary/healthprobe"
	"build-promotion-service/internal/adapters/secondary/kuberestart"
	"build-promotion-service/internal/adapters/secondary/postgres"
	"build-promotion-service/internal/adapters/secondary/supervisor"
	"build-promotion-service/internal/config"
	output "build-promotion-service/internal/core/ports/output"
	"build-promotion-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Secondary Adapters (Output Ports)
	buildStore := fsstore.NewBuildStore(cfg.Builds.Dir)
	activePointer := fsstore.NewActivePointer(filepath.Join(cfg.Builds.Dir, "active"))
	installer := fsstore.NewBinaryInstaller(cfg.Builds.Dir, cfg.Builds.BinaryPath)
	healthClient := healthprobe.NewClient(&cfg.Health)

	// Process supervisor backend
	var procSupervisor output.ProcessSupervisor
	switch cfg.Supervisor.Backend {
	case config.SupervisorBackendKubernetes:
		client, err := kuberestart.NewClient(&cfg.Kubernetes, cfg.Supervisor.RestartTimeout)
		if err != nil {
			log.Fatalf("kubernetes supervisor init failed: %v", err)
		}
		procSupervisor = client
		log.Info("kubernetes restart backend initialized")
	default:
		procSupervisor = supervisor.NewClient(&cfg.Supervisor)
		log.Info("supervisord restart backend initialized")
	}

	// Waitlist storage (Postgres when enabled, append-only file otherwise)
	var waitlistRepo output.WaitlistRepository
	var pool *pgxpool.Pool
	if cfg.Database.Enabled {
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			log.Fatalf("parse db config: %v", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			log.Fatalf("create db pool: %v", err)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("ping db: %v", err)
		}
		waitlistRepo = postgres.NewWaitlistRepository(pool)
		log.Info("database connection established")
	} else {
		waitlistRepo = fsstore.NewWaitlistFile(cfg.Waitlist.File)
		log.Info("file-backed waitlist storage initialized")
	}

	// Core Services
	buildSvc := services.NewBuildService(buildStore, activePointer, cfg.Builds.RetentionKeep)
	promotionSvc := services.NewPromotionService(buildStore, installer, activePointer, procSupervisor, healthClient, services.PromotionConfig{
		ServiceName:  cfg.Builds.ServiceName,
		PollAttempts: cfg.Promotion.PollAttempts,
		PollInterval: cfg.Promotion.PollInterval,
		SettleDelay:  cfg.Promotion.SettleDelay,
	})
	statusSvc := services.NewStatusService(buildStore, activePointer, healthClient, procSupervisor)
	waitlistSvc := services.NewWaitlistService(waitlistRepo)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(buildSvc, promotionSvc, statusSvc, waitlistSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.CORS(), gin.Recovery())

	api := router.Group("/admin/api")
	h.RegisterRoutes(api)

	// Liveness of the sidecar itself
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
