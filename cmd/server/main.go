package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recipe-share/internal/app"
	"github.com/recipe-share/internal/config"
	"github.com/recipe-share/internal/handler"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/repository"
	"github.com/recipe-share/internal/session"
	"github.com/recipe-share/internal/worker"
	"github.com/recipe-share/pkg/keygen"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Build info (injected at build time via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	configPath := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := middleware.InitLogger(cfg.Log.Dir); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)

	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Create tables if absent
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var rdb *redis.Client
	var sessions session.Store = session.CookieStore{}
	if cfg.Redis.Enabled {
		rdb = initRedis(cfg)
		sessions = session.NewRedisStore(rdb)
		middleware.LogInfo("Session store: redis %s:%d", cfg.Redis.Host, cfg.Redis.Port)
	} else {
		middleware.LogInfo("Session store: signed cookie only")
	}

	secret := cfg.Session.Secret
	if secret == "" {
		secret, err = keygen.GenerateSecret(32)
		if err != nil {
			log.Fatalf("Failed to generate session secret: %v", err)
		}
		middleware.LogWarn("No session secret configured; generated one, sessions will not survive a restart")
	}

	router, err := app.New(app.Deps{
		DB:         db,
		Sessions:   sessions,
		Secret:     []byte(secret),
		SessionTTL: time.Duration(cfg.Session.ExpireHours) * time.Hour,
		Cookie: middleware.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.Secure,
		},
		Build: handler.BuildInfo{
			Version:   Version,
			Commit:    Commit,
			BuildTime: BuildTime,
		},
	})
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	statsWorker := worker.NewStatsWorker(
		repository.NewUserRepository(db),
		repository.NewRecipeRepository(db),
		time.Duration(cfg.Metrics.RefreshSeconds)*time.Second,
	)
	go statsWorker.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		middleware.LogInfo("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	middleware.LogInfo("Shutting down server...")
	statsWorker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			middleware.LogError("Error closing Redis connection: %v", err)
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			middleware.LogError("Error closing database: %v", err)
		}
	}

	middleware.LogInfo("Server exited properly")
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.Mode == gin.ReleaseMode {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}
	return repository.Open(cfg.Database, gormLogger)
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
