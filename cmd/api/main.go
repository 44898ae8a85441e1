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

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/auth"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/cache"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/config"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/database"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/logger"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/server"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/mentor"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/repo"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/handler"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	store := mustOpenStore(cfg, log)
	log.Info("store ready", zap.String("driver", cfg.DB.Driver))

	var redisCache *cache.Cache
	if cfg.Redis.Enabled {
		redisCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	mentorClient := mentor.New(mentor.Options{
		BaseURL: cfg.Mentor.BaseURL,
		APIKey:  cfg.Mentor.APIKey,
		Model:   cfg.Mentor.Model,
		Timeout: time.Duration(cfg.Mentor.TimeoutSec) * time.Second,
	}, log)

	svc := service.New(store, log, redisCache)
	h := handler.New(svc, jwter, mentorClient, log)
	r := router.New(h, jwter, log)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+"/api"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

// mustOpenStore selects the entity-store backend once at boot:
// "memory" for local runs and tests, gorm over postgres/mysql
// otherwise.
func mustOpenStore(cfg *config.Config, l *zap.Logger) domain.Store {
	if cfg.DB.Driver == "memory" {
		return repo.NewMemoryStore()
	}
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	store := repo.NewGormStore(db)
	if cfg.DB.AutoMigrate {
		if err := store.Migrate(); err != nil {
			l.Fatal("automigrate failed", zap.Error(err))
		}
		l.Info("automigrate done")
	}
	return store
}
