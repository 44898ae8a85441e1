// Command seed provisions the admin account and the default category
// set. The admin is an ordinary user row with role=admin; nothing in
// the API layer special-cases it.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/config"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/database"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/logger"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/repo"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
	"github.com/Mamatov-cmd/GarajHub---sayt/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	store := mustOpenStore(cfg, log)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := service.New(store, log, nil)
	n, err := svc.SeedCategories(ctx)
	if err != nil {
		log.Fatal("seed categories", zap.Error(err))
	}
	log.Info("categories seeded", zap.Int("created", n))

	if cfg.Seed.AdminEmail == "" {
		log.Info("no admin email configured, skipping admin provisioning")
		return
	}
	if err := seedAdmin(ctx, store, cfg.Seed); err != nil {
		log.Fatal("seed admin", zap.Error(err))
	}
	log.Info("admin provisioned", zap.String("email", cfg.Seed.AdminEmail))
}

func seedAdmin(ctx context.Context, store domain.Store, s config.Seed) error {
	_, err := store.Users().ByEmail(ctx, s.AdminEmail)
	if err == nil {
		return nil // already there
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return store.Users().Create(ctx, &domain.User{
		ID:        utils.NewID(),
		Email:     s.AdminEmail,
		Password:  s.AdminPassword,
		Name:      s.AdminName,
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now(),
	})
}

func mustOpenStore(cfg *config.Config, l *zap.Logger) domain.Store {
	if cfg.DB.Driver == "memory" {
		l.Warn("seeding a memory store has no effect beyond this process")
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
	if err := store.Migrate(); err != nil {
		l.Fatal("automigrate failed", zap.Error(err))
	}
	return store
}
