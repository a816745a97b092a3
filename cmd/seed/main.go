package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/structura/backend/internal/config"
	"github.com/structura/backend/internal/logging"
	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
	"github.com/structura/backend/internal/service"
)

// Bootstraps the first super-admin account. Does nothing when any
// administrator already exists, so it is safe to run on every deploy.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	username := os.Getenv("SEED_ADMIN_USERNAME")
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || email == "" || password == "" {
		logging.Fatal("SEED_ADMIN_USERNAME, SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := repository.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logging.Fatal("database connection failed", "error", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		logging.Fatal("index creation failed", "error", err)
	}

	adminRepo := repository.NewMongoAdminRepository(db)
	count, err := adminRepo.Count(ctx)
	if err != nil {
		logging.Fatal("admin count failed", "error", err)
	}
	if count > 0 {
		slog.Info("admins already exist, nothing to seed", "count", count)
		return
	}

	admins := service.NewAdminService(adminRepo, cfg.BcryptCost)
	admin := &model.Admin{
		Username: username,
		Email:    model.NormalizeEmail(email),
		Role:     model.RoleSuperAdmin,
	}
	if err := admins.Create(ctx, admin, password); err != nil {
		logging.Fatal("seeding super-admin failed", "error", err)
	}

	slog.Info("super-admin created", "username", admin.Username, "id", admin.ID.Hex())
}
