package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/structura/backend/internal/config"
	"github.com/structura/backend/internal/handler"
	"github.com/structura/backend/internal/logging"
	"github.com/structura/backend/internal/repository"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

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
	projectRepo := repository.NewMongoProjectRepository(db)
	serviceRepo := repository.NewMongoServiceRepository(db)
	journeyRepo := repository.NewMongoJourneyRepository(db)
	contactRepo := repository.NewMongoContactRepository(db)
	newsletterRepo := repository.NewMongoNewsletterRepository(db)

	routes := handler.Routes(handler.Deps{
		Cfg:        cfg,
		Client:     client,
		Auth:       service.NewAuthService(adminRepo, []byte(cfg.JWTSecret), cfg.JWTExpiry, cfg.BcryptCost),
		Projects:   service.NewProjectService(projectRepo),
		Catalog:    service.NewCatalogService(serviceRepo),
		Journey:    service.NewJourneyService(journeyRepo),
		Contacts:   service.NewContactService(contactRepo),
		Newsletter: service.NewNewsletterService(newsletterRepo),
		Admins:     service.NewAdminService(adminRepo, cfg.BcryptCost),
		Store:      storage.NewLocalStorage(cfg.UploadDir, cfg.UploadURLPrefix),
	})

	server := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      routes,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
