package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"roster/config"
	"roster/database"
	"roster/handlers"
	"roster/logger"
	"roster/services"
	"roster/store"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Environment, cfg.Debug)

	slog.Info("Initializing roster components")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	users := store.NewPostgresStore(db)

	if err := database.SeedAdminUser(context.Background(), users, cfg); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	sessions := services.NewSessionManager(cfg.SessionSecret, cfg.Environment == "production")
	h := handlers.New(cfg, users, sessions)

	addr := ":" + cfg.ServerPort
	slog.Info("roster is starting", "addr", addr, "env", cfg.Environment, "debug", cfg.Debug)

	if err := http.ListenAndServe(addr, h.Routes()); err != nil {
		log.Fatalf("FATAL: Server failed to start: %v", err)
	}
}
