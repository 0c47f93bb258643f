package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roster/config"
	"roster/models"
	"roster/services"
	"roster/store"
)

// SeedAdminUser inserts the bootstrap account on first startup. The admin
// page is gated on this row's id, so it must be created before any visitor
// registers. Skipped entirely when ADMIN_PASSWORD is unset.
func SeedAdminUser(ctx context.Context, users store.UserStore, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	_, err := users.GetByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		// Admin already exists, skip seeding
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}

	hash, err := services.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		FullName:     "Administrator",
		Age:          0,
		Location:     "",
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Email:        cfg.AdminEmail,
		DateAdded:    time.Now(),
	}
	if _, err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}
