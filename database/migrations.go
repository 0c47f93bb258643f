package database

import (
	"database/sql"
	"fmt"
)

// RunMigrations creates the users table. Username and email carry UNIQUE
// constraints so duplicate registrations are rejected by the database even
// when two requests race past the handler-level checks.
func RunMigrations(db *sql.DB) error {
	migrationSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		full_name VARCHAR(200) NOT NULL,
		age INTEGER NOT NULL,
		location VARCHAR(255) NOT NULL,
		username VARCHAR(15) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		date_added TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(migrationSQL); err != nil {
		return fmt.Errorf("failed to run users migration: %w", err)
	}

	return nil
}
