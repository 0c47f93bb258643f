package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"roster/models"
)

const uniqueViolationCode = "23505"

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, user *models.User) (int64, error) {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (full_name, age, location, username, password_hash, email, date_added)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		user.FullName, user.Age, user.Location, user.Username, user.PasswordHash, user.Email, user.DateAdded,
	).Scan(&user.ID)
	if err != nil {
		if taken := mapUniqueViolation(err); taken != nil {
			return 0, taken
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return user.ID, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.scanUser(ctx,
		"SELECT id, full_name, age, location, username, password_hash, email, date_added FROM users WHERE id = $1", id)
}

func (s *PostgresStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.scanUser(ctx,
		"SELECT id, full_name, age, location, username, password_hash, email, date_added FROM users WHERE username = $1", username)
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanUser(ctx,
		"SELECT id, full_name, age, location, username, password_hash, email, date_added FROM users WHERE email = $1", email)
}

func (s *PostgresStore) scanUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.FullName,
		&user.Age,
		&user.Location,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.DateAdded,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

// Update overwrites the editable profile fields. PasswordHash and DateAdded
// are never touched here.
func (s *PostgresStore) Update(ctx context.Context, user *models.User) error {
	query, args, err := sq.Update("users").
		Set("full_name", user.FullName).
		Set("age", user.Age).
		Set("location", user.Location).
		Set("username", user.Username).
		Set("email", user.Email).
		Where(sq.Eq{"id": user.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if taken := mapUniqueViolation(err); taken != nil {
			return taken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, full_name, age, location, username, password_hash, email, date_added FROM users ORDER BY date_added, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.FullName,
			&user.Age,
			&user.Location,
			&user.Username,
			&user.PasswordHash,
			&user.Email,
			&user.DateAdded,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}
	return users, nil
}

// mapUniqueViolation translates a constraint violation into the matching
// sentinel error, or returns nil for anything else.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return ErrUsernameTaken
	case "users_email_key":
		return ErrEmailTaken
	}
	return fmt.Errorf("unique violation: %w", err)
}
