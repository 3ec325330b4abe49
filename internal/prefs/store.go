// Package prefs persists the dashboard's client-side preferences. The only
// value the original application keeps on the client is the light/dark
// theme flag; it is stored in a small SQLite settings table with an
// explicit load-on-start, persist-on-change lifecycle instead of ambient
// browser storage.
package prefs

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/andrealuzzi/tradingweb/internal/apperrors"
	"github.com/andrealuzzi/tradingweb/internal/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

const themeKey = "theme"

// DefaultTheme is returned before any preference has been saved.
const DefaultTheme = "light"

// Store is a key/value settings store backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the settings database at path and
// applies pending migrations.
func Open(path string) (*Store, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run settings migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the settings database is reachable.
func (s *Store) Ping() error {
	return database.HealthCheck(s.db)
}

// Get returns the stored value for key, or ok=false when the key has never
// been set.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", apperrors.ErrFailedToLoadSettings, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToSaveSettings, err)
	}
	return nil
}

// Theme returns the persisted theme preference, defaulting to light.
func (s *Store) Theme(ctx context.Context) (string, error) {
	theme, ok, err := s.Get(ctx, themeKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme persists the theme preference. Only "light" and "dark" are
// accepted.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return apperrors.ErrInvalidTheme
	}
	return s.Set(ctx, themeKey, theme)
}
