package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Fixed keys the remembered login is stored under
const (
	KeyEmail    = "user_email"
	KeyPassword = "user_password"
)

// ErrNoCredentials is returned when nothing has been remembered
var ErrNoCredentials = errors.New("no remembered credentials")

const schema = `
	CREATE TABLE IF NOT EXISTS secrets (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)
`

// CredentialRepository persists the "remember me" login in a local SQLite file
type CredentialRepository struct {
	db *sql.DB
}

// OpenCredentialRepository opens (and creates if needed) the store at path.
// Use ":memory:" for a throwaway store.
func OpenCredentialRepository(ctx context.Context, path string) (*CredentialRepository, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create credentials directory: %w", err)
		}
		dsn += "?_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open credentials store: %w", err)
	}
	// a :memory: database lives only as long as its single connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate credentials store: %w", err)
	}

	return &CredentialRepository{db: db}, nil
}

// Close releases the underlying database
func (r *CredentialRepository) Close() error {
	return r.db.Close()
}

// Save remembers email and password, replacing anything stored before
func (r *CredentialRepository) Save(ctx context.Context, email, password string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO secrets (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	for key, value := range map[string]string{KeyEmail: email, KeyPassword: password} {
		if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit credentials: %w", err)
	}
	return nil
}

// Load returns the remembered email and password
func (r *CredentialRepository) Load(ctx context.Context) (string, string, error) {
	email, err := r.get(ctx, KeyEmail)
	if err != nil {
		return "", "", err
	}
	password, err := r.get(ctx, KeyPassword)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

func (r *CredentialRepository) get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM secrets WHERE key = ?`
	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoCredentials
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

// Clear forgets the remembered login
func (r *CredentialRepository) Clear(ctx context.Context) error {
	query := `DELETE FROM secrets WHERE key IN (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, KeyEmail, KeyPassword); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
