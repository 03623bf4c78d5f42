package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openMemory(t *testing.T) *CredentialRepository {
	t.Helper()
	repo, err := OpenCredentialRepository(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("OpenCredentialRepository returned error: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestLoadEmpty(t *testing.T) {
	repo := openMemory(t)

	_, _, err := repo.Load(context.Background())
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("expected ErrNoCredentials, got %v", err)
	}
}

func TestSaveOverwriteClear(t *testing.T) {
	repo := openMemory(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "first@example.com", "one"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := repo.Save(ctx, "second@example.com", "two"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	email, password, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if email != "second@example.com" || password != "two" {
		t.Errorf("Load = %q, %q; want the latest save", email, password)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, _, err := repo.Load(ctx); !errors.Is(err, ErrNoCredentials) {
		t.Errorf("expected ErrNoCredentials after Clear, got %v", err)
	}

	// clearing twice is fine
	if err := repo.Clear(ctx); err != nil {
		t.Errorf("second Clear returned error: %v", err)
	}
}

func TestPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.db")
	ctx := context.Background()

	repo, err := OpenCredentialRepository(ctx, path)
	if err != nil {
		t.Fatalf("OpenCredentialRepository returned error: %v", err)
	}
	if err := repo.Save(ctx, "keep@example.com", "pw"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	repo.Close()

	reopened, err := OpenCredentialRepository(ctx, path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer reopened.Close()

	email, password, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if email != "keep@example.com" || password != "pw" {
		t.Errorf("Load = %q, %q", email, password)
	}
}
