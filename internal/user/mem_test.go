package user

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndLookup(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()

	u, err := repo.Create(ctx, "sarah", "s3cret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.PasswordHash == "" || u.PasswordHash == "s3cret" {
		t.Fatal("password not hashed")
	}
	if !CheckPassword(u.PasswordHash, "s3cret") {
		t.Fatal("hash does not verify")
	}
	if CheckPassword(u.PasswordHash, "wrong") {
		t.Fatal("wrong password verified")
	}

	byName, err := repo.GetByUsername(ctx, "sarah")
	if err != nil || byName.ID != u.ID {
		t.Fatalf("by username: %v %+v", err, byName)
	}
	byID, err := repo.GetByID(ctx, u.ID)
	if err != nil || byID.Username != "sarah" {
		t.Fatalf("by id: %v %+v", err, byID)
	}
}

func TestCreateDuplicateUsername(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "sarah", "one"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, "sarah", "two"); !errors.Is(err, ErrAlreadyExist) {
		t.Fatalf("expected ErrAlreadyExist, got %v", err)
	}
}

func TestLookupMiss(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
