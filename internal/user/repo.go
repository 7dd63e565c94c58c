// Package user stores customer accounts behind the register and login
// endpoints. Checkout itself is guest-only and does not require an account.
package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrAlreadyExist = errors.New("user already exists")
)

type Repository interface {
	GetByID(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Create hashes the password before storing; a duplicate username
	// yields ErrAlreadyExist.
	Create(ctx context.Context, username, password string) (*User, error)
}
