package user

import (
	"context"
	"sync"
	"time"
)

type MemRepo struct {
	mu     sync.RWMutex
	users  []User
	nextID int
}

func NewMemRepo() *MemRepo { return &MemRepo{nextID: 1} }

func (r *MemRepo) GetByID(ctx context.Context, id int) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			cp := r.users[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Username == username {
			cp := r.users[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) Create(ctx context.Context, username, password string) (*User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return nil, ErrAlreadyExist
		}
	}
	u := User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.users = append(r.users, u)
	return &u, nil
}
