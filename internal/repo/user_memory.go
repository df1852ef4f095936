package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/noticeboard/internal/models"
)

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: []models.User{},
	}
}

func (r *InMemoryUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}

	return nil, nil
}

func (r *InMemoryUserRepository) CreateUser(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == u.Username || user.Email == u.Email {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}

	u.ID = len(r.users) + 1
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.users = append(r.users, u)
	return u, nil
}

// All returns a snapshot of every stored user.
func (r *InMemoryUserRepository) All() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}
