package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/noticeboard/internal/models"
)

type InMemoryTokenRepository struct {
	mu     sync.Mutex
	tokens []models.Token
}

func NewInMemoryTokenRepository() *InMemoryTokenRepository {
	return &InMemoryTokenRepository{
		tokens: []models.Token{},
	}
}

func (r *InMemoryTokenRepository) Save(_ context.Context, t models.Token) (models.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tokens {
		if existing.Token == t.Token {
			return models.Token{}, ErrDuplicatedValueUnique
		}
	}

	t.ID = len(r.tokens) + 1
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	r.tokens = append(r.tokens, t)
	return t, nil
}

// Tokens returns a snapshot of the log.
func (r *InMemoryTokenRepository) Tokens() []models.Token {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Token, len(r.tokens))
	copy(out, r.tokens)
	return out
}
