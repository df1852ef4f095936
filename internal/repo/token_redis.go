package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/noticeboard/internal/models"
)

const (
	TokenKeyPrefix = "tokens:"
	tokenSeqKey    = "tokens:seq"
)

// RedisTokenRepository stores each token record under its own key and lets
// Redis drop it once the token has expired. IDs come from a counter and may
// have gaps.
type RedisTokenRepository struct {
	rdb *redis.Client
}

func NewRedisTokenRepository(rdb *redis.Client) *RedisTokenRepository {
	return &RedisTokenRepository{rdb: rdb}
}

func (r *RedisTokenRepository) Save(ctx context.Context, t models.Token) (models.Token, error) {
	id, err := r.rdb.Incr(ctx, tokenSeqKey).Result()
	if err != nil {
		return models.Token{}, errors.Wrap(err, "next token id")
	}

	t.ID = int(id)
	t.ExpiresAt = t.ExpiresAt.UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(t)
	if err != nil {
		return models.Token{}, errors.Wrap(err, "encode token")
	}

	ttl := time.Until(t.ExpiresAt)
	if ttl < time.Second {
		ttl = time.Second
	}

	ok, err := r.rdb.SetNX(ctx, TokenKeyPrefix+t.Token, data, ttl).Result()
	if err != nil {
		return models.Token{}, errors.Wrap(err, "store token")
	}
	if !ok {
		return models.Token{}, ErrDuplicatedValueUnique
	}
	return t, nil
}
