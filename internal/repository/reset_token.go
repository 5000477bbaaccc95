package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/innovators-conclave/backend/internal/domain"
)

type resetTokenRepository struct {
	cache redis.UniversalClient
}

func newResetTokenRepository(cache redis.UniversalClient) *resetTokenRepository {
	return &resetTokenRepository{
		cache: cache,
	}
}

func resetKey(token string) string {
	return "reset:token:" + token
}

func (r *resetTokenRepository) Store(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	const op = "repository.resetToken.Store"

	if err := r.cache.Set(ctx, resetKey(token), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("%s: store token failed: %w", op, err)
	}

	return nil
}

// Consume atomically reads and destroys the token, so an emailed reset link
// works exactly once.
func (r *resetTokenRepository) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	const op = "repository.resetToken.Consume"

	val, err := r.cache.GetDel(ctx, resetKey(token)).Result()
	if err == redis.Nil {
		return uuid.Nil, domain.ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: consume token failed: %w", op, err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: stored user id parse failed: %w", op, err)
	}

	return userID, nil
}
