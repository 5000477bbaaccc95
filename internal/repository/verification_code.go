package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/innovators-conclave/backend/internal/domain"
)

type verificationCodeRepository struct {
	cache redis.UniversalClient
}

func newVerificationCodeRepository(cache redis.UniversalClient) *verificationCodeRepository {
	return &verificationCodeRepository{
		cache: cache,
	}
}

func codeKey(email string) string {
	return "verify:code:" + email
}

func attemptsKey(email string) string {
	return "verify:att:" + email
}

// Store saves the pending code for the address. A subsequent Store replaces
// the previous code, which is how resend invalidates it.
func (r *verificationCodeRepository) Store(ctx context.Context, email string, code string, ttl time.Duration) error {
	const op = "repository.verificationCode.Store"

	if err := r.cache.Set(ctx, codeKey(email), code, ttl).Err(); err != nil {
		return fmt.Errorf("%s: store code failed: %w", op, err)
	}

	if err := r.cache.Set(ctx, attemptsKey(email), 0, ttl).Err(); err != nil {
		return fmt.Errorf("%s: reset attempts failed: %w", op, err)
	}

	return nil
}

// Verify checks the submitted code and consumes it on success. The attempts
// counter caps brute forcing; exceeding it destroys the pending code.
func (r *verificationCodeRepository) Verify(ctx context.Context, email string, code string, maxAttempts int) error {
	const op = "repository.verificationCode.Verify"

	attempts, err := r.cache.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return fmt.Errorf("%s: increment attempts failed: %w", op, err)
	}

	if attempts > int64(maxAttempts) {
		r.cache.Del(ctx, codeKey(email), attemptsKey(email))
		return domain.ErrVerificationMaxAttempts
	}

	stored, err := r.cache.Get(ctx, codeKey(email)).Result()
	if err == redis.Nil {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: get code failed: %w", op, err)
	}

	if stored != code {
		return domain.ErrVerificationCodeMismatch
	}

	if err := r.cache.Del(ctx, codeKey(email), attemptsKey(email)).Err(); err != nil {
		return fmt.Errorf("%s: consume code failed: %w", op, err)
	}

	return nil
}
