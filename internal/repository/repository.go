package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/innovators-conclave/backend/internal/domain"
)

type Repositories struct {
	Users             Users
	UserProfiles      UserProfiles
	RefreshSession    RefreshSession
	VerificationCodes VerificationCodes
	ResetTokens       ResetTokens
}

func NewRepositories(db *sqlx.DB, cache redis.UniversalClient) *Repositories {
	return &Repositories{
		Users:             newUserRepository(db),
		UserProfiles:      newUserProfileRepository(db),
		RefreshSession:    newRefreshSessionRepository(db),
		VerificationCodes: newVerificationCodeRepository(cache),
		ResetTokens:       newResetTokenRepository(cache),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ConfirmEmail(ctx context.Context, email string) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserProfiles interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error)
}

type RefreshSession interface {
	Create(ctx context.Context, session *domain.RefreshSession) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// VerificationCodes stores pending email verification codes. A stored code is
// single use: a successful Verify consumes it, and a later Store for the same
// email replaces whatever was pending.
type VerificationCodes interface {
	Store(ctx context.Context, email string, code string, ttl time.Duration) error
	Verify(ctx context.Context, email string, code string, maxAttempts int) error
}

// ResetTokens stores single-use password reset tokens.
type ResetTokens interface {
	Store(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}
