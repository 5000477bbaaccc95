package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/innovators-conclave/backend/internal/domain"
)

type refreshSessionRepository struct {
	db *sqlx.DB
}

func newRefreshSessionRepository(db *sqlx.DB) *refreshSessionRepository {
	return &refreshSessionRepository{
		db: db,
	}
}

func (r *refreshSessionRepository) Create(ctx context.Context, session *domain.RefreshSession) error {
	const query = `
				INSERT INTO refresh_session (id, user_id, refresh_token, user_agent, ip, expires_in)
				VALUES (uuid_to_bin(?), uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?)
				`
	_, err := r.db.ExecContext(ctx, query, session.ID, session.UserID, session.RefreshToken, session.UserAgent, session.IP, session.ExpiresIn)

	if err != nil {
		return fmt.Errorf("db insert refresh session: %w", err)
	}

	return nil
}

func (r *refreshSessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	const query = `
				DELETE FROM refresh_session WHERE user_id = uuid_to_bin(?)
				`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db delete refresh sessions: %w", err)
	}

	return nil
}
