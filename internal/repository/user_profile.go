package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/innovators-conclave/backend/internal/domain"
)

type userProfileRepository struct {
	db *sqlx.DB
}

func newUserProfileRepository(db *sqlx.DB) *userProfileRepository {
	return &userProfileRepository{
		db: db,
	}
}

func (r *userProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	const op = "repository.userProfile.Create"

	const query = `
    INSERT INTO user_profile
    (id, full_name, phone, email, gender, date_of_birth, profession, college_name, company_name, country, state, pincode)
    VALUES (uuid_to_bin(:id), :full_name, :phone, :email, :gender, :date_of_birth, :profession, :college_name, :company_name, :country, :state, :pincode)
    `

	res, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("%s: insert user profile failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows != 1 {
		return fmt.Errorf("%s: expected 1 row affected, got %d", op, rows)
	}

	return nil
}

func (r *userProfileRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error) {
	const op = "repository.userProfile.GetOneByID"

	const query = `
    SELECT id, full_name, phone, email, gender, date_of_birth, profession, college_name, company_name, country, state, pincode, created_at, updated_at, deleted_at
    FROM user_profile
    WHERE id = uuid_to_bin(?) AND deleted_at IS NULL
    `

	var profile domain.UserProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select user profile failed: %w", op, err)
	}

	return &profile, nil
}
