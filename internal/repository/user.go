package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/innovators-conclave/backend/internal/db"
	"github.com/innovators-conclave/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
)

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
	INSERT INTO user (id, email, password_hash, email_confirmed)
	VALUES (uuid_to_bin(?), ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.EmailConfirmed,
	)

	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
	SELECT id, email, password_hash, email_confirmed, confirmed_at, created_at, updated_at, deleted_at
	FROM user WHERE email = ? AND deleted_at IS NULL;
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by email failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
	SELECT id, email, password_hash, email_confirmed, confirmed_at, created_at, updated_at, deleted_at
	FROM user WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by id failed: %w", err)
	}
	return &user, nil
}

func (r *userRepository) ConfirmEmail(ctx context.Context, email string) error {
	const query = `
	UPDATE user SET email_confirmed = true, confirmed_at = now()
	WHERE email = ? AND email_confirmed = false;
	`
	res, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("db confirm user email: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db confirm user email rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
	UPDATE user SET password_hash = ? WHERE id = uuid_to_bin(?);
	`
	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("db update user password: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db update user password rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

// Delete removes the row outright. Used by the registration rollback, which
// must not leave an orphaned unconfirmed account behind.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
	DELETE FROM user WHERE id = uuid_to_bin(?);
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db delete user: %w", err)
	}

	return nil
}
