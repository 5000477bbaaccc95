package domain

import "errors"

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("not found")
	ErrNoRowsAffected = errors.New("no rows affected")
)

var (
	ErrVerificationCodeMismatch = errors.New("verification code mismatch")
	ErrVerificationMaxAttempts  = errors.New("verification attempts exceeded")
)
