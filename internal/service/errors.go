package service

import "errors"

var (
	ErrUserAlreadyExist        = errors.New("user already exist")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrEmailNotConfirmed       = errors.New("email not confirmed")
	ErrInvalidVerificationCode = errors.New("invalid or expired verification code")
	ErrInvalidResetToken       = errors.New("invalid or expired reset token")
	ErrPasswordTooShort        = errors.New("password too short")
)
