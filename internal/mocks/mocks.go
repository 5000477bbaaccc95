// Package mocks holds testify mocks for the repository and provider
// interfaces the services depend on.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/innovators-conclave/backend/internal/domain"
)

type Users struct {
	mock.Mock
}

func (m *Users) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)

	user, _ := args.Get(0).(*domain.User)

	return user, args.Error(1)
}

func (m *Users) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)

	user, _ := args.Get(0).(*domain.User)

	return user, args.Error(1)
}

func (m *Users) ConfirmEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

func (m *Users) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)

	return args.Error(0)
}

func (m *Users) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type UserProfiles struct {
	mock.Mock
}

func (m *UserProfiles) Create(ctx context.Context, profile *domain.UserProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *UserProfiles) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)

	profile, _ := args.Get(0).(*domain.UserProfile)

	return profile, args.Error(1)
}

type RefreshSession struct {
	mock.Mock
}

func (m *RefreshSession) Create(ctx context.Context, session *domain.RefreshSession) error {
	args := m.Called(ctx, session)

	return args.Error(0)
}

func (m *RefreshSession) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

type VerificationCodes struct {
	mock.Mock
}

func (m *VerificationCodes) Store(ctx context.Context, email string, code string, ttl time.Duration) error {
	args := m.Called(ctx, email, code, ttl)

	return args.Error(0)
}

func (m *VerificationCodes) Verify(ctx context.Context, email string, code string, maxAttempts int) error {
	args := m.Called(ctx, email, code, maxAttempts)

	return args.Error(0)
}

type ResetTokens struct {
	mock.Mock
}

func (m *ResetTokens) Store(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	args := m.Called(ctx, token, userID, ttl)

	return args.Error(0)
}

func (m *ResetTokens) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)

	userID, _ := args.Get(0).(uuid.UUID)

	return userID, args.Error(1)
}

type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) NewJWT(userID *uuid.UUID) (string, time.Duration, error) {
	args := m.Called(userID)

	ttl, _ := args.Get(1).(time.Duration)

	return args.String(0), ttl, args.Error(2)
}

func (m *TokenManager) Parse(accessToken string) (string, error) {
	args := m.Called(accessToken)

	return args.String(0), args.Error(1)
}

func (m *TokenManager) NewRefreshToken() (uuid.UUID, time.Duration, error) {
	args := m.Called()

	token, _ := args.Get(0).(uuid.UUID)
	ttl, _ := args.Get(1).(time.Duration)

	return token, ttl, args.Error(2)
}

func (m *TokenManager) ValidateRefreshToken(refreshToken string) (*uuid.UUID, error) {
	args := m.Called(refreshToken)

	userID, _ := args.Get(0).(*uuid.UUID)

	return userID, args.Error(1)
}

type OtpGenerator struct {
	mock.Mock
}

func (m *OtpGenerator) RandomCode(length int) string {
	args := m.Called(length)

	return args.String(0)
}

type EmailSender struct {
	mock.Mock
}

func (m *EmailSender) SendUserVerificationEmail(ctx context.Context, email string, verificationCode string) error {
	args := m.Called(ctx, email, verificationCode)

	return args.Error(0)
}

func (m *EmailSender) SendWelcomeEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

func (m *EmailSender) SendPasswordResetEmail(ctx context.Context, email string, link string) error {
	args := m.Called(ctx, email, link)

	return args.Error(0)
}

type VerificationMailer struct {
	mock.Mock
}

func (m *VerificationMailer) EnqueueVerificationEmail(ctx context.Context, email string, code string) error {
	args := m.Called(ctx, email, code)

	return args.Error(0)
}
