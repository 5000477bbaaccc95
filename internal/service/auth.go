package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/innovators-conclave/backend/internal/config"
	"github.com/innovators-conclave/backend/internal/domain"
	"github.com/innovators-conclave/backend/internal/repository"
	"github.com/innovators-conclave/backend/internal/worker"
	"github.com/innovators-conclave/backend/pkg/auth"
	"github.com/innovators-conclave/backend/pkg/hash"
	"github.com/innovators-conclave/backend/pkg/otp"
)

type authService struct {
	userRepository           repository.Users
	profileRepository        repository.UserProfiles
	refreshSessionRepository repository.RefreshSession
	codeRepository           repository.VerificationCodes
	resetTokenRepository     repository.ResetTokens
	hasher                   hash.PasswordHasher
	tokenManager             auth.TokenManager
	otpGenerator             otp.Generator
	emailSender              worker.EmailSender
	mailer                   VerificationMailer
	config                   *config.Config
	logger                   *zap.SugaredLogger
}

func newAuthService(userRepository repository.Users,
	profileRepository repository.UserProfiles,
	refreshSessionRepository repository.RefreshSession,
	codeRepository repository.VerificationCodes,
	resetTokenRepository repository.ResetTokens,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	emailSender worker.EmailSender,
	mailer VerificationMailer,
	config *config.Config,
	logger *zap.SugaredLogger,
) *authService {
	return &authService{
		userRepository:           userRepository,
		profileRepository:        profileRepository,
		refreshSessionRepository: refreshSessionRepository,
		codeRepository:           codeRepository,
		resetTokenRepository:     resetTokenRepository,
		hasher:                   hasher,
		tokenManager:             tokenManager,
		otpGenerator:             otpGenerator,
		emailSender:              emailSender,
		mailer:                   mailer,
		config:                   config,
		logger:                   logger,
	}
}

type SignUpInput struct {
	FullName    string
	PhoneNumber string
	Email       string
	Password    string
	Gender      domain.Gender
	DateOfBirth string
	Country     string
	State       string
	Pincode     string
	Profession  domain.Profession
	CollegeName string
	CompanyName string
}

// SignUp creates the identity record unconfirmed, writes the profile row and
// issues a verification code. The profile write is step two of a two-step
// transaction: if it fails, the just-created identity record is deleted so no
// orphaned unconfirmed account survives.
func (s *authService) SignUp(ctx context.Context, input SignUpInput) error {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate user id failed: %w", err)
	}

	user := &domain.User{
		ID:             userID,
		Email:          input.Email,
		PasswordHash:   passwordHash,
		EmailConfirmed: false,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return ErrUserAlreadyExist
		}
		return fmt.Errorf("create user failed: %w", err)
	}

	profile := &domain.UserProfile{
		ID:          userID,
		FullName:    input.FullName,
		Phone:       input.PhoneNumber,
		Email:       input.Email,
		Gender:      input.Gender,
		DateOfBirth: input.DateOfBirth,
		Profession:  input.Profession,
		Country:     input.Country,
		State:       input.State,
		Pincode:     input.Pincode,
	}
	switch input.Profession {
	case domain.ProfessionStudent:
		profile.CollegeName = sql.NullString{String: input.CollegeName, Valid: true}
	case domain.ProfessionProfessional:
		profile.CompanyName = sql.NullString{String: input.CompanyName, Valid: true}
	}

	if err := s.profileRepository.Create(ctx, profile); err != nil {
		// Compensate: roll the identity record back before reporting failure.
		if delErr := s.userRepository.Delete(ctx, userID); delErr != nil {
			s.logger.Errorw("rollback of user after profile write failure failed",
				"user_id", userID, "error", delErr)
		}
		return fmt.Errorf("create user profile failed: %w", err)
	}

	if err := s.issueVerificationCode(ctx, input.Email); err != nil {
		// Delivery is best-effort here; the code can be re-requested.
		s.logger.Errorw("send verification code failed", "email", input.Email, "error", err)
	}

	return nil
}

func (s *authService) issueVerificationCode(ctx context.Context, email string) error {
	code := s.otpGenerator.RandomCode(s.config.Auth.VerificationCodeLength)

	if err := s.codeRepository.Store(ctx, email, code, s.config.Auth.VerificationCodeTTL); err != nil {
		return fmt.Errorf("store verification code failed: %w", err)
	}

	if err := s.mailer.EnqueueVerificationEmail(ctx, email, code); err != nil {
		return fmt.Errorf("enqueue verification email failed: %w", err)
	}

	return nil
}

type SignInInput struct {
	Email     string
	Password  string
	UserAgent string
	IP        string
}

type Tokens struct {
	AccessToken  string
	AccessTTL    time.Duration
	RefreshToken uuid.UUID
	RefreshTTL   time.Duration
}

type SignInResult struct {
	Tokens  Tokens
	Email   string
	Profile *domain.UserProfile
}

// SignIn authenticates by email/password. All credential failures collapse to
// ErrInvalidCredentials; an unconfirmed address is the one distinguished case
// so the caller can route back to verification. The profile lookup after a
// successful login is best-effort: a missing row never fails the login.
func (s *authService) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	user, err := s.userRepository.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	if passwordHash != user.PasswordHash {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailConfirmed {
		return nil, ErrEmailNotConfirmed
	}

	tokens, err := s.createSession(ctx, &user.ID, &input.UserAgent, &input.IP)
	if err != nil {
		return nil, fmt.Errorf("create session failed: %w", err)
	}

	result := &SignInResult{
		Tokens: *tokens,
		Email:  user.Email,
	}

	profile, err := s.profileRepository.GetOneByID(ctx, user.ID)
	if err != nil {
		s.logger.Errorw("profile fetch after login failed", "user_id", user.ID, "error", err)
	} else {
		result.Profile = profile
	}

	return result, nil
}

func (s *authService) createSession(ctx context.Context, userID *uuid.UUID, userAgent *string, userIP *string) (*Tokens, error) {
	var (
		res Tokens
		err error
	)

	res.AccessToken, res.AccessTTL, err = s.tokenManager.NewJWT(userID)
	if err != nil {
		return &res, fmt.Errorf("generate access token failed: %w", err)
	}

	res.RefreshToken, res.RefreshTTL, err = s.tokenManager.NewRefreshToken()
	if err != nil {
		return &res, fmt.Errorf("generate refresh token failed: %w", err)
	}

	refreshSessionID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate refresh session id failed: %w", err)
	}
	refreshSession := &domain.RefreshSession{
		ID:           refreshSessionID,
		UserID:       *userID,
		RefreshToken: res.RefreshToken,
		UserAgent:    *userAgent,
		IP:           *userIP,
		ExpiresIn:    time.Now().Add(res.RefreshTTL),
	}

	if err := s.refreshSessionRepository.Create(ctx, refreshSession); err != nil {
		return nil, fmt.Errorf("create refresh session failed: %w", err)
	}

	return &res, nil
}

func (s *authService) SignOut(ctx context.Context, accessToken string) error {
	subject, err := s.tokenManager.Parse(accessToken)
	if err != nil {
		return fmt.Errorf("parse access token failed: %w", err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return fmt.Errorf("token subject parse failed: %w", err)
	}

	if err := s.refreshSessionRepository.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("revoke refresh sessions failed: %w", err)
	}

	return nil
}

// VerifyEmail consumes the pending code and flips the account to confirmed.
func (s *authService) VerifyEmail(ctx context.Context, email string, code string) error {
	err := s.codeRepository.Verify(ctx, email, code, s.config.Auth.VerificationMaxRetries)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) ||
			errors.Is(err, domain.ErrVerificationCodeMismatch) ||
			errors.Is(err, domain.ErrVerificationMaxAttempts) {
			return ErrInvalidVerificationCode
		}
		return fmt.Errorf("verify code failed: %w", err)
	}

	if err := s.userRepository.ConfirmEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			// Already confirmed or the account vanished; the consumed code is
			// useless either way.
			return ErrInvalidVerificationCode
		}
		return fmt.Errorf("confirm email failed: %w", err)
	}

	return nil
}

// ResendVerification re-issues a code for an unconfirmed account. Storing the
// new code invalidates whatever code was pending before.
func (s *authService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by email failed: %w", err)
	}

	if user.EmailConfirmed {
		return ErrUserNotFound
	}

	return s.issueVerificationCode(ctx, email)
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	profile, err := s.profileRepository.GetOneByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile by id failed: %w", err)
	}

	return profile, nil
}

// RequestPasswordReset issues a single-use token and emails a link carrying it
// in the URL fragment. Unlike verification delivery this is synchronous: the
// caller must know whether the email went out.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by email failed: %w", err)
	}

	token, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate reset token failed: %w", err)
	}

	if err := s.resetTokenRepository.Store(ctx, token.String(), user.ID, s.config.Auth.ResetTokenTTL); err != nil {
		return fmt.Errorf("store reset token failed: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password#access_token=%s", s.config.Frontend.BaseURL, token)

	if err := s.emailSender.SendPasswordResetEmail(ctx, email, link); err != nil {
		return fmt.Errorf("send reset email failed: %w", err)
	}

	return nil
}

// ResetPassword commits phase two of the reset flow against a token from the
// emailed link.
func (s *authService) ResetPassword(ctx context.Context, token string, password string) error {
	if len(password) < s.config.Auth.MinPasswordLength {
		return ErrPasswordTooShort
	}

	userID, err := s.resetTokenRepository.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("consume reset token failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	if err := s.userRepository.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("update password failed: %w", err)
	}

	// A changed password invalidates existing sessions.
	if err := s.refreshSessionRepository.DeleteByUserID(ctx, userID); err != nil {
		s.logger.Errorw("revoke sessions after password reset failed", "user_id", userID, "error", err)
	}

	return nil
}
