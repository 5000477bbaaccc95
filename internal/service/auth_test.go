package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/innovators-conclave/backend/internal/config"
	"github.com/innovators-conclave/backend/internal/domain"
	"github.com/innovators-conclave/backend/internal/mocks"
)

type authServiceMocks struct {
	users        *mocks.Users
	profiles     *mocks.UserProfiles
	sessions     *mocks.RefreshSession
	codes        *mocks.VerificationCodes
	resetTokens  *mocks.ResetTokens
	hasher       *mocks.PasswordHasher
	tokenManager *mocks.TokenManager
	otpGenerator *mocks.OtpGenerator
	emailSender  *mocks.EmailSender
	mailer       *mocks.VerificationMailer
}

func newTestAuthService(t *testing.T) (*authService, *authServiceMocks) {
	t.Helper()

	m := &authServiceMocks{
		users:        new(mocks.Users),
		profiles:     new(mocks.UserProfiles),
		sessions:     new(mocks.RefreshSession),
		codes:        new(mocks.VerificationCodes),
		resetTokens:  new(mocks.ResetTokens),
		hasher:       new(mocks.PasswordHasher),
		tokenManager: new(mocks.TokenManager),
		otpGenerator: new(mocks.OtpGenerator),
		emailSender:  new(mocks.EmailSender),
		mailer:       new(mocks.VerificationMailer),
	}

	cfg := &config.Config{}
	cfg.Auth.VerificationCodeLength = 6
	cfg.Auth.VerificationCodeTTL = 15 * time.Minute
	cfg.Auth.VerificationMaxRetries = 5
	cfg.Auth.ResetTokenTTL = 30 * time.Minute
	cfg.Auth.MinPasswordLength = 6
	cfg.Frontend.BaseURL = "http://localhost:5173"

	svc := newAuthService(
		m.users,
		m.profiles,
		m.sessions,
		m.codes,
		m.resetTokens,
		m.hasher,
		m.tokenManager,
		m.otpGenerator,
		m.emailSender,
		m.mailer,
		cfg,
		zap.NewNop().Sugar(),
	)

	return svc, m
}

func studentSignUpInput() SignUpInput {
	return SignUpInput{
		FullName:    "Asha Rao",
		PhoneNumber: "9876543210",
		Email:       "asha@example.com",
		Password:    "secret123",
		Gender:      domain.GenderFemale,
		DateOfBirth: "2003-04-12",
		Country:     "India",
		State:       "Telangana",
		Pincode:     "500001",
		Profession:  domain.ProfessionStudent,
		CollegeName: "IIT Hyderabad",
	}
}

func TestAuthService_SignUp(t *testing.T) {
	t.Run("success stores unconfirmed user, profile and code", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		input := studentSignUpInput()

		m.hasher.On("Hash", "secret123").Return("hashed", nil)
		m.users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == input.Email && u.PasswordHash == "hashed" && !u.EmailConfirmed
		})).Return(nil)
		m.profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.UserProfile) bool {
			return p.Email == input.Email &&
				p.CollegeName == sql.NullString{String: "IIT Hyderabad", Valid: true} &&
				!p.CompanyName.Valid
		})).Return(nil)
		m.otpGenerator.On("RandomCode", 6).Return("123456")
		m.codes.On("Store", mock.Anything, input.Email, "123456", 15*time.Minute).Return(nil)
		m.mailer.On("EnqueueVerificationEmail", mock.Anything, input.Email, "123456").Return(nil)

		err := svc.SignUp(context.Background(), input)

		require.NoError(t, err)
		m.users.AssertExpectations(t)
		m.profiles.AssertExpectations(t)
		m.codes.AssertExpectations(t)
		m.mailer.AssertExpectations(t)
		m.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("professional stores company name instead of college", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		input := studentSignUpInput()
		input.Profession = domain.ProfessionProfessional
		input.CollegeName = ""
		input.CompanyName = "Acme Corp"

		m.hasher.On("Hash", mock.Anything).Return("hashed", nil)
		m.users.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.UserProfile) bool {
			return p.CompanyName == sql.NullString{String: "Acme Corp", Valid: true} &&
				!p.CollegeName.Valid
		})).Return(nil)
		m.otpGenerator.On("RandomCode", 6).Return("654321")
		m.codes.On("Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.mailer.On("EnqueueVerificationEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		err := svc.SignUp(context.Background(), input)

		require.NoError(t, err)
		m.profiles.AssertExpectations(t)
	})

	t.Run("duplicate email maps to ErrUserAlreadyExist", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.hasher.On("Hash", mock.Anything).Return("hashed", nil)
		m.users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEntry)

		err := svc.SignUp(context.Background(), studentSignUpInput())

		assert.ErrorIs(t, err, ErrUserAlreadyExist)
		m.profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("profile write failure rolls the user back", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.hasher.On("Hash", mock.Anything).Return("hashed", nil)

		var createdID uuid.UUID
		m.users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			createdID = args.Get(1).(*domain.User).ID
		}).Return(nil)
		m.profiles.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
		m.users.On("Delete", mock.Anything, mock.Anything).Return(nil)

		err := svc.SignUp(context.Background(), studentSignUpInput())

		require.Error(t, err)
		m.users.AssertCalled(t, "Delete", mock.Anything, createdID)
		m.codes.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("verification delivery failure does not fail the signup", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.hasher.On("Hash", mock.Anything).Return("hashed", nil)
		m.users.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.profiles.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.otpGenerator.On("RandomCode", 6).Return("111111")
		m.codes.On("Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.mailer.On("EnqueueVerificationEmail", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("queue down"))

		err := svc.SignUp(context.Background(), studentSignUpInput())

		assert.NoError(t, err)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	confirmedUser := func(id uuid.UUID) *domain.User {
		return &domain.User{
			ID:             id,
			Email:          "asha@example.com",
			PasswordHash:   "hashed",
			EmailConfirmed: true,
		}
	}

	input := SignInInput{
		Email:     "asha@example.com",
		Password:  "secret123",
		UserAgent: "test-agent",
		IP:        "127.0.0.1",
	}

	t.Run("success returns tokens and profile", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		userID := uuid.New()
		refreshToken := uuid.New()

		m.users.On("GetByEmail", mock.Anything, input.Email).Return(confirmedUser(userID), nil)
		m.hasher.On("Hash", input.Password).Return("hashed", nil)
		m.tokenManager.On("NewJWT", &userID).Return("access-token", 15*time.Minute, nil)
		m.tokenManager.On("NewRefreshToken").Return(refreshToken, 720*time.Hour, nil)
		m.sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.RefreshSession) bool {
			return s.UserID == userID && s.RefreshToken == refreshToken && s.UserAgent == "test-agent"
		})).Return(nil)
		m.profiles.On("GetOneByID", mock.Anything, userID).
			Return(&domain.UserProfile{ID: userID, FullName: "Asha Rao"}, nil)

		result, err := svc.SignIn(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "access-token", result.Tokens.AccessToken)
		assert.Equal(t, refreshToken, result.Tokens.RefreshToken)
		assert.Equal(t, "asha@example.com", result.Email)
		require.NotNil(t, result.Profile)
		assert.Equal(t, "Asha Rao", result.Profile.FullName)
	})

	t.Run("unknown email maps to ErrInvalidCredentials", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.On("GetByEmail", mock.Anything, input.Email).Return(nil, domain.ErrNotFound)

		_, err := svc.SignIn(context.Background(), input)

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password maps to ErrInvalidCredentials", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.On("GetByEmail", mock.Anything, input.Email).Return(confirmedUser(uuid.New()), nil)
		m.hasher.On("Hash", input.Password).Return("other-hash", nil)

		_, err := svc.SignIn(context.Background(), input)

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.tokenManager.AssertNotCalled(t, "NewJWT", mock.Anything)
	})

	t.Run("unconfirmed email is the distinguished failure", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		user := confirmedUser(uuid.New())
		user.EmailConfirmed = false

		m.users.On("GetByEmail", mock.Anything, input.Email).Return(user, nil)
		m.hasher.On("Hash", input.Password).Return("hashed", nil)

		_, err := svc.SignIn(context.Background(), input)

		assert.ErrorIs(t, err, ErrEmailNotConfirmed)
		m.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing profile does not fail the login", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		userID := uuid.New()

		m.users.On("GetByEmail", mock.Anything, input.Email).Return(confirmedUser(userID), nil)
		m.hasher.On("Hash", input.Password).Return("hashed", nil)
		m.tokenManager.On("NewJWT", &userID).Return("access-token", 15*time.Minute, nil)
		m.tokenManager.On("NewRefreshToken").Return(uuid.New(), 720*time.Hour, nil)
		m.sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.profiles.On("GetOneByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

		result, err := svc.SignIn(context.Background(), input)

		require.NoError(t, err)
		assert.Nil(t, result.Profile)
		assert.Equal(t, "asha@example.com", result.Email)
	})
}

func TestAuthService_SignOut(t *testing.T) {
	t.Run("revokes all refresh sessions for the token subject", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		userID := uuid.New()

		m.tokenManager.On("Parse", "some-access-token").Return(userID.String(), nil)
		m.sessions.On("DeleteByUserID", mock.Anything, userID).Return(nil)

		err := svc.SignOut(context.Background(), "some-access-token")

		require.NoError(t, err)
		m.sessions.AssertExpectations(t)
	})

	t.Run("invalid token fails", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.tokenManager.On("Parse", "garbage").Return("", errors.New("token is malformed"))

		err := svc.SignOut(context.Background(), "garbage")

		assert.Error(t, err)
		m.sessions.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	const email = "asha@example.com"

	t.Run("valid code confirms the account", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.codes.On("Verify", mock.Anything, email, "123456", 5).Return(nil)
		m.users.On("ConfirmEmail", mock.Anything, email).Return(nil)

		err := svc.VerifyEmail(context.Background(), email, "123456")

		require.NoError(t, err)
		m.users.AssertExpectations(t)
	})

	t.Run("code failures collapse to ErrInvalidVerificationCode", func(t *testing.T) {
		for _, repoErr := range []error{
			domain.ErrNotFound,
			domain.ErrVerificationCodeMismatch,
			domain.ErrVerificationMaxAttempts,
		} {
			svc, m := newTestAuthService(t)

			m.codes.On("Verify", mock.Anything, email, "000000", 5).Return(repoErr)

			err := svc.VerifyEmail(context.Background(), email, "000000")

			assert.ErrorIs(t, err, ErrInvalidVerificationCode, "repo error %v", repoErr)
			m.users.AssertNotCalled(t, "ConfirmEmail", mock.Anything, mock.Anything)
		}
	})

	t.Run("already confirmed account rejects the code", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.codes.On("Verify", mock.Anything, email, "123456", 5).Return(nil)
		m.users.On("ConfirmEmail", mock.Anything, email).Return(domain.ErrNoRowsAffected)

		err := svc.VerifyEmail(context.Background(), email, "123456")

		assert.ErrorIs(t, err, ErrInvalidVerificationCode)
	})
}

func TestAuthService_ResendVerification(t *testing.T) {
	const email = "asha@example.com"

	t.Run("issues a fresh code for an unconfirmed account", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.On("GetByEmail", mock.Anything, email).
			Return(&domain.User{ID: uuid.New(), Email: email, EmailConfirmed: false}, nil)
		m.otpGenerator.On("RandomCode", 6).Return("999999")
		m.codes.On("Store", mock.Anything, email, "999999", 15*time.Minute).Return(nil)
		m.mailer.On("EnqueueVerificationEmail", mock.Anything, email, "999999").Return(nil)

		err := svc.ResendVerification(context.Background(), email)

		require.NoError(t, err)
		m.mailer.AssertExpectations(t)
	})

	t.Run("confirmed account gets ErrUserNotFound", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.On("GetByEmail", mock.Anything, email).
			Return(&domain.User{ID: uuid.New(), Email: email, EmailConfirmed: true}, nil)

		err := svc.ResendVerification(context.Background(), email)

		assert.ErrorIs(t, err, ErrUserNotFound)
		m.codes.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown account gets ErrUserNotFound", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.On("GetByEmail", mock.Anything, email).Return(nil, domain.ErrNotFound)

		err := svc.ResendVerification(context.Background(), email)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	const email = "asha@example.com"

	t.Run("stores a token and mails the fragment link", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		userID := uuid.New()

		m.users.On("GetByEmail", mock.Anything, email).
			Return(&domain.User{ID: userID, Email: email, EmailConfirmed: true}, nil)

		var storedToken string
		m.resetTokens.On("Store", mock.Anything, mock.Anything, userID, 30*time.Minute).
			Run(func(args mock.Arguments) {
				storedToken = args.String(1)
			}).Return(nil)
		m.emailSender.On("SendPasswordResetEmail", mock.Anything, email, mock.Anything).Return(nil)

		err := svc.RequestPasswordReset(context.Background(), email)

		require.NoError(t, err)
		m.emailSender.AssertCalled(t, "SendPasswordResetEmail", mock.Anything, email,
			"http://localhost:5173/reset-password#access_token="+storedToken)
	})

	t.Run("unknown email gets ErrUserNotFound", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.On("GetByEmail", mock.Anything, email).Return(nil, domain.ErrNotFound)

		err := svc.RequestPasswordReset(context.Background(), email)

		assert.ErrorIs(t, err, ErrUserNotFound)
		m.emailSender.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delivery failure is reported to the caller", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.On("GetByEmail", mock.Anything, email).
			Return(&domain.User{ID: uuid.New(), Email: email}, nil)
		m.resetTokens.On("Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.emailSender.On("SendPasswordResetEmail", mock.Anything, email, mock.Anything).
			Return(errors.New("smtp down"))

		err := svc.RequestPasswordReset(context.Background(), email)

		assert.Error(t, err)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("consumes the token, rehashes and revokes sessions", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		userID := uuid.New()

		m.resetTokens.On("Consume", mock.Anything, "token-1").Return(userID, nil)
		m.hasher.On("Hash", "newsecret").Return("new-hash", nil)
		m.users.On("UpdatePasswordHash", mock.Anything, userID, "new-hash").Return(nil)
		m.sessions.On("DeleteByUserID", mock.Anything, userID).Return(nil)

		err := svc.ResetPassword(context.Background(), "token-1", "newsecret")

		require.NoError(t, err)
		m.users.AssertExpectations(t)
		m.sessions.AssertExpectations(t)
	})

	t.Run("short password is rejected before touching the token", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		err := svc.ResetPassword(context.Background(), "token-1", "abc")

		assert.ErrorIs(t, err, ErrPasswordTooShort)
		m.resetTokens.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
	})

	t.Run("unknown or spent token maps to ErrInvalidResetToken", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.resetTokens.On("Consume", mock.Anything, "spent").Return(uuid.Nil, domain.ErrNotFound)

		err := svc.ResetPassword(context.Background(), "spent", "newsecret")

		assert.ErrorIs(t, err, ErrInvalidResetToken)
		m.users.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Profile(t *testing.T) {
	t.Run("returns the stored profile", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		userID := uuid.New()

		m.profiles.On("GetOneByID", mock.Anything, userID).
			Return(&domain.UserProfile{ID: userID, FullName: "Asha Rao"}, nil)

		profile, err := svc.Profile(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", profile.FullName)
	})

	t.Run("missing row maps to ErrUserNotFound", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		userID := uuid.New()

		m.profiles.On("GetOneByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

		_, err := svc.Profile(context.Background(), userID)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
