package service

import (
	"context"

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

type Services struct {
	Auth   Auth
	Emails Emails
}

type Deps struct {
	Logger       *zap.SugaredLogger
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	Repos        *repository.Repositories
	EmailSender  worker.EmailSender
	Mailer       VerificationMailer
}

func NewServices(deps Deps) *Services {
	return &Services{
		Auth: newAuthService(deps.Repos.Users,
			deps.Repos.UserProfiles,
			deps.Repos.RefreshSession,
			deps.Repos.VerificationCodes,
			deps.Repos.ResetTokens,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			deps.EmailSender,
			deps.Mailer,
			deps.Config,
			deps.Logger,
		),
		Emails: newEmailService(deps.EmailSender, deps.Logger),
	}
}

// VerificationMailer hands a freshly issued code off for asynchronous
// delivery. The registration flow treats delivery as best-effort.
type VerificationMailer interface {
	EnqueueVerificationEmail(ctx context.Context, email string, code string) error
}

type Auth interface {
	SignUp(ctx context.Context, input SignUpInput) error
	SignIn(ctx context.Context, input SignInInput) (*SignInResult, error)
	SignOut(ctx context.Context, accessToken string) error
	VerifyEmail(ctx context.Context, email string, code string) error
	ResendVerification(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, password string) error
	Profile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

type Emails interface {
	SendWelcomeEmail(ctx context.Context, email string) error
}
