package worker

import (
	"context"

	"github.com/innovators-conclave/backend/internal/config"
	emailProvider "github.com/innovators-conclave/backend/pkg/email"
	"github.com/innovators-conclave/backend/pkg/pdf"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	PDFGenerator  *pdf.Generator
	Config        *config.Config
}

type EmailSender interface {
	SendUserVerificationEmail(ctx context.Context, email string, verificationCode string) error
	SendWelcomeEmail(ctx context.Context, email string) error
	SendPasswordResetEmail(ctx context.Context, email string, link string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.PDFGenerator, deps.Config.Email),
	}
}
