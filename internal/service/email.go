package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/innovators-conclave/backend/internal/worker"
)

type emailService struct {
	sender worker.EmailSender
	logger *zap.SugaredLogger
}

func newEmailService(sender worker.EmailSender, logger *zap.SugaredLogger) *emailService {
	return &emailService{
		sender: sender,
		logger: logger,
	}
}

// SendWelcomeEmail delivers the brochure mail synchronously so the caller can
// report delivery failure.
func (s *emailService) SendWelcomeEmail(ctx context.Context, email string) error {
	if err := s.sender.SendWelcomeEmail(ctx, email); err != nil {
		return fmt.Errorf("send welcome email failed: %w", err)
	}

	return nil
}
