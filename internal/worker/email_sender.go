package worker

import (
	"context"
	"fmt"

	"github.com/innovators-conclave/backend/internal/config"
	emailProvider "github.com/innovators-conclave/backend/pkg/email"
	"github.com/innovators-conclave/backend/pkg/pdf"
)

type emailSender struct {
	sender emailProvider.Sender
	pdfGen *pdf.Generator
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	pdfGen *pdf.Generator,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		pdfGen: pdfGen,
		config: config,
	}
}

type verificationEmailInput struct {
	VerificationCode string
}

func (s *emailSender) SendUserVerificationEmail(ctx context.Context, email string, verificationCode string) error {
	if !s.config.Enabled {
		return nil
	}

	subject := "Your verification code"

	templateInput := verificationEmailInput{verificationCode}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Verification, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}

type welcomeEmailInput struct {
	EventDates    string
	EventLocation string
}

// SendWelcomeEmail delivers the subscription mail with the generated event
// brochure attached.
func (s *emailSender) SendWelcomeEmail(ctx context.Context, email string) error {
	if !s.config.Enabled {
		return nil
	}

	subject := "Welcome to the Global Innovators Conclave!"

	templateInput := welcomeEmailInput{
		EventDates:    "Feb 27-28, 2026",
		EventLocation: "Hyderabad, India",
	}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Welcome, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	brochure, err := s.pdfGen.GenerateBrochure(&pdf.Brochure{
		Title:    "Global Innovators Conclave 2026",
		Tagline:  "Two days of sessions, speakers and showcases.",
		Dates:    templateInput.EventDates,
		Location: templateInput.EventLocation,
		Sections: []pdf.BrochureSection{
			{Heading: "Sessions", Body: "Keynotes, panels and deep-dive workshops across innovation tracks."},
			{Heading: "Registration", Body: "Register on the event site and verify your email to secure a pass."},
		},
	})
	if err != nil {
		return fmt.Errorf("generate brochure failed: %w", err)
	}

	sendInput.Attachments = []emailProvider.Attachment{{
		Filename:    "Conclave_Brochure.pdf",
		ContentType: "application/pdf",
		Content:     brochure,
	}}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}

type resetEmailInput struct {
	ResetLink string
}

func (s *emailSender) SendPasswordResetEmail(ctx context.Context, email string, link string) error {
	if !s.config.Enabled {
		return nil
	}

	subject := "Reset your password"

	templateInput := resetEmailInput{link}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.ResetLink, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
