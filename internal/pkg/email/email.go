package email

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/joabe-nascimento/talents-flow/internal/config"
)

// EmailService is the delivery collaborator the core calls into. The
// transport is plain SMTP; templating and retry policy stay out of the
// domain services.
type EmailService interface {
	SendTwoFactorCode(to, code string) error
	SendNotification(to, subject, body string) error
}

type emailServiceImpl struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailServiceImpl{cfg: cfg}
}

func (s *emailServiceImpl) SendTwoFactorCode(to, code string) error {
	subject := "Your verification code"
	body := fmt.Sprintf("Your verification code is %s. It expires in 5 minutes.", code)
	return s.send(to, subject, body)
}

func (s *emailServiceImpl) SendNotification(to, subject, body string) error {
	return s.send(to, subject, body)
}

func (s *emailServiceImpl) send(to, subject, body string) error {
	msg := []byte("To: " + to + "\r\n" +
		"From: " + s.cfg.From + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		slog.Error("failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Noop discards every message. Used when SMTP is not configured and in
// tests.
type Noop struct{}

func (Noop) SendTwoFactorCode(to, code string) error         { return nil }
func (Noop) SendNotification(to, subject, body string) error { return nil }
