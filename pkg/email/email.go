package email

import (
	"context"
	"fmt"
	"go-caduae-backend/config"
	"go-caduae-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

// Service relays composed form notifications via SMTP
type Service struct {
	dialer    *gomail.Dialer
	fromEmail string
	toEmail   string
}

// NewService creates the SMTP relay service. The dialer is built once at
// startup and reused across submissions; gomail negotiates implicit TLS on
// port 465 and STARTTLS on other ports.
func NewService(cfg *config.Config) *Service {
	return &Service{
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.SubmitEmailTo,
	}
}

// Send relays one composed message to the configured recipient, with Reply-To
// pointing back at the submitter. It blocks until the SMTP server accepts the
// message or the context is done, whichever comes first. Exactly one attempt
// is made; there is no retry.
func (s *Service) Send(ctx context.Context, msg *domain.EmailMessage, replyTo string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.fromEmail)
	m.SetHeader("To", s.toEmail)
	m.SetHeader("Reply-To", replyTo)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	m.AddAlternative("text/html", msg.HTMLBody)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mail relay aborted: %w", ctx.Err())
	}
}

// IsConfigured checks if the service has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.dialer.Host != "" && s.dialer.Username != "" && s.dialer.Password != ""
}
