// Package mailer implements welcome-mail delivery for the notify package.
package mailer

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountd/internal/logging"
	"github.com/wneessen/go-mail"
)

// SMTP delivers mail through an SMTP relay using go-mail.
type SMTP struct {
	client *mail.Client
	from   string
}

// NewSMTP builds an SMTP mailer. User/password are optional; when empty the
// relay is dialed without authentication (local dev relays).
func NewSMTP(host string, port int, user, password, from string) (*SMTP, error) {
	opts := []mail.Option{mail.WithPort(port)}
	if user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(user),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer init error: %w", err)
	}

	return &SMTP{client: client, from: from}, nil
}

func (s *SMTP) SendWelcome(ctx context.Context, email string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject("Welcome!")
	msg.SetBodyString(mail.TypeTextPlain, "Welcome! Your account is ready.")

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send error: %w", err)
	}

	return nil
}

// Log is the default mailer when no SMTP relay is configured: it only
// records that a welcome message would have been sent.
type Log struct {
	logger logging.Logger
}

func NewLog(logger logging.Logger) *Log {
	return &Log{logger: logger.With("module", "mailer")}
}

func (l *Log) SendWelcome(ctx context.Context, email string) error {
	l.logger.Info(ctx, "welcome mail (log only)", "email", email)
	return nil
}
