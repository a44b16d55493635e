// Package mailer sends HTML mail over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when no SMTP host is set
var ErrNotConfigured = errors.New("smtp host is not configured")

// Config holds SMTP settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// Mailer delivers messages through one SMTP relay
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a Mailer. It does not connect until Send.
func New(cfg Config) *Mailer {
	if cfg.Host == "" {
		return &Mailer{}
	}
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, from)
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password),
		from:   from,
	}
}

// Send delivers an HTML message to a single recipient.
// gomail has no context support; ctx is only checked before dialing.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
