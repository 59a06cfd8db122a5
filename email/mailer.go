// Package email is the outbound notification gateway. Callers treat it as
// fire-and-forget: dispatch happens off the request goroutine and failures
// are logged, never surfaced to the client.
package email

import (
	"context"
	"log"

	"github.com/b4dow/uptask-backend/config"
)

// Payload carries everything a confirmation or reset message needs.
type Payload struct {
	Email string
	Name  string
	Token string
}

type Mailer interface {
	SendConfirmation(ctx context.Context, p Payload) error
	SendPasswordReset(ctx context.Context, p Payload) error
}

// NewMailer returns the SMTP mailer when SMTP_HOST is configured and a
// log-only mailer otherwise.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost != "" {
		return NewSMTPMailer(cfg)
	}
	log.Println("SMTP_HOST is not set, emails will be logged instead of sent")
	return &LogMailer{}
}

// LogMailer writes outbound messages to the process log. Used in
// development and whenever SMTP is not configured.
type LogMailer struct{}

func (m *LogMailer) SendConfirmation(ctx context.Context, p Payload) error {
	log.Printf("confirmation email to %s <%s>: token %s", p.Name, p.Email, p.Token)
	return nil
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, p Payload) error {
	log.Printf("password reset email to %s <%s>: token %s", p.Name, p.Email, p.Token)
	return nil
}
