package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"

	"github.com/b4dow/uptask-backend/config"
)

// SMTPMailer delivers mail over SMTP. The caller's context bounds the
// whole exchange: the dial honors it and its deadline is applied to the
// connection.
type SMTPMailer struct {
	addr     string
	host     string
	auth     smtp.Auth
	from     string
	fromAddr string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	// MAIL FROM needs the bare address even when MAIL_FROM carries a
	// display name
	fromAddr := cfg.MailFrom
	if parsed, err := mail.ParseAddress(cfg.MailFrom); err == nil {
		fromAddr = parsed.Address
	}

	return &SMTPMailer{
		addr:     cfg.SMTPHost + ":" + cfg.SMTPPort,
		host:     cfg.SMTPHost,
		auth:     auth,
		from:     cfg.MailFrom,
		fromAddr: fromAddr,
	}
}

func (m *SMTPMailer) SendConfirmation(ctx context.Context, p Payload) error {
	body := fmt.Sprintf(
		"Hello %s, your account has been created. Enter the following code to confirm it: %s",
		p.Name, p.Token,
	)
	return m.send(ctx, p.Email, "UpTask - Confirm your account", body)
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, p Payload) error {
	body := fmt.Sprintf(
		"Hello %s, you requested a password reset. Enter the following code to set a new password: %s",
		p.Name, p.Token,
	)
	return m.send(ctx, p.Email, "UpTask - Reset your password", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, to, subject, body)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}
	if m.auth != nil {
		if err := client.Auth(m.auth); err != nil {
			return err
		}
	}
	if err := client.Mail(m.fromAddr); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
