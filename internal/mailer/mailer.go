// Package mailer delivers rendered HTML email through an SMTP relay.
package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"portfolio_api/internal/config"
	applog "portfolio_api/internal/log"
)

// ErrNotConfigured is returned by NopMailer.
var ErrNotConfigured = errors.New("mail transport not configured")

// Message is one outbound HTML email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer sends a message and returns the Message-Id the relay accepted.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// New returns an SMTP mailer when credentials are configured, otherwise a
// NopMailer.
func New(cfg config.MailConfig) Mailer {
	if !cfg.Enabled() {
		applog.WithComponent("mailer").Warn("SMTP not configured, email notifications are disabled")
		return NopMailer{}
	}
	return NewSMTPMailer(cfg)
}

type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	logger   *slog.Logger
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	// Port 465 is implicit TLS; anything else upgrades with STARTTLS.
	d.SSL = cfg.Port == 465
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.InsecureTLS,
	}

	return &SMTPMailer{
		dialer:   d,
		from:     cfg.From,
		fromName: cfg.FromName,
		logger:   applog.WithComponent("mailer"),
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) (string, error) {
	if msg.To == "" {
		return "", errors.New("recipient address is empty")
	}

	messageID := NewMessageID(m.from)

	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.from, m.fromName)
	gm.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetHeader("Message-Id", messageID)
	gm.SetBody("text/html", msg.HTML)

	// gomail has no context support; the send finishes in the background
	// when ctx is done first.
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(gm)
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("smtp send to %s: %w", msg.To, err)
		}
		m.logger.Debug("email sent", slog.String("message_id", messageID), slog.String("subject", msg.Subject))
		return messageID, nil
	case <-ctx.Done():
		return "", fmt.Errorf("smtp send to %s: %w", msg.To, ctx.Err())
	}
}

// NewMessageID returns an RFC 5322 Message-Id in the sender's domain.
func NewMessageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

// NopMailer reports every send as failed.
type NopMailer struct{}

func (NopMailer) Send(_ context.Context, msg Message) (string, error) {
	applog.WithComponent("mailer").Info("email not sent, transport not configured", slog.String("subject", msg.Subject))
	return "", ErrNotConfigured
}
