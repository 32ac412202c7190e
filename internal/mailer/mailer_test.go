package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_api/internal/config"
)

func TestNewMessageID(t *testing.T) {
	id := NewMessageID("hello@tech24.dev")
	assert.True(t, strings.HasPrefix(id, "<"))
	assert.True(t, strings.HasSuffix(id, "@tech24.dev>"))
	assert.NotEqual(t, id, NewMessageID("hello@tech24.dev"))

	assert.True(t, strings.HasSuffix(NewMessageID(""), "@localhost>"))
	assert.True(t, strings.HasSuffix(NewMessageID("broken@"), "@localhost>"))
}

func TestNewWithoutCredentialsIsNop(t *testing.T) {
	m := New(config.MailConfig{Host: "smtp.example.com", Port: 587})
	require.IsType(t, NopMailer{}, m)

	id, err := m.Send(context.Background(), Message{To: "a@b.com", Subject: "hi"})
	assert.Empty(t, id)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewWithCredentialsIsSMTP(t *testing.T) {
	m := New(config.MailConfig{Host: "smtp.example.com", Port: 465, Username: "u", Password: "p", From: "u@example.com"})
	s, ok := m.(*SMTPMailer)
	require.True(t, ok)
	assert.True(t, s.dialer.SSL)
	assert.Equal(t, "smtp.example.com", s.dialer.TLSConfig.ServerName)
}

func TestSMTPMailerRejectsEmptyRecipient(t *testing.T) {
	m := NewSMTPMailer(config.MailConfig{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p"})
	_, err := m.Send(context.Background(), Message{Subject: "hi"})
	assert.Error(t, err)
}
