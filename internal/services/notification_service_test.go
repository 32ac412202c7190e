package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_api/internal/config"
	"portfolio_api/internal/mailer"
)

func newTestNotifications(t *testing.T, m mailer.Mailer) *NotificationService {
	t.Helper()
	svc, err := NewNotificationService(m, config.MailConfig{
		AdminEmail:    "owner@tech24.dev",
		BrandName:     "TECH24",
		OwnerName:     "Jordan Lee",
		OwnerTitle:    "Full Stack Developer",
		OwnerLocation: "Coimbatore",
		Timeout:       time.Second,
	})
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC) }
	return svc
}

func TestNewNotificationServiceRendersEveryTemplate(t *testing.T) {
	svc, err := NewNotificationService(&fakeMailer{}, config.MailConfig{})
	require.NoError(t, err)

	form := FormData{
		Name:                   "Ada",
		Email:                  "ada@example.com",
		Message:                "hello",
		ProjectTitle:           "Shop",
		ProjectDescription:     "storefront",
		ExistingProjectDetails: "legacy PHP",
	}
	for _, tc := range []struct {
		name string
		kind FormKind
	}{
		{tmplContactForm, FormContact},
		{tmplProjectBooking, FormProject},
		{tmplAutoReply, FormContact},
		{tmplAutoReply, FormProject},
	} {
		html, err := svc.Render(tc.name, tc.kind, form)
		require.NoError(t, err, tc.name)
		assert.Contains(t, html, "Ada", tc.name)
		assert.Contains(t, html, "Portfolio", tc.name)
	}
}

func TestNotifyAdminContact(t *testing.T) {
	m := &fakeMailer{}
	svc := newTestNotifications(t, m)

	res := svc.NotifyAdmin(context.Background(), FormContact, FormData{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "line one\nline two",
	})
	require.True(t, res.Success)
	assert.Equal(t, "<id-owner@tech24.dev>", res.MessageID)

	sent := m.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "owner@tech24.dev", sent[0].To)
	assert.Equal(t, "ada@example.com", sent[0].ReplyTo)
	assert.Equal(t, "New Contact Form Submission from Ada", sent[0].Subject)
	assert.Contains(t, sent[0].HTML, "line one<br>line two")
	assert.Contains(t, sent[0].HTML, "General Inquiry")
	assert.Contains(t, sent[0].HTML, "May 1, 2024")
}

func TestNotifyAdminBookingPlaceholders(t *testing.T) {
	m := &fakeMailer{}
	svc := newTestNotifications(t, m)

	res := svc.NotifyAdmin(context.Background(), FormProject, FormData{
		Name:               "Ada",
		Email:              "ada@example.com",
		ProjectTitle:       "Store",
		ProjectDescription: "Sell things",
	})
	require.True(t, res.Success)

	msg := m.messages()[0]
	assert.Equal(t, "New Project Booking: Store", msg.Subject)
	assert.Contains(t, msg.HTML, "Not provided")
	assert.Contains(t, msg.HTML, "Not specified")
	assert.NotContains(t, msg.HTML, "Existing Project Details")
}

func TestNotifyClientAutoReply(t *testing.T) {
	m := &fakeMailer{}
	svc := newTestNotifications(t, m)

	res := svc.NotifyClient(context.Background(), FormProject, FormData{Name: "Ada", Email: "ada@example.com"})
	require.True(t, res.Success)

	msg := m.messages()[0]
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, "Thank you for contacting TECH24 - Project booking confirmed", msg.Subject)
	assert.Contains(t, msg.HTML, "Project Booking Confirmed")
	assert.Contains(t, msg.HTML, "Provide timeline and pricing")
	assert.Contains(t, msg.HTML, "Jordan Lee")
	assert.Contains(t, msg.HTML, "Full Stack Developer | TECH24")

	res = svc.NotifyClient(context.Background(), FormContact, FormData{Name: "Ada", Email: "ada@example.com"})
	require.True(t, res.Success)
	msg = m.messages()[1]
	assert.Equal(t, "Thank you for contacting TECH24 - We received your message", msg.Subject)
	assert.Contains(t, msg.HTML, "Message Received")
	assert.NotContains(t, msg.HTML, "Provide timeline and pricing")
}

func TestRenderEscapesSubmittedFields(t *testing.T) {
	svc := newTestNotifications(t, &fakeMailer{})
	form := FormData{
		Name:                   `<script>alert("name")</script>`,
		Email:                  "x@example.com",
		Subject:                "<b>hi</b>",
		Message:                "<script>alert(1)</script>\n<img src=x onerror=alert(2)>",
		ProjectTitle:           "<i>t</i>",
		ProjectDescription:     "<script>steal()</script>",
		ExistingProjectDetails: "<iframe src=evil>",
	}

	for _, tc := range []struct {
		name string
		kind FormKind
	}{
		{tmplContactForm, FormContact},
		{tmplProjectBooking, FormProject},
		{tmplAutoReply, FormContact},
		{tmplAutoReply, FormProject},
	} {
		html, err := svc.Render(tc.name, tc.kind, form)
		require.NoError(t, err, tc.name)
		assert.NotContains(t, html, "<script>", tc.name)
		assert.NotContains(t, html, "<img", tc.name)
		assert.NotContains(t, html, "<iframe", tc.name)
		assert.NotContains(t, html, "<b>hi", tc.name)
	}

	html, err := svc.Render(tmplContactForm, FormContact, form)
	require.NoError(t, err)
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;<br>&lt;img")
}

func TestNotifySubmissionReportsEachSend(t *testing.T) {
	m := &fakeMailer{failTo: map[string]error{"ada@example.com": errRelayDown}}
	svc := newTestNotifications(t, m)

	out := svc.NotifySubmission(context.Background(), FormContact, FormData{Name: "Ada", Email: "ada@example.com", Message: "hi"})
	assert.True(t, out.Admin.Success)
	assert.False(t, out.Client.Success)
	assert.Contains(t, out.Client.Error, "relay down")
}

func TestNotifySubmissionIsBoundedByTimeout(t *testing.T) {
	svc := newTestNotifications(t, &fakeMailer{blocking: true})
	svc.cfg.Timeout = 50 * time.Millisecond

	start := time.Now()
	out := svc.NotifySubmission(context.Background(), FormProject, FormData{Name: "Ada", Email: "ada@example.com"})
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.False(t, out.Admin.Success)
	assert.False(t, out.Client.Success)
}

func TestNotifyAdminWithoutAdminEmail(t *testing.T) {
	m := &fakeMailer{}
	svc := newTestNotifications(t, m)
	svc.cfg.AdminEmail = ""

	res := svc.NotifyAdmin(context.Background(), FormContact, FormData{Name: "Ada"})
	assert.False(t, res.Success)
	assert.Empty(t, m.messages())
}

func TestSubjectIsSingleLine(t *testing.T) {
	m := &fakeMailer{}
	svc := newTestNotifications(t, m)

	svc.NotifyAdmin(context.Background(), FormContact, FormData{Name: "Ada\r\nBcc: victim@example.com", Email: "a@b.com", Message: "x"})
	subject := m.messages()[0].Subject
	assert.False(t, strings.ContainsAny(subject, "\r\n"))
}
