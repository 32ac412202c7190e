package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/config"
	applog "portfolio_api/internal/log"
	"portfolio_api/internal/mailer"
	"portfolio_api/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// FormKind selects the templates used for a submission.
type FormKind string

const (
	FormContact FormKind = "contact"
	FormProject FormKind = "project"
)

const (
	tmplContactForm    = "contact_form.html"
	tmplProjectBooking = "project_booking.html"
	tmplAutoReply      = "auto_reply.html"
)

// FormData is the submitted form as rendered into email bodies.
type FormData struct {
	Name                   string
	Email                  string
	Phone                  string
	Subject                string
	Message                string
	ProjectTitle           string
	ProjectDescription     string
	ProjectType            string
	Subcategory            string
	ExistingProjectDetails string
	LanguagesUsed          string
}

func ContactFormData(s *models.ContactSubmission) FormData {
	return FormData{Name: s.Name, Email: s.Email, Subject: s.Subject, Message: s.Message}
}

func BookingFormData(b *models.ProjectBooking) FormData {
	return FormData{
		Name:                   b.Name,
		Email:                  b.Email,
		Phone:                  b.Phone,
		ProjectTitle:           b.ProjectTitle,
		ProjectDescription:     b.ProjectDescription,
		ProjectType:            b.ProjectType,
		Subcategory:            b.Subcategory,
		ExistingProjectDetails: b.ExistingProjectDetails,
		LanguagesUsed:          b.LanguagesUsed,
	}
}

// NotificationResult reports the outcome of one send. It never carries a
// failure back into the HTTP response.
type NotificationResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SubmissionNotifications holds the results of the admin and client sends.
type SubmissionNotifications struct {
	Admin  NotificationResult
	Client NotificationResult
}

type emailData struct {
	Kind          FormKind
	Form          FormData
	Brand         string
	OwnerName     string
	OwnerTitle    string
	OwnerLocation string
	ContactEmail  string
	SubmittedAt   string
}

type NotificationService struct {
	mailer    mailer.Mailer
	templates *template.Template
	cfg       config.MailConfig
	now       func() time.Time
	logger    *slog.Logger
}

func NewNotificationService(m mailer.Mailer, cfg config.MailConfig) (*NotificationService, error) {
	tmpl, err := template.New("email").Funcs(template.FuncMap{
		"nl2br": nl2br,
		"field": func(label, value string) map[string]string {
			return map[string]string{"Label": label, "Value": value}
		},
		"textBlock": func(label, value, accent string) map[string]string {
			return map[string]string{"Label": label, "Value": value, "Accent": accent}
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	if cfg.BrandName == "" {
		cfg.BrandName = "Portfolio"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &NotificationService{
		mailer:    m,
		templates: tmpl,
		cfg:       cfg,
		now:       time.Now,
		logger:    applog.WithComponent("notifications"),
	}, nil
}

// NotifyAdmin sends the submission to the configured admin address.
func (s *NotificationService) NotifyAdmin(ctx context.Context, kind FormKind, form FormData) NotificationResult {
	if s.cfg.AdminEmail == "" {
		return s.failed(kind, "admin", apperrors.New(apperrors.KindNotification, "admin email not configured"))
	}

	name, subject := tmplContactForm, "New Contact Form Submission from "+form.Name
	if kind == FormProject {
		name, subject = tmplProjectBooking, "New Project Booking: "+form.ProjectTitle
	}

	return s.send(ctx, kind, "admin", name, mailer.Message{
		To:      s.cfg.AdminEmail,
		ReplyTo: form.Email,
		Subject: subject,
	}, form)
}

// NotifyClient sends the auto-reply to the submitter.
func (s *NotificationService) NotifyClient(ctx context.Context, kind FormKind, form FormData) NotificationResult {
	suffix := "We received your message"
	if kind == FormProject {
		suffix = "Project booking confirmed"
	}

	return s.send(ctx, kind, "client", tmplAutoReply, mailer.Message{
		To:      form.Email,
		Subject: fmt.Sprintf("Thank you for contacting %s - %s", s.cfg.BrandName, suffix),
	}, form)
}

// NotifySubmission sends the admin notification and the auto-reply
// concurrently and waits for both, bounded by the mail timeout.
func (s *NotificationService) NotifySubmission(ctx context.Context, kind FormKind, form FormData) SubmissionNotifications {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	var out SubmissionNotifications
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.Admin = s.NotifyAdmin(gctx, kind, form)
		return nil
	})
	g.Go(func() error {
		out.Client = s.NotifyClient(gctx, kind, form)
		return nil
	})
	_ = g.Wait()

	s.logger.Info("submission notifications finished",
		slog.String("form", string(kind)),
		slog.Bool("admin", out.Admin.Success),
		slog.Bool("client", out.Client.Success),
	)
	return out
}

// Render executes the named template for form.
func (s *NotificationService) Render(name string, kind FormKind, form FormData) (string, error) {
	data := emailData{
		Kind:          kind,
		Form:          form,
		Brand:         s.cfg.BrandName,
		OwnerName:     s.cfg.OwnerName,
		OwnerTitle:    s.cfg.OwnerTitle,
		OwnerLocation: s.cfg.OwnerLocation,
		ContactEmail:  s.cfg.AdminEmail,
		SubmittedAt:   s.now().Format("Jan 2, 2006, 3:04:05 PM MST"),
	}
	if data.Kind == FormContact && data.Form.Subject == "" {
		data.Form.Subject = models.DefaultContactSubject
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (s *NotificationService) send(ctx context.Context, kind FormKind, role, tmpl string, msg mailer.Message, form FormData) NotificationResult {
	html, err := s.Render(tmpl, kind, form)
	if err != nil {
		return s.failed(kind, role, apperrors.Wrap(apperrors.KindNotification, "failed to render email", err))
	}
	msg.HTML = html
	msg.Subject = singleLine(msg.Subject)

	id, err := s.mailer.Send(ctx, msg)
	if err != nil {
		return s.failed(kind, role, apperrors.Wrap(apperrors.KindNotification, "failed to send email", err))
	}
	return NotificationResult{Success: true, MessageID: id}
}

func (s *NotificationService) failed(kind FormKind, role string, err error) NotificationResult {
	s.logger.Warn("email notification failed",
		slog.String("form", string(kind)),
		slog.String("recipient", role),
		slog.Any("error", err),
	)
	return NotificationResult{Success: false, Error: err.Error()}
}

// nl2br escapes s and turns line breaks into <br>.
func nl2br(s string) template.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
