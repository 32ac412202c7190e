package services

import (
	"context"
	"log/slog"
	"strings"

	"portfolio_api/internal/apperrors"
	applog "portfolio_api/internal/log"
	"portfolio_api/internal/models"
)

type ContactStore interface {
	Create(ctx context.Context, submission *models.ContactSubmission) error
	List(ctx context.Context) ([]models.ContactSubmission, error)
}

type BookingStore interface {
	Create(ctx context.Context, booking *models.ProjectBooking) error
	List(ctx context.Context) ([]models.ProjectBooking, error)
}

// Notifier dispatches the emails for a stored submission.
type Notifier interface {
	NotifySubmission(ctx context.Context, kind FormKind, form FormData) SubmissionNotifications
}

// SubmissionService stores contact and booking forms, then notifies on a
// best-effort basis.
type SubmissionService struct {
	contacts ContactStore
	bookings BookingStore
	notifier Notifier
	logger   *slog.Logger
}

func NewSubmissionService(contacts ContactStore, bookings BookingStore, notifier Notifier) *SubmissionService {
	return &SubmissionService{
		contacts: contacts,
		bookings: bookings,
		notifier: notifier,
		logger:   applog.WithComponent("submissions"),
	}
}

func (s *SubmissionService) SubmitContact(ctx context.Context, in models.ContactInput) (*models.ContactSubmission, error) {
	submission := &models.ContactSubmission{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	}
	if submission.Name == "" || submission.Email == "" || strings.TrimSpace(submission.Message) == "" {
		return nil, apperrors.Validation("Required fields missing (name, email, message)")
	}
	if submission.Subject == "" {
		submission.Subject = models.DefaultContactSubject
	}

	if err := s.contacts.Create(ctx, submission); err != nil {
		return nil, err
	}

	s.logger.Info("contact submission received",
		slog.Int64("id", submission.ID),
		slog.String("email", submission.Email),
		slog.String("subject", submission.Subject),
	)

	s.notify(ctx, FormContact, ContactFormData(submission))
	return submission, nil
}

func (s *SubmissionService) SubmitBooking(ctx context.Context, in models.ProjectBookingInput) (*models.ProjectBooking, error) {
	booking := &models.ProjectBooking{
		Name:                   strings.TrimSpace(in.Name),
		Phone:                  strings.TrimSpace(in.Phone),
		Email:                  strings.TrimSpace(in.Email),
		ProjectTitle:           strings.TrimSpace(in.ProjectTitle),
		ProjectDescription:     in.ProjectDescription,
		ProjectType:            strings.TrimSpace(in.ProjectType),
		Subcategory:            strings.TrimSpace(in.Subcategory),
		ExistingProjectDetails: in.ExistingProjectDetails,
		LanguagesUsed:          strings.TrimSpace(in.LanguagesUsed),
	}
	if booking.Name == "" || booking.Email == "" || booking.ProjectTitle == "" || strings.TrimSpace(booking.ProjectDescription) == "" {
		return nil, apperrors.Validation("Required fields missing (name, email, projectTitle, projectDescription)")
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("project booking received",
		slog.Int64("id", booking.ID),
		slog.String("email", booking.Email),
		slog.String("project_type", booking.ProjectType),
	)

	s.notify(ctx, FormProject, BookingFormData(booking))
	return booking, nil
}

func (s *SubmissionService) ListContacts(ctx context.Context) ([]models.ContactSubmission, error) {
	return s.contacts.List(ctx)
}

func (s *SubmissionService) ListBookings(ctx context.Context) ([]models.ProjectBooking, error) {
	return s.bookings.List(ctx)
}

// notify runs after the write has succeeded. Its outcome never reaches the
// caller, and a client disconnect does not cancel the sends.
func (s *SubmissionService) notify(ctx context.Context, kind FormKind, form FormData) {
	if s.notifier == nil {
		return
	}
	s.notifier.NotifySubmission(context.WithoutCancel(ctx), kind, form)
}
