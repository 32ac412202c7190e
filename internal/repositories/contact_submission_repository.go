package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/models"
)

type ContactSubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewContactSubmissionRepository(pool *pgxpool.Pool) *ContactSubmissionRepository {
	return &ContactSubmissionRepository{pool: pool}
}

func (r *ContactSubmissionRepository) Create(ctx context.Context, submission *models.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
	).Scan(&submission.ID, &submission.CreatedAt)
	if err != nil {
		return apperrors.Storage("failed to save contact submission", err)
	}

	return nil
}

func (r *ContactSubmissionRepository) List(ctx context.Context) ([]models.ContactSubmission, error) {
	query := `
		SELECT id, name, email, COALESCE(subject, ''), message, created_at
		FROM contact_submissions
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch contact submissions", err)
	}
	defer rows.Close()

	submissions := []models.ContactSubmission{}
	for rows.Next() {
		var s models.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.CreatedAt); err != nil {
			return nil, apperrors.Storage("failed to read contact submissions", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to fetch contact submissions", err)
	}

	return submissions, nil
}
