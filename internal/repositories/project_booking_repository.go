package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/models"
)

type ProjectBookingRepository struct {
	pool *pgxpool.Pool
}

func NewProjectBookingRepository(pool *pgxpool.Pool) *ProjectBookingRepository {
	return &ProjectBookingRepository{pool: pool}
}

// Create stores the booking. Empty optional fields are stored as NULL.
func (r *ProjectBookingRepository) Create(ctx context.Context, booking *models.ProjectBooking) error {
	query := `
		INSERT INTO project_bookings (
			name, phone, email, project_title, project_description,
			project_type, subcategory, existing_project_details, languages_used
		)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		booking.Name,
		booking.Phone,
		booking.Email,
		booking.ProjectTitle,
		booking.ProjectDescription,
		booking.ProjectType,
		booking.Subcategory,
		booking.ExistingProjectDetails,
		booking.LanguagesUsed,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return apperrors.Storage("failed to save project booking", err)
	}

	return nil
}

func (r *ProjectBookingRepository) List(ctx context.Context) ([]models.ProjectBooking, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), email, project_title, project_description,
			COALESCE(project_type, ''), COALESCE(subcategory, ''),
			COALESCE(existing_project_details, ''), COALESCE(languages_used, ''), created_at
		FROM project_bookings
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch project bookings", err)
	}
	defer rows.Close()

	bookings := []models.ProjectBooking{}
	for rows.Next() {
		var b models.ProjectBooking
		err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Phone,
			&b.Email,
			&b.ProjectTitle,
			&b.ProjectDescription,
			&b.ProjectType,
			&b.Subcategory,
			&b.ExistingProjectDetails,
			&b.LanguagesUsed,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Storage("failed to read project bookings", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to fetch project bookings", err)
	}

	return bookings, nil
}
