package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/models"
)

const personalInfoColumns = `id, COALESCE(name, ''), COALESCE(title, ''), COALESCE(subtitle, ''),
	COALESCE(greeting, ''), COALESCE(description, ''), COALESCE(profile_image, ''), updated_at`

type PersonalInfoRepository struct {
	pool *pgxpool.Pool
}

func NewPersonalInfoRepository(pool *pgxpool.Pool) *PersonalInfoRepository {
	return &PersonalInfoRepository{pool: pool}
}

// Get returns the profile row, or nil when none has been saved yet.
func (r *PersonalInfoRepository) Get(ctx context.Context) (*models.PersonalInfo, error) {
	query := `SELECT ` + personalInfoColumns + ` FROM personal_info WHERE singleton LIMIT 1`

	info, err := scanPersonalInfo(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage("failed to fetch personal info", err)
	}

	return info, nil
}

// Upsert inserts the profile row or updates the existing one in place.
// Nil fields keep their stored value.
func (r *PersonalInfoRepository) Upsert(ctx context.Context, in models.PersonalInfoInput) (*models.PersonalInfo, error) {
	query := `
		INSERT INTO personal_info (singleton, name, title, subtitle, greeting, description, profile_image)
		VALUES (TRUE, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (singleton) DO UPDATE SET
			name = COALESCE(EXCLUDED.name, personal_info.name),
			title = COALESCE(EXCLUDED.title, personal_info.title),
			subtitle = COALESCE(EXCLUDED.subtitle, personal_info.subtitle),
			greeting = COALESCE(EXCLUDED.greeting, personal_info.greeting),
			description = COALESCE(EXCLUDED.description, personal_info.description),
			profile_image = COALESCE(EXCLUDED.profile_image, personal_info.profile_image),
			updated_at = NOW()
		RETURNING ` + personalInfoColumns

	info, err := scanPersonalInfo(r.pool.QueryRow(ctx, query,
		in.Name,
		in.Title,
		in.Subtitle,
		in.Greeting,
		in.Description,
		in.ProfileImage,
	))
	if err != nil {
		return nil, apperrors.Storage("failed to update personal info", err)
	}

	return info, nil
}

func scanPersonalInfo(row pgx.Row) (*models.PersonalInfo, error) {
	var info models.PersonalInfo
	err := row.Scan(
		&info.ID,
		&info.Name,
		&info.Title,
		&info.Subtitle,
		&info.Greeting,
		&info.Description,
		&info.ProfileImage,
		&info.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
