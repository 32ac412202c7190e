package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/models"
)

type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

func (r *SkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	query := `
		SELECT id, name, level, COALESCE(category, '')
		FROM skills
		ORDER BY name ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch skills", err)
	}
	defer rows.Close()

	skills := []models.Skill{}
	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.Level, &skill.Category); err != nil {
			return nil, apperrors.Storage("failed to read skills", err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to fetch skills", err)
	}

	return skills, nil
}

func (r *SkillRepository) Create(ctx context.Context, in models.SkillInput) (*models.Skill, error) {
	query := `
		INSERT INTO skills (name, level, category)
		VALUES ($1, COALESCE($2, 0), $3)
		RETURNING id, name, level, COALESCE(category, '')
	`

	var skill models.Skill
	err := r.pool.QueryRow(ctx, query, in.Name, in.Level, in.Category).Scan(
		&skill.ID,
		&skill.Name,
		&skill.Level,
		&skill.Category,
	)
	if err != nil {
		return nil, apperrors.Storage("failed to create skill", err)
	}

	return &skill, nil
}

func (r *SkillRepository) Update(ctx context.Context, id int64, in models.SkillInput) (*models.Skill, error) {
	query := `
		UPDATE skills SET
			name = COALESCE($2, name),
			level = COALESCE($3, level),
			category = COALESCE($4, category),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, level, COALESCE(category, '')
	`

	var skill models.Skill
	err := r.pool.QueryRow(ctx, query, id, in.Name, in.Level, in.Category).Scan(
		&skill.ID,
		&skill.Name,
		&skill.Level,
		&skill.Category,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Skill not found")
		}
		return nil, apperrors.Storage("failed to update skill", err)
	}

	return &skill, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return apperrors.Storage("failed to delete skill", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Skill not found")
	}
	return nil
}
