package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/models"
)

type ToolRepository struct {
	pool *pgxpool.Pool
}

func NewToolRepository(pool *pgxpool.Pool) *ToolRepository {
	return &ToolRepository{pool: pool}
}

func (r *ToolRepository) List(ctx context.Context) ([]models.Tool, error) {
	query := `
		SELECT id, name, COALESCE(icon, ''), COALESCE(category, '')
		FROM tools
		ORDER BY name ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch tools", err)
	}
	defer rows.Close()

	tools := []models.Tool{}
	for rows.Next() {
		var tool models.Tool
		if err := rows.Scan(&tool.ID, &tool.Name, &tool.Icon, &tool.Category); err != nil {
			return nil, apperrors.Storage("failed to read tools", err)
		}
		tools = append(tools, tool)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to fetch tools", err)
	}

	return tools, nil
}

func (r *ToolRepository) Create(ctx context.Context, in models.ToolInput) (*models.Tool, error) {
	query := `
		INSERT INTO tools (name, icon, category)
		VALUES ($1, $2, $3)
		RETURNING id, name, COALESCE(icon, ''), COALESCE(category, '')
	`

	var tool models.Tool
	err := r.pool.QueryRow(ctx, query, in.Name, in.Icon, in.Category).Scan(
		&tool.ID,
		&tool.Name,
		&tool.Icon,
		&tool.Category,
	)
	if err != nil {
		return nil, apperrors.Storage("failed to create tool", err)
	}

	return &tool, nil
}

func (r *ToolRepository) Update(ctx context.Context, id int64, in models.ToolInput) (*models.Tool, error) {
	query := `
		UPDATE tools SET
			name = COALESCE($2, name),
			icon = COALESCE($3, icon),
			category = COALESCE($4, category),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, COALESCE(icon, ''), COALESCE(category, '')
	`

	var tool models.Tool
	err := r.pool.QueryRow(ctx, query, id, in.Name, in.Icon, in.Category).Scan(
		&tool.ID,
		&tool.Name,
		&tool.Icon,
		&tool.Category,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Tool not found")
		}
		return nil, apperrors.Storage("failed to update tool", err)
	}

	return &tool, nil
}

func (r *ToolRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return apperrors.Storage("failed to delete tool", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Tool not found")
	}
	return nil
}
