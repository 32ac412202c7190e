package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/database"
)

type HealthRepository struct {
	pool *pgxpool.Pool
}

func NewHealthRepository(pool *pgxpool.Pool) *HealthRepository {
	return &HealthRepository{pool: pool}
}

// Check returns "connected" when the database answers a read.
func (r *HealthRepository) Check(ctx context.Context) (string, error) {
	if _, err := database.HealthCheck(ctx, r.pool); err != nil {
		return "", apperrors.Storage("Database connection failed", err)
	}
	return "connected", nil
}
