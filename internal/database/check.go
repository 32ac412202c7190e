package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TableStatus reports whether a required table exists.
type TableStatus struct {
	Name   string
	Exists bool
}

// CheckTables looks up every required table in the current schema search path.
func CheckTables(ctx context.Context, pool *pgxpool.Pool) ([]TableStatus, error) {
	statuses := make([]TableStatus, 0, len(RequiredTables))
	for _, name := range RequiredTables {
		var exists bool
		err := pool.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, name).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check table %s: %w", name, err)
		}
		statuses = append(statuses, TableStatus{Name: name, Exists: exists})
	}
	return statuses, nil
}

// Missing returns the names of tables that do not exist.
func Missing(statuses []TableStatus) []string {
	var missing []string
	for _, s := range statuses {
		if !s.Exists {
			missing = append(missing, s.Name)
		}
	}
	return missing
}

// HealthCheck performs a lightweight read against personal_info and returns
// the number of rows it saw.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM personal_info`).Scan(&count); err != nil {
		return 0, fmt.Errorf("health check failed: %w", err)
	}
	return count, nil
}
