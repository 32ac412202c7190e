package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/models"
)

const (
	projectsTable    = "projects"
	webProjectsTable = "web_projects"
)

const projectColumns = `id, title, COALESCE(description, ''), COALESCE(image, ''), technologies,
	COALESCE(github_url, ''), COALESCE(live_url, ''), COALESCE(category, ''), created_at, updated_at`

// ProjectRepository stores projects. Projects and web projects share the
// same row shape, so one repository serves both tables.
type ProjectRepository struct {
	pool  *pgxpool.Pool
	table string
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool, table: projectsTable}
}

func NewWebProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool, table: webProjectsTable}
}

func (r *ProjectRepository) ident() string {
	return pgx.Identifier{r.table}.Sanitize()
}

func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at DESC, id DESC`, projectColumns, r.ident())

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch "+r.table, err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, apperrors.Storage("failed to read "+r.table, err)
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to fetch "+r.table, err)
	}

	return projects, nil
}

func (r *ProjectRepository) Create(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, description, image, technologies, github_url, live_url, category)
		VALUES ($1, $2, $3, COALESCE($4::text[], '{}'), $5, $6, $7)
		RETURNING %s
	`, r.ident(), projectColumns)

	project, err := scanProject(r.pool.QueryRow(ctx, query,
		in.Title,
		in.Description,
		in.Image,
		in.Technologies,
		in.GithubURL,
		in.LiveURL,
		in.Category,
	))
	if err != nil {
		return nil, apperrors.Storage("failed to create project", err)
	}

	return project, nil
}

// Update applies the non-nil fields of in and refreshes updated_at.
func (r *ProjectRepository) Update(ctx context.Context, id int64, in models.ProjectInput) (*models.Project, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			image = COALESCE($4, image),
			technologies = COALESCE($5::text[], technologies),
			github_url = COALESCE($6, github_url),
			live_url = COALESCE($7, live_url),
			category = COALESCE($8, category),
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, r.ident(), projectColumns)

	project, err := scanProject(r.pool.QueryRow(ctx, query,
		id,
		in.Title,
		in.Description,
		in.Image,
		in.Technologies,
		in.GithubURL,
		in.LiveURL,
		in.Category,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Project not found")
		}
		return nil, apperrors.Storage("failed to update project", err)
	}

	return project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.ident())

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return apperrors.Storage("failed to delete project", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Project not found")
	}

	return nil
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Image,
		&project.Technologies,
		&project.GithubURL,
		&project.LiveURL,
		&project.Category,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	return &project, nil
}
