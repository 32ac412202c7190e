package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	applog "portfolio_api/internal/log"
)

// RunMigrations applies the schema. Every statement is idempotent.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	logger := applog.WithComponent("migrations")

	migrations := []string{
		createPersonalInfoTable,
		createProjectsTable,
		createWebProjectsTable,
		createSkillsTable,
		createToolsTable,
		createContactSubmissionsTable,
		createProjectBookingsTable,
	}

	for i, migration := range migrations {
		logger.Debug("running migration", slog.Int("step", i+1), slog.Int("total", len(migrations)))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("all migrations completed", slog.Int("count", len(migrations)))
	return nil
}

// RequiredTables lists every table the API reads or writes.
var RequiredTables = []string{
	"personal_info",
	"projects",
	"web_projects",
	"skills",
	"tools",
	"contact_submissions",
	"project_bookings",
}

// The singleton column carries a unique constraint, so personal_info can
// never hold more than one row.
const createPersonalInfoTable = `
CREATE TABLE IF NOT EXISTS personal_info (
  id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  singleton BOOLEAN NOT NULL DEFAULT TRUE CHECK (singleton),
  name TEXT,
  title TEXT,
  subtitle TEXT,
  greeting TEXT,
  description TEXT,
  profile_image TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_personal_info_singleton ON personal_info(singleton);
`

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
  id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  image TEXT,
  technologies TEXT[] NOT NULL DEFAULT '{}',
  github_url TEXT,
  live_url TEXT,
  category TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at DESC);
`

const createWebProjectsTable = `
CREATE TABLE IF NOT EXISTS web_projects (
  id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  image TEXT,
  technologies TEXT[] NOT NULL DEFAULT '{}',
  github_url TEXT,
  live_url TEXT,
  category TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_web_projects_created_at ON web_projects(created_at DESC);
`

const createSkillsTable = `
CREATE TABLE IF NOT EXISTS skills (
  id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  name TEXT NOT NULL,
  level INTEGER NOT NULL DEFAULT 0 CHECK (level BETWEEN 0 AND 100),
  category TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_skills_name ON skills(name);
`

const createToolsTable = `
CREATE TABLE IF NOT EXISTS tools (
  id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  name TEXT NOT NULL,
  icon TEXT,
  category TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_tools_name ON tools(name);
`

const createContactSubmissionsTable = `
CREATE TABLE IF NOT EXISTS contact_submissions (
  id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  email VARCHAR(255) NOT NULL,
  subject VARCHAR(500),
  message TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_contact_submissions_created_at ON contact_submissions(created_at DESC);
`

const createProjectBookingsTable = `
CREATE TABLE IF NOT EXISTS project_bookings (
  id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  email VARCHAR(255) NOT NULL,
  phone VARCHAR(20),
  project_title VARCHAR(500) NOT NULL,
  project_description TEXT NOT NULL,
  project_type VARCHAR(100),
  subcategory VARCHAR(100),
  existing_project_details TEXT,
  languages_used TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_project_bookings_created_at ON project_bookings(created_at DESC);
`
