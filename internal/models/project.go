package models

import "time"

// Project is a portfolio entry. Projects and web projects share this shape
// and live in separate tables.
type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies"`
	GithubURL    string    `json:"githubUrl"`
	LiveURL      string    `json:"liveUrl"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProjectInput is a partial project. Nil fields are left unchanged on update.
type ProjectInput struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Image        *string  `json:"image"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"githubUrl" binding:"omitempty,optional_url"`
	LiveURL      *string  `json:"liveUrl" binding:"omitempty,optional_url"`
	Category     *string  `json:"category"`
}
