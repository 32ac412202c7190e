package models

import "time"

// PersonalInfo is the site owner's profile. At most one row exists.
type PersonalInfo struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Greeting     string    `json:"greeting"`
	Description  string    `json:"description"`
	ProfileImage string    `json:"profileImage"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PersonalInfoInput struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Subtitle     *string `json:"subtitle"`
	Greeting     *string `json:"greeting"`
	Description  *string `json:"description"`
	ProfileImage *string `json:"profileImage"`
}
