package models

import "time"

type ProjectBooking struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	Phone                  string    `json:"phone"`
	Email                  string    `json:"email"`
	ProjectTitle           string    `json:"projectTitle"`
	ProjectDescription     string    `json:"projectDescription"`
	ProjectType            string    `json:"projectType"`
	Subcategory            string    `json:"subcategory"`
	ExistingProjectDetails string    `json:"existingProjectDetails"`
	LanguagesUsed          string    `json:"languagesUsed"`
	CreatedAt              time.Time `json:"createdAt"`
}

type ProjectBookingInput struct {
	Name                   string `json:"name" binding:"required,max=255"`
	Phone                  string `json:"phone" binding:"max=20"`
	Email                  string `json:"email" binding:"required,email,max=255"`
	ProjectTitle           string `json:"projectTitle" binding:"required,max=500"`
	ProjectDescription     string `json:"projectDescription" binding:"required"`
	ProjectType            string `json:"projectType" binding:"max=100"`
	Subcategory            string `json:"subcategory" binding:"max=100"`
	ExistingProjectDetails string `json:"existingProjectDetails"`
	LanguagesUsed          string `json:"languagesUsed"`
}
