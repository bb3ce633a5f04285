// Package domain holds DTOs for contact http and service contracts
package domain

import "time"

// SubmissionInput is the contact form payload
type SubmissionInput struct {
	Name            string `json:"name" validate:"required,min=2,max=100" example:"Ada Lovelace"`
	Email           string `json:"email" validate:"required,email,max=255" example:"ada@example.com"`
	Company         string `json:"company,omitempty" validate:"omitempty,max=100" example:"Analytical Engines Ltd"`
	ServiceInterest string `json:"service_interest" validate:"required,oneof=ai-analysis automation-setup custom-ml consulting other" example:"automation-setup"`
	Message         string `json:"message" validate:"required,min=10,max=1000" example:"We spend 30 hours a week on manual reconciliation."`
}

// Submission is a stored contact submission
type Submission struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Company         string    `json:"company,omitempty"`
	ServiceInterest string    `json:"service_interest"`
	Message         string    `json:"message"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// Receipt is the success acknowledgement for a submission
type Receipt struct {
	Message string `json:"message"`
}

// RecentQuery bounds the admin listing
type RecentQuery struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"25"`
}
