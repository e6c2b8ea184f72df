package application

import "time"

type StageView struct {
	Stage      string     `json:"stage"`
	Comments   *string    `json:"comments,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

type ApplicationDTO struct {
	ApplicationID   string      `json:"application_id"`
	ApplicantID     string      `json:"applicant_id"`
	Type            string      `json:"type"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	AmountRequested float64     `json:"amount_requested"`
	AmountApproved  *float64    `json:"amount_approved,omitempty"`
	Status          string      `json:"status"`
	AssignedTo      *string     `json:"assigned_reviewer_id,omitempty"`
	Stages          []StageView `json:"stages,omitempty"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
