package application

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrForbidden         = errors.New("role not permitted for current status")
	ErrNotAssigned       = errors.New("application not assigned to this officer")
	ErrInvalidTransition = errors.New("action not allowed from current status")
	ErrConflict          = errors.New("application modified concurrently")
	ErrMissingAssignee   = errors.New("assign requires assigned_to")
	ErrNotDeletable      = errors.New("only new submissions can be deleted")
)

type Status string

const (
	StatusNewSubmission   Status = "new_submission"
	StatusPOReview        Status = "po_review"
	StatusManagerReview   Status = "manager_review"
	StatusFinanceReview   Status = "finance_review"
	StatusHospitalReview  Status = "hospital_review"
	StatusExecutiveReview Status = "executive_review"
	StatusCEOReview       Status = "ceo_review"
	StatusFounderReview   Status = "founder_review"
	StatusEditRequested   Status = "edit_requested"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusDisbursed       Status = "disbursed"
	StatusCompleted       Status = "completed"
)

type Action string

const (
	ActionAssign      Action = "assign"
	ActionApprove     Action = "approve"
	ActionReject      Action = "reject"
	ActionRequestEdit Action = "request_edit"
	ActionResubmit    Action = "resubmit"
	ActionDisburse    Action = "disburse"
	ActionComplete    Action = "complete"
)

type Type string

const (
	TypeMedicalAid      Type = "medical_aid"
	TypeEducationGrant  Type = "education_grant"
	TypeBusinessGrant   Type = "business_grant"
	TypeScholarship     Type = "scholarship"
	TypeEmergencyRelief Type = "emergency_relief"
)

type Application struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	ApplicationID string  `gorm:"size:32;uniqueIndex:ux_applications_app_id_active" json:"application_id"`
	ApplicantID   string  `gorm:"size:32;index:idx_applications_applicant" json:"applicant_id"`
	Type          Type    `gorm:"type:varchar(32);not null" json:"type"`
	Title         string  `gorm:"size:255" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`

	AmountRequested float64  `gorm:"type:decimal(18,2)" json:"amount_requested"`
	AmountApproved  *float64 `gorm:"type:decimal(18,2)" json:"amount_approved,omitempty"`

	// Status only ever changes through the workflow executor; nothing else
	// writes this column.
	Status             Status  `gorm:"type:varchar(32);default:'new_submission';index:idx_applications_status" json:"status"`
	AssignedReviewerID *string `gorm:"size:32;index:idx_applications_assignee" json:"assigned_reviewer_id,omitempty"`

	// One comment + review-timestamp pair per review stage. Transitions out of
	// a stage may write that stage's pair, never another stage's.
	OfficerComments     *string    `gorm:"type:text;column:officer_comments" json:"officer_comments,omitempty"`
	OfficerReviewedAt   *time.Time `gorm:"column:officer_reviewed_at" json:"officer_reviewed_at,omitempty"`
	ManagerComments     *string    `gorm:"type:text;column:manager_comments" json:"manager_comments,omitempty"`
	ManagerReviewedAt   *time.Time `gorm:"column:manager_reviewed_at" json:"manager_reviewed_at,omitempty"`
	FinanceComments     *string    `gorm:"type:text;column:finance_comments" json:"finance_comments,omitempty"`
	FinanceReviewedAt   *time.Time `gorm:"column:finance_reviewed_at" json:"finance_reviewed_at,omitempty"`
	HospitalComments    *string    `gorm:"type:text;column:hospital_comments" json:"hospital_comments,omitempty"`
	HospitalReviewedAt  *time.Time `gorm:"column:hospital_reviewed_at" json:"hospital_reviewed_at,omitempty"`
	ExecutiveComments   *string    `gorm:"type:text;column:executive_comments" json:"executive_comments,omitempty"`
	ExecutiveReviewedAt *time.Time `gorm:"column:executive_reviewed_at" json:"executive_reviewed_at,omitempty"`
	CEOComments         *string    `gorm:"type:text;column:ceo_comments" json:"ceo_comments,omitempty"`
	CEOReviewedAt       *time.Time `gorm:"column:ceo_reviewed_at" json:"ceo_reviewed_at,omitempty"`
	FounderComments     *string    `gorm:"type:text;column:founder_comments" json:"founder_comments,omitempty"`
	FounderReviewedAt   *time.Time `gorm:"column:founder_reviewed_at" json:"founder_reviewed_at,omitempty"`

	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`

	// Optimistic lock column; Save refuses to commit over a stale version.
	Version uint64 `gorm:"not null;default:1" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy *string        `gorm:"size:32" json:"-"`
}

func (Application) TableName() string { return "applications" }

// Terminal reports whether no further workflow action is ever legal.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

func (t Type) Valid() bool {
	switch t {
	case TypeMedicalAid, TypeEducationGrant, TypeBusinessGrant, TypeScholarship, TypeEmergencyRelief:
		return true
	}
	return false
}
