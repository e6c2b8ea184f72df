package application

import "time"

// Stage is one of the seven sequential human-review steps. Comment and
// review-timestamp columns are owned by a stage and selected by exhaustive
// switch, so a transition can never write another stage's fields.
type Stage string

const (
	StageOfficer   Stage = "officer"
	StageManager   Stage = "manager"
	StageFinance   Stage = "finance"
	StageHospital  Stage = "hospital"
	StageExecutive Stage = "executive"
	StageCEO       Stage = "ceo"
	StageFounder   Stage = "founder"
)

// OwningStage maps an actionable status to the stage whose comment field a
// transition out of that status writes. new_submission and edit_requested
// reuse the officer field; approved reuses founder; disbursed and completed
// reuse finance. Terminal statuses allow no actions and own nothing.
func OwningStage(s Status) (Stage, bool) {
	switch s {
	case StatusNewSubmission, StatusPOReview, StatusEditRequested:
		return StageOfficer, true
	case StatusManagerReview:
		return StageManager, true
	case StatusFinanceReview, StatusDisbursed, StatusCompleted:
		return StageFinance, true
	case StatusHospitalReview:
		return StageHospital, true
	case StatusExecutiveReview:
		return StageExecutive, true
	case StatusCEOReview:
		return StageCEO, true
	case StatusFounderReview, StatusApproved:
		return StageFounder, true
	}
	return "", false
}

// ReviewStage reports whether acting at status s stamps a review timestamp.
// Only the seven review statuses carry one.
func ReviewStage(s Status) bool {
	switch s {
	case StatusPOReview, StatusManagerReview, StatusFinanceReview, StatusHospitalReview,
		StatusExecutiveReview, StatusCEOReview, StatusFounderReview:
		return true
	}
	return false
}

// SetStageComment writes comment into the field owned by stage.
func (a *Application) SetStageComment(stage Stage, comment string) {
	c := comment
	switch stage {
	case StageOfficer:
		a.OfficerComments = &c
	case StageManager:
		a.ManagerComments = &c
	case StageFinance:
		a.FinanceComments = &c
	case StageHospital:
		a.HospitalComments = &c
	case StageExecutive:
		a.ExecutiveComments = &c
	case StageCEO:
		a.CEOComments = &c
	case StageFounder:
		a.FounderComments = &c
	}
}

// StageComment returns the comment currently stored for stage, if any.
func (a *Application) StageComment(stage Stage) *string {
	switch stage {
	case StageOfficer:
		return a.OfficerComments
	case StageManager:
		return a.ManagerComments
	case StageFinance:
		return a.FinanceComments
	case StageHospital:
		return a.HospitalComments
	case StageExecutive:
		return a.ExecutiveComments
	case StageCEO:
		return a.CEOComments
	case StageFounder:
		return a.FounderComments
	}
	return nil
}

// StampReview sets the review timestamp owned by stage.
func (a *Application) StampReview(stage Stage, at time.Time) {
	t := at
	switch stage {
	case StageOfficer:
		a.OfficerReviewedAt = &t
	case StageManager:
		a.ManagerReviewedAt = &t
	case StageFinance:
		a.FinanceReviewedAt = &t
	case StageHospital:
		a.HospitalReviewedAt = &t
	case StageExecutive:
		a.ExecutiveReviewedAt = &t
	case StageCEO:
		a.CEOReviewedAt = &t
	case StageFounder:
		a.FounderReviewedAt = &t
	}
}

// ReviewedAt returns the review timestamp stored for stage, if any.
func (a *Application) ReviewedAt(stage Stage) *time.Time {
	switch stage {
	case StageOfficer:
		return a.OfficerReviewedAt
	case StageManager:
		return a.ManagerReviewedAt
	case StageFinance:
		return a.FinanceReviewedAt
	case StageHospital:
		return a.HospitalReviewedAt
	case StageExecutive:
		return a.ExecutiveReviewedAt
	case StageCEO:
		return a.CEOReviewedAt
	case StageFounder:
		return a.FounderReviewedAt
	}
	return nil
}
