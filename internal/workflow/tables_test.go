package workflow

import (
	"testing"

	"aidbridge-backend/internal/domain/actor"
	"aidbridge-backend/internal/domain/application"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestNextStatus_ApprovalChain(t *testing.T) {
	tests := []struct {
		status application.Status
		action application.Action
		want   application.Status
	}{
		{application.StatusNewSubmission, application.ActionAssign, application.StatusPOReview},
		{application.StatusNewSubmission, application.ActionReject, application.StatusRejected},
		{application.StatusPOReview, application.ActionApprove, application.StatusManagerReview},
		{application.StatusManagerReview, application.ActionApprove, application.StatusFinanceReview},
		{application.StatusFinanceReview, application.ActionApprove, application.StatusHospitalReview},
		{application.StatusHospitalReview, application.ActionApprove, application.StatusExecutiveReview},
		{application.StatusExecutiveReview, application.ActionApprove, application.StatusCEOReview},
		{application.StatusCEOReview, application.ActionApprove, application.StatusFounderReview},
		{application.StatusFounderReview, application.ActionApprove, application.StatusApproved},
		{application.StatusPOReview, application.ActionRequestEdit, application.StatusEditRequested},
		{application.StatusFounderReview, application.ActionReject, application.StatusRejected},
		{application.StatusEditRequested, application.ActionResubmit, application.StatusPOReview},
		{application.StatusApproved, application.ActionDisburse, application.StatusDisbursed},
		{application.StatusDisbursed, application.ActionComplete, application.StatusCompleted},
	}
	for _, tt := range tests {
		got, ok := NextStatus(tt.status, tt.action)
		if !ok {
			t.Fatalf("NextStatus(%s, %s): not legal, want %s", tt.status, tt.action, tt.want)
		}
		if got != tt.want {
			t.Fatalf("NextStatus(%s, %s) = %s, want %s", tt.status, tt.action, got, tt.want)
		}
	}
}

func TestNextStatus_TerminalStatesHaveNoActions(t *testing.T) {
	allActions := []application.Action{
		application.ActionAssign, application.ActionApprove, application.ActionReject,
		application.ActionRequestEdit, application.ActionResubmit,
		application.ActionDisburse, application.ActionComplete,
	}
	for _, status := range []application.Status{application.StatusRejected, application.StatusCompleted} {
		for _, action := range allActions {
			if _, ok := NextStatus(status, action); ok {
				t.Fatalf("NextStatus(%s, %s) legal, want no actions on terminal state", status, action)
			}
		}
		if got := AllowedRoles(status); len(got) != 0 {
			t.Fatalf("AllowedRoles(%s) = %v, want empty", status, got)
		}
	}
}

func TestNextStatus_UndefinedPairsAreIllegal(t *testing.T) {
	tests := []struct {
		status application.Status
		action application.Action
	}{
		{application.StatusNewSubmission, application.ActionApprove},
		{application.StatusNewSubmission, application.ActionDisburse},
		{application.StatusPOReview, application.ActionAssign},
		{application.StatusPOReview, application.ActionResubmit},
		{application.StatusEditRequested, application.ActionApprove},
		{application.StatusApproved, application.ActionApprove},
		{application.StatusApproved, application.ActionComplete},
		{application.StatusDisbursed, application.ActionDisburse},
	}
	for _, tt := range tests {
		if _, ok := NextStatus(tt.status, tt.action); ok {
			t.Fatalf("NextStatus(%s, %s) legal, want illegal", tt.status, tt.action)
		}
	}
}

func TestRoleAllowed_EvaluatedOnCurrentStatus(t *testing.T) {
	// permitted at po_review does not grant manager_review
	if !RoleAllowed(actor.RoleProjectOfficer, application.StatusPOReview) {
		t.Fatalf("project_officer should act at po_review")
	}
	if RoleAllowed(actor.RoleProjectOfficer, application.StatusManagerReview) {
		t.Fatalf("project_officer must not act at manager_review")
	}
	// admin may act anywhere a reviewer may
	for status := range transitions {
		if !RoleAllowed(actor.RoleAdmin, status) {
			t.Fatalf("admin should act at %s", status)
		}
	}
	// applicants only re-enter the chain at edit_requested
	for status := range transitions {
		want := status == application.StatusEditRequested
		if got := RoleAllowed(actor.RoleApplicant, status); got != want {
			t.Fatalf("RoleAllowed(applicant, %s) = %v, want %v", status, got, want)
		}
	}
}

func TestOwningStage_CoversEveryActionableStatus(t *testing.T) {
	want := map[application.Status]application.Stage{
		application.StatusNewSubmission:   application.StageOfficer,
		application.StatusPOReview:        application.StageOfficer,
		application.StatusEditRequested:   application.StageOfficer,
		application.StatusManagerReview:   application.StageManager,
		application.StatusFinanceReview:   application.StageFinance,
		application.StatusHospitalReview:  application.StageHospital,
		application.StatusExecutiveReview: application.StageExecutive,
		application.StatusCEOReview:       application.StageCEO,
		application.StatusFounderReview:   application.StageFounder,
		application.StatusApproved:        application.StageFounder,
		application.StatusDisbursed:       application.StageFinance,
	}
	for status := range transitions {
		stage, ok := application.OwningStage(status)
		if !ok {
			t.Fatalf("OwningStage(%s): missing", status)
		}
		if stage != want[status] {
			t.Fatalf("OwningStage(%s) = %s, want %s", status, stage, want[status])
		}
	}
}
