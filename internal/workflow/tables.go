// Package workflow holds the approval chain as pure data: which action is
// legal from which status, which roles may act at each status, and the guard
// that combines both with the officer-assignment rule. Adding a stage is a
// table edit here, not scattered conditionals.
package workflow

import (
	"fmt"

	"aidbridge-backend/internal/domain/actor"
	"aidbridge-backend/internal/domain/application"
)

// transitions is the full approval chain. A (status, action) pair absent from
// this table is an invalid transition, never a silent no-op. Terminal
// statuses have no entry at all.
var transitions = map[application.Status]map[application.Action]application.Status{
	application.StatusNewSubmission: {
		application.ActionAssign: application.StatusPOReview,
		application.ActionReject: application.StatusRejected,
	},
	application.StatusPOReview: {
		application.ActionApprove:     application.StatusManagerReview,
		application.ActionReject:      application.StatusRejected,
		application.ActionRequestEdit: application.StatusEditRequested,
	},
	application.StatusManagerReview: {
		application.ActionApprove:     application.StatusFinanceReview,
		application.ActionReject:      application.StatusRejected,
		application.ActionRequestEdit: application.StatusEditRequested,
	},
	application.StatusFinanceReview: {
		application.ActionApprove:     application.StatusHospitalReview,
		application.ActionReject:      application.StatusRejected,
		application.ActionRequestEdit: application.StatusEditRequested,
	},
	application.StatusHospitalReview: {
		application.ActionApprove:     application.StatusExecutiveReview,
		application.ActionReject:      application.StatusRejected,
		application.ActionRequestEdit: application.StatusEditRequested,
	},
	application.StatusExecutiveReview: {
		application.ActionApprove:     application.StatusCEOReview,
		application.ActionReject:      application.StatusRejected,
		application.ActionRequestEdit: application.StatusEditRequested,
	},
	application.StatusCEOReview: {
		application.ActionApprove:     application.StatusFounderReview,
		application.ActionReject:      application.StatusRejected,
		application.ActionRequestEdit: application.StatusEditRequested,
	},
	application.StatusFounderReview: {
		application.ActionApprove:     application.StatusApproved,
		application.ActionReject:      application.StatusRejected,
		application.ActionRequestEdit: application.StatusEditRequested,
	},
	application.StatusEditRequested: {
		application.ActionResubmit: application.StatusPOReview,
	},
	application.StatusApproved: {
		application.ActionDisburse: application.StatusDisbursed,
	},
	application.StatusDisbursed: {
		application.ActionComplete: application.StatusCompleted,
	},
}

// permissions is evaluated on the current status, before the transition.
// Terminal statuses map to nothing: no further action by anyone.
var permissions = map[application.Status][]actor.Role{
	application.StatusNewSubmission:   {actor.RoleProgramManager, actor.RoleAdmin},
	application.StatusPOReview:        {actor.RoleProjectOfficer, actor.RoleAdmin},
	application.StatusManagerReview:   {actor.RoleProgramManager, actor.RoleAdmin},
	application.StatusFinanceReview:   {actor.RoleFinanceOfficer, actor.RoleAdmin},
	application.StatusHospitalReview:  {actor.RoleHospitalDirector, actor.RoleAdmin},
	application.StatusExecutiveReview: {actor.RoleExecutiveDirector, actor.RoleAdmin},
	application.StatusCEOReview:       {actor.RoleCEO, actor.RoleAdmin},
	application.StatusFounderReview:   {actor.RoleFounder, actor.RoleAdmin},
	application.StatusEditRequested:   {actor.RoleApplicant, actor.RoleAdmin},
	application.StatusApproved:        {actor.RoleFinanceOfficer, actor.RoleAdmin},
	application.StatusDisbursed:       {actor.RoleFinanceOfficer, actor.RoleAdmin},
}

// NextStatus is the total transition function. The second return is false for
// any pair not in the table (including every action on a terminal status).
func NextStatus(current application.Status, action application.Action) (application.Status, bool) {
	actions, ok := transitions[current]
	if !ok {
		return "", false
	}
	next, ok := actions[action]
	return next, ok
}

// AllowedRoles returns the roles permitted to act at status; empty for
// terminal statuses.
func AllowedRoles(status application.Status) []actor.Role {
	return permissions[status]
}

// RoleAllowed reports whether role may act on an application at status.
func RoleAllowed(role actor.Role, status application.Status) bool {
	for _, r := range permissions[status] {
		if r == role {
			return true
		}
	}
	return false
}

// Validate cross-checks the tables at startup so a typo fails the boot, not a
// request: every transition target must itself be a table key or terminal,
// every non-terminal table key needs a permission set, and every actionable
// status needs an owning comment stage.
func Validate() error {
	for status, actions := range transitions {
		if _, ok := application.OwningStage(status); !ok {
			return fmt.Errorf("workflow: status %q has actions but no owning comment stage", status)
		}
		if len(permissions[status]) == 0 {
			return fmt.Errorf("workflow: status %q has actions but no permitted roles", status)
		}
		for action, next := range actions {
			if _, ok := transitions[next]; !ok && !next.Terminal() {
				return fmt.Errorf("workflow: %q + %q leads to unknown status %q", status, action, next)
			}
		}
	}
	for status := range permissions {
		if _, ok := transitions[status]; !ok {
			return fmt.Errorf("workflow: roles granted for %q but no actions defined there", status)
		}
	}
	return nil
}
