package workflow

import (
	"aidbridge-backend/internal/domain/actor"
	"aidbridge-backend/internal/domain/application"
)

// Authorize decides whether act may perform action on a at its current
// status. Checks run in order: role permission, officer assignment,
// transition legality. Side-effect free; safe to call repeatedly.
func Authorize(act actor.Actor, a *application.Application, action application.Action) error {
	// Terminal states admit no action by anyone; report that as an invalid
	// transition rather than a role failure.
	if a.Status.Terminal() {
		return application.ErrInvalidTransition
	}

	if !RoleAllowed(act.Role, a.Status) {
		return application.ErrForbidden
	}

	// A project officer may only act on applications explicitly assigned to
	// them. Admins are exempt.
	if a.Status == application.StatusPOReview && act.Role == actor.RoleProjectOfficer {
		if a.AssignedReviewerID == nil || *a.AssignedReviewerID != act.ID {
			return application.ErrNotAssigned
		}
	}

	if _, ok := NextStatus(a.Status, action); !ok {
		return application.ErrInvalidTransition
	}
	return nil
}
