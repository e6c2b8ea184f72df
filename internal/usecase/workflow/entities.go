package workflow

import (
	"aidbridge-backend/internal/domain/application"
)

type ExecuteInput struct {
	ApplicationID string
	Action        application.Action
	Comments      *string
	// Only meaningful with the assign action.
	AssignedTo *string

	// Request metadata carried into the audit log.
	ActorIP        string
	ActorUserAgent string
}

type TransitionDTO struct {
	ApplicationID string `json:"application_id"`
	OldStatus     string `json:"oldStatus"`
	NewStatus     string `json:"newStatus"`
}
