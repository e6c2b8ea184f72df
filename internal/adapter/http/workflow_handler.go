package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"aidbridge-backend/internal/adapter/middleware"
	"aidbridge-backend/internal/domain/actor"
	"aidbridge-backend/internal/domain/application"
	wfuc "aidbridge-backend/internal/usecase/workflow"
)

type workflowExecutor interface {
	Execute(ctx context.Context, act actor.Actor, in wfuc.ExecuteInput) (*wfuc.TransitionDTO, error)
}

type WorkflowHandler struct{ uc workflowExecutor }

func NewWorkflowHandler(uc workflowExecutor) *WorkflowHandler { return &WorkflowHandler{uc: uc} }

type actionReq struct {
	Action     string  `json:"action"      validate:"required,oneof=assign approve reject request_edit resubmit disburse complete"`
	Comments   *string `json:"comments"    validate:"omitempty,max=4000"`
	AssignedTo *string `json:"assigned_to" validate:"omitempty,hex32"`
}

// SubmitAction handles POST /applications/:id/actions.
func (h *WorkflowHandler) SubmitAction(c echo.Context) error {
	applicationID := c.Param("id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application id path param"})
	}

	var req actionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if req.Action == string(application.ActionAssign) && req.AssignedTo == nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "AssignedTo", Message: "is required for assign"}},
		})
	}

	act, ok := middleware.ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing actor"})
	}

	dto, err := h.uc.Execute(c.Request().Context(), act, wfuc.ExecuteInput{
		ApplicationID:  applicationID,
		Action:         application.Action(req.Action),
		Comments:       req.Comments,
		AssignedTo:     req.AssignedTo,
		ActorIP:        c.RealIP(),
		ActorUserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "application moved to " + dto.NewStatus,
		Data:    map[string]string{"newStatus": dto.NewStatus},
	})
}
