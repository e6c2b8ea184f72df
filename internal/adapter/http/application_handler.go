package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"aidbridge-backend/internal/adapter/middleware"
	"aidbridge-backend/internal/domain/actor"
	domain "aidbridge-backend/internal/domain/application"
	"aidbridge-backend/internal/domain/audit"
	appuc "aidbridge-backend/internal/usecase/application"
)

type applicationUsecase interface {
	Create(ctx context.Context, act actor.Actor, in appuc.CreateInput) (*appuc.ApplicationDTO, error)
	Get(ctx context.Context, applicationID string) (*appuc.ApplicationDTO, error)
	List(ctx context.Context, f domain.ListFilter) ([]appuc.ApplicationDTO, error)
	Delete(ctx context.Context, act actor.Actor, applicationID string) error
	AuditTrail(ctx context.Context, applicationID string) ([]audit.Entry, error)
}

type ApplicationHandler struct{ uc applicationUsecase }

func NewApplicationHandler(uc applicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	Type            string  `json:"type"             validate:"required,oneof=medical_aid education_grant business_grant scholarship emergency_relief"`
	Title           string  `json:"title"            validate:"required,max=255"`
	Description     string  `json:"description"      validate:"omitempty,max=8000"`
	AmountRequested float64 `json:"amount_requested" validate:"required,gt=0,dec2"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	act, ok := middleware.ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing actor"})
	}

	dto, err := h.uc.Create(c.Request().Context(), act, appuc.CreateInput{
		Type:            domain.Type(req.Type),
		Title:           req.Title,
		Description:     req.Description,
		AmountRequested: req.AmountRequested,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: dto})
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: dto})
}

func (h *ApplicationHandler) List(c echo.Context) error {
	f := domain.ListFilter{
		Status:     domain.Status(c.QueryParam("status")),
		AssignedTo: c.QueryParam("assigned_to"),
	}
	dtos, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: dtos})
}

func (h *ApplicationHandler) Delete(c echo.Context) error {
	act, ok := middleware.ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing actor"})
	}
	if err := h.uc.Delete(c.Request().Context(), act, c.Param("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "application deleted"})
}

func (h *ApplicationHandler) AuditTrail(c echo.Context) error {
	entries, err := h.uc.AuditTrail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: entries})
}
