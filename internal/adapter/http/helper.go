package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "aidbridge-backend/internal/domain/application"
)

// writeDomainError maps workflow sentinel errors to distinct response codes,
// keeping the {"success": false, "error": ...} body shape everywhere.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "application not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "role not permitted for current status"})
	case errors.Is(err, domain.ErrNotAssigned):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "application is not assigned to you"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "action not allowed from current status"})
	case errors.Is(err, domain.ErrMissingAssignee):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "assign requires assigned_to"})
	case errors.Is(err, domain.ErrNotDeletable):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "only new submissions can be deleted"})
	case errors.Is(err, domain.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "application was modified concurrently, re-fetch and retry"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
