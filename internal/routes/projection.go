package routes

import (
	"net/http"

	"github.com/Nojands/FinanzApp/internal/contracts"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ProjectMonthly(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	months, err := intQuery(c, "months")
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.ProjectionService.ProjectMonthly(c.Request.Context(), userID, months)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewProjectionResponse(result))
}

func (h *Handler) ProjectBiweekly(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req projection.BiweeklyRequest

	periods, err := intQuery(c, "periods")
	if err != nil {
		h.respondError(c, err)
		return
	}
	if periods != nil {
		req.Periods = *periods
	}

	if req.Payday1, err = intQuery(c, "payday1"); err != nil {
		h.respondError(c, err)
		return
	}
	if req.Payday2, err = intQuery(c, "payday2"); err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.ProjectionService.ProjectBiweekly(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewProjectionResponse(result))
}

func intQuery(c *gin.Context, name string) (*int, error) {
	value, err := pkg.ParseOptionalInt(c.Query(name))
	if err != nil {
		return nil, appErrors.NewValidationError(name, "deve ser um número inteiro")
	}
	return value, nil
}
