package routes

import (
	"context"

	"github.com/Nojands/FinanzApp/internal/domain/alert"
	"github.com/Nojands/FinanzApp/internal/domain/creditcard"
	"github.com/Nojands/FinanzApp/internal/domain/dashboard"
	"github.com/Nojands/FinanzApp/internal/domain/installment"
	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/recurring"
	"github.com/Nojands/FinanzApp/internal/domain/report"
	"github.com/Nojands/FinanzApp/internal/domain/settings"
	"github.com/Nojands/FinanzApp/internal/domain/simulation"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/logger"
	"github.com/Nojands/FinanzApp/internal/middleware"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	ProjectionService  *projection.Service
	SimulationService  *simulation.Service
	RecurringService   *recurring.Service
	LoanService        *loan.Service
	CreditCardService  *creditcard.Service
	InstallmentService *installment.Service
	SettingsService    *settings.Service
	LedgerService      *ledger.Service
	AlertService       *alert.Service
	DashboardService   *dashboard.Service
	ReportService      *report.Service

	// Ping checks the database for the health endpoint.
	Ping func(ctx context.Context) error
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	id, ok := userIDStr.(string)
	if !ok {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(id)
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) parseID(c *gin.Context, param string) (ulid.ULID, error) {
	id, err := pkg.ParseULID(c.Param(param))
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError(param, "formato invalido")
	}
	return id, nil
}

// bindJSON decodes the body, turning binding failures into validation errors.
func (h *Handler) bindJSON(c *gin.Context, body interface{}) error {
	if err := c.ShouldBindJSON(body); err != nil {
		return appErrors.ParseValidationErrors(err)
	}
	return nil
}

// NotFound answers requests that match no route.
func (h *Handler) NotFound(c *gin.Context) {
	h.respondError(c, appErrors.NewNotFoundError("Endpoint").WithDetails(map[string]interface{}{
		"resource": "Endpoint",
		"path":     c.Request.URL.Path,
	}))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.StatusCode < 500 {
		event = logger.Warn().Str("code", appErr.Code).Str("path", c.FullPath())
	}
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")

	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
