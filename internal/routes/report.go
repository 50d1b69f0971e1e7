package routes

import (
	"net/http"

	"github.com/Nojands/FinanzApp/internal/contracts"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetDashboard(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	dashboard, err := h.DashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewDashboardResponse(dashboard))
}

func (h *Handler) GetReportSummary(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	summary, err := h.ReportService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewSummaryResponse(summary))
}

func (h *Handler) GetMonthlyTrend(c *gin.Context) {
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

	trend, err := h.ReportService.GetMonthlyTrend(c.Request.Context(), userID, months)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewMonthlyTrendResponse(trend))
}
