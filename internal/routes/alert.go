package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListAlerts(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	alerts, err := h.AlertService.ListAlerts(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "total": len(alerts)})
}
