package routes

import (
	"net/http"

	"github.com/Nojands/FinanzApp/internal/contracts"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	resp := contracts.HealthResponse{Status: "ok", Database: "ok"}
	if h.Ping != nil {
		if err := h.Ping(c.Request.Context()); err != nil {
			resp.Status = "degraded"
			resp.Database = "unavailable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}
