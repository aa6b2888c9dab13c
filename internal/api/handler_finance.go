package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/view"
)

// GetFinance handles the GET /api/finance request.
func (h *Handler) GetFinance(c *gin.Context) {
	rows := metrics.Derive(h.store.Fleet(), h.now())
	c.JSON(http.StatusOK, view.BuildFinance(rows))
}
