package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/view"
)

// GetLeases handles the GET /api/leases request. A single clock read
// feeds both the day counts and the evaluated_on field, so a response
// can never straddle midnight.
func (h *Handler) GetLeases(c *gin.Context) {
	now := h.now()
	rows := metrics.Derive(h.store.Fleet(), now)
	c.JSON(http.StatusOK, view.BuildLeases(rows, now))
}
