package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/view"
)

// GetOverview handles the GET /api/overview request.
func (h *Handler) GetOverview(c *gin.Context) {
	rows := metrics.Derive(h.store.Fleet(), h.now())
	c.JSON(http.StatusOK, view.BuildOverview(rows))
}
