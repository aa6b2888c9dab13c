package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"device-rental-backend/internal/store"
)

// Handler holds shared dependencies for API handlers. The clock is a
// field so tests can pin the evaluation date.
type Handler struct {
	store store.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, log zerolog.Logger) *Handler {
	return &Handler{
		store: s,
		log:   log,
		now:   time.Now,
	}
}

// Healthz reports liveness and the dataset the dashboard is serving.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"dataset": h.store.Version(),
		"devices": len(h.store.Fleet()),
	})
}
