package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/view"
)

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateDeviceStatus handles the POST /api/devices/{device_id}/status
// request. The receipt acknowledges the request; the stored record is
// left as it was.
func (h *Handler) UpdateDeviceStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := h.now()
	rows := metrics.Derive(h.store.Fleet(), now)
	receipt, err := view.BuildStatusUpdate(rows, c.Param("device_id"), req.Status, now)
	if err != nil {
		if errors.Is(err, view.ErrUnknownDevice) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	h.log.Info().
		Str("device_id", receipt.DeviceID).
		Str("requested_status", string(receipt.RequestedStatus)).
		Str("receipt_id", receipt.ReceiptID).
		Msg("status update acknowledged")
	c.JSON(http.StatusOK, receipt)
}
