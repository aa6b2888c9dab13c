package view

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/model"
)

// ErrUnknownDevice is returned when a status update names a device that
// is not in the rendered fleet.
var ErrUnknownDevice = errors.New("unknown device")

// StatusUpdateReceipt acknowledges a status change without applying it.
// The dataset is rebuilt from the fixture on the next read, so the
// receipt is the whole effect: there is nothing to roll back.
type StatusUpdateReceipt struct {
	ReceiptID       string       `json:"receipt_id"`
	DeviceID        string       `json:"device_id"`
	PreviousStatus  model.Status `json:"previous_status"`
	RequestedStatus model.Status `json:"requested_status"`
	Message         string       `json:"message"`
	RequestedAt     time.Time    `json:"requested_at"`
}

// BuildStatusUpdate validates the requested change against the rendered
// rows and returns a display receipt. Failure modes are exactly two:
// ErrUnknownDevice and model.ErrUnknownStatus.
func BuildStatusUpdate(rows []metrics.Derived, deviceID, rawStatus string, now time.Time) (StatusUpdateReceipt, error) {
	requested, err := model.ParseStatus(rawStatus)
	if err != nil {
		return StatusUpdateReceipt{}, err
	}

	for _, r := range rows {
		if r.DeviceID != deviceID {
			continue
		}
		return StatusUpdateReceipt{
			ReceiptID:       uuid.NewString(),
			DeviceID:        r.DeviceID,
			PreviousStatus:  r.Status,
			RequestedStatus: requested,
			Message: fmt.Sprintf("Status for %s recorded as %s. Display only: the stored record keeps %s.",
				r.DeviceID, requested.Label(), r.Status.Label()),
			RequestedAt: now,
		}, nil
	}
	return StatusUpdateReceipt{}, fmt.Errorf("%w %q", ErrUnknownDevice, deviceID)
}
