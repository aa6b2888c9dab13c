package model

import (
	"errors"
	"fmt"
	"time"
)

// DeviceRecord is one rented-out device as the dashboard tracks it.
// Financial figures are periodic totals for the current lease, so every
// view can be derived from the record alone, without usage history.
type DeviceRecord struct {
	DeviceID        string    `json:"device_id"`
	Category        Category  `json:"category"`
	Model           string    `json:"model"`
	TotalCopies     int64     `json:"total_copies"` // always 0 for computers
	MaintenanceCost float64   `json:"maintenance_cost"`
	LeaseIncome     float64   `json:"lease_income"`
	LeaseStart      time.Time `json:"lease_start"`
	LeaseEnd        time.Time `json:"lease_end"`
	Status          Status    `json:"status"`
	Client          string    `json:"client"`
}

// Validate reports the first problem that would make the record unusable.
// Stores call this once at construction; everything downstream may then
// assume categories and statuses are members of their closed sets.
//
// A zero MaintenanceCost passes: it is the documented degenerate input
// for ROI, handled at derivation time, not a broken record.
func (d DeviceRecord) Validate() error {
	switch {
	case d.DeviceID == "":
		return errors.New("device_id is empty")
	case d.Model == "":
		return fmt.Errorf("device %s: model is empty", d.DeviceID)
	case d.Client == "":
		return fmt.Errorf("device %s: client is empty", d.DeviceID)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("device %s: %w %q", d.DeviceID, ErrUnknownCategory, string(d.Category))
	}
	if !d.Status.Valid() {
		return fmt.Errorf("device %s: %w %q", d.DeviceID, ErrUnknownStatus, string(d.Status))
	}
	if d.TotalCopies < 0 {
		return fmt.Errorf("device %s: negative total_copies %d", d.DeviceID, d.TotalCopies)
	}
	if d.MaintenanceCost < 0 {
		return fmt.Errorf("device %s: negative maintenance_cost %v", d.DeviceID, d.MaintenanceCost)
	}
	if d.LeaseIncome <= 0 {
		return fmt.Errorf("device %s: lease_income must be positive, got %v", d.DeviceID, d.LeaseIncome)
	}
	if d.LeaseStart.IsZero() || d.LeaseEnd.IsZero() {
		return fmt.Errorf("device %s: lease dates are required", d.DeviceID)
	}
	if d.LeaseEnd.Before(d.LeaseStart) {
		return fmt.Errorf("device %s: lease ends %s before it starts %s",
			d.DeviceID, d.LeaseEnd.Format(time.DateOnly), d.LeaseStart.Format(time.DateOnly))
	}
	return nil
}
