package metrics

import (
	"errors"
	"time"

	"device-rental-backend/internal/model"
	"device-rental-backend/internal/parse"
)

// ErrZeroMaintenanceCost marks the degenerate ROI input: a device that
// cost nothing to maintain has no defined return percentage.
var ErrZeroMaintenanceCost = errors.New("maintenance cost is zero")

// Derived is one fleet record together with its computed columns at a
// given instant. Rows are rebuilt on every render and never stored, so
// DaysToExpiration can never go stale across midnight.
type Derived struct {
	model.DeviceRecord

	// ROIPercent is nil when undefined (zero maintenance cost). Views
	// list such records as exclusions instead of charting Inf or NaN.
	ROIPercent *float64
	// DaysToExpiration counts whole calendar days until lease end,
	// negative once the lease has expired.
	DaysToExpiration int
}

// ROIPercent computes (income - cost) / cost * 100.
func ROIPercent(income, cost float64) (float64, error) {
	if cost == 0 {
		return 0, ErrZeroMaintenanceCost
	}
	return (income - cost) / cost * 100, nil
}

// DaysUntil counts whole calendar days from now's UTC date to end's UTC
// date. Time of day never influences the count.
func DaysUntil(now, end time.Time) int {
	return parse.DaysBetween(now, end)
}

// Derive computes the derived columns for every record against now.
// Pure: one output per input, order preserved, input slice untouched.
func Derive(records []model.DeviceRecord, now time.Time) []Derived {
	out := make([]Derived, len(records))
	for i, r := range records {
		d := Derived{
			DeviceRecord:     r,
			DaysToExpiration: DaysUntil(now, r.LeaseEnd),
		}
		if roi, err := ROIPercent(r.LeaseIncome, r.MaintenanceCost); err == nil {
			d.ROIPercent = &roi
		}
		out[i] = d
	}
	return out
}
