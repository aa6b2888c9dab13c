// Package view builds the four dashboard views from derived fleet rows.
// Builders are pure: they take rows plus whatever widget state the
// hosting front end carries and return a fresh value, so HTTP handlers,
// the terminal UI and the spreadsheet export all share one semantics.
package view

import (
	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/model"
)

// StatusSlice is one segment of the status proportion chart.
type StatusSlice struct {
	Status       model.Status `json:"status"`
	Label        string       `json:"label"`
	Count        int          `json:"count"`
	SharePercent float64      `json:"share_percent"`
}

// Overview is the headline view: fleet-wide counts and sums. It is
// always built from the full fleet, never from a filtered subset.
type Overview struct {
	DeviceCount     int           `json:"device_count"`
	TotalIncome     float64       `json:"total_income"`
	TotalCost       float64       `json:"total_cost"`
	ActiveCount     int           `json:"active_count"`
	StatusBreakdown []StatusSlice `json:"status_breakdown"`
}

// BuildOverview aggregates the whole fleet. Active devices are counted
// by typed equality against model.StatusActive; there is no string
// literal to drift from the stored values.
func BuildOverview(rows []metrics.Derived) Overview {
	o := Overview{DeviceCount: len(rows)}

	counts := make(map[model.Status]int)
	for _, r := range rows {
		o.TotalIncome += r.LeaseIncome
		o.TotalCost += r.MaintenanceCost
		if r.Status == model.StatusActive {
			o.ActiveCount++
		}
		counts[r.Status]++
	}

	for _, s := range model.Statuses() {
		n := counts[s]
		if n == 0 {
			continue
		}
		o.StatusBreakdown = append(o.StatusBreakdown, StatusSlice{
			Status:       s,
			Label:        s.Label(),
			Count:        n,
			SharePercent: float64(n) / float64(len(rows)) * 100,
		})
	}
	return o
}
