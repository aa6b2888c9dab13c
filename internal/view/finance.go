package view

import (
	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/model"
)

// ROIBar is one bar of the per-device ROI chart.
type ROIBar struct {
	DeviceID   string         `json:"device_id"`
	Model      string         `json:"model"`
	Category   model.Category `json:"category"`
	ROIPercent float64        `json:"roi_percent"`
}

// Exclusion names a device left out of the ROI chart and why. Devices
// with an undefined ROI are surfaced here, never silently dropped.
type Exclusion struct {
	DeviceID string `json:"device_id"`
	Model    string `json:"model"`
	Reason   string `json:"reason"`
}

// CostSlice is one segment of the maintenance-cost proportion chart.
type CostSlice struct {
	DeviceID     string  `json:"device_id"`
	Model        string  `json:"model"`
	Cost         float64 `json:"cost"`
	SharePercent float64 `json:"share_percent"`
}

// Finance is the ROI and cost-distribution view.
type Finance struct {
	ROIBars    []ROIBar    `json:"roi_bars"`
	Exclusions []Exclusion `json:"exclusions"`
	CostShares []CostSlice `json:"cost_shares"`
	TotalCost  float64     `json:"total_cost"`
}

// BuildFinance charts every device with a defined ROI and lists the
// rest as exclusions. Rows keep fleet order; bars carry the category so
// the chart can colour by it.
func BuildFinance(rows []metrics.Derived) Finance {
	f := Finance{}

	for _, r := range rows {
		f.TotalCost += r.MaintenanceCost
		if r.ROIPercent == nil {
			f.Exclusions = append(f.Exclusions, Exclusion{
				DeviceID: r.DeviceID,
				Model:    r.Model,
				Reason:   metrics.ErrZeroMaintenanceCost.Error(),
			})
			continue
		}
		f.ROIBars = append(f.ROIBars, ROIBar{
			DeviceID:   r.DeviceID,
			Model:      r.Model,
			Category:   r.Category,
			ROIPercent: *r.ROIPercent,
		})
	}

	for _, r := range rows {
		slice := CostSlice{DeviceID: r.DeviceID, Model: r.Model, Cost: r.MaintenanceCost}
		if f.TotalCost > 0 {
			slice.SharePercent = r.MaintenanceCost / f.TotalCost * 100
		}
		f.CostShares = append(f.CostShares, slice)
	}
	return f
}
