package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/model"
	"device-rental-backend/internal/parse"
	"device-rental-backend/internal/store"
)

func TestBuildFinance(t *testing.T) {
	f := BuildFinance(sampleRows(t))

	require.Len(t, f.ROIBars, 4)
	assert.Empty(t, f.Exclusions)

	expected := []struct {
		deviceID string
		category model.Category
		roi      float64
	}{
		{"P001", model.CategoryPrinter, 300},
		{"P002", model.CategoryPrinter, 233.33333333333334},
		{"C001", model.CategoryComputer, 400},
		{"C002", model.CategoryComputer, 300},
	}
	for i, e := range expected {
		assert.Equal(t, e.deviceID, f.ROIBars[i].DeviceID)
		assert.Equal(t, e.category, f.ROIBars[i].Category)
		assert.InDelta(t, e.roi, f.ROIBars[i].ROIPercent, 1e-9)
	}
}

func TestBuildFinanceCostShares(t *testing.T) {
	f := BuildFinance(sampleRows(t))

	require.Len(t, f.CostShares, 4)
	assert.InDelta(t, 2000, f.TotalCost, 1e-9)

	var total float64
	for _, s := range f.CostShares {
		total += s.SharePercent
	}
	assert.InDelta(t, 100, total, 1e-9, "shares cover the whole chart")
	assert.InDelta(t, 25, f.CostShares[0].SharePercent, 1e-9) // P001: 500 of 2000
}

func TestBuildFinanceExcludesUndefinedROI(t *testing.T) {
	records := store.SampleFleet()
	records[2].MaintenanceCost = 0 // C001 becomes the degenerate case

	f := BuildFinance(metrics.Derive(records, parse.MustDate("2024-09-16")))

	require.Len(t, f.ROIBars, 3, "undefined ROI never reaches the chart")
	for _, b := range f.ROIBars {
		assert.NotEqual(t, "C001", b.DeviceID)
	}

	require.Len(t, f.Exclusions, 1)
	assert.Equal(t, "C001", f.Exclusions[0].DeviceID)
	assert.Contains(t, f.Exclusions[0].Reason, "maintenance cost")

	// The cost chart still lists the device; its share is just zero.
	require.Len(t, f.CostShares, 4)
	assert.Zero(t, f.CostShares[2].SharePercent)
}

func TestBuildFinanceAllZeroCosts(t *testing.T) {
	records := store.SampleFleet()
	for i := range records {
		records[i].MaintenanceCost = 0
	}

	f := BuildFinance(metrics.Derive(records, parse.MustDate("2024-09-16")))

	assert.Empty(t, f.ROIBars)
	assert.Len(t, f.Exclusions, 4)
	assert.Zero(t, f.TotalCost)
	for _, s := range f.CostShares {
		assert.Zero(t, s.SharePercent, "no division by a zero total")
	}
}
