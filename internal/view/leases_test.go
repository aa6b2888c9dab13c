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

func TestBuildLeasesBoundaryDayIncluded(t *testing.T) {
	// 2024-09-16 puts P002 (ends 2024-11-15) exactly 60 days out.
	now := parse.MustDate("2024-09-16")
	l := BuildLeases(metrics.Derive(store.SampleFleet(), now), now)

	assert.Equal(t, "2024-09-16", l.EvaluatedOn)
	assert.Equal(t, 60, l.WindowDays)
	assert.False(t, l.NoneExpiring)

	require.Len(t, l.ExpiringSoon, 2)
	assert.Equal(t, "P002", l.ExpiringSoon[0].DeviceID)
	assert.Equal(t, 60, l.ExpiringSoon[0].DaysToExpiration, "the 60th day is inside the window")
	assert.Equal(t, "2024-02-15", l.ExpiringSoon[0].LeaseStart)
	assert.Equal(t, "2024-11-15", l.ExpiringSoon[0].LeaseEnd)
	assert.Equal(t, "C002", l.ExpiringSoon[1].DeviceID)
	assert.Equal(t, 29, l.ExpiringSoon[1].DaysToExpiration)
	assert.Equal(t, "2024-01-15", l.ExpiringSoon[1].LeaseStart)
}

func TestBuildLeasesDayBeforeBoundary(t *testing.T) {
	// One day earlier P002 is 61 days out and must drop off the table.
	now := parse.MustDate("2024-09-15")
	l := BuildLeases(metrics.Derive(store.SampleFleet(), now), now)

	require.Len(t, l.ExpiringSoon, 1)
	assert.Equal(t, "C002", l.ExpiringSoon[0].DeviceID)
	assert.Equal(t, 30, l.ExpiringSoon[0].DaysToExpiration)
}

func TestBuildLeasesEmptyState(t *testing.T) {
	now := parse.MustDate("2024-05-01")
	l := BuildLeases(metrics.Derive(store.SampleFleet(), now), now)

	assert.True(t, l.NoneExpiring)
	assert.Empty(t, l.ExpiringSoon)
	assert.NotEmpty(t, l.Summaries, "the category summary does not depend on the window")
}

func TestBuildLeasesExpiredStayListed(t *testing.T) {
	now := parse.MustDate("2024-11-20")
	l := BuildLeases(metrics.Derive(store.SampleFleet(), now), now)

	require.Len(t, l.ExpiringSoon, 4, "everything ends within 60 days of late November")

	byID := make(map[string]LeaseRow)
	for _, r := range l.ExpiringSoon {
		byID[r.DeviceID] = r
	}
	assert.Equal(t, -5, byID["P002"].DaysToExpiration)
	assert.True(t, byID["P002"].Expired)
	assert.True(t, byID["C002"].Expired)
	assert.False(t, byID["P001"].Expired)
	assert.Equal(t, 41, byID["P001"].DaysToExpiration)
}

func TestBuildLeasesCategorySummary(t *testing.T) {
	now := parse.MustDate("2024-09-16")
	l := BuildLeases(metrics.Derive(store.SampleFleet(), now), now)

	require.Len(t, l.Summaries, 2)

	printers := l.Summaries[0]
	assert.Equal(t, model.CategoryPrinter, printers.Category)
	assert.Equal(t, 2, printers.DeviceCount)
	assert.InDelta(t, 4500, printers.IncomeSum, 1e-9)
	assert.Equal(t, "2024-01-01", printers.EarliestStart)
	assert.Equal(t, "2024-12-31", printers.LatestEnd)

	computers := l.Summaries[1]
	assert.Equal(t, model.CategoryComputer, computers.Category)
	assert.Equal(t, 2, computers.DeviceCount)
	assert.InDelta(t, 3300, computers.IncomeSum, 1e-9)
	assert.Equal(t, "2024-01-15", computers.EarliestStart)
	assert.Equal(t, "2024-12-31", computers.LatestEnd)
}

func TestBuildLeasesSummaryIgnoresEvaluationDate(t *testing.T) {
	rowsEarly := metrics.Derive(store.SampleFleet(), parse.MustDate("2024-02-01"))
	rowsLate := metrics.Derive(store.SampleFleet(), parse.MustDate("2025-06-01"))

	early := BuildLeases(rowsEarly, parse.MustDate("2024-02-01"))
	late := BuildLeases(rowsLate, parse.MustDate("2025-06-01"))

	assert.Equal(t, early.Summaries, late.Summaries)
}
