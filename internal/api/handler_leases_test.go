package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"device-rental-backend/internal/view"
)

func getLeases(t *testing.T, date string) view.Leases {
	t.Helper()
	r := setupDashboardRouter(date)

	w := doGet(r, "/api/leases")
	require.Equal(t, http.StatusOK, w.Code)

	var l view.Leases
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &l))
	return l
}

func TestGetLeases(t *testing.T) {
	l := getLeases(t, testDate)

	assert.Equal(t, "2024-09-16", l.EvaluatedOn)
	assert.Equal(t, 60, l.WindowDays)
	assert.False(t, l.NoneExpiring)

	require.Len(t, l.ExpiringSoon, 2)
	assert.Equal(t, "P002", l.ExpiringSoon[0].DeviceID)
	assert.Equal(t, 60, l.ExpiringSoon[0].DaysToExpiration)
	assert.Equal(t, "2024-02-15", l.ExpiringSoon[0].LeaseStart)
	assert.Equal(t, "2024-11-15", l.ExpiringSoon[0].LeaseEnd)
	assert.Equal(t, "C002", l.ExpiringSoon[1].DeviceID)
	assert.Equal(t, 29, l.ExpiringSoon[1].DaysToExpiration)

	require.Len(t, l.Summaries, 2)
	assert.Equal(t, "Printer", l.Summaries[0].Label)
	assert.Equal(t, 2, l.Summaries[0].DeviceCount)
	assert.InDelta(t, 4500, l.Summaries[0].IncomeSum, 0.0001)
	assert.Equal(t, "2024-01-01", l.Summaries[0].EarliestStart)
	assert.Equal(t, "2024-12-31", l.Summaries[0].LatestEnd)
	assert.Equal(t, "Computer", l.Summaries[1].Label)
	assert.InDelta(t, 3300, l.Summaries[1].IncomeSum, 0.0001)
}

func TestGetLeasesEmptyWindow(t *testing.T) {
	l := getLeases(t, "2024-05-01")

	assert.True(t, l.NoneExpiring)
	assert.Empty(t, l.ExpiringSoon)
	// Summary cards do not depend on the evaluation date.
	require.Len(t, l.Summaries, 2)
}
