package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"device-rental-backend/internal/model"
)

func TestSampleFleet(t *testing.T) {
	s := Sample()

	fleet := s.Fleet()
	require.Len(t, fleet, 4)
	assert.Equal(t, SampleVersion, s.Version())

	var ids []string
	for _, d := range fleet {
		ids = append(ids, d.DeviceID)
	}
	assert.Equal(t, []string{"P001", "P002", "C001", "C002"}, ids, "load order is stable")

	for _, d := range fleet {
		assert.NoError(t, d.Validate())
		if d.Category == model.CategoryComputer {
			assert.Zero(t, d.TotalCopies, "computers do not count copies")
		}
	}
}

func TestNewFixtureStoreValidation(t *testing.T) {
	base := SampleFleet()

	testCases := []struct {
		name    string
		records []model.DeviceRecord
		wantErr string
	}{
		{
			name:    "empty fleet",
			records: nil,
			wantErr: "empty",
		},
		{
			name: "invalid record rejected",
			records: func() []model.DeviceRecord {
				r := SampleFleet()
				r[2].Status = "Activo"
				return r
			}(),
			wantErr: "unknown status",
		},
		{
			name:    "duplicate device id",
			records: append(SampleFleet(), base[0]),
			wantErr: "duplicate device_id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFixtureStore(tc.records, "test")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestFleetReturnsCopies(t *testing.T) {
	s := Sample()

	first := s.Fleet()
	first[0].Status = model.StatusInactive
	first[0].LeaseIncome = 0

	second := s.Fleet()
	assert.Equal(t, model.StatusActive, second[0].Status, "mutating a returned fleet must not leak into the store")
	assert.Equal(t, float64(2000), second[0].LeaseIncome)
}

func TestDevice(t *testing.T) {
	s := Sample()

	d, err := s.Device("P002")
	require.NoError(t, err)
	assert.Equal(t, "Canon ImageRUNNER", d.Model)
	assert.Equal(t, int64(22000), d.TotalCopies)

	d.Client = "scribbled over"
	again, err := s.Device("P002")
	require.NoError(t, err)
	assert.Equal(t, "Company B", again.Client)

	_, err = s.Device("P999")
	assert.ErrorIs(t, err, ErrUnknownDevice)
}

func TestFromFile(t *testing.T) {
	const fleetYAML = `version: pilot-fleet
devices:
  - device_id: X100
    category: Printer
    model: Brother HL
    status: Active
    client: Acme Corp
    total_copies: 4200
    maintenance_cost: 120.5
    lease_income: 900
    lease_start: "2024-04-01"
    lease_end: "2025-03-31"
  - device_id: X200
    category: computer
    model: ThinkPad T14
    status: maintenance
    client: Globex
    total_copies: 0
    maintenance_cost: 80
    lease_income: 640
    lease_start: "2024-05-10"
    lease_end: "2024-09-10"
`

	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fleetYAML), 0o644))

	s, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "pilot-fleet", s.Version())
	fleet := s.Fleet()
	require.Len(t, fleet, 2)
	assert.Equal(t, model.CategoryPrinter, fleet[0].Category, "labels normalize to canonical categories")
	assert.Equal(t, model.StatusMaintenance, fleet[1].Status)
	assert.Equal(t, "2024-05-10", fleet[1].LeaseStart.Format("2006-01-02"))
}

func TestFromFileErrors(t *testing.T) {
	testCases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "unknown category names the device",
			yaml: `devices:
  - device_id: X1
    category: tablet
    model: m
    status: active
    client: c
    lease_income: 10
    lease_start: "2024-01-01"
    lease_end: "2024-02-01"
`,
			wantErr: "device X1",
		},
		{
			name: "bad date names the field",
			yaml: `devices:
  - device_id: X1
    category: printer
    model: m
    status: active
    client: c
    lease_income: 10
    lease_start: "01/02/2024"
    lease_end: "2024-02-01"
`,
			wantErr: "lease_start",
		},
		{
			name:    "not yaml at all",
			yaml:    "{{{",
			wantErr: "parse fleet file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fleet.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))

			_, err := FromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("version falls back to path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fleet.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`devices:
  - device_id: X1
    category: printer
    model: m
    status: active
    client: c
    total_copies: 1
    maintenance_cost: 1
    lease_income: 1
    lease_start: "2024-01-01"
    lease_end: "2024-02-01"
`), 0o644))

		s, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, s.Version())
	})
}
