package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"device-rental-backend/internal/model"
	"device-rental-backend/internal/parse"
)

// fleetFile is the on-disk shape of an alternate fleet. Dates are kept
// as strings in the wire struct so a malformed one names the device
// instead of surfacing as a YAML type error.
type fleetFile struct {
	Version string       `yaml:"version"`
	Devices []fileDevice `yaml:"devices"`
}

type fileDevice struct {
	DeviceID        string  `yaml:"device_id"`
	Category        string  `yaml:"category"`
	Model           string  `yaml:"model"`
	TotalCopies     int64   `yaml:"total_copies"`
	MaintenanceCost float64 `yaml:"maintenance_cost"`
	LeaseIncome     float64 `yaml:"lease_income"`
	LeaseStart      string  `yaml:"lease_start"`
	LeaseEnd        string  `yaml:"lease_end"`
	Status          string  `yaml:"status"`
	Client          string  `yaml:"client"`
}

// FromFile loads a fleet from a YAML file and builds a Store over it.
// The file's version falls back to its path when absent.
func FromFile(path string) (Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fleet file: %w", err)
	}

	var f fleetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fleet file %s: %w", path, err)
	}
	if f.Version == "" {
		f.Version = path
	}

	records := make([]model.DeviceRecord, 0, len(f.Devices))
	for _, d := range f.Devices {
		r, err := d.toRecord()
		if err != nil {
			return nil, fmt.Errorf("fleet file %s: %w", path, err)
		}
		records = append(records, r)
	}
	return NewFixtureStore(records, f.Version)
}

func (d fileDevice) toRecord() (model.DeviceRecord, error) {
	category, err := model.ParseCategory(d.Category)
	if err != nil {
		return model.DeviceRecord{}, fmt.Errorf("device %s: %w", d.DeviceID, err)
	}
	status, err := model.ParseStatus(d.Status)
	if err != nil {
		return model.DeviceRecord{}, fmt.Errorf("device %s: %w", d.DeviceID, err)
	}
	start, err := parse.Date(d.LeaseStart)
	if err != nil {
		return model.DeviceRecord{}, fmt.Errorf("device %s lease_start: %w", d.DeviceID, err)
	}
	end, err := parse.Date(d.LeaseEnd)
	if err != nil {
		return model.DeviceRecord{}, fmt.Errorf("device %s lease_end: %w", d.DeviceID, err)
	}
	return model.DeviceRecord{
		DeviceID:        d.DeviceID,
		Category:        category,
		Model:           d.Model,
		TotalCopies:     d.TotalCopies,
		MaintenanceCost: d.MaintenanceCost,
		LeaseIncome:     d.LeaseIncome,
		LeaseStart:      start,
		LeaseEnd:        end,
		Status:          status,
		Client:          d.Client,
	}, nil
}
