package store

import (
	"errors"
	"fmt"

	"device-rental-backend/internal/model"
)

// ErrUnknownDevice is returned when a device id is not in the fleet.
var ErrUnknownDevice = errors.New("unknown device")

// Store is the read surface every dashboard view is built from.
//
// Implementations hand out copies: callers may mutate whatever they
// receive without the next read seeing it. DeviceRecord contains no
// reference types, so copying the slice elements is a full copy.
type Store interface {
	// Fleet returns every device in load order.
	Fleet() []model.DeviceRecord
	// Device returns one record by id, or ErrUnknownDevice.
	Device(id string) (model.DeviceRecord, error)
	// Version identifies the dataset the store was built from.
	Version() string
}

// fixtureStore serves a fleet fixed at construction time.
type fixtureStore struct {
	records []model.DeviceRecord
	byID    map[string]int
	version string
}

// NewFixtureStore validates the records and builds a Store over them.
// Validation happens here, once: downstream code relies on every record
// having a known category and status.
func NewFixtureStore(records []model.DeviceRecord, version string) (Store, error) {
	if len(records) == 0 {
		return nil, errors.New("fleet is empty")
	}
	s := &fixtureStore{
		records: make([]model.DeviceRecord, len(records)),
		byID:    make(map[string]int, len(records)),
		version: version,
	}
	copy(s.records, records)
	for i, r := range s.records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("fleet record %d: %w", i, err)
		}
		if _, dup := s.byID[r.DeviceID]; dup {
			return nil, fmt.Errorf("fleet record %d: duplicate device_id %q", i, r.DeviceID)
		}
		s.byID[r.DeviceID] = i
	}
	return s, nil
}

// Sample returns a store over the built-in sample fleet.
func Sample() Store {
	s, err := NewFixtureStore(SampleFleet(), SampleVersion)
	if err != nil {
		panic(err) // the built-in fleet is covered by tests
	}
	return s
}

func (s *fixtureStore) Fleet() []model.DeviceRecord {
	out := make([]model.DeviceRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *fixtureStore) Device(id string) (model.DeviceRecord, error) {
	i, ok := s.byID[id]
	if !ok {
		return model.DeviceRecord{}, fmt.Errorf("%w %q", ErrUnknownDevice, id)
	}
	return s.records[i], nil
}

func (s *fixtureStore) Version() string {
	return s.version
}
