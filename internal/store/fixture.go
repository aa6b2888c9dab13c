package store

import (
	"device-rental-backend/internal/model"
	"device-rental-backend/internal/parse"
)

// SampleVersion identifies the built-in demo fleet. It is reported by
// /healthz so an operator can tell a demo process from one serving a
// fleet file.
const SampleVersion = "sample-2024"

// SampleFleet is the demo dataset the dashboard ships with: two leased
// printers and two leased computers. Figures are periodic totals for the
// current lease.
func SampleFleet() []model.DeviceRecord {
	return []model.DeviceRecord{
		{
			DeviceID:        "P001",
			Category:        model.CategoryPrinter,
			Model:           "HP LaserJet",
			TotalCopies:     15000,
			MaintenanceCost: 500,
			LeaseIncome:     2000,
			LeaseStart:      parse.MustDate("2024-01-01"),
			LeaseEnd:        parse.MustDate("2024-12-31"),
			Status:          model.StatusActive,
			Client:          "Company A",
		},
		{
			DeviceID:        "P002",
			Category:        model.CategoryPrinter,
			Model:           "Canon ImageRUNNER",
			TotalCopies:     22000,
			MaintenanceCost: 750,
			LeaseIncome:     2500,
			LeaseStart:      parse.MustDate("2024-02-15"),
			LeaseEnd:        parse.MustDate("2024-11-15"),
			Status:          model.StatusActive,
			Client:          "Company B",
		},
		{
			DeviceID:        "C001",
			Category:        model.CategoryComputer,
			Model:           "Dell Latitude",
			TotalCopies:     0,
			MaintenanceCost: 300,
			LeaseIncome:     1500,
			LeaseStart:      parse.MustDate("2024-03-01"),
			LeaseEnd:        parse.MustDate("2024-12-31"),
			Status:          model.StatusActive,
			Client:          "Company C",
		},
		{
			DeviceID:        "C002",
			Category:        model.CategoryComputer,
			Model:           "MacBook Pro",
			TotalCopies:     0,
			MaintenanceCost: 450,
			LeaseIncome:     1800,
			LeaseStart:      parse.MustDate("2024-01-15"),
			LeaseEnd:        parse.MustDate("2024-10-15"),
			Status:          model.StatusMaintenance,
			Client:          "Company D",
		},
	}
}
