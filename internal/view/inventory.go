package view

import (
	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/model"
)

// CategoryOption echoes the state of the category filter widget.
type CategoryOption struct {
	Category model.Category `json:"category"`
	Label    string         `json:"label"`
	Count    int            `json:"count"` // devices in the full fleet
	Selected bool           `json:"selected"`
}

// InventoryRow is one line of the inventory table.
type InventoryRow struct {
	DeviceID        string         `json:"device_id"`
	Category        model.Category `json:"category"`
	Model           string         `json:"model"`
	Status          model.Status   `json:"status"`
	Client          string         `json:"client"`
	LeaseIncome     float64        `json:"lease_income"`
	MaintenanceCost float64        `json:"maintenance_cost"`
}

// Inventory is the filterable device table.
type Inventory struct {
	Options       []CategoryOption `json:"options"`
	Rows          []InventoryRow   `json:"rows"`
	FilteredCount int              `json:"filtered_count"`
	TotalCount    int              `json:"total_count"`
}

// BuildInventory filters the fleet by the selected categories. A nil
// selection means no filter was supplied and every category shows. An
// explicitly empty selection is different: a multi-select with every
// box unchecked matches nothing, so the table is empty. Rows keep
// fleet order; the filter only ever removes.
func BuildInventory(rows []metrics.Derived, selected []model.Category) Inventory {
	all := selected == nil
	selectedSet := make(map[model.Category]bool, len(selected))
	for _, c := range selected {
		selectedSet[c] = true
	}

	inv := Inventory{TotalCount: len(rows)}

	counts := make(map[model.Category]int)
	for _, r := range rows {
		counts[r.Category]++
		if !all && !selectedSet[r.Category] {
			continue
		}
		inv.Rows = append(inv.Rows, InventoryRow{
			DeviceID:        r.DeviceID,
			Category:        r.Category,
			Model:           r.Model,
			Status:          r.Status,
			Client:          r.Client,
			LeaseIncome:     r.LeaseIncome,
			MaintenanceCost: r.MaintenanceCost,
		})
	}
	inv.FilteredCount = len(inv.Rows)

	for _, c := range model.Categories() {
		inv.Options = append(inv.Options, CategoryOption{
			Category: c,
			Label:    c.Label(),
			Count:    counts[c],
			Selected: all || selectedSet[c],
		})
	}
	return inv
}
