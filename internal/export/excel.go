// Package export renders the dashboard views into an xlsx workbook.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"device-rental-backend/internal/view"
)

// Sheet names, in workbook order.
const (
	sheetOverview  = "Overview"
	sheetFinance   = "Finance"
	sheetInventory = "Inventory"
	sheetLeases    = "Leases"
)

// Workbook renders the four views into a workbook, one sheet per view,
// and returns the encoded bytes. Everything stays in memory; nothing is
// written to disk.
func Workbook(o view.Overview, fin view.Finance, inv view.Inventory, l view.Leases) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	style, err := headerStyle(f)
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	first, err := f.NewSheet(sheetOverview)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := writeOverview(f, style, o); err != nil {
		return nil, err
	}
	if err := writeFinance(f, style, fin); err != nil {
		return nil, err
	}
	if err := writeInventory(f, style, inv); err != nil {
		return nil, err
	}
	if err := writeLeases(f, style, l); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(first)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

// writeHeaderRow writes a styled header at the given row.
func writeHeaderRow(f *excelize.File, sheet string, row, style int, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func setWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func freezeTopRow(f *excelize.File, sheet string) error {
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeOverview(f *excelize.File, style int, o view.Overview) error {
	if err := writeHeaderRow(f, sheetOverview, 1, style, []string{"Metric", "Value"}); err != nil {
		return err
	}
	metrics := []struct {
		name  string
		value any
	}{
		{"Devices", o.DeviceCount},
		{"Total lease income", o.TotalIncome},
		{"Total maintenance cost", o.TotalCost},
		{"Active devices", o.ActiveCount},
	}
	row := 1
	for _, m := range metrics {
		row++
		if err := writeRow(f, sheetOverview, row, []any{m.name, m.value}); err != nil {
			return err
		}
	}

	row += 2
	if err := writeHeaderRow(f, sheetOverview, row, style, []string{"Status", "Count", "Share %"}); err != nil {
		return err
	}
	for _, s := range o.StatusBreakdown {
		row++
		if err := writeRow(f, sheetOverview, row, []any{s.Label, s.Count, s.SharePercent}); err != nil {
			return err
		}
	}

	if err := setWidths(f, sheetOverview, []float64{26, 14, 10}); err != nil {
		return err
	}
	return freezeTopRow(f, sheetOverview)
}

func writeFinance(f *excelize.File, style int, fin view.Finance) error {
	if _, err := f.NewSheet(sheetFinance); err != nil {
		return err
	}
	if err := writeHeaderRow(f, sheetFinance, 1, style, []string{"Device ID", "Model", "Category", "ROI %"}); err != nil {
		return err
	}
	row := 1
	for _, b := range fin.ROIBars {
		row++
		if err := writeRow(f, sheetFinance, row, []any{b.DeviceID, b.Model, b.Category.Label(), b.ROIPercent}); err != nil {
			return err
		}
	}

	if len(fin.Exclusions) > 0 {
		row += 2
		if err := writeHeaderRow(f, sheetFinance, row, style, []string{"Excluded from ROI", "Model", "Reason"}); err != nil {
			return err
		}
		for _, e := range fin.Exclusions {
			row++
			if err := writeRow(f, sheetFinance, row, []any{e.DeviceID, e.Model, e.Reason}); err != nil {
				return err
			}
		}
	}

	row += 2
	if err := writeHeaderRow(f, sheetFinance, row, style, []string{"Device ID", "Model", "Maintenance Cost", "Share %"}); err != nil {
		return err
	}
	for _, s := range fin.CostShares {
		row++
		if err := writeRow(f, sheetFinance, row, []any{s.DeviceID, s.Model, s.Cost, s.SharePercent}); err != nil {
			return err
		}
	}

	if err := setWidths(f, sheetFinance, []float64{12, 22, 18, 12}); err != nil {
		return err
	}
	return freezeTopRow(f, sheetFinance)
}

func writeInventory(f *excelize.File, style int, inv view.Inventory) error {
	if _, err := f.NewSheet(sheetInventory); err != nil {
		return err
	}
	headers := []string{"Device ID", "Category", "Model", "Status", "Client", "Lease Income", "Maintenance Cost"}
	if err := writeHeaderRow(f, sheetInventory, 1, style, headers); err != nil {
		return err
	}
	for i, r := range inv.Rows {
		values := []any{r.DeviceID, r.Category.Label(), r.Model, r.Status.Label(), r.Client, r.LeaseIncome, r.MaintenanceCost}
		if err := writeRow(f, sheetInventory, i+2, values); err != nil {
			return err
		}
	}

	if err := setWidths(f, sheetInventory, []float64{12, 12, 22, 14, 16, 14, 18}); err != nil {
		return err
	}
	return freezeTopRow(f, sheetInventory)
}

func writeLeases(f *excelize.File, style int, l view.Leases) error {
	if _, err := f.NewSheet(sheetLeases); err != nil {
		return err
	}
	headers := []string{"Device ID", "Category", "Model", "Client", "Lease Start", "Lease End", "Days Left", "Expired"}
	if err := writeHeaderRow(f, sheetLeases, 1, style, headers); err != nil {
		return err
	}
	row := 1
	if l.NoneExpiring {
		row++
		note := fmt.Sprintf("No leases expiring within %d days of %s", l.WindowDays, l.EvaluatedOn)
		if err := writeRow(f, sheetLeases, row, []any{note}); err != nil {
			return err
		}
	}
	for _, r := range l.ExpiringSoon {
		row++
		expired := "No"
		if r.Expired {
			expired = "Yes"
		}
		values := []any{r.DeviceID, r.Category.Label(), r.Model, r.Client, r.LeaseStart, r.LeaseEnd, r.DaysToExpiration, expired}
		if err := writeRow(f, sheetLeases, row, values); err != nil {
			return err
		}
	}

	row += 2
	if err := writeHeaderRow(f, sheetLeases, row, style, []string{"Category", "Devices", "Income Sum", "Earliest Start", "Latest End"}); err != nil {
		return err
	}
	for _, s := range l.Summaries {
		row++
		values := []any{s.Label, s.DeviceCount, s.IncomeSum, s.EarliestStart, s.LatestEnd}
		if err := writeRow(f, sheetLeases, row, values); err != nil {
			return err
		}
	}

	if err := setWidths(f, sheetLeases, []float64{12, 12, 22, 16, 12, 12, 10, 10}); err != nil {
		return err
	}
	return freezeTopRow(f, sheetLeases)
}
