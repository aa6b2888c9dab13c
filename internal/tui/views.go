package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"device-rental-backend/internal/model"
	"device-rental-backend/internal/view"
)

const barWidth = 30

var moneyPrinter = message.NewPrinter(language.English)

func money(v float64) string {
	return moneyPrinter.Sprintf("$%.2f", v)
}

// bar renders percent of a fixed-width block bar.
func bar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	n := int(percent/100*float64(width) + 0.5)
	if n > width {
		n = width
	}
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

func (d *dashboard) View() string {
	var b strings.Builder

	b.WriteString(d.renderTabs() + "\n\n")

	switch d.tab {
	case tabOverview:
		b.WriteString(d.renderOverview())
	case tabFinance:
		b.WriteString(d.renderFinance())
	case tabInventory:
		b.WriteString(d.renderInventory())
	case tabLeases:
		b.WriteString(d.renderLeases())
	}

	b.WriteString("\n\n" + d.help.View(d.keys))
	return d.styles.app.Render(b.String())
}

func (d *dashboard) renderTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == d.tab {
			parts[i] = d.styles.tabActive.Render(label)
		} else {
			parts[i] = d.styles.tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (d *dashboard) metricCard(label, value string) string {
	return d.styles.card.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		d.styles.cardLabel.Render(label),
		d.styles.cardValue.Render(value),
	))
}

func (d *dashboard) statusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusActive:
		return d.styles.good
	case model.StatusMaintenance:
		return d.styles.warn
	default:
		return d.styles.dim
	}
}

func (d *dashboard) renderOverview() string {
	o := view.BuildOverview(d.rows)

	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		d.metricCard("Devices", fmt.Sprintf("%d", o.DeviceCount)),
		d.metricCard("Total income", money(o.TotalIncome)),
		d.metricCard("Maintenance cost", money(o.TotalCost)),
		d.metricCard("Active devices", fmt.Sprintf("%d", o.ActiveCount)),
	)

	var b strings.Builder
	b.WriteString(cards + "\n\n")
	b.WriteString(d.styles.heading.Render("Status distribution") + "\n")
	for _, s := range o.StatusBreakdown {
		style := d.statusStyle(s.Status)
		b.WriteString(fmt.Sprintf("%-12s %s %3d (%.0f%%)\n",
			s.Label, style.Render(bar(s.SharePercent, barWidth)), s.Count, s.SharePercent))
	}
	return b.String()
}

func (d *dashboard) renderFinance() string {
	f := view.BuildFinance(d.rows)

	var b strings.Builder
	b.WriteString(d.styles.heading.Render("ROI by device") + "\n")

	var maxROI float64
	for _, r := range f.ROIBars {
		if r.ROIPercent > maxROI {
			maxROI = r.ROIPercent
		}
	}
	for _, r := range f.ROIBars {
		scaled := 0.0
		if maxROI > 0 {
			scaled = r.ROIPercent / maxROI * 100
		}
		style := d.styles.good
		if r.Category == model.CategoryPrinter {
			style = d.styles.warn
		}
		b.WriteString(fmt.Sprintf("%-5s %-18s %s %8.1f%%\n",
			r.DeviceID, r.Model, style.Render(bar(scaled, barWidth)), r.ROIPercent))
	}
	if len(f.ROIBars) == 0 {
		b.WriteString(d.styles.dim.Render("no devices with a defined ROI") + "\n")
	}
	for _, ex := range f.Exclusions {
		b.WriteString(d.styles.dim.Render(fmt.Sprintf("excluded: %s (%s)", ex.DeviceID, ex.Reason)) + "\n")
	}

	b.WriteString("\n" + d.styles.heading.Render(fmt.Sprintf("Maintenance cost share of %s", money(f.TotalCost))) + "\n")
	for _, s := range f.CostShares {
		b.WriteString(fmt.Sprintf("%-5s %s %10s (%.1f%%)\n",
			s.DeviceID, bar(s.SharePercent, barWidth), money(s.Cost), s.SharePercent))
	}
	return b.String()
}

func (d *dashboard) renderInventory() string {
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}

	inv := view.BuildInventory(d.rows, d.selection())

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s printers  %s computers   showing %d of %d\n\n",
		check(d.printers), check(d.computers), inv.FilteredCount, inv.TotalCount))
	b.WriteString(d.table.View() + "\n\n")

	b.WriteString(fmt.Sprintf("requested status: %s ('s' cycles, enter confirms)\n",
		d.statusStyle(d.pendingStatus()).Render(d.pendingStatus().Label())))

	if d.updateErr != nil {
		b.WriteString(d.styles.bad.Render(d.updateErr.Error()) + "\n")
	}
	if d.receipt != "" {
		b.WriteString(d.styles.banner.Render(d.receipt) + "\n")
	}
	return b.String()
}

func (d *dashboard) renderLeases() string {
	l := view.BuildLeases(d.rows, d.now())

	var b strings.Builder
	b.WriteString(d.styles.heading.Render(
		fmt.Sprintf("Expiring within %d days of %s", l.WindowDays, l.EvaluatedOn)) + "\n")

	if l.NoneExpiring {
		b.WriteString(d.styles.dim.Render("no leases expiring in the window") + "\n")
	}
	for _, r := range l.ExpiringSoon {
		line := fmt.Sprintf("%-5s %-9s %-18s %-10s %s to %s  %4d days",
			r.DeviceID, r.Category.Label(), r.Model, r.Client, r.LeaseStart, r.LeaseEnd, r.DaysToExpiration)
		if r.Expired {
			b.WriteString(d.styles.bad.Render(line+"  EXPIRED") + "\n")
		} else if r.DaysToExpiration <= 30 {
			b.WriteString(d.styles.warn.Render(line) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + d.styles.heading.Render("Lease summary by category") + "\n")
	for _, s := range l.Summaries {
		b.WriteString(fmt.Sprintf("%-10s %d devices  %12s  %s to %s\n",
			s.Label, s.DeviceCount, money(s.IncomeSum), s.EarliestStart, s.LatestEnd))
	}
	return b.String()
}
