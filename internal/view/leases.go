package view

import (
	"time"

	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/model"
	"device-rental-backend/internal/parse"
)

// ExpiringSoonWindowDays is the inclusive warning horizon: a lease
// ending exactly this many days out still counts as expiring soon.
const ExpiringSoonWindowDays = 60

// LeaseRow is one line of the expiring-soon warning table.
type LeaseRow struct {
	DeviceID         string         `json:"device_id"`
	Category         model.Category `json:"category"`
	Model            string         `json:"model"`
	Client           string         `json:"client"`
	LeaseStart       string         `json:"lease_start"`
	LeaseEnd         string         `json:"lease_end"`
	DaysToExpiration int            `json:"days_to_expiration"`
	Expired          bool           `json:"expired"`
}

// CategorySummary aggregates the whole fleet per category: how many
// devices, what they bring in, and the span their leases cover.
type CategorySummary struct {
	Category      model.Category `json:"category"`
	Label         string         `json:"label"`
	DeviceCount   int            `json:"device_count"`
	IncomeSum     float64        `json:"income_sum"`
	EarliestStart string         `json:"earliest_start"`
	LatestEnd     string         `json:"latest_end"`
}

// Leases is the lease-expiration view.
type Leases struct {
	EvaluatedOn  string            `json:"evaluated_on"`
	WindowDays   int               `json:"window_days"`
	ExpiringSoon []LeaseRow        `json:"expiring_soon"`
	NoneExpiring bool              `json:"none_expiring"`
	Summaries    []CategorySummary `json:"summaries"`
}

// BuildLeases lists leases ending within the warning window, expired
// ones included, and summarises the full fleet per category. The
// summary always covers every device regardless of the window.
func BuildLeases(rows []metrics.Derived, now time.Time) Leases {
	l := Leases{
		EvaluatedOn: parse.FormatDate(now),
		WindowDays:  ExpiringSoonWindowDays,
	}

	for _, r := range rows {
		if r.DaysToExpiration > ExpiringSoonWindowDays {
			continue
		}
		l.ExpiringSoon = append(l.ExpiringSoon, LeaseRow{
			DeviceID:         r.DeviceID,
			Category:         r.Category,
			Model:            r.Model,
			Client:           r.Client,
			LeaseStart:       parse.FormatDate(r.LeaseStart),
			LeaseEnd:         parse.FormatDate(r.LeaseEnd),
			DaysToExpiration: r.DaysToExpiration,
			Expired:          r.DaysToExpiration < 0,
		})
	}
	l.NoneExpiring = len(l.ExpiringSoon) == 0

	agg := make(map[model.Category]*CategorySummary)
	for _, r := range rows {
		s, ok := agg[r.Category]
		if !ok {
			s = &CategorySummary{
				Category:      r.Category,
				Label:         r.Category.Label(),
				EarliestStart: parse.FormatDate(r.LeaseStart),
				LatestEnd:     parse.FormatDate(r.LeaseEnd),
			}
			agg[r.Category] = s
		}
		s.DeviceCount++
		s.IncomeSum += r.LeaseIncome
		if start := parse.FormatDate(r.LeaseStart); start < s.EarliestStart {
			s.EarliestStart = start
		}
		if end := parse.FormatDate(r.LeaseEnd); end > s.LatestEnd {
			s.LatestEnd = end
		}
	}
	for _, c := range model.Categories() {
		if s, ok := agg[c]; ok {
			l.Summaries = append(l.Summaries, *s)
		}
	}
	return l
}
