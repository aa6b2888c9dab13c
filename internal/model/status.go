package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCategory marks a category outside the closed set.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownStatus marks a status outside the closed set.
	ErrUnknownStatus = errors.New("unknown status")
)

// Category classifies a device by kind. The set is closed: aggregations
// group by it, so a free-form string here would silently split groups.
type Category string

const (
	CategoryPrinter  Category = "printer"
	CategoryComputer Category = "computer"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryPrinter, CategoryComputer}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryPrinter, CategoryComputer:
		return true
	}
	return false
}

// Label is the capitalized form shown in tables and chart legends.
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c)[:1]) + string(c)[1:]
}

// ParseCategory maps user input to a Category. Matching is
// case-insensitive and tolerates a plural ("Printers").
func ParseCategory(s string) (Category, error) {
	normalized := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	c := Category(normalized)
	if !c.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Status is the operational state of a device. Counting "active" devices
// compares against StatusActive, never against a spelled-out literal, so
// a renamed or translated label cannot desynchronize the summary cards.
type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusInactive    Status = "inactive"
)

// Statuses lists every valid status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusMaintenance, StatusInactive}
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusInactive:
		return true
	}
	return false
}

// Label is the capitalized form shown in tables and the status selector.
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s)[:1]) + string(s)[1:]
}

// ParseStatus maps user input to a Status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownStatus, s)
	}
	return st, nil
}
