package rentroll

import (
	"fmt"
	"strings"
	"time"
)

// FiscalMode selects how a reporting year is laid out.
type FiscalMode int

const (
	// Calendar runs January through December of the selected year.
	Calendar FiscalMode = iota
	// Financial runs April of the selected year through March of the next
	// (the Indian financial year).
	Financial
)

func (m FiscalMode) String() string {
	switch m {
	case Calendar:
		return "calendar"
	case Financial:
		return "financial"
	default:
		return "fiscal"
	}
}

// ParseFiscalMode parses a string into a FiscalMode.
func ParseFiscalMode(s string) (FiscalMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "calendar", "cal":
		return Calendar, nil
	case "financial", "fin", "fy":
		return Financial, nil
	default:
		return Calendar, fmt.Errorf("unknown fiscal mode %q (want calendar or financial)", s)
	}
}

// Months returns the 12 month-start dates of the selected year, in order.
func (m FiscalMode) Months(year int) []Date {
	months := make([]Date, 0, 12)
	first := time.January
	if m == Financial {
		first = time.April
	}
	for i := 0; i < 12; i++ {
		// NewDate normalizes months past December into the next year.
		months = append(months, NewDate(year, first+time.Month(i), 1))
	}
	return months
}

// Window returns the full date range of the selected year, inclusive on both
// ends: Jan 1..Dec 31 for Calendar, Apr 1..Mar 31 of year+1 for Financial.
func (m FiscalMode) Window(year int) Range {
	months := m.Months(year)
	return Range{From: months[0], To: months[11].EndOfMonth()}
}

// DefaultYear returns the year a fresh view should open on. For the financial
// mode, January through March still belong to the year that started the
// previous April.
func (m FiscalMode) DefaultYear(today Date) int {
	year := today.Year()
	if m == Financial && today.Month() < time.April {
		year--
	}
	return year
}

// Label returns the display name of the selected year, e.g. "2024" or
// "FY 2024-2025".
func (m FiscalMode) Label(year int) string {
	if m == Financial {
		return fmt.Sprintf("FY %d-%d", year, year+1)
	}
	return fmt.Sprintf("%d", year)
}
