package rentroll

import "sort"

// AllBuildings is the building scope that includes every building.
const AllBuildings int64 = 0

// ViewConfig is the immutable configuration of one analytics computation:
// which fiscal layout, which year, which building, and what "today" is.
//
// Every report constructor takes it explicitly; there is no view-level
// cursor holding mode or year between calls. Today is injected rather than
// read from the clock so that overdue/due boundaries are reproducible.
type ViewConfig struct {
	Mode          FiscalMode
	Year          int
	BuildingScope int64 // AllBuildings or a building id
	Today         Date
}

// DefaultViewConfig opens on the year today falls in (financial-year aware)
// with every building in scope.
func DefaultViewConfig(mode FiscalMode) ViewConfig {
	today := Today()
	return ViewConfig{
		Mode:          mode,
		Year:          mode.DefaultYear(today),
		BuildingScope: AllBuildings,
		Today:         today,
	}
}

// Window returns the inclusive date range of the configured year.
func (c ViewConfig) Window() Range { return c.Mode.Window(c.Year) }

// Months returns the 12 month-start dates of the configured year.
func (c ViewConfig) Months() []Date { return c.Mode.Months(c.Year) }

// Label returns the display name of the configured year.
func (c ViewConfig) Label() string { return c.Mode.Label(c.Year) }

// unitInScope reports whether the unit belongs to the configured building.
func (c ViewConfig) unitInScope(u Unit) bool {
	return c.BuildingScope == AllBuildings || u.BuildingID == c.BuildingScope
}

// scopedUnits returns the units in scope, sorted in natural unit-number order.
func (c ViewConfig) scopedUnits(s *Snapshot) []Unit {
	units := make([]Unit, 0, len(s.Units))
	for _, u := range s.Units {
		if c.unitInScope(u) {
			units = append(units, u)
		}
	}
	sortUnits(units)
	return units
}

func sortUnits(units []Unit) {
	sort.SliceStable(units, func(i, j int) bool {
		return CompareUnitNumbers(units[i].UnitNumber, units[j].UnitNumber) < 0
	})
}
