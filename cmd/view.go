package cmd

import (
	"flag"
	"fmt"

	"github.com/smartrent/rentroll"
)

// viewFlags are the flags shared by every report command.
type viewFlags struct {
	mode     string
	year     int
	building int64
	date     string
}

func (v *viewFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&v.mode, "mode", "calendar", "year layout, calendar or financial")
	f.IntVar(&v.year, "y", 0, "report year (the starting year in financial mode), defaults to the current one")
	f.Int64Var(&v.building, "b", -1, "building id to restrict the report to; 0 for all, defaults to the building flagged as default scope")
	f.StringVar(&v.date, "d", "", "date taken as today, for reproducible reports")
}

// config resolves the flags into a ViewConfig. The snapshot supplies the
// default building scope when no -b flag was given.
func (v *viewFlags) config(s *rentroll.Snapshot) (rentroll.ViewConfig, error) {
	mode, err := rentroll.ParseFiscalMode(v.mode)
	if err != nil {
		return rentroll.ViewConfig{}, err
	}
	today := rentroll.Today()
	if v.date != "" {
		today, err = rentroll.ParseDate(v.date)
		if err != nil {
			return rentroll.ViewConfig{}, fmt.Errorf("parsing date: %w", err)
		}
	}
	year := v.year
	if year == 0 {
		year = mode.DefaultYear(today)
	}
	scope := v.building
	if scope < 0 {
		scope = rentroll.AllBuildings
		if s != nil {
			scope = s.DefaultBuildingScope()
		}
	}
	return rentroll.ViewConfig{
		Mode:          mode,
		Year:          year,
		BuildingScope: scope,
		Today:         today,
	}, nil
}
