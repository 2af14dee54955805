package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartrent/rentroll"
)

type addUnitCmd struct {
	building int64
	number   string
	status   string
}

func (*addUnitCmd) Name() string     { return "add-unit" }
func (*addUnitCmd) Synopsis() string { return "record a new unit in a building" }
func (*addUnitCmd) Usage() string {
	return `srp add-unit -b <building> -number <unit number>

  Record a new rentable unit. The unit number is free text and sorts
  naturally in reports, so "2" comes before "10".
`
}

func (c *addUnitCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.building, "b", 0, "Id of the building the unit belongs to.")
	f.StringVar(&c.number, "number", "", "Unit number, e.g. 101 or G-2.")
	f.StringVar(&c.status, "status", "", "Free display status, not used by reports.")
}

func (c *addUnitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := g.AddUnit(rentroll.Unit{BuildingID: c.building, UnitNumber: c.number, Status: c.status})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveRegistry(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added unit %d %q\n", id, c.number)
	return subcommands.ExitSuccess
}
