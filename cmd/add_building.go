package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartrent/rentroll"
)

type addBuildingCmd struct {
	name         string
	address      string
	defaultScope bool
}

func (*addBuildingCmd) Name() string     { return "add-building" }
func (*addBuildingCmd) Synopsis() string { return "record a new building" }
func (*addBuildingCmd) Usage() string {
	return `srp add-building -name <name> [-address <address>] [-default-scope]

  Record a new building in the registry.
`
}

func (c *addBuildingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the building.")
	f.StringVar(&c.address, "address", "", "Street address.")
	f.BoolVar(&c.defaultScope, "default-scope", false, "Open reports on this building when no -b flag is given.")
}

func (c *addBuildingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := g.AddBuilding(rentroll.Building{Name: c.name, Address: c.address, DefaultScope: c.defaultScope})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveRegistry(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added building %d %q\n", id, c.name)
	return subcommands.ExitSuccess
}
