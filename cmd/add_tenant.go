package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartrent/rentroll"
)

type addTenantCmd struct {
	name    string
	contact string
}

func (*addTenantCmd) Name() string     { return "add-tenant" }
func (*addTenantCmd) Synopsis() string { return "record a new tenant" }
func (*addTenantCmd) Usage() string {
	return `srp add-tenant -name <name> [-contact <contact>]

  Record a new tenant in the registry.
`
}

func (c *addTenantCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the tenant.")
	f.StringVar(&c.contact, "contact", "", "Phone or email.")
}

func (c *addTenantCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := g.AddTenant(rentroll.Tenant{Name: c.name, Contact: c.contact})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveRegistry(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added tenant %d %q\n", id, c.name)
	return subcommands.ExitSuccess
}
