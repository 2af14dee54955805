package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the registry file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `srp fmt

  Reads the registry, validates it, and writes it back in canonical order:
  buildings, units, tenants and leases by id, then payments and expenses
  chronologically. Keeps version control diffs small.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load registry: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveRegistry(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	b, u, tn, l, p, e := g.Counts()
	fmt.Fprintf(os.Stderr, "Formatted %d buildings, %d units, %d tenants, %d leases, %d payments, %d expenses.\n",
		b, u, tn, l, p, e)
	return subcommands.ExitSuccess
}
