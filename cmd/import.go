package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartrent/rentroll"
)

type importCmd struct {
	input string
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a legacy database dump" }
func (*importCmd) Usage() string {
	return `srp import -i <dump.json> [-force]

  Read a JSON export of the old database and write a fresh registry file.
  Refuses to overwrite an existing registry unless -force is given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Path to the legacy JSON dump.")
	f.BoolVar(&c.force, "force", false, "Overwrite an existing registry file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <dump.json> is required")
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(*registryFile); err == nil && !c.force {
		fmt.Fprintf(os.Stderr, "Error: registry file %q already exists, use -force to overwrite\n", *registryFile)
		return subcommands.ExitFailure
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening dump: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	g, err := rentroll.ImportRecords(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing dump: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveRegistry(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	b, u, tn, l, p, e := g.Counts()
	fmt.Printf("Imported %d buildings, %d units, %d tenants, %d leases, %d payments, %d expenses into %s\n",
		b, u, tn, l, p, e, *registryFile)
	return subcommands.ExitSuccess
}
