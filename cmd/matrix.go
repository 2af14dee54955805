package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartrent/rentroll"
	"github.com/smartrent/rentroll/renderer"
)

// matrixCmd holds the flags for the 'matrix' subcommand.
type matrixCmd struct {
	view viewFlags
}

func (*matrixCmd) Name() string     { return "matrix" }
func (*matrixCmd) Synopsis() string { return "show the unit-by-month rent matrix" }
func (*matrixCmd) Usage() string {
	return `srp matrix [-mode <calendar|financial>] [-y <year>] [-b <building>]

  Show every unit against the 12 months of the year, with the amount
  collected and the payment status in each cell.
`
}

func (c *matrixCmd) SetFlags(f *flag.FlagSet) { c.view.SetFlags(f) }

func (c *matrixCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg, err := c.view.config(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := rentroll.NewMatrixReport(s, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MatrixMarkdown(report))

	return subcommands.ExitSuccess
}
