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

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	view viewFlags
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the yearly rent and expense totals" }
func (*dashboardCmd) Usage() string {
	return `srp dashboard [-mode <calendar|financial>] [-y <year>] [-b <building>]

  Show rent collected over the year, its split by payment method,
  maintenance spend, and the resulting net.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) { c.view.SetFlags(f) }

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := rentroll.NewDashboardReport(s, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(report))

	return subcommands.ExitSuccess
}
