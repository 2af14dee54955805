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

// statusCmd holds the flags for the 'status' subcommand.
type statusCmd struct {
	view  viewFlags
	month string
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the payment status board for one month" }
func (*statusCmd) Usage() string {
	return `srp status [-m <month>] [-b <building>]

  Show every unit's payment status for one month, the previous month by
  default. -m takes any date inside the wanted month.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	c.view.SetFlags(f)
	f.StringVar(&c.month, "m", "", "month to report on, defaults to the previous month")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	month := rentroll.PreviousMonth(cfg.Today)
	if c.month != "" {
		d, err := rentroll.ParseDate(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		month = d.StartOfMonth()
	}

	report, err := rentroll.NewStatusGridReport(s, cfg, month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StatusMarkdown(report))

	return subcommands.ExitSuccess
}
