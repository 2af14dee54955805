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

// timelineCmd holds the flags for the 'timeline' subcommand.
type timelineCmd struct {
	view viewFlags
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "show the occupancy timeline of the year" }
func (*timelineCmd) Usage() string {
	return `srp timeline [-mode <calendar|financial>] [-y <year>] [-b <building>]

  Draw every unit's leases across the year, showing occupied stretches
  and gaps.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) { c.view.SetFlags(f) }

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := rentroll.NewTimelineReport(s, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TimelineMarkdown(report))

	return subcommands.ExitSuccess
}
