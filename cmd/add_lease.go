package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartrent/rentroll"
)

type addLeaseCmd struct {
	unit   int64
	tenant int64
	start  string
	end    string
	rent   string
}

func (*addLeaseCmd) Name() string     { return "add-lease" }
func (*addLeaseCmd) Synopsis() string { return "record a lease binding a tenant to a unit" }
func (*addLeaseCmd) Usage() string {
	return `srp add-lease -u <unit> -t <tenant> -start <date> -end <date> -rent <amount>

  Record a lease. The end date must fall after the start date. Sequential
  tenancies on the same unit are just separate leases.
`
}

func (c *addLeaseCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.unit, "u", 0, "Id of the leased unit.")
	f.Int64Var(&c.tenant, "t", 0, "Id of the tenant.")
	f.StringVar(&c.start, "start", "", "First day of the lease (YYYY-MM-DD).")
	f.StringVar(&c.end, "end", "", "Last day of the lease (YYYY-MM-DD).")
	f.StringVar(&c.rent, "rent", "", "Monthly rent amount.")
}

func (c *addLeaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := rentroll.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := rentroll.ParseDate(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	rent, err := rentroll.ParseMoney(c.rent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rent: %v\n", err)
		return subcommands.ExitUsageError
	}

	g, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := g.AddLease(rentroll.Lease{
		UnitID:   c.unit,
		TenantID: c.tenant,
		Start:    start,
		End:      end,
		Rent:     rent,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveRegistry(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added lease %d on unit %d for %s\n", id, c.unit, rent)
	return subcommands.ExitSuccess
}
