package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartrent/rentroll"
)

type addPaymentCmd struct {
	lease  int64
	date   string
	period string
	amount string
	method string
	notes  string
}

func (*addPaymentCmd) Name() string     { return "add-payment" }
func (*addPaymentCmd) Synopsis() string { return "record a rent payment against a lease" }
func (*addPaymentCmd) Usage() string {
	return `srp add-payment -l <lease> -amount <amount> [-d <date>] [-period <month>]

  Record a rent receipt. Without -period the receipt date decides which
  month the payment settles; with it, the named month does, so rent paid
  late still lands on the right month.
`
}

func (c *addPaymentCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.lease, "l", 0, "Id of the lease being paid.")
	f.StringVar(&c.date, "d", "", "Receipt date, defaults to today.")
	f.StringVar(&c.period, "period", "", "Month the payment settles, any date inside it.")
	f.StringVar(&c.amount, "amount", "", "Amount received.")
	f.StringVar(&c.method, "method", rentroll.BankTransferMethod, "Payment method, e.g. Bank Transfer, Cash, Check.")
	f.StringVar(&c.notes, "notes", "", "Free form note.")
}

func (c *addPaymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date := rentroll.Today()
	if c.date != "" {
		var err error
		date, err = rentroll.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	amount, err := rentroll.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	g, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := g.AddPayment(rentroll.Payment{
		LeaseID: c.lease,
		Date:    date,
		Period:  c.period,
		Amount:  amount,
		Method:  c.method,
		Notes:   c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveRegistry(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added payment %d of %s on lease %d\n", id, amount, c.lease)
	return subcommands.ExitSuccess
}
