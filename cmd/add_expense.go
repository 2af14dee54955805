package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartrent/rentroll"
)

type addExpenseCmd struct {
	unit     int64
	building int64
	date     string
	category string
	amount   string
	notes    string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record a maintenance expense" }
func (*addExpenseCmd) Usage() string {
	return `srp add-expense (-u <unit> | -b <building>) -amount <amount> [-d <date>]

  Record a maintenance expense against a unit or directly against a
  building. Exactly one of -u and -b must be given.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.unit, "u", 0, "Id of the unit the expense belongs to.")
	f.Int64Var(&c.building, "b", 0, "Id of the building, for building-wide work.")
	f.StringVar(&c.date, "d", "", "Expense date, defaults to today.")
	f.StringVar(&c.category, "category", "", "Category, e.g. Plumbing, Painting.")
	f.StringVar(&c.amount, "amount", "", "Amount spent.")
	f.StringVar(&c.notes, "notes", "", "Free form note.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	id, err := g.AddExpense(rentroll.Expense{
		UnitID:     c.unit,
		BuildingID: c.building,
		Date:       date,
		Category:   c.category,
		Amount:     amount,
		Notes:      c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveRegistry(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added expense %d of %s\n", id, amount)
	return subcommands.ExitSuccess
}
