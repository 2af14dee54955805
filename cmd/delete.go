package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a record by kind and id" }
func (*deleteCmd) Usage() string {
	return `srp delete <kind> <id>

  Delete one record, e.g. "srp delete payment 12". Kinds: building, unit,
  tenant, lease, payment, expense. A record still referenced by others is
  not deleted; remove the dependents first.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	kind := f.Arg(0)
	var id int64
	if _, err := fmt.Sscanf(f.Arg(1), "%d", &id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid id %q\n", f.Arg(1))
		return subcommands.ExitUsageError
	}

	g, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var del func(int64) error
	switch kind {
	case "building":
		del = g.DeleteBuilding
	case "unit":
		del = g.DeleteUnit
	case "tenant":
		del = g.DeleteTenant
	case "lease":
		del = g.DeleteLease
	case "payment":
		del = g.DeletePayment
	case "expense":
		del = g.DeleteExpense
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown record kind %q\n", kind)
		return subcommands.ExitUsageError
	}

	if err := del(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveRegistry(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s %d\n", kind, id)
	return subcommands.ExitSuccess
}
