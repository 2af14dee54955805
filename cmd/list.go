package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type listCmd struct {
	kind string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list records in the registry" }
func (*listCmd) Usage() string {
	return `srp list [-kind <buildings|units|tenants|leases|payments|expenses>]

  List records with their ids, the ids other commands take. Without -kind,
  every record kind is listed.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Record kind to list, all by default.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s := g.Snapshot()
	b := &strings.Builder{}

	wants := func(kind string) bool { return c.kind == "" || c.kind == kind }
	listed := false

	if wants("buildings") {
		listed = true
		fmt.Fprintf(b, "## Buildings\n\n| Id | Name | Address |\n|---:|:---|:---|\n")
		for bld := range g.Buildings() {
			fmt.Fprintf(b, "| %d | %s | %s |\n", bld.ID, bld.Name, bld.Address)
		}
		fmt.Fprintf(b, "\n")
	}
	if wants("units") {
		listed = true
		fmt.Fprintf(b, "## Units\n\n| Id | Building | Unit | Status |\n|---:|:---|:---|:---|\n")
		for u := range g.Units() {
			fmt.Fprintf(b, "| %d | %s | %s | %s |\n", u.ID, s.BuildingName(u.BuildingID), u.UnitNumber, u.Status)
		}
		fmt.Fprintf(b, "\n")
	}
	if wants("tenants") {
		listed = true
		fmt.Fprintf(b, "## Tenants\n\n| Id | Name | Contact |\n|---:|:---|:---|\n")
		for t := range g.Tenants() {
			fmt.Fprintf(b, "| %d | %s | %s |\n", t.ID, t.Name, t.Contact)
		}
		fmt.Fprintf(b, "\n")
	}
	if wants("leases") {
		listed = true
		fmt.Fprintf(b, "## Leases\n\n| Id | Unit | Tenant | From | To | Rent |\n|---:|:---|:---|:---|:---|---:|\n")
		for l := range g.Leases() {
			fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s |\n",
				l.ID, s.UnitNumber(l.UnitID), s.TenantName(l.TenantID), l.Start, l.End, l.Rent)
		}
		fmt.Fprintf(b, "\n")
	}
	if wants("payments") {
		listed = true
		fmt.Fprintf(b, "## Payments\n\n| Id | Lease | Date | Period | Amount | Method |\n|---:|---:|:---|:---|---:|:---|\n")
		for p := range g.Payments() {
			fmt.Fprintf(b, "| %d | %d | %s | %s | %s | %s |\n",
				p.ID, p.LeaseID, p.Date, p.Period, p.Amount, p.Method)
		}
		fmt.Fprintf(b, "\n")
	}
	if wants("expenses") {
		listed = true
		fmt.Fprintf(b, "## Expenses\n\n| Id | Date | Category | Amount | Linked To |\n|---:|:---|:---|---:|:---|\n")
		for e := range g.Expenses() {
			link := fmt.Sprintf("building %s", s.BuildingName(e.BuildingID))
			if e.UnitID != 0 {
				link = fmt.Sprintf("unit %s", s.UnitNumber(e.UnitID))
			}
			fmt.Fprintf(b, "| %d | %s | %s | %s | %s |\n", e.ID, e.Date, e.Category, e.Amount, link)
		}
		fmt.Fprintf(b, "\n")
	}

	if !listed {
		fmt.Fprintf(os.Stderr, "Error: unknown record kind %q\n", c.kind)
		return subcommands.ExitUsageError
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
