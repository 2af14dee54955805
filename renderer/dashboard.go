// Package renderer turns reports into markdown strings ready for the
// terminal or a file.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/smartrent/rentroll"
)

// DashboardMarkdown renders the yearly dashboard totals.
func DashboardMarkdown(r *rentroll.DashboardReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard %s", r.Label))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Rent Collected"),
			md.Bold(r.Gross.String()),
		},
		Rows: [][]string{
			{"By Bank Transfer", r.BankTransfer.String()},
			{"By Other Methods", r.Other.String()},
			{"Maintenance", r.Maintenance.Neg().SignedString()},
			{md.Bold("Net"), md.Bold(r.Net.String())},
		},
	})

	doc.PlainTextf("%d payments and %d expenses counted.", r.Payments, r.Expenses)

	return doc.String()
}
