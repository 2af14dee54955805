package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/smartrent/rentroll"
)

// statusOrder fixes the order of the counts line, worst first.
var statusOrder = []rentroll.CellStatus{
	rentroll.StatusOverdue,
	rentroll.StatusPartial,
	rentroll.StatusDue,
	rentroll.StatusPaid,
	rentroll.StatusPaidVacant,
	rentroll.StatusVacant,
}

// StatusMarkdown renders the month status board.
func StatusMarkdown(r *rentroll.StatusGridReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Status for %s", r.Month.Format("January 2006")))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Unit", "Tenant", "Rent", "Collected", "Status"},
	}
	for _, e := range r.Entries {
		tenant, rent := e.Tenant, e.Rent.String()
		if e.Status == rentroll.StatusVacant {
			tenant, rent = "·", "·"
		}
		table.Rows = append(table.Rows, []string{
			unitLabel(e.Unit, e.Building),
			tenant,
			rent,
			e.Total.String(),
			e.Status.String(),
		})
	}
	doc.Table(table)

	var counts []string
	for _, status := range statusOrder {
		if n := r.Counts[status]; n > 0 {
			counts = append(counts, fmt.Sprintf("%d %s", n, status))
		}
	}
	if len(counts) > 0 {
		doc.PlainText(strings.Join(counts, ", "))
	}

	return doc.String()
}
