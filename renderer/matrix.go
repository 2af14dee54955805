package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/smartrent/rentroll"
)

// MatrixMarkdown renders the unit-by-month rent matrix. Cells carry the
// collected amount when money came in, the status word otherwise.
func MatrixMarkdown(r *rentroll.MatrixReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Rent Matrix %s", r.Label))

	alignment := make([]md.TableAlignment, 0, 14)
	alignment = append(alignment, md.AlignLeft)
	header := []string{md.Bold("Unit")}
	for _, m := range r.Months {
		alignment = append(alignment, md.AlignRight)
		header = append(header, m.Format("Jan"))
	}
	alignment = append(alignment, md.AlignRight)
	header = append(header, md.Bold("Total"))

	table := md.TableSet{Alignment: alignment, Header: header}
	for _, row := range r.Rows {
		cells := []string{unitLabel(row.Unit, row.Building)}
		for _, cell := range row.Cells {
			cells = append(cells, matrixCell(cell))
		}
		cells = append(cells, md.Bold(row.Total.String()))
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	doc.PlainTextf("Total collected: %s", md.Bold(r.Total.String()))

	return doc.String()
}

func matrixCell(cell rentroll.MatrixCell) string {
	switch cell.Status {
	case rentroll.StatusPaid:
		return cell.Total.String()
	case rentroll.StatusPartial, rentroll.StatusPaidVacant:
		// flag money that needs a second look
		return fmt.Sprintf("%s %s", cell.Total.String(), cell.Status)
	case rentroll.StatusVacant:
		return "·"
	default:
		return cell.Status.String()
	}
}

func unitLabel(u rentroll.Unit, building string) string {
	if building == "" || building == rentroll.UnknownLabel {
		return u.UnitNumber
	}
	return fmt.Sprintf("%s %s", building, u.UnitNumber)
}
