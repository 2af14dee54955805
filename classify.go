package rentroll

// CellStatus is the payment state of one (unit, month) cell. It is a pure
// function of the cell's matched total, the active lease and today's date,
// recomputed on every render; nothing persists it.
type CellStatus int

const (
	// StatusVacant: no lease covers the month.
	StatusVacant CellStatus = iota
	// StatusPaid: payments cover the full rent of the active lease.
	StatusPaid
	// StatusPartial: payments exist but fall short of the rent.
	StatusPartial
	// StatusPaidVacant: payments exist but no lease covers the month. This is
	// surfaced as its own state, never folded into Paid, because it always
	// means either a data problem or money received outside any agreement.
	StatusPaidVacant
	// StatusOverdue: a lease is active, the month is over, and nothing was paid.
	StatusOverdue
	// StatusDue: a lease is active and the month is still running (or ahead).
	StatusDue
)

func (s CellStatus) String() string {
	switch s {
	case StatusPaid:
		return "Paid"
	case StatusPartial:
		return "Partial"
	case StatusPaidVacant:
		return "Paid (no lease)"
	case StatusOverdue:
		return "Overdue"
	case StatusDue:
		return "Due"
	default:
		return "Vacant"
	}
}

// ColorClass returns the presentation color bucket of the status. The names
// are the palette the dashboards have always used; the presentation layer
// maps them to whatever styling it has.
func (s CellStatus) ColorClass() string {
	switch s {
	case StatusPaid:
		return "emerald"
	case StatusPartial:
		return "yellow"
	case StatusPaidVacant:
		return "sky"
	case StatusOverdue:
		return "red"
	case StatusDue:
		return "none"
	default:
		return "gray"
	}
}

// Classify resolves a cell's status from its matched payment total and active
// lease. A total exactly equal to the rent is Paid, not Partial. A month whose
// last day is today or later is never Overdue, only Due.
//
// lease is nil when no lease covers the month. The function is total: any
// well-typed input yields a status.
func Classify(total Money, lease *Lease, monthEnd, today Date) CellStatus {
	if total.IsPositive() {
		if lease == nil {
			return StatusPaidVacant
		}
		if total.GreaterThanOrEqual(lease.Rent) {
			return StatusPaid
		}
		return StatusPartial
	}
	if lease == nil {
		return StatusVacant
	}
	if monthEnd.Before(today) {
		return StatusOverdue
	}
	return StatusDue
}
