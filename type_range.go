package rentroll

import (
	"fmt"
	"iter"
)

// Range represents a range of dates, inclusive on both ends.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// MonthOf returns the month range containing d, [first of month, last of month].
func MonthOf(d Date) Range {
	return Range{From: d.StartOfMonth(), To: d.EndOfMonth()}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Overlaps reports whether r and x share at least one day.
func (r Range) Overlaps(x Range) bool { return !r.From.After(x.To) && !r.To.Before(x.From) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int {
	return int(r.To.time().Sub(r.From.time()).Hours()/24) + 1
}

// Months returns an iterator that yields the first day of each month that has
// at least one day in the range.
func (r Range) Months() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for m := r.From.StartOfMonth(); !m.After(r.To); m = m.AddMonth(1) {
			if !yield(m) {
				return
			}
		}
	}
}

// String formats the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
