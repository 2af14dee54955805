package rentroll

import "strings"

// PeriodKeyFormat lays out the canonical first-of-month tag, e.g. "2024-03-01".
const PeriodKeyFormat = "2006-01-02"

// PeriodKey returns the canonical tag of the month containing d.
func PeriodKey(d Date) string { return d.StartOfMonth().Format(PeriodKeyFormat) }

// PeriodTag says which month a payment is credited to. It is resolved once
// per payment instead of re-branching on field presence at every comparison.
type PeriodTag struct {
	key      string // canonical first-of-month tag
	date     Date   // receipt date, the fallback when no tag was recorded
	explicit bool
}

// ResolvePeriodTag computes the payment's period tag. A recorded tag is
// authoritative even when it does not parse as a date; an untagged payment
// falls back to its receipt date.
func ResolvePeriodTag(p Payment) PeriodTag {
	if p.Period != "" {
		return PeriodTag{key: p.Period, date: p.Date, explicit: true}
	}
	return PeriodTag{key: PeriodKey(p.Date), date: p.Date}
}

// Matches reports whether the payment belongs to the month. Explicit tags
// compare exactly against the month's canonical key; inferred tags test the
// receipt date against the month range.
func (t PeriodTag) Matches(month Range) bool {
	if t.explicit {
		return t.key == PeriodKey(month.From)
	}
	return month.Contains(t.date)
}

// EffectiveDate is the date a payment counts on for fiscal-window tests: the
// first of its tagged month when tagged, the receipt date otherwise. This is
// what makes a payment recorded in April for March rent land in March's
// fiscal window.
func (t PeriodTag) EffectiveDate() Date {
	if !t.explicit {
		return t.date
	}
	if d, err := ParseDate(t.key); err == nil {
		return d
	}
	// Unparseable tag: the receipt date is the best remaining evidence.
	return t.date
}

// PaymentsFor collects the payments credited to the unit for the given month,
// in input order.
//
// Candidates are payments against ANY lease the unit has ever had, not just
// the currently active one: after a mid-month tenant transition the cell must
// still show money received against the superseded lease.
func (s *Snapshot) PaymentsFor(unitID int64, month Range) []Payment {
	leaseIDs := make(map[int64]bool, len(s.unitLeases[unitID]))
	for _, l := range s.unitLeases[unitID] {
		leaseIDs[l.ID] = true
	}
	var matched []Payment
	for _, p := range s.Payments {
		if !leaseIDs[p.LeaseID] {
			continue
		}
		if ResolvePeriodTag(p).Matches(month) {
			matched = append(matched, p)
		}
	}
	return matched
}

// SumPayments totals the amounts of the given payments. Amounts that failed
// to parse were already zeroed at decode time, so the sum is always defined.
func SumPayments(payments []Payment) Money {
	var total Money
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// IsBankTransfer reports whether the payment counts in the bank-transfer
// revenue bucket. The match is a case-sensitive prefix so variants like
// "Bank Transfer (NEFT)" still land in the right bucket.
func (p Payment) IsBankTransfer() bool {
	return strings.HasPrefix(p.Method, BankTransferMethod)
}
