package rentroll

// StatusEntry is one unit's standing for the reported month.
type StatusEntry struct {
	Unit     Unit
	Building string
	Tenant   string
	Rent     Money
	Total    Money
	Status   CellStatus
}

// StatusGridReport is the month-focused status board: every unit in scope
// with its collected total and status for one month, plus per-status counts.
type StatusGridReport struct {
	Config  ViewConfig
	Month   Date // first day of the reported month
	Entries []StatusEntry
	Counts  map[CellStatus]int
}

// PreviousMonth returns the first day of the month before d.
func PreviousMonth(d Date) Date {
	return NewDate(d.Year(), d.Month()-1, 1)
}

// NewStatusGridReport computes the status board for the month starting at
// monthStart. Pass PreviousMonth(cfg.Today) for the usual last-month view.
func NewStatusGridReport(s *Snapshot, cfg ViewConfig, monthStart Date) (*StatusGridReport, error) {
	r := &StatusGridReport{
		Config: cfg,
		Month:  monthStart.StartOfMonth(),
		Counts: make(map[CellStatus]int),
	}
	month := MonthOf(r.Month)

	for _, u := range cfg.scopedUnits(s) {
		e := StatusEntry{Unit: u, Building: s.BuildingName(u.BuildingID)}
		e.Total = SumPayments(s.PaymentsFor(u.ID, month))

		var active *Lease
		if lease, ok := s.ActiveLease(u.ID, month); ok {
			active = &lease
			e.Tenant = s.TenantName(lease.TenantID)
			e.Rent = lease.Rent
		}
		e.Status = Classify(e.Total, active, month.To, cfg.Today)

		r.Counts[e.Status]++
		r.Entries = append(r.Entries, e)
	}
	return r, nil
}
