package rentroll

// MatrixCell is one unit-month intersection of the rent matrix.
type MatrixCell struct {
	Month    Date // first day of the month
	Total    Money
	Status   CellStatus
	Tenant   string // tenant of the active lease, empty when vacant
	Rent     Money  // expected rent of the active lease, zero when vacant
	Payments int    // payments counted into Total
}

// MatrixRow is one unit across the 12 months of the year.
type MatrixRow struct {
	Unit     Unit
	Building string
	Cells    [12]MatrixCell
	Total    Money // sum of the 12 cell totals
}

// MatrixReport is the year-at-a-glance rent matrix: one row per unit in
// scope, one cell per month, each cell carrying the collected total and its
// payment status.
type MatrixReport struct {
	Config ViewConfig
	Label  string
	Months [12]Date
	Rows   []MatrixRow
	Total  Money // sum of all row totals
}

// NewMatrixReport computes the rent matrix over the snapshot. Rows are
// ordered by natural unit number, so "2" sorts before "10".
func NewMatrixReport(s *Snapshot, cfg ViewConfig) (*MatrixReport, error) {
	r := &MatrixReport{Config: cfg, Label: cfg.Label()}
	copy(r.Months[:], cfg.Months())

	for _, u := range cfg.scopedUnits(s) {
		row := MatrixRow{Unit: u, Building: s.BuildingName(u.BuildingID)}
		for i, start := range r.Months {
			month := MonthOf(start)
			cell := MatrixCell{Month: start}

			payments := s.PaymentsFor(u.ID, month)
			cell.Total = SumPayments(payments)
			cell.Payments = len(payments)

			var active *Lease
			if lease, ok := s.ActiveLease(u.ID, month); ok {
				active = &lease
				cell.Tenant = s.TenantName(lease.TenantID)
				cell.Rent = lease.Rent
			}
			cell.Status = Classify(cell.Total, active, month.To, cfg.Today)

			row.Cells[i] = cell
			row.Total = row.Total.Add(cell.Total)
		}
		r.Total = r.Total.Add(row.Total)
		r.Rows = append(r.Rows, row)
	}
	return r, nil
}
