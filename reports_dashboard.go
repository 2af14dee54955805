package rentroll

// DashboardReport holds the headline yearly figures: rent collected in the
// configured year, its split by payment method, maintenance spend, and the
// resulting net.
type DashboardReport struct {
	Config ViewConfig
	Label  string

	Gross        Money // all rent received in the window
	BankTransfer Money // portion received by bank transfer
	Other        Money // portion received by any other method
	Maintenance  Money // expenses dated in the window
	Net          Money // Gross less Maintenance

	Payments int // number of payments counted
	Expenses int // number of expenses counted
}

// NewDashboardReport computes the yearly totals over the snapshot.
//
// A payment belongs to the window by its effective date: the month its
// period tag names when one is set, its receipt date otherwise. Payments
// whose lease, unit or building can no longer be resolved are skipped when
// a building scope is set, since they cannot be attributed to any building.
func NewDashboardReport(s *Snapshot, cfg ViewConfig) (*DashboardReport, error) {
	r := &DashboardReport{Config: cfg, Label: cfg.Label()}
	window := cfg.Window()

	for _, p := range s.Payments {
		if !window.Contains(ResolvePeriodTag(p).EffectiveDate()) {
			continue
		}
		if cfg.BuildingScope != AllBuildings {
			b, ok := s.paymentBuilding(p)
			if !ok || b != cfg.BuildingScope {
				continue
			}
		}
		r.Gross = r.Gross.Add(p.Amount)
		if p.IsBankTransfer() {
			r.BankTransfer = r.BankTransfer.Add(p.Amount)
		} else {
			r.Other = r.Other.Add(p.Amount)
		}
		r.Payments++
	}

	for _, e := range s.Expenses {
		if !window.Contains(e.Date) {
			continue
		}
		if cfg.BuildingScope != AllBuildings {
			b, ok := s.expenseBuilding(e)
			if !ok || b != cfg.BuildingScope {
				continue
			}
		}
		r.Maintenance = r.Maintenance.Add(e.Amount)
		r.Expenses++
	}

	r.Net = r.Gross.Sub(r.Maintenance)
	return r, nil
}
