package rentroll

import (
	"fmt"
	"iter"
	"sort"
)

// Registry is the in-memory store of all portfolio records. It owns id
// assignment and referential integrity; reports never read it directly but
// work on the immutable Snapshot it produces.
type Registry struct {
	buildings []Building
	units     []Unit
	tenants   []Tenant
	leases    []Lease
	payments  []Payment
	expenses  []Expense

	nextID int64
}

func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Snapshot builds an indexed read-only view of the current records.
func (g *Registry) Snapshot() *Snapshot {
	return NewSnapshot(g.buildings, g.units, g.tenants, g.leases, g.payments, g.expenses)
}

func (g *Registry) allocate(id int64) int64 {
	if id == 0 {
		id = g.nextID
	}
	if id >= g.nextID {
		g.nextID = id + 1
	}
	return id
}

// AddBuilding stores a building and returns its assigned id.
func (g *Registry) AddBuilding(b Building) (int64, error) {
	if err := g.checkBuilding(b); err != nil {
		return 0, err
	}
	b.ID = g.allocate(b.ID)
	g.buildings = append(g.buildings, b)
	return b.ID, nil
}

// AddUnit stores a unit after checking the building exists.
func (g *Registry) AddUnit(u Unit) (int64, error) {
	if err := g.checkUnit(u); err != nil {
		return 0, err
	}
	u.ID = g.allocate(u.ID)
	g.units = append(g.units, u)
	return u.ID, nil
}

// AddTenant stores a tenant and returns its assigned id.
func (g *Registry) AddTenant(t Tenant) (int64, error) {
	if err := g.checkTenant(t); err != nil {
		return 0, err
	}
	t.ID = g.allocate(t.ID)
	g.tenants = append(g.tenants, t)
	return t.ID, nil
}

// AddLease stores a lease. The end date must fall strictly after the start
// date, and both the unit and the tenant must exist.
func (g *Registry) AddLease(l Lease) (int64, error) {
	if err := g.checkLease(l); err != nil {
		return 0, err
	}
	l.ID = g.allocate(l.ID)
	g.leases = append(g.leases, l)
	return l.ID, nil
}

// AddPayment stores a payment. A period tag, when set, is normalized to the
// first day of the month it names.
func (g *Registry) AddPayment(p Payment) (int64, error) {
	p, err := g.checkPayment(p)
	if err != nil {
		return 0, err
	}
	p.ID = g.allocate(p.ID)
	g.payments = append(g.payments, p)
	return p.ID, nil
}

// AddExpense stores an expense linked to exactly one unit or building.
func (g *Registry) AddExpense(e Expense) (int64, error) {
	if err := g.checkExpense(e); err != nil {
		return 0, err
	}
	e.ID = g.allocate(e.ID)
	g.expenses = append(g.expenses, e)
	return e.ID, nil
}

func (g *Registry) checkBuilding(b Building) error {
	if b.Name == "" {
		return fmt.Errorf("building name is required")
	}
	return nil
}

func (g *Registry) checkUnit(u Unit) error {
	if u.UnitNumber == "" {
		return fmt.Errorf("unit number is required")
	}
	if !g.hasBuilding(u.BuildingID) {
		return fmt.Errorf("unknown building id %d", u.BuildingID)
	}
	return nil
}

func (g *Registry) checkTenant(t Tenant) error {
	if t.Name == "" {
		return fmt.Errorf("tenant name is required")
	}
	return nil
}

func (g *Registry) checkLease(l Lease) error {
	if !g.hasUnit(l.UnitID) {
		return fmt.Errorf("unknown unit id %d", l.UnitID)
	}
	if !g.hasTenant(l.TenantID) {
		return fmt.Errorf("unknown tenant id %d", l.TenantID)
	}
	if l.Start.IsZero() || l.End.IsZero() {
		return fmt.Errorf("lease start and end dates are required")
	}
	if !l.End.After(l.Start) {
		return fmt.Errorf("lease end %s must be after start %s", l.End, l.Start)
	}
	if l.Rent.IsNegative() {
		return fmt.Errorf("lease rent cannot be negative")
	}
	return nil
}

// checkPayment validates the payment and returns it with its period tag
// normalized to the first day of the month it names.
func (g *Registry) checkPayment(p Payment) (Payment, error) {
	if !g.hasLease(p.LeaseID) {
		return p, fmt.Errorf("unknown lease id %d", p.LeaseID)
	}
	if p.Date.IsZero() {
		return p, fmt.Errorf("payment date is required")
	}
	if p.Amount.IsNegative() {
		return p, fmt.Errorf("payment amount cannot be negative")
	}
	if p.Period != "" {
		d, err := ParseDate(p.Period)
		if err != nil {
			return p, fmt.Errorf("invalid payment period %q: %w", p.Period, err)
		}
		p.Period = PeriodKey(d)
	}
	return p, nil
}

func (g *Registry) checkExpense(e Expense) error {
	switch {
	case e.UnitID != 0 && e.BuildingID != 0:
		return fmt.Errorf("expense links to both a unit and a building")
	case e.UnitID != 0:
		if !g.hasUnit(e.UnitID) {
			return fmt.Errorf("unknown unit id %d", e.UnitID)
		}
	case e.BuildingID != 0:
		if !g.hasBuilding(e.BuildingID) {
			return fmt.Errorf("unknown building id %d", e.BuildingID)
		}
	default:
		return fmt.Errorf("expense must link to a unit or a building")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("expense date is required")
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("expense amount cannot be negative")
	}
	return nil
}

// UpdateBuilding replaces the building carrying the same id. Updates run the
// same validation as adds.
func (g *Registry) UpdateBuilding(b Building) error {
	if err := g.checkBuilding(b); err != nil {
		return err
	}
	return replace(g.buildings, b, "building", func(x Building) int64 { return x.ID })
}

// UpdateUnit replaces the unit carrying the same id.
func (g *Registry) UpdateUnit(u Unit) error {
	if err := g.checkUnit(u); err != nil {
		return err
	}
	return replace(g.units, u, "unit", func(x Unit) int64 { return x.ID })
}

// UpdateTenant replaces the tenant carrying the same id.
func (g *Registry) UpdateTenant(t Tenant) error {
	if err := g.checkTenant(t); err != nil {
		return err
	}
	return replace(g.tenants, t, "tenant", func(x Tenant) int64 { return x.ID })
}

// UpdateLease replaces the lease carrying the same id.
func (g *Registry) UpdateLease(l Lease) error {
	if err := g.checkLease(l); err != nil {
		return err
	}
	return replace(g.leases, l, "lease", func(x Lease) int64 { return x.ID })
}

// UpdatePayment replaces the payment carrying the same id, normalizing its
// period tag like AddPayment does.
func (g *Registry) UpdatePayment(p Payment) error {
	p, err := g.checkPayment(p)
	if err != nil {
		return err
	}
	return replace(g.payments, p, "payment", func(x Payment) int64 { return x.ID })
}

// UpdateExpense replaces the expense carrying the same id.
func (g *Registry) UpdateExpense(e Expense) error {
	if err := g.checkExpense(e); err != nil {
		return err
	}
	return replace(g.expenses, e, "expense", func(x Expense) int64 { return x.ID })
}

func replace[T any](records []T, rec T, kind string, key func(T) int64) error {
	id := key(rec)
	for i := range records {
		if key(records[i]) == id {
			records[i] = rec
			return nil
		}
	}
	return fmt.Errorf("unknown %s id %d", kind, id)
}

// DeleteBuilding removes a building unless units or expenses still
// reference it.
func (g *Registry) DeleteBuilding(id int64) error {
	for _, u := range g.units {
		if u.BuildingID == id {
			return fmt.Errorf("building %d still has unit %q", id, u.UnitNumber)
		}
	}
	for _, e := range g.expenses {
		if e.BuildingID == id {
			return fmt.Errorf("building %d still has expense %d", id, e.ID)
		}
	}
	return remove(&g.buildings, id, "building", func(b Building) int64 { return b.ID })
}

// DeleteUnit removes a unit unless leases or expenses still reference it.
func (g *Registry) DeleteUnit(id int64) error {
	for _, l := range g.leases {
		if l.UnitID == id {
			return fmt.Errorf("unit %d still has lease %d", id, l.ID)
		}
	}
	for _, e := range g.expenses {
		if e.UnitID == id {
			return fmt.Errorf("unit %d still has expense %d", id, e.ID)
		}
	}
	return remove(&g.units, id, "unit", func(u Unit) int64 { return u.ID })
}

// DeleteTenant removes a tenant unless leases still reference it.
func (g *Registry) DeleteTenant(id int64) error {
	for _, l := range g.leases {
		if l.TenantID == id {
			return fmt.Errorf("tenant %d still has lease %d", id, l.ID)
		}
	}
	return remove(&g.tenants, id, "tenant", func(t Tenant) int64 { return t.ID })
}

// DeleteLease removes a lease unless payments still reference it.
func (g *Registry) DeleteLease(id int64) error {
	for _, p := range g.payments {
		if p.LeaseID == id {
			return fmt.Errorf("lease %d still has payment %d", id, p.ID)
		}
	}
	return remove(&g.leases, id, "lease", func(l Lease) int64 { return l.ID })
}

func (g *Registry) DeletePayment(id int64) error {
	return remove(&g.payments, id, "payment", func(p Payment) int64 { return p.ID })
}

func (g *Registry) DeleteExpense(id int64) error {
	return remove(&g.expenses, id, "expense", func(e Expense) int64 { return e.ID })
}

func remove[T any](records *[]T, id int64, kind string, key func(T) int64) error {
	for i, rec := range *records {
		if key(rec) == id {
			*records = append((*records)[:i], (*records)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown %s id %d", kind, id)
}

// Buildings iterates buildings in id order.
func (g *Registry) Buildings() iter.Seq[Building] {
	return func(yield func(Building) bool) {
		for _, b := range g.buildings {
			if !yield(b) {
				return
			}
		}
	}
}

// Units iterates units in insertion order.
func (g *Registry) Units() iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		for _, u := range g.units {
			if !yield(u) {
				return
			}
		}
	}
}

// Tenants iterates tenants in insertion order.
func (g *Registry) Tenants() iter.Seq[Tenant] {
	return func(yield func(Tenant) bool) {
		for _, t := range g.tenants {
			if !yield(t) {
				return
			}
		}
	}
}

// Leases iterates leases in insertion order.
func (g *Registry) Leases() iter.Seq[Lease] {
	return func(yield func(Lease) bool) {
		for _, l := range g.leases {
			if !yield(l) {
				return
			}
		}
	}
}

// Payments iterates payments in insertion order.
func (g *Registry) Payments() iter.Seq[Payment] {
	return func(yield func(Payment) bool) {
		for _, p := range g.payments {
			if !yield(p) {
				return
			}
		}
	}
}

// Expenses iterates expenses in insertion order.
func (g *Registry) Expenses() iter.Seq[Expense] {
	return func(yield func(Expense) bool) {
		for _, e := range g.expenses {
			if !yield(e) {
				return
			}
		}
	}
}

func (g *Registry) Counts() (buildings, units, tenants, leases, payments, expenses int) {
	return len(g.buildings), len(g.units), len(g.tenants),
		len(g.leases), len(g.payments), len(g.expenses)
}

func (g *Registry) hasBuilding(id int64) bool {
	for _, b := range g.buildings {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (g *Registry) hasUnit(id int64) bool {
	for _, u := range g.units {
		if u.ID == id {
			return true
		}
	}
	return false
}

func (g *Registry) hasTenant(id int64) bool {
	for _, t := range g.tenants {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (g *Registry) hasLease(id int64) bool {
	for _, l := range g.leases {
		if l.ID == id {
			return true
		}
	}
	return false
}

// stableSort restores canonical order: each record kind by id, payments and
// expenses by date first so the file reads chronologically.
func (g *Registry) stableSort() {
	sort.SliceStable(g.buildings, func(i, j int) bool { return g.buildings[i].ID < g.buildings[j].ID })
	sort.SliceStable(g.units, func(i, j int) bool { return g.units[i].ID < g.units[j].ID })
	sort.SliceStable(g.tenants, func(i, j int) bool { return g.tenants[i].ID < g.tenants[j].ID })
	sort.SliceStable(g.leases, func(i, j int) bool { return g.leases[i].ID < g.leases[j].ID })
	sort.SliceStable(g.payments, func(i, j int) bool {
		if g.payments[i].Date != g.payments[j].Date {
			return g.payments[i].Date.Before(g.payments[j].Date)
		}
		return g.payments[i].ID < g.payments[j].ID
	})
	sort.SliceStable(g.expenses, func(i, j int) bool {
		if g.expenses[i].Date != g.expenses[j].Date {
			return g.expenses[i].Date.Before(g.expenses[j].Date)
		}
		return g.expenses[i].ID < g.expenses[j].ID
	})
}
