package rentroll

// UnknownLabel names a tenant, unit or building whose record has been deleted
// out from under a reference. Analytics keep rendering with the placeholder
// instead of failing.
const UnknownLabel = "Unknown"

// Snapshot is an immutable read view over all entity records.
//
// It is built once per view refresh from the registry (or any other data
// collaborator) and indexed for the lookups the analytics make. All
// computations over a Snapshot are pure: running them twice with the same
// arguments yields identical reports.
type Snapshot struct {
	Buildings []Building
	Units     []Unit
	Tenants   []Tenant
	Leases    []Lease
	Payments  []Payment
	Expenses  []Expense

	buildings  map[int64]int     // id -> index in Buildings
	units      map[int64]int     // id -> index in Units
	tenants    map[int64]int     // id -> index in Tenants
	leases     map[int64]int     // id -> index in Leases
	unitLeases map[int64][]Lease // unit id -> its leases, in input order
}

// NewSnapshot indexes the given record sets. The slices are kept as-is; the
// caller must not mutate them afterwards.
func NewSnapshot(buildings []Building, units []Unit, tenants []Tenant, leases []Lease, payments []Payment, expenses []Expense) *Snapshot {
	s := &Snapshot{
		Buildings:  buildings,
		Units:      units,
		Tenants:    tenants,
		Leases:     leases,
		Payments:   payments,
		Expenses:   expenses,
		buildings:  make(map[int64]int, len(buildings)),
		units:      make(map[int64]int, len(units)),
		tenants:    make(map[int64]int, len(tenants)),
		leases:     make(map[int64]int, len(leases)),
		unitLeases: make(map[int64][]Lease, len(units)),
	}
	for i, b := range buildings {
		s.buildings[b.ID] = i
	}
	for i, u := range units {
		s.units[u.ID] = i
	}
	for i, t := range tenants {
		s.tenants[t.ID] = i
	}
	for i, l := range leases {
		s.leases[l.ID] = i
		s.unitLeases[l.UnitID] = append(s.unitLeases[l.UnitID], l)
	}
	return s
}

// Building returns the building with this id.
func (s *Snapshot) Building(id int64) (Building, bool) {
	i, ok := s.buildings[id]
	if !ok {
		return Building{}, false
	}
	return s.Buildings[i], true
}

// Unit returns the unit with this id.
func (s *Snapshot) Unit(id int64) (Unit, bool) {
	i, ok := s.units[id]
	if !ok {
		return Unit{}, false
	}
	return s.Units[i], true
}

// Tenant returns the tenant with this id.
func (s *Snapshot) Tenant(id int64) (Tenant, bool) {
	i, ok := s.tenants[id]
	if !ok {
		return Tenant{}, false
	}
	return s.Tenants[i], true
}

// Lease returns the lease with this id.
func (s *Snapshot) Lease(id int64) (Lease, bool) {
	i, ok := s.leases[id]
	if !ok {
		return Lease{}, false
	}
	return s.Leases[i], true
}

// UnitLeases returns every lease ever recorded for the unit, in input order.
func (s *Snapshot) UnitLeases(unitID int64) []Lease {
	return s.unitLeases[unitID]
}

// TenantName resolves a tenant id to its display name, or the Unknown
// placeholder when the record is gone.
func (s *Snapshot) TenantName(id int64) string {
	if t, ok := s.Tenant(id); ok {
		return t.Name
	}
	return UnknownLabel
}

// UnitNumber resolves a unit id to its display number, or the Unknown
// placeholder when the record is gone.
func (s *Snapshot) UnitNumber(id int64) string {
	if u, ok := s.Unit(id); ok {
		return u.UnitNumber
	}
	return UnknownLabel
}

// BuildingName resolves a building id to its display name, or the Unknown
// placeholder when the record is gone.
func (s *Snapshot) BuildingName(id int64) string {
	if b, ok := s.Building(id); ok {
		return b.Name
	}
	return UnknownLabel
}

// DefaultBuildingScope returns the id of the building flagged as the default
// report scope, or AllBuildings when none is flagged.
func (s *Snapshot) DefaultBuildingScope() int64 {
	for _, b := range s.Buildings {
		if b.DefaultScope {
			return b.ID
		}
	}
	return AllBuildings
}

// paymentBuilding resolves a payment to the building it belongs to, walking
// payment -> lease -> unit -> building. It returns false when any link in the
// chain has decayed.
func (s *Snapshot) paymentBuilding(p Payment) (int64, bool) {
	lease, ok := s.Lease(p.LeaseID)
	if !ok {
		return 0, false
	}
	unit, ok := s.Unit(lease.UnitID)
	if !ok {
		return 0, false
	}
	return unit.BuildingID, true
}

// expenseBuilding resolves an expense to its building, directly or through
// its unit. It returns false when the expense is linked to nothing that still
// exists.
func (s *Snapshot) expenseBuilding(e Expense) (int64, bool) {
	if e.BuildingID != 0 {
		return e.BuildingID, true
	}
	if e.UnitID != 0 {
		if unit, ok := s.Unit(e.UnitID); ok {
			return unit.BuildingID, true
		}
	}
	return 0, false
}
