package rentroll

import (
	"strings"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	g := NewRegistry()
	bid, err := g.AddBuilding(Building{Name: "Green Court"})
	if err != nil {
		t.Fatalf("AddBuilding() error = %v", err)
	}
	uid, err := g.AddUnit(Unit{BuildingID: bid, UnitNumber: "101"})
	if err != nil {
		t.Fatalf("AddUnit() error = %v", err)
	}
	tid, err := g.AddTenant(Tenant{Name: "Asha"})
	if err != nil {
		t.Fatalf("AddTenant() error = %v", err)
	}
	lid, err := g.AddLease(Lease{
		UnitID: uid, TenantID: tid,
		Start: D("2024-01-01"), End: D("2024-12-31"), Rent: INR(5000),
	})
	if err != nil {
		t.Fatalf("AddLease() error = %v", err)
	}
	if _, err := g.AddPayment(Payment{LeaseID: lid, Date: D("2024-01-05"), Amount: INR(5000)}); err != nil {
		t.Fatalf("AddPayment() error = %v", err)
	}
	return g
}

func TestRegistry_AssignsIDs(t *testing.T) {
	g := testRegistry(t)
	b, u, tn, l, p, e := g.Counts()
	if b != 1 || u != 1 || tn != 1 || l != 1 || p != 1 || e != 0 {
		t.Errorf("Counts() = %d %d %d %d %d %d", b, u, tn, l, p, e)
	}
	// ids are assigned sequentially and never reused
	id, err := g.AddTenant(Tenant{Name: "Ravi"})
	if err != nil {
		t.Fatalf("AddTenant() error = %v", err)
	}
	if id != 6 {
		t.Errorf("next id = %d, want 6", id)
	}
}

func TestRegistry_RejectsBrokenReferences(t *testing.T) {
	g := NewRegistry()
	if _, err := g.AddUnit(Unit{BuildingID: 99, UnitNumber: "101"}); err == nil {
		t.Errorf("AddUnit() with unknown building should fail")
	}
	if _, err := g.AddLease(Lease{UnitID: 99, TenantID: 99, Start: D("2024-01-01"), End: D("2024-12-31")}); err == nil {
		t.Errorf("AddLease() with unknown unit should fail")
	}
	if _, err := g.AddPayment(Payment{LeaseID: 99, Date: D("2024-01-05"), Amount: INR(100)}); err == nil {
		t.Errorf("AddPayment() with unknown lease should fail")
	}
}

func TestRegistry_RejectsBackwardLease(t *testing.T) {
	g := testRegistry(t)
	_, err := g.AddLease(Lease{
		UnitID: 2, TenantID: 3,
		Start: D("2024-06-01"), End: D("2024-06-01"), Rent: INR(5000),
	})
	if err == nil || !strings.Contains(err.Error(), "must be after") {
		t.Errorf("AddLease() with end == start: error = %v", err)
	}
}

func TestRegistry_NormalizesPeriodTag(t *testing.T) {
	g := testRegistry(t)
	id, err := g.AddPayment(Payment{LeaseID: 4, Date: D("2024-03-20"), Period: "2024-03-15", Amount: INR(5000)})
	if err != nil {
		t.Fatalf("AddPayment() error = %v", err)
	}
	for p := range g.Payments() {
		if p.ID == id && p.Period != "2024-03-01" {
			t.Errorf("Period = %q, want normalized to the first of the month", p.Period)
		}
	}
	if _, err := g.AddPayment(Payment{LeaseID: 4, Date: D("2024-03-20"), Period: "soon", Amount: INR(5000)}); err == nil {
		t.Errorf("AddPayment() with unparseable period should fail")
	}
}

func TestRegistry_ExpenseLink(t *testing.T) {
	g := testRegistry(t)
	if _, err := g.AddExpense(Expense{Date: D("2024-02-01"), Amount: INR(100)}); err == nil {
		t.Errorf("AddExpense() without a link should fail")
	}
	if _, err := g.AddExpense(Expense{Date: D("2024-02-01"), Amount: INR(100), UnitID: 2, BuildingID: 1}); err == nil {
		t.Errorf("AddExpense() with both links should fail")
	}
	if _, err := g.AddExpense(Expense{Date: D("2024-02-01"), Amount: INR(100), UnitID: 2}); err != nil {
		t.Errorf("AddExpense() on a unit: error = %v", err)
	}
	if _, err := g.AddExpense(Expense{Date: D("2024-02-01"), Amount: INR(100), BuildingID: 1}); err != nil {
		t.Errorf("AddExpense() on a building: error = %v", err)
	}
}

func TestRegistry_DeleteDependencies(t *testing.T) {
	g := testRegistry(t)

	// everything is referenced, so deletes cascade-fail from the top
	if err := g.DeleteBuilding(1); err == nil {
		t.Errorf("DeleteBuilding() with units should fail")
	}
	if err := g.DeleteUnit(2); err == nil {
		t.Errorf("DeleteUnit() with leases should fail")
	}
	if err := g.DeleteTenant(3); err == nil {
		t.Errorf("DeleteTenant() with leases should fail")
	}
	if err := g.DeleteLease(4); err == nil {
		t.Errorf("DeleteLease() with payments should fail")
	}

	// unwinding in reverse order succeeds
	for _, del := range []struct {
		name string
		fn   func(int64) error
		id   int64
	}{
		{"payment", g.DeletePayment, 5},
		{"lease", g.DeleteLease, 4},
		{"tenant", g.DeleteTenant, 3},
		{"unit", g.DeleteUnit, 2},
		{"building", g.DeleteBuilding, 1},
	} {
		if err := del.fn(del.id); err != nil {
			t.Fatalf("delete %s %d: %v", del.name, del.id, err)
		}
	}
	if b, u, tn, l, p, e := g.Counts(); b+u+tn+l+p+e != 0 {
		t.Errorf("registry not empty after unwinding: %d %d %d %d %d %d", b, u, tn, l, p, e)
	}

	if err := g.DeletePayment(5); err == nil {
		t.Errorf("deleting a missing payment should fail")
	}
}

func TestRegistry_Update(t *testing.T) {
	g := testRegistry(t)

	if err := g.UpdateBuilding(Building{ID: 1, Name: "Green Court", Address: "12 Elm Road"}); err != nil {
		t.Fatalf("UpdateBuilding() error = %v", err)
	}
	b, ok := g.Snapshot().Building(1)
	if !ok || b.Address != "12 Elm Road" {
		t.Errorf("Building(1) = %+v, want updated address", b)
	}

	if err := g.UpdateLease(Lease{
		ID: 4, UnitID: 2, TenantID: 3,
		Start: D("2024-01-01"), End: D("2024-12-31"), Rent: INR(5500),
	}); err != nil {
		t.Fatalf("UpdateLease() error = %v", err)
	}
	l, ok := g.Snapshot().Lease(4)
	if !ok || !l.Rent.Equal(INR(5500)) {
		t.Errorf("Lease(4) rent = %s, want ₹5,500.00", l.Rent)
	}

	// updates normalize the period tag like adds do
	if err := g.UpdatePayment(Payment{ID: 5, LeaseID: 4, Date: D("2024-01-05"), Amount: INR(5000), Period: "2024-01-15"}); err != nil {
		t.Fatalf("UpdatePayment() error = %v", err)
	}
	for p := range g.Payments() {
		if p.Period != "2024-01-01" {
			t.Errorf("Period = %q, want 2024-01-01", p.Period)
		}
	}
}

func TestRegistry_UpdateRejects(t *testing.T) {
	g := testRegistry(t)

	if err := g.UpdateBuilding(Building{ID: 99, Name: "Nowhere"}); err == nil {
		t.Errorf("UpdateBuilding() with unknown id should fail")
	}
	if err := g.UpdateLease(Lease{
		ID: 4, UnitID: 2, TenantID: 3,
		Start: D("2024-12-31"), End: D("2024-01-01"), Rent: INR(5000),
	}); err == nil {
		t.Errorf("UpdateLease() with backward range should fail")
	}
	if err := g.UpdateUnit(Unit{ID: 2, BuildingID: 99, UnitNumber: "101"}); err == nil {
		t.Errorf("UpdateUnit() with unknown building should fail")
	}
	// a rejected update leaves the record untouched
	l, _ := g.Snapshot().Lease(4)
	if !l.Rent.Equal(INR(5000)) {
		t.Errorf("rent changed after rejected update: %s", l.Rent)
	}
}
