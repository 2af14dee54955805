package rentroll

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v) }

// D is a helper for test to create a date from its string form
func D(s string) Date { return MustParse(s) }

// testSnapshot builds the snapshot used across report tests: two buildings,
// three units, leases and payments covering 2024.
//
//	b1 "Green Court": unit 101 (Asha, rent 5000, Jan-Jun 2024)
//	                  unit 2   (Ravi, rent 4000, full year 2024)
//	b2 "Hill View":   unit 10  (vacant all year)
func testSnapshot() *Snapshot {
	buildings := []Building{
		{ID: 1, Name: "Green Court", Address: "12 MG Road"},
		{ID: 2, Name: "Hill View"},
	}
	units := []Unit{
		{ID: 1, BuildingID: 1, UnitNumber: "101"},
		{ID: 2, BuildingID: 1, UnitNumber: "2"},
		{ID: 3, BuildingID: 2, UnitNumber: "10"},
	}
	tenants := []Tenant{
		{ID: 1, Name: "Asha"},
		{ID: 2, Name: "Ravi"},
	}
	leases := []Lease{
		{ID: 1, UnitID: 1, TenantID: 1, Start: D("2024-01-01"), End: D("2024-06-30"), Rent: INR(5000)},
		{ID: 2, UnitID: 2, TenantID: 2, Start: D("2024-01-01"), End: D("2024-12-31"), Rent: INR(4000)},
	}
	payments := []Payment{
		// unit 101: January paid in full, February partial, March nothing
		{ID: 1, LeaseID: 1, Date: D("2024-01-05"), Amount: INR(5000), Method: "Bank Transfer"},
		{ID: 2, LeaseID: 1, Date: D("2024-02-10"), Amount: INR(3000), Method: "Cash"},
		// unit 2: January paid late in February, tagged back to January
		{ID: 3, LeaseID: 2, Date: D("2024-02-02"), Period: "2024-01-01", Amount: INR(4000), Method: "Bank Transfer"},
	}
	expenses := []Expense{
		{ID: 1, Date: D("2024-03-15"), Category: "Plumbing", Amount: INR(1200), UnitID: 1},
		{ID: 2, Date: D("2024-05-01"), Category: "Painting", Amount: INR(800), BuildingID: 2},
	}
	return NewSnapshot(buildings, units, tenants, leases, payments, expenses)
}

// testConfig views calendar year 2024 with a fixed today of 2024-07-15.
func testConfig() ViewConfig {
	return ViewConfig{
		Mode:          Calendar,
		Year:          2024,
		BuildingScope: AllBuildings,
		Today:         D("2024-07-15"),
	}
}
