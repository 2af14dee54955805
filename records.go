package rentroll

// The entity records of the rent ledger. The registry owns their lifecycle;
// analytics only ever read them from an immutable snapshot.

// Building is a property that groups units and general expenses.
//
// DefaultScope marks the building the reports open on when no explicit
// building scope is given.
type Building struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	DefaultScope bool   `json:"isDefaultDashboardScope,omitempty"`
}

// Unit is a rentable unit inside a building.
//
// Status is advisory display text only; occupancy is always derived from
// lease overlap, never from this field.
type Unit struct {
	ID         int64  `json:"id"`
	BuildingID int64  `json:"buildingId"`
	UnitNumber string `json:"unitNumber"`
	Status     string `json:"status,omitempty"`
}

// Tenant is a person who holds one or more leases.
type Tenant struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// Lease binds a tenant to a unit over an inclusive date range for a monthly
// rent. Sequential tenancies produce multiple leases per unit.
type Lease struct {
	ID       int64 `json:"id"`
	UnitID   int64 `json:"unitId"`
	TenantID int64 `json:"tenantId"`
	Start    Date  `json:"startDate"`
	End      Date  `json:"endDate"`
	Rent     Money `json:"rentAmount"`
}

// Active reports whether the lease overlaps the given range.
func (l Lease) Active(r Range) bool {
	return !l.Start.After(r.To) && !l.End.Before(r.From)
}

// BankTransferMethod is the payment method label recognized as the
// bank-transfer revenue bucket.
const BankTransferMethod = "Bank Transfer"

// Payment is a rent receipt against a lease.
//
// Period is the optional first-of-month tag ("2024-03-01") naming the month
// the payment is credited to. When present it is authoritative; the receipt
// date is only a fallback for older records.
type Payment struct {
	ID      int64  `json:"id"`
	LeaseID int64  `json:"leaseId"`
	Date    Date   `json:"date"`
	Period  string `json:"paymentPeriod,omitempty"`
	Amount  Money  `json:"amount"`
	Method  string `json:"type,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Expense is a maintenance cost, linked either to a unit (its building is
// derived transitively) or directly to a building. Exactly one of UnitID and
// BuildingID is expected to be set in well-formed data.
type Expense struct {
	ID         int64  `json:"id"`
	Date       Date   `json:"date"`
	Category   string `json:"category,omitempty"`
	Amount     Money  `json:"amount"`
	UnitID     int64  `json:"unitId,omitempty"`
	BuildingID int64  `json:"buildingId,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// CompareUnitNumbers orders unit numbers the way a human reads them: digit
// runs compare numerically, everything else byte-wise, so "2" < "10" and
// "A-2" < "A-10".
func CompareUnitNumbers(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			// Compare the two digit runs as numbers: longer run of
			// significant digits wins, equal lengths compare lexically.
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na, nb := trimZeros(a[si:i]), trimZeros(b[sj:j])
			if len(na) != len(nb) {
				return len(na) - len(nb)
			}
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			continue
		}
		if ca != cb {
			return int(ca) - int(cb)
		}
		i++
		j++
	}
	return (len(a) - i) - (len(b) - j)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
