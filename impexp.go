package rentroll

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// this file imports legacy database dumps: a single JSON document with one
// array per table, snake_case columns, as produced by the old admin tool's
// export button.

// legacy table names tried for each record kind, in order.
var legacyTables = map[string][]string{
	recBuilding: {"$.buildings", "$.data.buildings"},
	recUnit:     {"$.units", "$.data.units"},
	recTenant:   {"$.tenants", "$.data.tenants"},
	recLease:    {"$.leases", "$.data.leases"},
	recPayment:  {"$.payments", "$.data.payments"},
	recExpense:  {"$.maintenance", "$.expenses", "$.data.maintenance"},
}

// ImportRecords reads a legacy dump from 'r' and returns a populated
// Registry. Unknown tables are ignored, rows with unparseable amounts are
// kept with a zero amount and a warning.
func ImportRecords(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read dump: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse dump: %w", err)
	}

	g := NewRegistry()

	for _, row := range legacyRows(jobj, recBuilding) {
		g.buildings = append(g.buildings, Building{
			ID:           g.allocate(jint64(row, "id")),
			Name:         jstring(row, "name"),
			Address:      jstring(row, "address"),
			DefaultScope: jbool(row, "is_default_dashboard_scope"),
		})
	}
	for _, row := range legacyRows(jobj, recUnit) {
		g.units = append(g.units, Unit{
			ID:         g.allocate(jint64(row, "id")),
			BuildingID: jint64(row, "building_id"),
			UnitNumber: jstring(row, "unit_number"),
			Status:     jstring(row, "status"),
		})
	}
	for _, row := range legacyRows(jobj, recTenant) {
		g.tenants = append(g.tenants, Tenant{
			ID:      g.allocate(jint64(row, "id")),
			Name:    jstring(row, "name"),
			Contact: jstring(row, "contact"),
		})
	}
	for _, row := range legacyRows(jobj, recLease) {
		id := g.allocate(jint64(row, "id"))
		g.leases = append(g.leases, Lease{
			ID:       id,
			UnitID:   jint64(row, "unit_id"),
			TenantID: jint64(row, "tenant_id"),
			Start:    jdate(row, "start_date"),
			End:      jdate(row, "end_date"),
			Rent:     jmoney(row, "rent_amount", recLease, id),
		})
	}
	for _, row := range legacyRows(jobj, recPayment) {
		id := g.allocate(jint64(row, "id"))
		p := Payment{
			ID:      id,
			LeaseID: jint64(row, "lease_id"),
			Date:    jdate(row, "payment_date"),
			Period:  jstring(row, "payment_period"),
			Amount:  jmoney(row, "amount", recPayment, id),
			Method:  jstring(row, "type"),
			Notes:   jstring(row, "notes"),
		}
		if p.Date.IsZero() {
			p.Date = jdate(row, "date")
		}
		g.payments = append(g.payments, p)
	}
	for _, row := range legacyRows(jobj, recExpense) {
		id := g.allocate(jint64(row, "id"))
		e := Expense{
			ID:       id,
			Date:     jdate(row, "date"),
			Category: jstring(row, "category"),
			Amount:   jmoney(row, "amount", recExpense, id),
			Notes:    jstring(row, "notes"),
		}
		if e.Category == "" {
			e.Category = jstring(row, "description")
		}
		// the old tool stored the link as link_type + linked id
		switch jstring(row, "link_type") {
		case "building":
			e.BuildingID = jint64(row, "building_id")
		case "unit":
			e.UnitID = jint64(row, "unit_id")
		default:
			// rows without a usable link_type keep a single link, unit first
			if uid := jint64(row, "unit_id"); uid != 0 {
				e.UnitID = uid
			} else {
				e.BuildingID = jint64(row, "building_id")
			}
		}
		g.expenses = append(g.expenses, e)
	}

	g.stableSort()
	return g, nil
}

// legacyRows extracts the rows of one table, trying each known path.
func legacyRows(jobj any, kind string) []map[string]any {
	for _, path := range legacyTables[kind] {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		jlist, ok := jval.([]any)
		if !ok {
			continue
		}
		rows := make([]map[string]any, 0, len(jlist))
		for _, item := range jlist {
			if row, ok := item.(map[string]any); ok {
				rows = append(rows, row)
			}
		}
		return rows
	}
	return nil
}

func jstring(row map[string]any, key string) string {
	s, _ := row[key].(string)
	return s
}

func jbool(row map[string]any, key string) bool {
	b, _ := row[key].(bool)
	return b
}

func jint64(row map[string]any, key string) int64 {
	switch v := row[key].(type) {
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

func jdate(row map[string]any, key string) Date {
	s, ok := row[key].(string)
	if !ok || s == "" {
		return Date{}
	}
	d, err := ParseDate(s)
	if err != nil {
		log.Printf("warning: invalid date %q for %s, ignoring", s, key)
		return Date{}
	}
	return d
}

func jmoney(row map[string]any, key, kind string, id int64) Money {
	switch v := row[key].(type) {
	case nil:
		return Money{}
	case float64:
		return M(v)
	case string:
		m, err := ParseMoney(v)
		if err != nil {
			log.Printf("warning: %s %d has invalid amount %q, treating as zero", kind, id, v)
			return Money{}
		}
		return m
	default:
		log.Printf("warning: %s %d has invalid amount %v, treating as zero", kind, id, v)
		return Money{}
	}
}
