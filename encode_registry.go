package rentroll

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
)

// Record kinds used as the JSONL line discriminator.
const (
	recBuilding = "building"
	recUnit     = "unit"
	recTenant   = "tenant"
	recLease    = "lease"
	recPayment  = "payment"
	recExpense  = "expense"
)

type buildingRecord struct {
	Record string `json:"record"`
	Building
}

type unitRecord struct {
	Record string `json:"record"`
	Unit
}

type tenantRecord struct {
	Record string `json:"record"`
	Tenant
}

type leaseRecord struct {
	Record string `json:"record"`
	Lease
}

type paymentRecord struct {
	Record string `json:"record"`
	Payment
}

type expenseRecord struct {
	Record string `json:"record"`
	Expense
}

// decodeAmount parses a raw JSON amount. Malformed amounts are logged and
// treated as zero rather than hiding the whole record.
func decodeAmount(raw json.RawMessage, kind string, id int64) Money {
	var m Money
	if len(raw) == 0 {
		return m
	}
	if err := m.UnmarshalJSON(raw); err != nil {
		log.Printf("warning: %s %d has invalid amount %s, treating as zero", kind, id, raw)
		return Money{}
	}
	return m
}

// DecodeRegistry reads records from a stream of JSONL data, dispatching each
// line on its "record" discriminator, and returns a sorted Registry.
func DecodeRegistry(r io.Reader) (*Registry, error) {
	g := NewRegistry()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case recBuilding:
			var temp buildingRecord
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			temp.Building.ID = g.allocate(temp.Building.ID)
			g.buildings = append(g.buildings, temp.Building)
		case recUnit:
			var temp unitRecord
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			temp.Unit.ID = g.allocate(temp.Unit.ID)
			g.units = append(g.units, temp.Unit)
		case recTenant:
			var temp tenantRecord
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			temp.Tenant.ID = g.allocate(temp.Tenant.ID)
			g.tenants = append(g.tenants, temp.Tenant)
		case recLease:
			// Shadow the amount so a malformed value degrades to zero
			// instead of failing the whole file.
			var temp struct {
				leaseRecord
				Rent json.RawMessage `json:"rentAmount"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			l := temp.Lease
			l.ID = g.allocate(l.ID)
			l.Rent = decodeAmount(temp.Rent, recLease, l.ID)
			g.leases = append(g.leases, l)
		case recPayment:
			var temp struct {
				paymentRecord
				Amount json.RawMessage `json:"amount"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			p := temp.Payment
			p.ID = g.allocate(p.ID)
			p.Amount = decodeAmount(temp.Amount, recPayment, p.ID)
			g.payments = append(g.payments, p)
		case recExpense:
			var temp struct {
				expenseRecord
				Amount json.RawMessage `json:"amount"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			e := temp.Expense
			e.ID = g.allocate(e.ID)
			e.Amount = decodeAmount(temp.Amount, recExpense, e.ID)
			g.expenses = append(g.expenses, e)
		case "":
			return nil, fmt.Errorf("line %q has no record kind", string(lineBytes))
		default:
			return nil, fmt.Errorf("unknown record kind %q", identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	g.stableSort()
	return g, nil
}

func encodeRecord(w io.Writer, rec any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeRegistry restores canonical record order and persists the registry
// to an io.Writer in JSONL format, one record per line, grouped by kind.
func EncodeRegistry(w io.Writer, g *Registry) error {
	g.stableSort()

	for _, b := range g.buildings {
		if err := encodeRecord(w, buildingRecord{recBuilding, b}); err != nil {
			return err
		}
	}
	for _, u := range g.units {
		if err := encodeRecord(w, unitRecord{recUnit, u}); err != nil {
			return err
		}
	}
	for _, t := range g.tenants {
		if err := encodeRecord(w, tenantRecord{recTenant, t}); err != nil {
			return err
		}
	}
	for _, l := range g.leases {
		if err := encodeRecord(w, leaseRecord{recLease, l}); err != nil {
			return err
		}
	}
	for _, p := range g.payments {
		if err := encodeRecord(w, paymentRecord{recPayment, p}); err != nil {
			return err
		}
	}
	for _, e := range g.expenses {
		if err := encodeRecord(w, expenseRecord{recExpense, e}); err != nil {
			return err
		}
	}
	return nil
}
