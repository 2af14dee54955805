package rentroll

import (
	"reflect"
	"testing"
)

// Computing a report must not disturb the snapshot: running the same
// computation twice yields identical results, and the input record order
// survives (row sorting works on a copy, never in place).
func TestReportsAreIdempotent(t *testing.T) {
	s := testSnapshot()
	cfg := testConfig()
	inputOrder := []string{"101", "2", "10"}

	builders := map[string]func() (any, error){
		"dashboard": func() (any, error) { return NewDashboardReport(s, cfg) },
		"matrix":    func() (any, error) { return NewMatrixReport(s, cfg) },
		"status":    func() (any, error) { return NewStatusGridReport(s, cfg, D("2024-06-01")) },
		"timeline":  func() (any, error) { return NewTimelineReport(s, cfg) },
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			first, err := build()
			if err != nil {
				t.Fatalf("first run error = %v", err)
			}
			second, err := build()
			if err != nil {
				t.Fatalf("second run error = %v", err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("recomputed report differs:\nfirst  = %+v\nsecond = %+v", first, second)
			}
			for i, want := range inputOrder {
				if got := s.Units[i].UnitNumber; got != want {
					t.Errorf("s.Units[%d] = %q, want %q (input order disturbed)", i, got, want)
				}
			}
		})
	}
}
