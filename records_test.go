package rentroll

import "testing"

func TestCompareUnitNumbers(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"101", "101", 0},
		{"A2", "A10", -1},
		{"A10", "B2", -1},
		{"G-2", "G-10", -1},
		{"2A", "2B", -1},
		{"02", "2", 0}, // leading zeros do not matter
		{"", "1", -1},
	}
	for _, tt := range tests {
		got := CompareUnitNumbers(tt.a, tt.b)
		if sign(got) != tt.expected {
			t.Errorf("CompareUnitNumbers(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
