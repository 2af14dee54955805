package rentroll

import "testing"

func TestPeriodTag_Matches(t *testing.T) {
	march := MonthOf(D("2024-03-15"))

	tests := []struct {
		name     string
		payment  Payment
		expected bool
	}{
		{"Receipt date inside the month", Payment{Date: D("2024-03-10")}, true},
		{"Receipt on the first day", Payment{Date: D("2024-03-01")}, true},
		{"Receipt on the last day", Payment{Date: D("2024-03-31")}, true},
		{"Receipt the month after", Payment{Date: D("2024-04-02")}, false},
		// an explicit period tag wins over the receipt date
		{"Tagged to the month, received later", Payment{Date: D("2024-04-02"), Period: "2024-03-01"}, true},
		{"Tagged elsewhere, received in the month", Payment{Date: D("2024-03-10"), Period: "2024-02-01"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePeriodTag(tt.payment).Matches(march); got != tt.expected {
				t.Errorf("Matches() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPeriodTag_EffectiveDate(t *testing.T) {
	tagged := Payment{Date: D("2024-04-02"), Period: "2024-03-01"}
	if got := ResolvePeriodTag(tagged).EffectiveDate(); got != D("2024-03-01") {
		t.Errorf("EffectiveDate() = %v, want the tagged month", got)
	}
	untagged := Payment{Date: D("2024-04-02")}
	if got := ResolvePeriodTag(untagged).EffectiveDate(); got != D("2024-04-02") {
		t.Errorf("EffectiveDate() = %v, want the receipt date", got)
	}
}

func TestSnapshot_PaymentsFor(t *testing.T) {
	s := testSnapshot()

	// unit 101 in January: one full payment
	jan := MonthOf(D("2024-01-01"))
	got := s.PaymentsFor(1, jan)
	if len(got) != 1 || !SumPayments(got).Equal(INR(5000)) {
		t.Errorf("january on unit 101 = %v payments totaling %v", len(got), SumPayments(got))
	}

	// unit 2 in January: the late February payment counts via its tag
	got = s.PaymentsFor(2, jan)
	if len(got) != 1 || !SumPayments(got).Equal(INR(4000)) {
		t.Errorf("january on unit 2 = %v payments totaling %v", len(got), SumPayments(got))
	}

	// and it no longer counts for February, its receipt month
	feb := MonthOf(D("2024-02-01"))
	if got := s.PaymentsFor(2, feb); len(got) != 0 {
		t.Errorf("february on unit 2 should be empty, got %v payments", len(got))
	}

	// vacant unit 10 never collects
	if got := s.PaymentsFor(3, jan); len(got) != 0 {
		t.Errorf("vacant unit should have no payments, got %d", len(got))
	}
}

func TestPayment_IsBankTransfer(t *testing.T) {
	tests := []struct {
		method   string
		expected bool
	}{
		{"Bank Transfer", true},
		{"Bank Transfer - HDFC", true},
		{"Cash", false},
		{"", false},
	}
	for _, tt := range tests {
		p := Payment{Method: tt.method}
		if got := p.IsBankTransfer(); got != tt.expected {
			t.Errorf("IsBankTransfer(%q) = %v, want %v", tt.method, got, tt.expected)
		}
	}
}
