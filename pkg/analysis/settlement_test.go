package analysis

import (
	"strings"
	"testing"
)

func TestSettle_NotCovered(t *testing.T) {
	c := NewCalculator(nil)

	tests := []struct {
		amount, limit, deductible float64
	}{
		{5000, 50000, 500},
		{0, 0, 0},
		{100000, 50, 10000},
	}

	for _, tt := range tests {
		s := c.Settle(tt.amount, tt.limit, tt.deductible, false)
		if s.ApprovedAmount != 0 {
			t.Errorf("Settle(%v,%v,%v,false) = %v, want 0", tt.amount, tt.limit, tt.deductible, s.ApprovedAmount)
		}
		if s.LimitApplied {
			t.Error("LimitApplied = true for uncovered claim")
		}
	}
}

func TestSettle_Covered(t *testing.T) {
	c := NewCalculator(nil)

	tests := []struct {
		name                      string
		amount, limit, deductible float64
		wantAmount                float64
		wantLimitApplied          bool
	}{
		{"within limit", 10000, 50000, 500, 9500.0, false},
		{"above limit", 60000, 50000, 500, 49500.0, true},
		{"deductible exceeds claim", 400, 50000, 500, 0, false},
		{"exactly at limit", 50000, 50000, 1000, 49000.0, false},
		{"zero deductible", 2500, 50000, 0, 2500.0, false},
		{"cents rounding", 1000.555, 50000, 0.125, 1000.43, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := c.Settle(tt.amount, tt.limit, tt.deductible, true)

			if s.ApprovedAmount != tt.wantAmount {
				t.Errorf("ApprovedAmount = %v, want %v", s.ApprovedAmount, tt.wantAmount)
			}
			if s.LimitApplied != tt.wantLimitApplied {
				t.Errorf("LimitApplied = %t, want %t", s.LimitApplied, tt.wantLimitApplied)
			}
			if s.DeductibleApplied != tt.deductible {
				t.Errorf("DeductibleApplied = %v, want %v", s.DeductibleApplied, tt.deductible)
			}
		})
	}
}

func TestSettle_CalculationTrail(t *testing.T) {
	c := NewCalculator(nil)

	s := c.Settle(60000, 50000, 500, true)
	for _, fragment := range []string{"$60000.00", "Limited to coverage: $50000.00", "Minus deductible: $500.00", "Approved: $49500.00"} {
		if !strings.Contains(s.Calculation, fragment) {
			t.Errorf("Calculation %q missing %q", s.Calculation, fragment)
		}
	}

	s = c.Settle(10000, 50000, 500, true)
	if strings.Contains(s.Calculation, "Limited to coverage") {
		t.Errorf("Calculation %q mentions limit for uncapped claim", s.Calculation)
	}
}
