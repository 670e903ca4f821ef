package analysis

import (
	"strings"
	"testing"
	"time"

	"autolife/adjudicator/pkg/catalog"
	"autolife/adjudicator/pkg/claims"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	now := time.Now()
	return catalog.New([]*catalog.Policy{
		{
			PolicyNumber:  "POL-AUTO-001",
			PolicyType:    "auto",
			Policyholder:  "Jordan Reyes",
			Status:        catalog.PolicyActive,
			EffectiveDate: now.AddDate(-1, 0, 0),
			ExpiryDate:    now.AddDate(1, 0, 0),
			Coverages: []catalog.Coverage{
				{CoverageType: catalog.AutoCollision, CoverageLimit: 50000, Deductible: 500},
				{CoverageType: catalog.AutoLiability, CoverageLimit: 100000, Deductible: 0},
			},
		},
		{
			PolicyNumber:  "POL-HOME-001",
			PolicyType:    "home",
			Policyholder:  "Casey Tran",
			Status:        catalog.PolicyExpired,
			EffectiveDate: now.AddDate(-3, 0, 0),
			ExpiryDate:    now.AddDate(-1, 0, 0),
			Coverages: []catalog.Coverage{
				{CoverageType: catalog.HomeProperty, CoverageLimit: 250000, Deductible: 1000},
			},
		},
		{
			PolicyNumber:  "POL-HEALTH-001",
			PolicyType:    "health",
			Policyholder:  "Morgan Blake",
			Status:        catalog.PolicyActive,
			EffectiveDate: now.AddDate(-1, 0, 0),
			ExpiryDate:    now.AddDate(1, 0, 0),
			Coverages: []catalog.Coverage{
				{CoverageType: catalog.HealthPrescription, CoverageLimit: 5000, Deductible: 50},
			},
		},
	})
}

func TestCheckCoverage_UnknownPolicy(t *testing.T) {
	ev := NewEvaluator(testCatalog(t), nil)

	check := ev.CheckCoverage("POL-AUTO-999", claims.ClaimTypeAuto, 5000)

	if check.IsValid {
		t.Error("IsValid = true for unknown policy")
	}
	if check.IsCovered {
		t.Error("IsCovered = true for unknown policy")
	}
	if !strings.Contains(check.Reason, "not found") {
		t.Errorf("Reason = %q, want not-found message", check.Reason)
	}
}

func TestCheckCoverage_InactivePolicy(t *testing.T) {
	ev := NewEvaluator(testCatalog(t), nil)

	check := ev.CheckCoverage("POL-HOME-001", claims.ClaimTypeHome, 5000)

	if check.IsValid {
		t.Error("IsValid = true for expired policy")
	}
	if check.IsCovered {
		t.Error("IsCovered = true for expired policy")
	}
	if !strings.Contains(check.Reason, "expired") {
		t.Errorf("Reason = %q, want status in reason", check.Reason)
	}
	if check.PolicyExpiry == nil {
		t.Error("PolicyExpiry not set for found policy")
	}
}

func TestCheckCoverage_WithinLimit(t *testing.T) {
	ev := NewEvaluator(testCatalog(t), nil)

	check := ev.CheckCoverage("POL-AUTO-001", claims.ClaimTypeAuto, 5000)

	if !check.IsValid || !check.IsCovered {
		t.Fatalf("valid=%t covered=%t, want both true", check.IsValid, check.IsCovered)
	}
	if check.CoverageType != "auto_collision" {
		t.Errorf("CoverageType = %q, want auto_collision", check.CoverageType)
	}
	if check.CoverageLimit != 50000 || check.Deductible != 500 {
		t.Errorf("limit=%v deductible=%v, want 50000/500", check.CoverageLimit, check.Deductible)
	}
}

func TestCheckCoverage_ExceedsLimit(t *testing.T) {
	ev := NewEvaluator(testCatalog(t), nil)

	check := ev.CheckCoverage("POL-AUTO-001", claims.ClaimTypeAuto, 60000)

	if !check.IsValid {
		t.Error("IsValid = false for active policy")
	}
	if check.IsCovered {
		t.Error("IsCovered = true for amount above limit")
	}
	if !strings.Contains(check.Reason, "exceeds") {
		t.Errorf("Reason = %q, want exceeds message", check.Reason)
	}
}

func TestCheckCoverage_MissingCoverageEntry(t *testing.T) {
	ev := NewEvaluator(testCatalog(t), nil)

	// Health policy has prescriptions only, not emergency coverage.
	check := ev.CheckCoverage("POL-HEALTH-001", claims.ClaimTypeHealth, 2000)

	if !check.IsValid {
		t.Error("IsValid = false for active policy")
	}
	if check.IsCovered {
		t.Error("IsCovered = true despite missing coverage entry")
	}
	if !strings.Contains(check.Reason, "health_emergency") {
		t.Errorf("Reason = %q, want missing coverage type named", check.Reason)
	}
}

func TestCheckCoverage_UnmappedTypeDefaultsToAutoCollision(t *testing.T) {
	ev := NewEvaluator(testCatalog(t), nil)

	check := ev.CheckCoverage("POL-AUTO-001", claims.ClaimTypeLife, 5000)

	if check.CoverageType != "auto_collision" {
		t.Errorf("CoverageType = %q, want auto_collision fallback", check.CoverageType)
	}
	if !check.IsCovered {
		t.Error("IsCovered = false, want true under fallback mapping")
	}
}
