package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testPolicy(number string, status PolicyStatus) *Policy {
	return &Policy{
		PolicyNumber:  number,
		PolicyType:    "auto",
		Policyholder:  "John Smith",
		Status:        status,
		EffectiveDate: time.Now().AddDate(-1, 0, 0),
		ExpiryDate:    time.Now().AddDate(1, 0, 0),
		Coverages: []Coverage{
			{CoverageType: AutoCollision, CoverageLimit: 50000, Deductible: 500, Description: "Collision coverage"},
		},
		AnnualPremium: 1200,
	}
}

func TestCatalog_GetAndList(t *testing.T) {
	c := New([]*Policy{
		testPolicy("POL-AUTO-002", PolicyActive),
		testPolicy("POL-AUTO-001", PolicyActive),
	})

	if c.Len() != 2 {
		t.Fatalf("expected 2 policies, got %d", c.Len())
	}

	if p := c.Get("POL-AUTO-001"); p == nil {
		t.Error("expected to find POL-AUTO-001")
	}
	if p := c.Get("POL-NOPE-999"); p != nil {
		t.Error("expected nil for unknown policy number")
	}

	list := c.List()
	if list[0].PolicyNumber != "POL-AUTO-001" || list[1].PolicyNumber != "POL-AUTO-002" {
		t.Errorf("expected list sorted by policy number, got %s, %s",
			list[0].PolicyNumber, list[1].PolicyNumber)
	}
}

func TestCatalog_Replace(t *testing.T) {
	c := New([]*Policy{testPolicy("POL-AUTO-001", PolicyActive)})

	c.Replace([]*Policy{
		testPolicy("POL-HOME-001", PolicyActive),
		testPolicy("POL-HOME-002", PolicyActive),
	})

	if c.Len() != 2 {
		t.Fatalf("expected 2 policies after replace, got %d", c.Len())
	}
	if c.Get("POL-AUTO-001") != nil {
		t.Error("expected old policy to be gone after replace")
	}
}

func TestPolicy_IsActive(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		status PolicyStatus
		eff    time.Time
		exp    time.Time
		want   bool
	}{
		{"active in window", PolicyActive, now.AddDate(-1, 0, 0), now.AddDate(1, 0, 0), true},
		{"expired status", PolicyExpired, now.AddDate(-1, 0, 0), now.AddDate(1, 0, 0), false},
		{"cancelled status", PolicyCancelled, now.AddDate(-1, 0, 0), now.AddDate(1, 0, 0), false},
		{"suspended status", PolicySuspended, now.AddDate(-1, 0, 0), now.AddDate(1, 0, 0), false},
		{"active but window passed", PolicyActive, now.AddDate(-2, 0, 0), now.AddDate(-1, 0, 0), false},
		{"active but window not started", PolicyActive, now.AddDate(0, 1, 0), now.AddDate(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Policy{Status: tt.status, EffectiveDate: tt.eff, ExpiryDate: tt.exp}
			if got := p.IsActive(now); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolicy_GetCoverage(t *testing.T) {
	p := testPolicy("POL-AUTO-001", PolicyActive)

	if cov := p.GetCoverage(AutoCollision); cov == nil {
		t.Error("expected auto_collision coverage to be present")
	} else if cov.CoverageLimit != 50000 {
		t.Errorf("expected limit 50000, got %v", cov.CoverageLimit)
	}

	if cov := p.GetCoverage(HomeProperty); cov != nil {
		t.Error("expected nil for absent coverage type")
	}
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Policy)
		wantErr bool
	}{
		{"valid", func(p *Policy) {}, false},
		{"missing number", func(p *Policy) { p.PolicyNumber = "" }, true},
		{"bad status", func(p *Policy) { p.Status = "frozen" }, true},
		{"inverted window", func(p *Policy) { p.ExpiryDate = p.EffectiveDate.AddDate(-2, 0, 0) }, true},
		{"bad coverage type", func(p *Policy) { p.Coverages[0].CoverageType = "auto_warp" }, true},
		{"negative limit", func(p *Policy) { p.Coverages[0].CoverageLimit = -1 }, true},
		{"negative deductible", func(p *Policy) { p.Coverages[0].Deductible = -1 }, true},
		{"duplicate coverage", func(p *Policy) {
			p.Coverages = append(p.Coverages, p.Coverages[0])
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPolicy("POL-AUTO-001", PolicyActive)
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected record error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tt.wantErr {
				if _, ok := err.(*RecordError); !ok {
					t.Errorf("expected RecordError, got %T", err)
				}
			}
		})
	}
}

const samplePoliciesYAML = `policies:
  - policy_number: POL-AUTO-001
    policy_type: auto
    policyholder: John Smith
    status: active
    effective_date: 2024-01-01T00:00:00Z
    expiry_date: 2030-01-01T00:00:00Z
    annual_premium: 1200
    coverages:
      - coverage_type: auto_collision
        coverage_limit: 50000
        deductible: 500
        description: Collision coverage
  - policy_number: POL-HOME-001
    policy_type: home
    policyholder: Jane Doe
    status: expired
    effective_date: 2020-01-01T00:00:00Z
    expiry_date: 2021-01-01T00:00:00Z
    annual_premium: 900
    coverages:
      - coverage_type: home_property
        coverage_limit: 250000
        deductible: 1000
        description: Property damage coverage
`

func writePolicyFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}
	return path
}

func TestFileSource_LoadPolicies(t *testing.T) {
	dir := t.TempDir()
	path := writePolicyFile(t, dir, "policies.yaml", samplePoliciesYAML)

	source := NewFileSource(path, nil)
	policies, err := source.LoadPolicies()
	if err != nil {
		t.Fatalf("LoadPolicies failed: %v", err)
	}

	if len(policies) != 2 {
		t.Fatalf("expected 2 policies, got %d", len(policies))
	}
	if policies[0].PolicyNumber != "POL-AUTO-001" {
		t.Errorf("expected POL-AUTO-001 first, got %s", policies[0].PolicyNumber)
	}
	if policies[0].Coverages[0].CoverageType != AutoCollision {
		t.Errorf("expected auto_collision coverage, got %s", policies[0].Coverages[0].CoverageType)
	}
	if policies[1].Status != PolicyExpired {
		t.Errorf("expected expired status, got %s", policies[1].Status)
	}
}

func TestFileSource_LoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writePolicyFile(t, dir, "a.yaml", samplePoliciesYAML)
	writePolicyFile(t, dir, "ignored.txt", "not yaml")

	source := NewFileSource(dir, nil)
	policies, err := source.LoadPolicies()
	if err != nil {
		t.Fatalf("LoadPolicies failed: %v", err)
	}
	if len(policies) != 2 {
		t.Fatalf("expected 2 policies, got %d", len(policies))
	}
}

func TestFileSource_MalformedRecordFailsLoad(t *testing.T) {
	dir := t.TempDir()
	bad := `policies:
  - policy_number: POL-BAD-001
    status: frozen
    effective_date: 2024-01-01T00:00:00Z
    expiry_date: 2030-01-01T00:00:00Z
`
	path := writePolicyFile(t, dir, "bad.yaml", bad)

	source := NewFileSource(path, nil)
	if _, err := source.LoadPolicies(); err == nil {
		t.Fatal("expected load error for malformed record, got nil")
	}
}

func TestManager_Reload(t *testing.T) {
	dir := t.TempDir()
	path := writePolicyFile(t, dir, "policies.yaml", samplePoliciesYAML)

	mgr, err := NewManager(path, nil)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if mgr.Catalog().Len() != 2 {
		t.Fatalf("expected 2 policies, got %d", mgr.Catalog().Len())
	}

	var reloadedCount int
	mgr.OnReload = func(count int) { reloadedCount = count }

	// Overwrite with a single valid record and reload.
	single := `policies:
  - policy_number: POL-HEALTH-001
    policy_type: health
    policyholder: Sam Rivers
    status: active
    effective_date: 2024-01-01T00:00:00Z
    expiry_date: 2030-01-01T00:00:00Z
    annual_premium: 2400
    coverages:
      - coverage_type: health_emergency
        coverage_limit: 100000
        deductible: 250
        description: Emergency care
`
	writePolicyFile(t, dir, "policies.yaml", single)

	if err := mgr.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if mgr.Catalog().Len() != 1 {
		t.Fatalf("expected 1 policy after reload, got %d", mgr.Catalog().Len())
	}
	if reloadedCount != 1 {
		t.Errorf("expected OnReload callback with count 1, got %d", reloadedCount)
	}

	// A failed reload keeps the previous snapshot.
	writePolicyFile(t, dir, "policies.yaml", "policies: [{policy_number: '', status: active}]")
	if err := mgr.Reload(); err == nil {
		t.Fatal("expected reload error for malformed file")
	}
	if mgr.Catalog().Get("POL-HEALTH-001") == nil {
		t.Error("expected previous snapshot to survive failed reload")
	}
}
