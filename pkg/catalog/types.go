package catalog

import (
	"fmt"
	"time"
)

// PolicyStatus is the lifecycle status of a policy.
type PolicyStatus string

const (
	PolicyActive    PolicyStatus = "active"
	PolicyExpired   PolicyStatus = "expired"
	PolicySuspended PolicyStatus = "suspended"
	PolicyCancelled PolicyStatus = "cancelled"
)

// CoverageType identifies a category of loss a policy covers.
type CoverageType string

const (
	// Auto
	AutoCollision     CoverageType = "auto_collision"
	AutoComprehensive CoverageType = "auto_comprehensive"
	AutoLiability     CoverageType = "auto_liability"

	// Home
	HomeProperty        CoverageType = "home_property"
	HomeTheft           CoverageType = "home_theft"
	HomeNaturalDisaster CoverageType = "home_natural_disaster"
	HomeLiability       CoverageType = "home_liability"

	// Health
	HealthEmergency       CoverageType = "health_emergency"
	HealthHospitalization CoverageType = "health_hospitalization"
	HealthPrescription    CoverageType = "health_prescription"
	HealthPreventive      CoverageType = "health_preventive"

	// Life
	LifeTerm  CoverageType = "life_term"
	LifeWhole CoverageType = "life_whole"
)

var validStatuses = map[PolicyStatus]bool{
	PolicyActive:    true,
	PolicyExpired:   true,
	PolicySuspended: true,
	PolicyCancelled: true,
}

var validCoverageTypes = map[CoverageType]bool{
	AutoCollision:         true,
	AutoComprehensive:     true,
	AutoLiability:         true,
	HomeProperty:          true,
	HomeTheft:             true,
	HomeNaturalDisaster:   true,
	HomeLiability:         true,
	HealthEmergency:       true,
	HealthHospitalization: true,
	HealthPrescription:    true,
	HealthPreventive:      true,
	LifeTerm:              true,
	LifeWhole:             true,
}

// Coverage is a single (type, limit, deductible) entry within a policy.
type Coverage struct {
	// CoverageType is the category of loss this entry covers
	CoverageType CoverageType `yaml:"coverage_type" json:"coverage_type"`

	// CoverageLimit is the maximum covered amount in dollars
	CoverageLimit float64 `yaml:"coverage_limit" json:"coverage_limit"`

	// Deductible is the amount subtracted from any settlement
	Deductible float64 `yaml:"deductible" json:"deductible"`

	// Description is a human-readable summary of the coverage
	Description string `yaml:"description" json:"description"`
}

// Policy is a coverage contract identified by a unique policy number.
type Policy struct {
	// PolicyNumber uniquely identifies the policy (e.g. "POL-AUTO-001")
	PolicyNumber string `yaml:"policy_number" json:"policy_number"`

	// PolicyType is the line of business (auto, home, health, life)
	PolicyType string `yaml:"policy_type" json:"policy_type"`

	// Policyholder is the name of the contract holder
	Policyholder string `yaml:"policyholder" json:"policyholder"`

	// Status is the current lifecycle status
	Status PolicyStatus `yaml:"status" json:"status"`

	// EffectiveDate is the start of the validity window
	EffectiveDate time.Time `yaml:"effective_date" json:"effective_date"`

	// ExpiryDate is the end of the validity window
	ExpiryDate time.Time `yaml:"expiry_date" json:"expiry_date"`

	// Coverages lists the coverage entries, in declaration order
	Coverages []Coverage `yaml:"coverages" json:"coverages"`

	// AnnualPremium is the yearly premium in dollars
	AnnualPremium float64 `yaml:"annual_premium" json:"annual_premium"`
}

// IsActive reports whether the policy is active at the given time: its
// status is active and t falls inside the validity window.
func (p *Policy) IsActive(t time.Time) bool {
	return p.Status == PolicyActive &&
		!t.Before(p.EffectiveDate) &&
		!t.After(p.ExpiryDate)
}

// GetCoverage returns the coverage entry of the given type, or nil if the
// policy does not include it.
func (p *Policy) GetCoverage(ct CoverageType) *Coverage {
	for i := range p.Coverages {
		if p.Coverages[i].CoverageType == ct {
			return &p.Coverages[i]
		}
	}
	return nil
}

// Validate checks a policy record for structural problems. A malformed
// record is rejected at load time so a bad file never reaches the catalog.
func (p *Policy) Validate() error {
	if p.PolicyNumber == "" {
		return &RecordError{Field: "policy_number", Message: "policy number is required"}
	}
	if !validStatuses[p.Status] {
		return &RecordError{PolicyNumber: p.PolicyNumber, Field: "status",
			Message: fmt.Sprintf("unknown status %q", p.Status)}
	}
	if p.ExpiryDate.Before(p.EffectiveDate) {
		return &RecordError{PolicyNumber: p.PolicyNumber, Field: "expiry_date",
			Message: "expiry date precedes effective date"}
	}
	seen := make(map[CoverageType]bool, len(p.Coverages))
	for _, c := range p.Coverages {
		if !validCoverageTypes[c.CoverageType] {
			return &RecordError{PolicyNumber: p.PolicyNumber, Field: "coverage_type",
				Message: fmt.Sprintf("unknown coverage type %q", c.CoverageType)}
		}
		if seen[c.CoverageType] {
			return &RecordError{PolicyNumber: p.PolicyNumber, Field: "coverage_type",
				Message: fmt.Sprintf("duplicate coverage type %q", c.CoverageType)}
		}
		seen[c.CoverageType] = true
		if c.CoverageLimit < 0 {
			return &RecordError{PolicyNumber: p.PolicyNumber, Field: "coverage_limit",
				Message: "coverage limit must not be negative"}
		}
		if c.Deductible < 0 {
			return &RecordError{PolicyNumber: p.PolicyNumber, Field: "deductible",
				Message: "deductible must not be negative"}
		}
	}
	return nil
}
