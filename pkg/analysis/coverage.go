package analysis

import (
	"fmt"
	"log/slog"
	"time"

	"autolife/adjudicator/pkg/catalog"
	"autolife/adjudicator/pkg/claims"
)

// coverageTypeFor maps a claim type to the coverage category it is checked
// against. Unmapped types resolve to auto collision rather than failing,
// so every claim gets an answer.
func coverageTypeFor(claimType claims.ClaimType) catalog.CoverageType {
	switch claimType {
	case claims.ClaimTypeAuto:
		return catalog.AutoCollision
	case claims.ClaimTypeHome:
		return catalog.HomeProperty
	case claims.ClaimTypeHealth:
		return catalog.HealthEmergency
	default:
		return catalog.AutoCollision
	}
}

// Evaluator validates claims against the policy catalog.
type Evaluator struct {
	catalog *catalog.Catalog
	logger  *slog.Logger

	now func() time.Time
}

// NewEvaluator creates an Evaluator backed by the given catalog.
func NewEvaluator(cat *catalog.Catalog, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{catalog: cat, logger: logger, now: time.Now}
}

// CheckCoverage validates a policy against a claim. A missing or inactive
// policy is a negative result with a human-readable reason, never an
// error.
func (ev *Evaluator) CheckCoverage(policyNumber string, claimType claims.ClaimType, claimAmount float64) *claims.CoverageCheck {
	policy := ev.catalog.Get(policyNumber)

	if policy == nil {
		ev.logger.Warn("policy not found", "policy_number", policyNumber)
		return &claims.CoverageCheck{
			IsValid:      false,
			CoverageType: "unknown",
			IsCovered:    false,
			Reason:       fmt.Sprintf("Policy %s not found in database", policyNumber),
		}
	}

	expiry := policy.ExpiryDate
	if !policy.IsActive(ev.now()) {
		ev.logger.Warn("policy not active",
			"policy_number", policyNumber,
			"status", policy.Status,
		)
		return &claims.CoverageCheck{
			IsValid:      false,
			CoverageType: policy.PolicyType,
			IsCovered:    false,
			Reason:       fmt.Sprintf("Policy is %s. Expiry date: %s", policy.Status, expiry.Format("2006-01-02")),
			PolicyExpiry: &expiry,
		}
	}

	coverageType := coverageTypeFor(claimType)
	coverage := policy.GetCoverage(coverageType)

	if coverage == nil {
		ev.logger.Info("policy lacks coverage",
			"policy_number", policyNumber,
			"coverage_type", coverageType,
		)
		return &claims.CoverageCheck{
			IsValid:      true,
			CoverageType: policy.PolicyType,
			IsCovered:    false,
			Reason:       fmt.Sprintf("Policy does not include %s coverage", coverageType),
		}
	}

	isCovered := claimAmount <= coverage.CoverageLimit
	reason := "Claim is within coverage limits"
	if !isCovered {
		reason = fmt.Sprintf("Claim amount exceeds coverage limit of $%.2f", coverage.CoverageLimit)
	}

	ev.logger.Info("coverage check complete",
		"policy_number", policyNumber,
		"is_covered", isCovered,
	)

	return &claims.CoverageCheck{
		IsValid:       true,
		CoverageType:  string(coverageType),
		CoverageLimit: coverage.CoverageLimit,
		Deductible:    coverage.Deductible,
		IsCovered:     isCovered,
		Reason:        reason,
		PolicyExpiry:  &expiry,
	}
}
