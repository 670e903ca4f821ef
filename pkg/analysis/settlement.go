package analysis

import (
	"fmt"
	"log/slog"

	"autolife/adjudicator/pkg/claims"
)

// Calculator computes final settlement amounts.
type Calculator struct {
	logger *slog.Logger
}

// NewCalculator creates a Calculator.
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{logger: logger}
}

// Settle applies the coverage limit and deductible to a claim amount. An
// uncovered claim settles at zero. The calculation string records each
// step of the derivation for the audit trail.
func (c *Calculator) Settle(claimAmount, coverageLimit, deductible float64, isCovered bool) *claims.Settlement {
	if !isCovered {
		return &claims.Settlement{
			ApprovedAmount: 0,
			Calculation:    "Claim not covered by policy",
		}
	}

	capped := claimAmount
	limitApplied := claimAmount > coverageLimit
	if limitApplied {
		capped = coverageLimit
	}

	approved := capped - deductible
	if approved < 0 {
		approved = 0
	}
	approved = claims.RoundAmount(approved)

	calculation := fmt.Sprintf("Claim: $%.2f", claimAmount)
	if limitApplied {
		calculation += fmt.Sprintf(" -> Limited to coverage: $%.2f", coverageLimit)
	}
	calculation += fmt.Sprintf(" -> Minus deductible: $%.2f -> Approved: $%.2f", deductible, approved)

	c.logger.Info("settlement calculated",
		"claim_amount", claimAmount,
		"approved_amount", approved,
		"limit_applied", limitApplied,
	)

	return &claims.Settlement{
		ApprovedAmount:    approved,
		Calculation:       calculation,
		DeductibleApplied: deductible,
		LimitApplied:      limitApplied,
	}
}
