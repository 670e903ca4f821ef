package claims

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ClaimType categorizes the line of business a claim belongs to.
type ClaimType string

const (
	ClaimTypeAuto   ClaimType = "auto"
	ClaimTypeHome   ClaimType = "home"
	ClaimTypeHealth ClaimType = "health"
	ClaimTypeLife   ClaimType = "life"
)

// ClaimStatus is the processing status of a claim.
type ClaimStatus string

const (
	StatusPending     ClaimStatus = "pending"
	StatusApproved    ClaimStatus = "approved"
	StatusDenied      ClaimStatus = "denied"
	StatusNeedsReview ClaimStatus = "needs_review"
)

// FraudRiskLevel buckets a fraud risk score.
type FraudRiskLevel string

const (
	RiskLow      FraudRiskLevel = "low"
	RiskMedium   FraudRiskLevel = "medium"
	RiskHigh     FraudRiskLevel = "high"
	RiskCritical FraudRiskLevel = "critical"
)

// MaxClaimAmount is the upper bound on a single claim amount in dollars.
const MaxClaimAmount = 10_000_000

// ClaimInformation is the structured data extracted from a raw claim
// narrative. Extraction is best-effort: fields that cannot be located get
// documented defaults rather than errors.
type ClaimInformation struct {
	// PolicyNumber is the referenced policy, or "UNKNOWN" if none was found
	PolicyNumber string `json:"policy_number"`

	// ClaimType is the resolved line of business
	ClaimType ClaimType `json:"claim_type"`

	// IncidentDate is the date of the incident (processing time if absent)
	IncidentDate time.Time `json:"incident_date"`

	// ClaimAmount is the claimed amount in dollars, rounded to cents
	ClaimAmount float64 `json:"claim_amount"`

	// Description is a truncated excerpt of the narrative
	Description string `json:"description"`

	// ClaimantName is the claimant, when one could be identified
	ClaimantName string `json:"claimant_name,omitempty"`
}

// Validate checks the extracted information against the input contract.
// A violation is an input validation failure, not a lookup miss.
func (ci *ClaimInformation) Validate() error {
	if ci.ClaimAmount <= 0 {
		return &ValidationError{Field: "claim_amount", Message: "claim amount must be positive"}
	}
	if ci.ClaimAmount > MaxClaimAmount {
		return &ValidationError{Field: "claim_amount", Message: fmt.Sprintf("claim amount exceeds maximum of $%d", MaxClaimAmount)}
	}
	return nil
}

// RoundAmount rounds a dollar amount to two decimal places.
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}

// CoverageCheck is the result of validating a policy against a claim.
type CoverageCheck struct {
	// IsValid reports whether the policy exists and is currently active
	IsValid bool `json:"is_valid"`

	// CoverageType is the coverage category the claim was checked against
	CoverageType string `json:"coverage_type"`

	// CoverageLimit is the maximum covered amount (0 when not applicable)
	CoverageLimit float64 `json:"coverage_limit"`

	// Deductible is the policy deductible (0 when not applicable)
	Deductible float64 `json:"deductible"`

	// IsCovered reports whether the claim amount falls within an existing coverage
	IsCovered bool `json:"is_covered"`

	// Reason explains the outcome in human-readable form
	Reason string `json:"reason"`

	// PolicyExpiry is the policy expiry date, when the policy was found
	PolicyExpiry *time.Time `json:"policy_expiry,omitempty"`
}

// FraudAssessment is the result of scoring a claim for fraud indicators.
type FraudAssessment struct {
	// RiskLevel is the bucketed risk level
	RiskLevel FraudRiskLevel `json:"risk_level"`

	// RiskScore is the additive indicator score, capped at 100
	RiskScore float64 `json:"risk_score"`

	// Indicators lists the triggered indicators, in trigger order
	Indicators []string `json:"indicators"`

	// Recommendation is the suggested handling for this risk level
	Recommendation string `json:"recommendation"`

	// RequiresInvestigation is true for any level above low
	RequiresInvestigation bool `json:"requires_investigation"`
}

// Settlement is the result of applying coverage limit and deductible to a
// claim amount.
type Settlement struct {
	// ApprovedAmount is the final payable amount, rounded to cents
	ApprovedAmount float64 `json:"approved_amount"`

	// Calculation is a human-readable derivation trail for audit
	Calculation string `json:"calculation"`

	// DeductibleApplied is the deductible subtracted from the capped amount
	DeductibleApplied float64 `json:"deductible_applied"`

	// LimitApplied reports whether the coverage limit capped the claim
	LimitApplied bool `json:"coverage_limit_applied"`
}

// Recommendation is the terminal output of claim analysis.
type Recommendation struct {
	// Status is the recommended disposition
	Status ClaimStatus `json:"status"`

	// ApprovedAmount is the payout amount (0 unless approved)
	ApprovedAmount float64 `json:"approved_amount"`

	// Reasoning is the rationale, truncated to 500 characters
	Reasoning string `json:"reasoning"`

	// Confidence is the decision confidence in [0, 1]
	Confidence float64 `json:"confidence"`

	// NextSteps lists the follow-up actions for this disposition
	NextSteps []string `json:"next_steps"`

	// ProcessedAt is when the recommendation was produced
	ProcessedAt time.Time `json:"processed_at"`
}

// Claim is the aggregate root for a single submission under analysis.
// It accumulates the structured results of each analysis step and, once
// terminal, a Recommendation.
type Claim struct {
	// ID uniquely identifies this submission
	ID string `json:"id"`

	// RawText is the original claim submission text
	RawText string `json:"raw_text"`

	// Information holds the extraction result, once produced
	Information *ClaimInformation `json:"information,omitempty"`

	// CoverageCheck holds the coverage validation result, once produced
	CoverageCheck *CoverageCheck `json:"coverage_check,omitempty"`

	// FraudAssessment holds the fraud scoring result, once produced
	FraudAssessment *FraudAssessment `json:"fraud_assessment,omitempty"`

	// Recommendation is the terminal decision, once produced
	Recommendation *Recommendation `json:"recommendation,omitempty"`

	// ProcessingLog is the append-only, insertion-ordered audit trail
	ProcessingLog []string `json:"processing_log"`
}

// NewClaim creates a Claim for a raw submission with a fresh ID and an
// empty processing log.
func NewClaim(rawText string) *Claim {
	return &Claim{
		ID:      uuid.NewString(),
		RawText: rawText,
	}
}

// AddLog appends a timestamped entry to the processing log.
func (c *Claim) AddLog(message string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	c.ProcessingLog = append(c.ProcessingLog, fmt.Sprintf("[%s] %s", ts, message))
}

// IsTerminal reports whether the claim carries a non-pending recommendation.
// Terminal claims must not be mutated further.
func (c *Claim) IsTerminal() bool {
	return c.Recommendation != nil && c.Recommendation.Status != StatusPending
}
