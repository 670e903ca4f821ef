package analysis

import (
	"log/slog"
	"strings"

	"autolife/adjudicator/pkg/claims"
)

// DefaultPolicyAgeDays is assumed when the caller does not know the policy
// age.
const DefaultPolicyAgeDays = 365

// Indicator trigger phrase sets. Matching is plain lowercase substring
// search over the narrative.
var (
	urgencyPhrases  = []string{"urgent", "immediately", "urgently"}
	distressPhrases = []string{"financial difficult", "need money", "cash", "payment today"}
	relationWords   = []string{"cousin", "friend", "family"}
	repairWords     = []string{"repair", "shop"}
	vaguePhrases    = []string{"not sure", "don't know", "not exactly"}
)

// Scorer computes fraud risk assessments from claim narratives.
type Scorer struct {
	logger *slog.Logger
}

// NewScorer creates a Scorer.
func NewScorer(logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{logger: logger}
}

// AssessFraud scores the narrative against the weighted indicator set. The
// score is the sum of independently triggered weights, each applied at
// most once, capped at 100. Deterministic for a given input.
func (s *Scorer) AssessFraud(narrative string, claimAmount float64, policyAgeDays int) *claims.FraudAssessment {
	var indicators []string
	score := 0.0

	lower := strings.ToLower(narrative)

	if policyAgeDays < 30 {
		indicators = append(indicators, "Policy is very new (less than 30 days)")
		score += 25
	}

	if claimAmount > 10000 {
		indicators = append(indicators, "High claim amount (over $10,000)")
		score += 15
	}

	if containsAny(lower, urgencyPhrases) {
		indicators = append(indicators, "Urgency language detected")
		score += 10
	}

	if strings.Contains(lower, "no witness") || strings.Contains(lower, "no police report") {
		indicators = append(indicators, "Lack of documentation or witnesses")
		score += 20
	}

	if containsAny(lower, distressPhrases) {
		indicators = append(indicators, "Financial distress mentioned")
		score += 20
	}

	if strings.Count(lower, "claim") > 3 || strings.Contains(lower, "previous claim") || strings.Contains(lower, "other claim") {
		indicators = append(indicators, "Multiple recent claims mentioned")
		score += 25
	}

	if containsAny(lower, relationWords) && containsAny(lower, repairWords) {
		indicators = append(indicators, "Repair shop has personal connection")
		score += 15
	}

	if containsAny(lower, vaguePhrases) {
		indicators = append(indicators, "Vague or inconsistent details")
		score += 10
	}

	if score > 100 {
		score = 100
	}

	var (
		level                 claims.FraudRiskLevel
		recommendation        string
		requiresInvestigation bool
	)
	switch {
	case score >= 70:
		level = claims.RiskCritical
		recommendation = "REJECT - High fraud risk, requires immediate investigation"
		requiresInvestigation = true
	case score >= 40:
		level = claims.RiskHigh
		recommendation = "HOLD - Multiple fraud indicators, manual review required"
		requiresInvestigation = true
	case score >= 20:
		level = claims.RiskMedium
		recommendation = "REVIEW - Some concerns, additional verification recommended"
		requiresInvestigation = true
	default:
		level = claims.RiskLow
		recommendation = "PROCEED - Low fraud risk, normal processing"
		requiresInvestigation = false
	}

	if len(indicators) == 0 {
		indicators = []string{"No significant fraud indicators detected"}
	}

	s.logger.Info("fraud assessment complete",
		"risk_level", level,
		"risk_score", score,
		"indicator_count", len(indicators),
	)

	return &claims.FraudAssessment{
		RiskLevel:             level,
		RiskScore:             score,
		Indicators:            indicators,
		Recommendation:        recommendation,
		RequiresInvestigation: requiresInvestigation,
	}
}
