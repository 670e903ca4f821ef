package agent

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"autolife/adjudicator/pkg/claims"
)

// decisionPhrases is the fixed terminal-decision phrase set. Matching is
// case-insensitive substring search, so narratives like "the claim was
// not denied" also trigger it. That ambiguity is inherited behavior and
// deliberately left as-is: changing the phrase set changes observable
// decisions.
var decisionPhrases = []string{
	"final recommendation",
	"my recommendation",
	"decision:",
	"approved for",
	"deny this claim",
	"denied",
	"needs review",
	"requires manual review",
}

var (
	denialWords   = []string{"denied", "deny", "reject"}
	approvalWords = []string{"approved", "approve"}
)

var (
	dollarAmountPattern  = regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	dollarsWordPattern   = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*dollars`)
	confidencePctPattern = regexp.MustCompile(`confidence[:\s]+(\d+)%`)
)

// reasoningLimit caps recommendation reasoning length in characters.
const reasoningLimit = 500

// defaultConfidence is assumed when the narrative does not state one.
const defaultConfidence = 0.8

// Fixed next-step lists per disposition.
var (
	approvedNextSteps = []string{
		"Issue payment to claimant",
		"Send approval notification",
		"Close claim",
	}
	deniedNextSteps = []string{
		"Send denial letter with explanation",
		"Provide appeals process information",
		"Close claim",
	}
	reviewNextSteps = []string{
		"Assign to claims adjuster for review",
		"Request additional documentation",
		"Schedule follow-up investigation",
	}
)

// HasFinalDecision reports whether the narrative contains terminal
// decision language.
func HasFinalDecision(content string) bool {
	lower := strings.ToLower(content)
	for _, phrase := range decisionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ParseRecommendation turns a terminal narrative into a structured
// recommendation. Denial vocabulary is checked before approval
// vocabulary: when both appear, denial language is treated as the more
// specific signal.
func ParseRecommendation(content string) *claims.Recommendation {
	lower := strings.ToLower(content)

	status := claims.StatusNeedsReview
	if containsAnyWord(lower, denialWords) {
		status = claims.StatusDenied
	} else if containsAnyWord(lower, approvalWords) {
		status = claims.StatusApproved
	}

	return &claims.Recommendation{
		Status:         status,
		ApprovedAmount: parseAmount(content),
		Reasoning:      truncateReasoning(content),
		Confidence:     parseConfidence(lower),
		NextSteps:      nextStepsFor(status),
		ProcessedAt:    time.Now(),
	}
}

// FallbackRecommendation is the deterministic recommendation synthesized
// when the iteration budget is exhausted without a decision.
func FallbackRecommendation() *claims.Recommendation {
	return &claims.Recommendation{
		Status:         claims.StatusNeedsReview,
		ApprovedAmount: 0,
		Reasoning:      "Unable to complete automated processing. Manual review required.",
		Confidence:     0,
		NextSteps: []string{
			"Manual review by claims adjuster",
			"Verify all claim details",
		},
		ProcessedAt: time.Now(),
	}
}

// parseAmount scans for monetary tokens and returns the maximum found.
// Dollar-prefixed tokens are preferred; "dollars"-suffixed numbers are
// only consulted when no prefixed token exists.
func parseAmount(content string) float64 {
	for _, pattern := range []*regexp.Regexp{dollarAmountPattern, dollarsWordPattern} {
		matches := pattern.FindAllStringSubmatch(content, -1)
		if len(matches) == 0 {
			continue
		}
		best := 0.0
		for _, m := range matches {
			v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
			if err != nil {
				continue
			}
			if v > best {
				best = v
			}
		}
		return best
	}
	return 0
}

func parseConfidence(lower string) float64 {
	if m := confidencePctPattern.FindStringSubmatch(lower); m != nil {
		if pct, err := strconv.Atoi(m[1]); err == nil {
			return float64(pct) / 100
		}
	}
	return defaultConfidence
}

func truncateReasoning(content string) string {
	runes := []rune(content)
	if len(runes) > reasoningLimit {
		return string(runes[:reasoningLimit])
	}
	return content
}

func nextStepsFor(status claims.ClaimStatus) []string {
	switch status {
	case claims.StatusApproved:
		return append([]string(nil), approvedNextSteps...)
	case claims.StatusDenied:
		return append([]string(nil), deniedNextSteps...)
	default:
		return append([]string(nil), reviewNextSteps...)
	}
}

func containsAnyWord(haystack string, words []string) bool {
	for _, w := range words {
		if strings.Contains(haystack, w) {
			return true
		}
	}
	return false
}
