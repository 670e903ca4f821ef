package analysis

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"autolife/adjudicator/pkg/claims"
)

var (
	policyNumberPattern = regexp.MustCompile(`(?i)POL-[A-Z]+-\d+`)
	amountPattern       = regexp.MustCompile(`\$?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	claimantPattern     = regexp.MustCompile(`policyholder[:\s]+([A-Z][a-z]+\s+[A-Z][a-z]+)`)

	monthNamePattern = regexp.MustCompile(`(?i)(January|Jan|February|Feb|March|Mar|April|Apr|May|June|Jun|July|Jul|August|Aug|September|Sep|October|Oct|November|Nov|December|Dec)\s+(\d{1,2}),?\s+(\d{4})`)
	slashDatePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	isoDatePattern   = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Claim type keyword sets, scanned in fixed priority order: health first,
// then home, then auto. Order matters because narratives often mix terms
// ("ambulance hit my car").
var (
	healthKeywords = []string{"hospital", "medical", "health", "emergency", "doctor", "chest pain", "heart", "ekg", "ambulance", "patient", "diagnosis"}
	homeKeywords   = []string{"home", "house", "property", "pipe", "theft", "burglary", "fire", "water damage"}
	autoKeywords   = []string{"car", "vehicle", "collision", "auto", "driving", "windshield", "fender"}
)

// minPlausibleAmount filters out small numeric noise (dates, times, street
// numbers) when scanning for monetary tokens.
const minPlausibleAmount = 100

// descriptionLimit is the maximum description excerpt length in characters.
const descriptionLimit = 200

// Extractor parses raw claim narratives into structured ClaimInformation.
type Extractor struct {
	logger *slog.Logger

	// now is replaceable in tests
	now func() time.Time
}

// NewExtractor creates an Extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger, now: time.Now}
}

// Extract parses the raw narrative into structured claim information. It
// never fails: every field falls back to a documented default when the
// narrative does not contain it.
func (e *Extractor) Extract(rawText string) *claims.ClaimInformation {
	info := &claims.ClaimInformation{
		PolicyNumber: e.extractPolicyNumber(rawText),
		ClaimAmount:  e.extractAmount(rawText),
		IncidentDate: e.extractDate(rawText),
		ClaimantName: e.extractClaimantName(rawText),
		Description:  truncateDescription(rawText),
	}
	info.ClaimType = e.resolveClaimType(info.PolicyNumber, rawText)

	e.logger.Info("claim information extracted",
		"policy_number", info.PolicyNumber,
		"claim_type", info.ClaimType,
		"claim_amount", info.ClaimAmount,
	)

	return info
}

func (e *Extractor) extractPolicyNumber(text string) string {
	if m := policyNumberPattern.FindString(text); m != "" {
		return strings.ToUpper(m)
	}
	return "UNKNOWN"
}

// resolveClaimType resolves the line of business by priority: the policy
// number prefix wins, then keyword sets in fixed order, then the auto
// default.
func (e *Extractor) resolveClaimType(policyNumber, text string) claims.ClaimType {
	upper := strings.ToUpper(policyNumber)
	switch {
	case strings.Contains(upper, "POL-AUTO"):
		return claims.ClaimTypeAuto
	case strings.Contains(upper, "POL-HOME"):
		return claims.ClaimTypeHome
	case strings.Contains(upper, "POL-HEALTH"):
		return claims.ClaimTypeHealth
	}

	lower := strings.ToLower(text)
	if containsAny(lower, healthKeywords) {
		return claims.ClaimTypeHealth
	}
	if containsAny(lower, homeKeywords) {
		return claims.ClaimTypeHome
	}
	if containsAny(lower, autoKeywords) {
		return claims.ClaimTypeAuto
	}
	return claims.ClaimTypeAuto
}

// extractAmount scans all monetary-looking tokens, discards values at or
// below the noise floor, and returns the maximum. Defaults to 1000.0 when
// nothing qualifies.
func (e *Extractor) extractAmount(text string) float64 {
	best := 0.0
	for _, m := range amountPattern.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= minPlausibleAmount {
			continue
		}
		if v > best {
			best = v
		}
	}
	if best == 0 {
		return 1000.0
	}
	return claims.RoundAmount(best)
}

// extractDate tries the date patterns in fixed order: month-name, then
// MM/DD/YYYY, then YYYY-MM-DD. First match wins; the current processing
// time is the fallback.
func (e *Extractor) extractDate(text string) time.Time {
	if m := monthNamePattern.FindStringSubmatch(text); m != nil {
		month, ok := monthsByName[strings.ToLower(m[1])]
		if ok {
			day, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			if t, valid := makeDate(year, month, day); valid {
				return t
			}
		}
	}

	if m := slashDatePattern.FindStringSubmatch(text); m != nil {
		mon, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if mon >= 1 && mon <= 12 {
			if t, valid := makeDate(year, time.Month(mon), day); valid {
				return t
			}
		}
	}

	if m := isoDatePattern.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		mon, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if mon >= 1 && mon <= 12 {
			if t, valid := makeDate(year, time.Month(mon), day); valid {
				return t
			}
		}
	}

	return e.now()
}

// makeDate builds a date and rejects day overflow (time.Date normalizes
// Feb 30 into March, which would silently accept garbage).
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

// extractClaimantName is only attempted when the word "policyholder"
// appears; it takes the two-capitalized-word sequence that follows.
func (e *Extractor) extractClaimantName(text string) string {
	if !strings.Contains(strings.ToLower(text), "policyholder") {
		return ""
	}
	if m := claimantPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func truncateDescription(text string) string {
	runes := []rune(text)
	if len(runes) > descriptionLimit {
		return string(runes[:descriptionLimit]) + "..."
	}
	return text
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
