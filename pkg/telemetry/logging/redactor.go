package logging

import (
	"log/slog"
	"regexp"
	"strings"
)

// Redactor redacts PII from log attributes. Claim narratives routinely
// contain claimant contact details, and provider credentials must never
// reach the log stream.
type Redactor struct {
	patterns []*redactPattern
}

// redactPattern contains a compiled regex and its replacement.
type redactPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Common PII pattern names.
const (
	PatternAPIKey      = "api_key"
	PatternBearerToken = "bearer_token"
	PatternEmail       = "email"
	PatternSSN         = "ssn"
	PatternPhone       = "phone"
	PatternCreditCard  = "credit_card"
)

// sensitiveKeys marks attribute keys whose values are redacted entirely
// regardless of content.
var sensitiveKeys = []string{
	"password", "passwd", "pwd",
	"secret", "token", "api_key", "apikey",
	"auth", "authorization",
	"ssn", "social_security",
	"credit_card", "creditcard",
}

// NewRedactor creates a Redactor with the built-in pattern set.
func NewRedactor() *Redactor {
	specs := []struct {
		name        string
		regex       string
		replacement string
	}{
		{PatternAPIKey, `(sk-[a-zA-Z0-9-]+|api[-_]?key[-_:]\s*[a-zA-Z0-9]+)`, "sk-***"},
		{PatternBearerToken, `Bearer\s+[a-zA-Z0-9\-._~+/]+=*`, "Bearer ***"},
		{PatternEmail, `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`, "***@***"},
		{PatternSSN, `\b\d{3}[-\s]?\d{2}[-\s]?\d{4}\b`, "***-**-****"},
		{PatternPhone, `\b(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`, "***-***-****"},
		{PatternCreditCard, `\b(?:\d[ -]*?){13,16}\b`, "****-****-****-****"},
	}

	r := &Redactor{}
	for _, s := range specs {
		r.patterns = append(r.patterns, &redactPattern{
			name:        s.name,
			regex:       regexp.MustCompile(s.regex),
			replacement: s.replacement,
		})
	}
	return r
}

// RedactString redacts PII from a string value.
func (r *Redactor) RedactString(value string) string {
	if value == "" {
		return value
	}
	redacted := value
	for _, pattern := range r.patterns {
		redacted = pattern.regex.ReplaceAllString(redacted, pattern.replacement)
	}
	return redacted
}

// RedactAttr redacts a single slog attribute. Sensitive keys are blanked
// entirely; other string values are pattern-redacted.
func (r *Redactor) RedactAttr(a slog.Attr) slog.Attr {
	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, redactValueHint(a.Value.String()))
	}
	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, r.RedactString(a.Value.String()))
	}
	return a
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lowerKey, sensitive) {
			return true
		}
	}
	return false
}

// redactValueHint keeps a short prefix of the value for debugging.
func redactValueHint(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return "***"
	}
	return v[:4] + "***"
}
