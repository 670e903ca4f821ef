package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"auth", &AuthError{Provider: "openai"}, "auth"},
		{"rate limit", &RateLimitError{Provider: "openai"}, "rate_limit"},
		{"timeout", &TimeoutError{Provider: "anthropic"}, "timeout"},
		{"parse", &ParseError{Provider: "openai"}, "parse"},
		{"validation", &ValidationError{Field: "model"}, "validation"},
		{"config", &ConfigError{Provider: "openai", Field: "api_key"}, "config"},
		{"provider", &ProviderError{Provider: "openai", StatusCode: 502}, "provider"},
		{"wrapped", fmt.Errorf("round failed: %w", &TimeoutError{Provider: "openai"}), "timeout"},
		{"plain", errors.New("boom"), "unknown"},
		{"nil", nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorType(tt.err); got != tt.want {
				t.Errorf("ErrorType(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
