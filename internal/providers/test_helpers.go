package providers

import (
	"testing"
	"time"

	"autolife/adjudicator/pkg/providers"
)

// TestConfig creates a test provider configuration pointed at a mock
// server URL.
func TestConfig(name, providerType, baseURL string) providers.ProviderConfig {
	return providers.ProviderConfig{
		Name:       name,
		Type:       providerType,
		BaseURL:    baseURL,
		APIKey:     "test-api-key",
		Timeout:    5 * time.Second,
		MaxRetries: 2,
	}
}

// TestCompletionRequest creates a basic completion request for tests.
func TestCompletionRequest(model string) *providers.CompletionRequest {
	return &providers.CompletionRequest{
		Model: model,
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: "Hello"},
		},
		Temperature: 0.7,
		MaxTokens:   100,
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertEqual fails the test if got != want.
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
