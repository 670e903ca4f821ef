package providers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	internalproviders "autolife/adjudicator/internal/providers"
	"autolife/adjudicator/pkg/providers"
)

func TestHealthCheck(t *testing.T) {
	mock := internalproviders.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/", internalproviders.MockResponse{StatusCode: 200})

	p := providers.NewHTTPProvider(internalproviders.TestConfig("test", "openai", mock.URL()))
	defer p.Close()

	err := p.HealthCheck(context.Background())
	internalproviders.AssertNoError(t, err)
	internalproviders.AssertEqual(t, p.IsHealthy(), true)
}

func TestHealthCheckUnreachable(t *testing.T) {
	p := providers.NewHTTPProvider(providers.ProviderConfig{
		Name:    "test",
		Type:    "openai",
		BaseURL: "http://127.0.0.1:1",
		APIKey:  "test",
		Timeout: 500 * time.Millisecond,
	})
	defer p.Close()

	err := p.HealthCheck(context.Background())
	internalproviders.AssertError(t, err)
}

func TestUnhealthyAfterConsecutiveFailures(t *testing.T) {
	mock := internalproviders.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/fail", internalproviders.MockAuthError())

	config := internalproviders.TestConfig("test", "openai", mock.URL())
	config.MaxRetries = 0

	p := providers.NewHTTPProvider(config)
	defer p.Close()

	internalproviders.AssertEqual(t, p.IsHealthy(), true)

	for i := 0; i < 3; i++ {
		_, err := p.DoRequest(context.Background(), http.MethodPost, mock.URL()+"/fail", nil, nil)
		internalproviders.AssertError(t, err)
	}

	internalproviders.AssertEqual(t, p.IsHealthy(), false)

	health := p.GetHealth()
	if health.ConsecutiveFailures < 3 {
		t.Fatalf("expected at least 3 consecutive failures, got %d", health.ConsecutiveFailures)
	}
}

func TestDoRequestContextCancelled(t *testing.T) {
	mock := internalproviders.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/slow", internalproviders.MockResponse{
		StatusCode: 200,
		Delay:      2 * time.Second,
	})

	p := providers.NewHTTPProvider(internalproviders.TestConfig("test", "openai", mock.URL()))
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := p.DoRequest(ctx, http.MethodGet, mock.URL()+"/slow", nil, nil)
	internalproviders.AssertError(t, err)

	if _, ok := err.(*providers.TimeoutError); !ok {
		t.Fatalf("expected TimeoutError, got %T: %v", err, err)
	}
}
