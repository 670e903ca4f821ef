package anthropic

import (
	"context"
	"testing"

	internalproviders "autolife/adjudicator/internal/providers"
	"autolife/adjudicator/pkg/providers"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name      string
		config    providers.ProviderConfig
		wantError bool
	}{
		{
			name: "valid config",
			config: providers.ProviderConfig{
				Name:   "anthropic-test",
				Type:   "anthropic",
				APIKey: "sk-ant-test",
			},
			wantError: false,
		},
		{
			name: "missing name",
			config: providers.ProviderConfig{
				Type:   "anthropic",
				APIKey: "sk-ant-test",
			},
			wantError: true,
		},
		{
			name: "missing api key",
			config: providers.ProviderConfig{
				Name: "anthropic-test",
				Type: "anthropic",
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if tt.wantError {
				internalproviders.AssertError(t, err)
				return
			}
			internalproviders.AssertNoError(t, err)
			defer p.Close()

			internalproviders.AssertEqual(t, p.GetName(), tt.config.Name)
		})
	}
}

func TestSendCompletion(t *testing.T) {
	mock := internalproviders.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/v1/messages", internalproviders.MockResponse{
		StatusCode: 200,
		Body:       internalproviders.MockAnthropicResponse("Claim looks routine", "claude-sonnet-4-5"),
	})

	p, err := NewProvider(internalproviders.TestConfig("anthropic-test", "anthropic", mock.URL()))
	internalproviders.AssertNoError(t, err)
	defer p.Close()

	resp, err := p.SendCompletion(context.Background(), internalproviders.TestCompletionRequest("claude-sonnet-4-5"))
	internalproviders.AssertNoError(t, err)

	internalproviders.AssertEqual(t, resp.Content, "Claim looks routine")
	internalproviders.AssertEqual(t, resp.FinishReason, providers.FinishReasonStop)
}

func TestSendCompletionToolUse(t *testing.T) {
	mock := internalproviders.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/v1/messages", internalproviders.MockResponse{
		StatusCode: 200,
		Body: internalproviders.MockAnthropicToolUseResponse(
			"claude-sonnet-4-5",
			"assess_fraud_risk",
			map[string]interface{}{"claim_text": "urgent, need money fast"},
		),
	})

	p, err := NewProvider(internalproviders.TestConfig("anthropic-test", "anthropic", mock.URL()))
	internalproviders.AssertNoError(t, err)
	defer p.Close()

	resp, err := p.SendCompletion(context.Background(), internalproviders.TestCompletionRequest("claude-sonnet-4-5"))
	internalproviders.AssertNoError(t, err)

	internalproviders.AssertEqual(t, resp.FinishReason, providers.FinishReasonToolCalls)
	internalproviders.AssertEqual(t, len(resp.ToolCalls), 1)
	internalproviders.AssertEqual(t, resp.ToolCalls[0].ID, "toolu_1")
	internalproviders.AssertEqual(t, resp.ToolCalls[0].Function.Name, "assess_fraud_risk")
}

func TestSendCompletionToolResultRoundTrip(t *testing.T) {
	mock := internalproviders.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/v1/messages", internalproviders.MockResponse{
		StatusCode: 200,
		Body:       internalproviders.MockAnthropicResponse("Final recommendation: approved", "claude-sonnet-4-5"),
	})

	p, err := NewProvider(internalproviders.TestConfig("anthropic-test", "anthropic", mock.URL()))
	internalproviders.AssertNoError(t, err)
	defer p.Close()

	// A conversation that already contains an assistant tool call and its
	// tool result must transform into a valid alternating sequence.
	req := &providers.CompletionRequest{
		Model: "claude-sonnet-4-5",
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: "You are a claims adjuster."},
			{Role: providers.RoleUser, Content: "Process this claim."},
			{
				Role: providers.RoleAssistant,
				ToolCalls: []providers.ToolCall{
					{
						ID:   "toolu_1",
						Type: providers.ToolTypeFunction,
						Function: providers.FunctionCall{
							Name:      "check_policy_coverage",
							Arguments: `{"policy_number":"POL-AUTO-001"}`,
						},
					},
				},
			},
			{Role: providers.RoleTool, ToolCallID: "toolu_1", Content: `{"is_covered":true}`},
		},
		MaxTokens: 200,
	}

	resp, err := p.SendCompletion(context.Background(), req)
	internalproviders.AssertNoError(t, err)
	internalproviders.AssertEqual(t, resp.Content, "Final recommendation: approved")
}

func TestSendCompletionValidation(t *testing.T) {
	p, err := NewProvider(providers.ProviderConfig{
		Name:   "anthropic-test",
		Type:   "anthropic",
		APIKey: "sk-ant-test",
	})
	internalproviders.AssertNoError(t, err)
	defer p.Close()

	tests := []struct {
		name string
		req  *providers.CompletionRequest
	}{
		{"nil request", nil},
		{"missing model", &providers.CompletionRequest{
			Messages: []providers.Message{{Role: providers.RoleUser, Content: "hi"}},
		}},
		{"no messages", &providers.CompletionRequest{Model: "claude-sonnet-4-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.SendCompletion(context.Background(), tt.req)
			internalproviders.AssertError(t, err)
		})
	}
}

func TestSendCompletionRateLimit(t *testing.T) {
	mock := internalproviders.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/v1/messages", internalproviders.MockRateLimitError(1))

	config := internalproviders.TestConfig("anthropic-test", "anthropic", mock.URL())
	config.MaxRetries = 1

	p, err := NewProvider(config)
	internalproviders.AssertNoError(t, err)
	defer p.Close()

	_, err = p.SendCompletion(context.Background(), internalproviders.TestCompletionRequest("claude-sonnet-4-5"))
	internalproviders.AssertError(t, err)

	if _, ok := err.(*providers.RateLimitError); !ok {
		t.Fatalf("expected RateLimitError, got %T: %v", err, err)
	}
}
