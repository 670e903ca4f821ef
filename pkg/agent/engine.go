package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"autolife/adjudicator/pkg/analysis"
	"autolife/adjudicator/pkg/claims"
	"autolife/adjudicator/pkg/providers"
)

// Defaults applied by NewEngine when the config leaves them zero.
const (
	DefaultMaxIterations = 10
	DefaultMaxTokens     = 2000
	DefaultTemperature   = 0.2
)

// state is the orchestrator's processing state for a single claim.
type state int

const (
	stateInit state = iota
	stateAnalyzing
	stateDecided
	stateExhausted
)

func (s state) String() string {
	switch s {
	case stateInit:
		return "init"
	case stateAnalyzing:
		return "analyzing"
	case stateDecided:
		return "decided"
	case stateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Config controls the engine's collaborator calls and iteration budget.
type Config struct {
	// Model is the collaborator model identifier
	Model string

	// Temperature for collaborator sampling
	Temperature float64

	// MaxTokens per collaborator response
	MaxTokens int

	// MaxIterations bounds the analysis loop
	MaxIterations int

	// RoundTimeout bounds each collaborator round-trip (0 disables)
	RoundTimeout time.Duration
}

// MetricsRecorder receives engine observations. A nil recorder disables
// metrics.
type MetricsRecorder interface {
	ObserveDecision(status claims.ClaimStatus, iterations int)
	ObserveFraudAssessment(level claims.FraudRiskLevel)
	ObserveCollaboratorRound(provider string, duration time.Duration, success bool)
	ObserveCollaboratorError(provider string, errorType string)
}

// Engine drives claims through the analysis loop to a terminal
// recommendation.
type Engine struct {
	provider providers.Provider
	toolkit  *analysis.Toolkit
	config   Config
	logger   *slog.Logger
	metrics  MetricsRecorder
}

// NewEngine creates an Engine. The provider is the reasoning collaborator
// abstraction; tests substitute a deterministic stub.
func NewEngine(provider providers.Provider, toolkit *analysis.Toolkit, config Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if config.MaxIterations <= 0 {
		config.MaxIterations = DefaultMaxIterations
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	if config.Temperature == 0 {
		config.Temperature = DefaultTemperature
	}
	return &Engine{
		provider: provider,
		toolkit:  toolkit,
		config:   config,
		logger:   logger,
	}
}

// SetMetrics attaches a metrics recorder.
func (e *Engine) SetMetrics(m MetricsRecorder) {
	e.metrics = m
}

// ProcessClaim runs the full analysis loop for a raw claim submission.
// The returned claim is always terminal: it carries either a parsed
// recommendation or the deterministic needs-review fallback. A non-nil
// error means the request failed at the system level (a tool broke its
// contract) and no claim is returned.
func (e *Engine) ProcessClaim(ctx context.Context, rawText string) (*claims.Claim, error) {
	st := stateInit

	claim := claims.NewClaim(rawText)
	claim.AddLog("Claim submitted for processing")

	e.logger.Info("starting claim processing",
		"claim_id", claim.ID,
		"text_length", len(rawText),
	)

	messages := []providers.Message{
		{Role: providers.RoleSystem, Content: systemPrompt},
		{Role: providers.RoleUser, Content: initialUserMessage(rawText)},
	}
	claim.AddLog("Agent analysis started")
	st = stateAnalyzing

	iterations := 0
	for iteration := 1; iteration <= e.config.MaxIterations; iteration++ {
		iterations = iteration

		if ctx.Err() != nil {
			e.logger.Warn("request deadline reached mid-analysis",
				"claim_id", claim.ID,
				"iteration", iteration,
			)
			break
		}

		e.logger.Debug("agent iteration",
			"claim_id", claim.ID,
			"iteration", iteration,
			"max_iterations", e.config.MaxIterations,
		)

		resp, err := e.sendRound(ctx, messages)
		if err != nil {
			// Collaborator failures end the loop early; the claim falls
			// through to the deterministic fallback.
			e.logger.Warn("collaborator round failed",
				"claim_id", claim.ID,
				"iteration", iteration,
				"error", err,
			)
			claim.AddLog("Collaborator round failed: " + err.Error())
			break
		}

		if len(resp.ToolCalls) > 0 {
			messages = append(messages, providers.Message{
				Role:      providers.RoleAssistant,
				Content:   resp.Content,
				ToolCalls: resp.ToolCalls,
			})

			if err := e.runTools(claim, resp.ToolCalls, &messages); err != nil {
				return nil, err
			}
		} else {
			if resp.Content == "" {
				e.logger.Warn("empty response from collaborator",
					"claim_id", claim.ID,
					"iteration", iteration,
				)
				break
			}

			messages = append(messages, providers.Message{
				Role:    providers.RoleAssistant,
				Content: resp.Content,
			})
			claim.AddLog("Agent reasoning: " + excerpt(resp.Content, 200))
		}

		// Terminal language can arrive alongside tool calls, so the scan
		// runs on every round that produced narrative.
		if HasFinalDecision(resp.Content) {
			claim.AddLog("Agent decision finalized")
			rec := ParseRecommendation(resp.Content)
			claim.Recommendation = rec
			claim.AddLog(fmt.Sprintf("Decision: %s - $%.2f", rec.Status, rec.ApprovedAmount))
			st = stateDecided

			e.logger.Info("claim decided",
				"claim_id", claim.ID,
				"state", st.String(),
				"status", rec.Status,
				"approved_amount", rec.ApprovedAmount,
				"iterations", iteration,
			)
			e.observeDecision(claim, iteration)
			return claim, nil
		}

		if iteration >= e.config.MaxIterations-1 {
			messages = append(messages, providers.Message{
				Role:    providers.RoleUser,
				Content: concludeDirective,
			})
		}
	}

	st = stateExhausted
	claim.Recommendation = FallbackRecommendation()
	claim.AddLog("Defaulted to manual review")

	e.logger.Warn("claim analysis exhausted without decision",
		"claim_id", claim.ID,
		"state", st.String(),
		"iterations", iterations,
	)
	e.observeDecision(claim, iterations)
	return claim, nil
}

// sendRound performs one collaborator round-trip, bounded by the
// configured round timeout.
func (e *Engine) sendRound(ctx context.Context, messages []providers.Message) (*providers.CompletionResponse, error) {
	roundCtx := ctx
	if e.config.RoundTimeout > 0 {
		var cancel context.CancelFunc
		roundCtx, cancel = context.WithTimeout(ctx, e.config.RoundTimeout)
		defer cancel()
	}

	req := &providers.CompletionRequest{
		Model:       e.config.Model,
		Messages:    messages,
		Temperature: e.config.Temperature,
		MaxTokens:   e.config.MaxTokens,
		Tools:       e.toolkit.Definitions(),
	}

	start := time.Now()
	resp, err := e.provider.SendCompletion(roundCtx, req)
	if e.metrics != nil {
		e.metrics.ObserveCollaboratorRound(e.provider.GetName(), time.Since(start), err == nil)
		if err != nil {
			e.metrics.ObserveCollaboratorError(e.provider.GetName(), providers.ErrorType(err))
		}
	}
	return resp, err
}

// runTools executes the requested tool invocations and appends their
// results to the conversation. A tool breaking its contract aborts the
// whole request.
func (e *Engine) runTools(claim *claims.Claim, calls []providers.ToolCall, messages *[]providers.Message) error {
	for _, call := range calls {
		result, err := e.toolkit.Dispatch(claim, call)
		if err != nil {
			return fmt.Errorf("claim %s: %w", claim.ID, err)
		}
		*messages = append(*messages, providers.Message{
			Role:       providers.RoleTool,
			Content:    result,
			ToolCallID: call.ID,
		})
	}
	return nil
}

func (e *Engine) observeDecision(claim *claims.Claim, iterations int) {
	if e.metrics == nil {
		return
	}
	e.metrics.ObserveDecision(claim.Recommendation.Status, iterations)
	if claim.FraudAssessment != nil {
		e.metrics.ObserveFraudAssessment(claim.FraudAssessment.RiskLevel)
	}
}

func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n]) + "..."
	}
	return s
}
