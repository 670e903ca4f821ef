package analysis

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"autolife/adjudicator/pkg/catalog"
	"autolife/adjudicator/pkg/claims"
	"autolife/adjudicator/pkg/providers"
)

// Tool names exposed to the reasoning collaborator.
const (
	ToolExtractClaimInformation = "extract_claim_information"
	ToolCheckPolicyCoverage     = "check_policy_coverage"
	ToolAssessFraudRisk         = "assess_fraud_risk"
	ToolCalculateApprovedAmount = "calculate_approved_amount"
)

// Toolkit bundles the four analysis functions and exposes them as
// callable tools. Dispatching a tool records its structured result on the
// claim being processed in addition to returning the JSON payload for the
// conversation.
type Toolkit struct {
	extractor  *Extractor
	evaluator  *Evaluator
	scorer     *Scorer
	calculator *Calculator
	logger     *slog.Logger
}

// NewToolkit creates a Toolkit backed by the given policy catalog.
func NewToolkit(cat *catalog.Catalog, logger *slog.Logger) *Toolkit {
	if logger == nil {
		logger = slog.Default()
	}
	return &Toolkit{
		extractor:  NewExtractor(logger),
		evaluator:  NewEvaluator(cat, logger),
		scorer:     NewScorer(logger),
		calculator: NewCalculator(logger),
		logger:     logger,
	}
}

// Extractor returns the underlying extractor.
func (t *Toolkit) Extractor() *Extractor {
	return t.extractor
}

// Definitions returns the tool catalog sent to the reasoning
// collaborator.
func (t *Toolkit) Definitions() []providers.Tool {
	return []providers.Tool{
		{
			Type: providers.ToolTypeFunction,
			Function: providers.FunctionDefinition{
				Name:        ToolExtractClaimInformation,
				Description: "Extracts structured information from claim text including policy number, claim type, incident date, amount, and description",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"claim_text": map[string]interface{}{
							"type":        "string",
							"description": "Raw claim submission text",
						},
					},
					"required": []string{"claim_text"},
				},
			},
		},
		{
			Type: providers.ToolTypeFunction,
			Function: providers.FunctionDefinition{
				Name:        ToolCheckPolicyCoverage,
				Description: "Validates if a policy is active and covers the claim type, returns coverage limits and deductibles",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"policy_number": map[string]interface{}{
							"type":        "string",
							"description": "Insurance policy number",
						},
						"claim_type": map[string]interface{}{
							"type":        "string",
							"description": "Type of claim (auto, home, health, life)",
						},
						"claim_amount": map[string]interface{}{
							"type":        "number",
							"description": "Claimed amount in dollars",
						},
					},
					"required": []string{"policy_number", "claim_type", "claim_amount"},
				},
			},
		},
		{
			Type: providers.ToolTypeFunction,
			Function: providers.FunctionDefinition{
				Name:        ToolAssessFraudRisk,
				Description: "Analyzes claim for fraud indicators and calculates risk score",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"claim_text": map[string]interface{}{
							"type":        "string",
							"description": "Original claim text",
						},
						"claim_amount": map[string]interface{}{
							"type":        "number",
							"description": "Claimed amount in dollars",
						},
						"policy_age_days": map[string]interface{}{
							"type":        "integer",
							"description": "Days since the policy was issued (default 365)",
						},
					},
					"required": []string{"claim_text", "claim_amount"},
				},
			},
		},
		{
			Type: providers.ToolTypeFunction,
			Function: providers.FunctionDefinition{
				Name:        ToolCalculateApprovedAmount,
				Description: "Calculates the final approved claim amount after applying deductibles and coverage limits",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"claim_amount": map[string]interface{}{
							"type":        "number",
							"description": "Claimed amount in dollars",
						},
						"coverage_limit": map[string]interface{}{
							"type":        "number",
							"description": "Maximum coverage in dollars",
						},
						"deductible": map[string]interface{}{
							"type":        "number",
							"description": "Policy deductible in dollars",
						},
						"is_covered": map[string]interface{}{
							"type":        "boolean",
							"description": "Whether the claim is covered",
						},
					},
					"required": []string{"claim_amount", "coverage_limit", "deductible", "is_covered"},
				},
			},
		},
	}
}

type extractArgs struct {
	ClaimText string `json:"claim_text"`
}

type coverageArgs struct {
	PolicyNumber string  `json:"policy_number"`
	ClaimType    string  `json:"claim_type"`
	ClaimAmount  float64 `json:"claim_amount"`
}

type fraudArgs struct {
	ClaimText     string  `json:"claim_text"`
	ClaimAmount   float64 `json:"claim_amount"`
	PolicyAgeDays *int    `json:"policy_age_days"`
}

type settleArgs struct {
	ClaimAmount   float64 `json:"claim_amount"`
	CoverageLimit float64 `json:"coverage_limit"`
	Deductible    float64 `json:"deductible"`
	IsCovered     bool    `json:"is_covered"`
}

// Dispatch executes a tool invocation and returns its JSON result for the
// conversation. Structured results are also recorded on the claim. An
// unknown tool name or bad arguments produce a JSON error payload with a
// nil error so the analysis loop can continue; a panic inside a tool is
// recovered and returned as an error, which aborts the whole request.
func (t *Toolkit) Dispatch(claim *claims.Claim, call providers.ToolCall) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("tool panicked",
				"tool", call.Function.Name,
				"panic", r,
			)
			err = &ToolError{Tool: call.Function.Name, Message: fmt.Sprintf("panic: %v", r)}
		}
	}()

	t.logger.Debug("dispatching tool",
		"tool", call.Function.Name,
		"call_id", call.ID,
	)

	switch call.Function.Name {
	case ToolExtractClaimInformation:
		var args extractArgs
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return errorPayload(call.Function.Name, "invalid arguments: "+err.Error()), nil
		}
		info := t.extractor.Extract(args.ClaimText)
		if err := info.Validate(); err != nil {
			claim.AddLog("Extracted claim information rejected: " + err.Error())
			return errorPayload(call.Function.Name, err.Error()), nil
		}
		claim.Information = info
		claim.AddLog(fmt.Sprintf("Extracted claim information: %s, %s, $%.2f", info.PolicyNumber, info.ClaimType, info.ClaimAmount))
		return marshalResult(info), nil

	case ToolCheckPolicyCoverage:
		var args coverageArgs
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return errorPayload(call.Function.Name, "invalid arguments: "+err.Error()), nil
		}
		check := t.evaluator.CheckCoverage(args.PolicyNumber, claims.ClaimType(args.ClaimType), args.ClaimAmount)
		claim.CoverageCheck = check
		claim.AddLog(fmt.Sprintf("Coverage checked for %s: covered=%t", args.PolicyNumber, check.IsCovered))
		return marshalResult(check), nil

	case ToolAssessFraudRisk:
		var args fraudArgs
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return errorPayload(call.Function.Name, "invalid arguments: "+err.Error()), nil
		}
		ageDays := DefaultPolicyAgeDays
		if args.PolicyAgeDays != nil {
			ageDays = *args.PolicyAgeDays
		}
		assessment := t.scorer.AssessFraud(args.ClaimText, args.ClaimAmount, ageDays)
		claim.FraudAssessment = assessment
		claim.AddLog(fmt.Sprintf("Fraud risk assessed: %s (%.0f/100)", assessment.RiskLevel, assessment.RiskScore))
		return marshalResult(assessment), nil

	case ToolCalculateApprovedAmount:
		var args settleArgs
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return errorPayload(call.Function.Name, "invalid arguments: "+err.Error()), nil
		}
		settlement := t.calculator.Settle(args.ClaimAmount, args.CoverageLimit, args.Deductible, args.IsCovered)
		claim.AddLog(fmt.Sprintf("Settlement calculated: $%.2f", settlement.ApprovedAmount))
		return marshalResult(settlement), nil

	default:
		t.logger.Warn("unknown tool requested", "tool", call.Function.Name)
		return errorPayload(call.Function.Name, "unknown tool"), nil
	}
}

func marshalResult(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorPayload("", "failed to encode result: "+err.Error())
	}
	return string(b)
}

func errorPayload(tool, message string) string {
	b, _ := json.Marshal(map[string]string{
		"tool":  tool,
		"error": message,
	})
	return string(b)
}
