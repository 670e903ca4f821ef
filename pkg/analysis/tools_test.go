package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"autolife/adjudicator/pkg/claims"
	"autolife/adjudicator/pkg/providers"
)

func toolCall(name, arguments string) providers.ToolCall {
	return providers.ToolCall{
		ID:   "call_1",
		Type: providers.ToolTypeFunction,
		Function: providers.FunctionCall{
			Name:      name,
			Arguments: arguments,
		},
	}
}

func TestToolkit_Definitions(t *testing.T) {
	tk := NewToolkit(testCatalog(t), nil)

	defs := tk.Definitions()
	if len(defs) != 4 {
		t.Fatalf("got %d tool definitions, want 4", len(defs))
	}

	names := map[string]bool{}
	for _, d := range defs {
		names[d.Function.Name] = true
		if d.Function.Description == "" {
			t.Errorf("tool %q has no description", d.Function.Name)
		}
		if d.Function.Parameters == nil {
			t.Errorf("tool %q has no parameter schema", d.Function.Name)
		}
	}

	for _, want := range []string{ToolExtractClaimInformation, ToolCheckPolicyCoverage, ToolAssessFraudRisk, ToolCalculateApprovedAmount} {
		if !names[want] {
			t.Errorf("missing tool %q", want)
		}
	}
}

func TestToolkit_DispatchExtract(t *testing.T) {
	tk := NewToolkit(testCatalog(t), nil)
	claim := claims.NewClaim("raw")

	result, err := tk.Dispatch(claim, toolCall(ToolExtractClaimInformation,
		`{"claim_text":"Car accident, POL-AUTO-001, repair costs $5,000"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var info claims.ClaimInformation
	if err := json.Unmarshal([]byte(result), &info); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if info.PolicyNumber != "POL-AUTO-001" {
		t.Errorf("PolicyNumber = %q", info.PolicyNumber)
	}

	if claim.Information == nil || claim.Information.ClaimAmount != 5000 {
		t.Error("extraction result not recorded on claim")
	}
	if len(claim.ProcessingLog) == 0 {
		t.Error("no processing log entry added")
	}
}

func TestToolkit_DispatchExtractRejectsOutOfBoundsAmount(t *testing.T) {
	tk := NewToolkit(testCatalog(t), nil)
	claim := claims.NewClaim("raw")

	result, err := tk.Dispatch(claim, toolCall(ToolExtractClaimInformation,
		`{"claim_text":"Total loss, POL-HOME-001, rebuild estimate $15,000,000"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(result), &payload); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if payload["error"] == "" {
		t.Errorf("expected error payload, got %s", result)
	}
	if claim.Information != nil {
		t.Error("rejected extraction must not be recorded on claim")
	}
}

func TestToolkit_DispatchCoverageAndSettlement(t *testing.T) {
	tk := NewToolkit(testCatalog(t), nil)
	claim := claims.NewClaim("raw")

	result, err := tk.Dispatch(claim, toolCall(ToolCheckPolicyCoverage,
		`{"policy_number":"POL-AUTO-001","claim_type":"auto","claim_amount":5000}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var check claims.CoverageCheck
	if err := json.Unmarshal([]byte(result), &check); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if !check.IsCovered {
		t.Error("IsCovered = false")
	}
	if claim.CoverageCheck == nil {
		t.Error("coverage check not recorded on claim")
	}

	result, err = tk.Dispatch(claim, toolCall(ToolCalculateApprovedAmount,
		`{"claim_amount":5000,"coverage_limit":50000,"deductible":500,"is_covered":true}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var settlement claims.Settlement
	if err := json.Unmarshal([]byte(result), &settlement); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if settlement.ApprovedAmount != 4500 {
		t.Errorf("ApprovedAmount = %v, want 4500", settlement.ApprovedAmount)
	}
}

func TestToolkit_DispatchFraudDefaultsPolicyAge(t *testing.T) {
	tk := NewToolkit(testCatalog(t), nil)
	claim := claims.NewClaim("raw")

	// No policy_age_days supplied: the default of 365 must not trigger
	// the new-policy indicator.
	result, err := tk.Dispatch(claim, toolCall(ToolAssessFraudRisk,
		`{"claim_text":"routine scratch","claim_amount":500}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var a claims.FraudAssessment
	if err := json.Unmarshal([]byte(result), &a); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if a.RiskScore != 0 {
		t.Errorf("RiskScore = %v, want 0", a.RiskScore)
	}
	if claim.FraudAssessment == nil {
		t.Error("fraud assessment not recorded on claim")
	}
}

func TestToolkit_DispatchUnknownTool(t *testing.T) {
	tk := NewToolkit(testCatalog(t), nil)
	claim := claims.NewClaim("raw")

	result, err := tk.Dispatch(claim, toolCall("summon_adjuster", `{}`))
	if err != nil {
		t.Fatalf("unknown tool must not fail the request: %v", err)
	}
	if !strings.Contains(result, "unknown tool") {
		t.Errorf("result = %q, want structured unknown-tool payload", result)
	}
}

func TestToolkit_DispatchBadArguments(t *testing.T) {
	tk := NewToolkit(testCatalog(t), nil)
	claim := claims.NewClaim("raw")

	result, err := tk.Dispatch(claim, toolCall(ToolExtractClaimInformation, `{not json`))
	if err != nil {
		t.Fatalf("bad arguments must not fail the request: %v", err)
	}
	if !strings.Contains(result, "invalid arguments") {
		t.Errorf("result = %q, want invalid-arguments payload", result)
	}
}

func TestToolkit_DispatchPanicRecovered(t *testing.T) {
	// A nil catalog makes the coverage check panic; the dispatcher must
	// recover it into a request-level error.
	tk := NewToolkit(nil, nil)
	claim := claims.NewClaim("raw")

	_, err := tk.Dispatch(claim, toolCall(ToolCheckPolicyCoverage,
		`{"policy_number":"POL-AUTO-001","claim_type":"auto","claim_amount":5000}`))
	if err == nil {
		t.Fatal("expected error from panicking tool")
	}
	if _, ok := err.(*ToolError); !ok {
		t.Fatalf("expected ToolError, got %T: %v", err, err)
	}
}
