// Package agent implements the decision orchestrator: an iterative loop
// that drives the reasoning collaborator and the analysis tools to a
// terminal claim recommendation.
//
// The loop is modeled as an explicit state machine. Each round sends the
// conversation to the collaborator, executes any requested tool
// invocations, and scans the returned narrative for terminal-decision
// language. A claim that reaches the iteration budget without a decision
// receives a deterministic needs-review fallback.
package agent
