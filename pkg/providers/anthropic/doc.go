// Package anthropic implements the Provider interface for Anthropic's
// Messages API.
//
// The Messages API differs from the provider-agnostic shape in two ways
// this package has to bridge: the system prompt is a top-level field
// rather than a message, and tool traffic is carried in content blocks
// (tool_use on assistant turns, tool_result on user turns) rather than
// dedicated roles. Consecutive tool results are merged into a single user
// turn to satisfy the API's strict user/assistant alternation.
package anthropic
