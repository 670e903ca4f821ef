// Package openai implements the Provider interface for OpenAI's chat
// completions API, including tool definitions, tool_call responses, and
// tool-result messages.
package openai
