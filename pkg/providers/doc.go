// Package providers defines the reasoning collaborator abstraction used by
// the decision engine, plus HTTP adapters for concrete language-model APIs.
//
// The engine depends only on the Provider interface: a single blocking
// SendCompletion round-trip that carries the conversation so far, the tool
// catalog, and execution settings, and returns narrative text and any tool
// invocations the model requested. Concrete adapters (OpenAI, Anthropic)
// transform between the provider-agnostic types in this package and each
// vendor's wire format.
//
// Adapters are built on HTTPProvider, which supplies connection pooling,
// per-call timeouts, retry with exponential backoff for transient failures,
// and consecutive-failure health tracking. Streaming is deliberately not
// part of the interface: the engine consumes whole rounds.
package providers
