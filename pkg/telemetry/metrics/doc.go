// Package metrics exposes Prometheus instrumentation for the claims
// decision engine: decision counts and iteration depth, collaborator
// round latency by provider, and policy catalog reload health.
package metrics
