// Package server provides the HTTP API for claim adjudication.
//
// Endpoints:
//   - POST /v1/claims: submit a raw claim narrative for analysis
//   - GET /v1/policies: list the loaded policy catalog
//   - GET /healthz: liveness probe
//   - GET /metrics: Prometheus metrics (when enabled)
//
// The server wraps its handlers in a middleware chain for panic recovery,
// request IDs, and structured request logging. Claim processing holds the
// connection for the duration of the analysis loop, so write timeouts are
// sized in minutes rather than seconds.
package server
