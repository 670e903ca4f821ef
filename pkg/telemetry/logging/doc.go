// Package logging builds the service's structured slog logger.
//
// Claim narratives carry names, phone numbers, and occasionally financial
// identifiers, so the logger can redact recognizable PII patterns from
// every logged string value before it reaches the output stream.
package logging
