// Package cli provides shared helpers for the adjudicator command line:
// typed command errors, shutdown signal plumbing, and output formatting.
package cli
