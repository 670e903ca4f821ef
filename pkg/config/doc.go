// Package config defines the adjudicator's configuration model and its
// YAML loading pipeline.
//
// Loading follows a fixed sequence: parse the YAML file, apply defaults
// for every unset field, optionally apply ADJUDICATOR_* environment
// variable overrides, then validate the final result. A configuration
// that fails validation is never returned.
package config
