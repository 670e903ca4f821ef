// Package analysis implements the deterministic claim analysis functions:
// information extraction from free-text narratives, coverage validation
// against the policy catalog, fraud risk scoring, and settlement
// calculation.
//
// Each function is pure with respect to its inputs (the coverage evaluator
// additionally reads the catalog snapshot) and degrades to best-effort
// defaults rather than failing on missing data. The package also exposes
// the four functions as callable tools for the reasoning collaborator via
// the Dispatcher.
package analysis
