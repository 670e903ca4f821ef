// Adjudicator is an automated claims decision engine for AutoLife Insurance.
//
// It evaluates free-text claim submissions through an iterative analysis
// loop: an LLM collaborator directs a set of deterministic tools that
// extract claim information, validate policy coverage, score fraud risk,
// and calculate settlements, then issues an approve, deny, or review
// recommendation.
//
// Usage:
//
//	# Start the HTTP API server with default configuration
//	adjudicator run
//
//	# Start with a custom configuration file
//	adjudicator run --config /etc/adjudicator/config.yaml
//
//	# Process a single claim from a file or stdin
//	adjudicator process claim.txt
//	echo "rear-ended on POL-AUTO-001, $4,500 damage" | adjudicator process -
//
//	# List the loaded policy catalog
//	adjudicator policies
//
//	# Show version information
//	adjudicator version
package main

func main() {
	Execute()
}
