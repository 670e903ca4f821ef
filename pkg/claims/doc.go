// Package claims defines the core domain types for claim adjudication:
// the Claim aggregate, the structured results produced by each analysis
// step (extraction, coverage, fraud, settlement), and the terminal
// Recommendation.
//
// A Claim is created when a raw submission enters the system and is
// mutated only by the decision engine while a single request is being
// processed. Once a Recommendation with a non-pending status is attached,
// the Claim is terminal and must not be modified further.
package claims
