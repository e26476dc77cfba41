package models

// Intent is the outcome of classifying a search term against the policy.
type Intent string

// Intent constants
const (
	IntentKeep           Intent = "keep"
	IntentBlockCandidate Intent = "block_candidate"
	IntentUncertain      Intent = "uncertain"
)

// Classification is the result of evaluating one term against the policy
// token sets. Matched lists every token that drove the decision: the single
// brand token for brand-driven keeps, all matching allow tokens for policy
// keeps, all matching suspicious tokens for block candidates.
type Classification struct {
	Intent  Intent   `json:"intent"`
	Matched []string `json:"matched,omitempty"`
	Brand   bool     `json:"brand,omitempty"`
}
