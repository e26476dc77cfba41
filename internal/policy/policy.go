// Package policy implements the intent classification rules applied to
// observed search terms. Classification is pure: a term and the configured
// token sets fully determine the result.
package policy

import (
	"strings"

	"termguard/internal/models"
)

// Policy holds the immutable token sets for a run. Tokens are lowercase
// substrings; matching is containment, not whole-word, so multi-word phrases
// like "group tour" are valid tokens.
type Policy struct {
	AllowTokens      []string
	SuspiciousTokens []string
	BrandAllowlist   []string
}

// ContainsAny reports whether the already-lowercased text contains at least
// one of the given tokens as a substring. Token lists are tens of entries at
// most, so the naive scan is fine.
func ContainsAny(text string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}

// matchAll returns every token contained in the already-lowercased text, in
// token-list order.
func matchAll(text string, tokens []string) []string {
	var matched []string
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			matched = append(matched, tok)
		}
	}
	return matched
}

// matchFirst returns the first token contained in the already-lowercased
// text, or "" when none match.
func matchFirst(text string, tokens []string) string {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return tok
		}
	}
	return ""
}

// rule is one entry in the classification cascade. apply returns ok=false
// when the rule does not fire and evaluation falls through to the next rule.
type rule struct {
	name  string
	apply func(term string, p Policy) (models.Classification, bool)
}

// rules is the classification priority as data, evaluated first match wins.
// Brand and allow signals override suspicious ones: wrongly excluding a
// high-value term costs more than leaving a low-value term running, so a term
// like "private group tour" stays kept even though "group tour" is suspicious.
var rules = []rule{
	{
		name: "brand",
		apply: func(term string, p Policy) (models.Classification, bool) {
			tok := matchFirst(term, p.BrandAllowlist)
			if tok == "" {
				return models.Classification{}, false
			}
			return models.Classification{
				Intent:  models.IntentKeep,
				Matched: []string{tok},
				Brand:   true,
			}, true
		},
	},
	{
		name: "allow",
		apply: func(term string, p Policy) (models.Classification, bool) {
			matched := matchAll(term, p.AllowTokens)
			if len(matched) == 0 {
				return models.Classification{}, false
			}
			return models.Classification{Intent: models.IntentKeep, Matched: matched}, true
		},
	},
	{
		name: "suspicious",
		apply: func(term string, p Policy) (models.Classification, bool) {
			matched := matchAll(term, p.SuspiciousTokens)
			if len(matched) == 0 {
				return models.Classification{}, false
			}
			return models.Classification{Intent: models.IntentBlockCandidate, Matched: matched}, true
		},
	},
}

// Classify evaluates a raw term against the policy. The term is lowercased
// first; terms matching no token set at all come back uncertain and are left
// for manual review rather than auto-excluded.
func Classify(term string, p Policy) models.Classification {
	normalized := strings.ToLower(term)
	for _, r := range rules {
		if result, ok := r.apply(normalized, p); ok {
			return result
		}
	}
	return models.Classification{Intent: models.IntentUncertain}
}
