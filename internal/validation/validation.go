package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// LabelPattern defines the valid policy label format: alphanumeric, spaces,
// hyphens, underscores.
var LabelPattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// ValidateLabelName checks if a policy label name matches the allowed pattern.
func ValidateLabelName(name string) bool {
	if name == "" || len(name) > 100 {
		return false
	}
	return LabelPattern.MatchString(name)
}

// NormalizeTerm lowercases a search term and strips the literal bracket
// delimiters that mark an exact-match negative keyword, so a stored exclusion
// like "[cheap tours]" and the observed query "Cheap Tours" index to the same
// ledger key.
func NormalizeTerm(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	if len(t) >= 2 && strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		t = strings.TrimSpace(t[1 : len(t)-1])
	}
	return t
}

// ExactMatchTerm wraps a normalized term in the exact-match delimiters used
// by the exclusion store.
func ExactMatchTerm(term string) string {
	return "[" + term + "]"
}

// ValidateTokens checks a policy token list: every token must be non-blank
// and already lowercase, since matching is containment over lowercased terms.
func ValidateTokens(name string, tokens []string) error {
	for i, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			return fmt.Errorf("%s[%d]: token is empty", name, i)
		}
		if tok != strings.ToLower(tok) {
			return fmt.Errorf("%s[%d]: token %q must be lowercase", name, i, tok)
		}
	}
	return nil
}
