// Package ledger tracks which terms are already excluded per campaign within
// a single reconciliation run, so duplicate exclusion actions are never
// issued. It is seeded once from the exclusion store at run start and then
// updated by the reconciliation engine as new exclusions are created. Single
// writer, no locking.
package ledger

import (
	"github.com/google/uuid"

	"termguard/internal/validation"
)

// Ledger indexes normalized excluded terms by campaign.
type Ledger struct {
	scopes map[uuid.UUID]map[string]struct{}
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{scopes: make(map[uuid.UUID]map[string]struct{})}
}

// Load seeds a campaign's key-set from raw exclusion texts as stored
// (possibly wrapped in exact-match delimiters). Called once per campaign per
// run.
func (l *Ledger) Load(scope uuid.UUID, existing []string) {
	keys := l.keys(scope)
	for _, raw := range existing {
		keys[validation.NormalizeTerm(raw)] = struct{}{}
	}
}

// Has reports whether the term is already excluded for the campaign, either
// pre-existing or recorded earlier in this run.
func (l *Ledger) Has(scope uuid.UUID, term string) bool {
	keys, ok := l.scopes[scope]
	if !ok {
		return false
	}
	_, ok = keys[validation.NormalizeTerm(term)]
	return ok
}

// Record marks the term excluded for the campaign. Idempotent: recording an
// existing key is a no-op.
func (l *Ledger) Record(scope uuid.UUID, term string) {
	l.keys(scope)[validation.NormalizeTerm(term)] = struct{}{}
}

// Size returns the number of excluded terms indexed for the campaign.
func (l *Ledger) Size(scope uuid.UUID) int {
	return len(l.scopes[scope])
}

func (l *Ledger) keys(scope uuid.UUID) map[string]struct{} {
	keys, ok := l.scopes[scope]
	if !ok {
		keys = make(map[string]struct{})
		l.scopes[scope] = keys
	}
	return keys
}
