package ledger

import (
	"testing"

	"github.com/google/uuid"
)

func TestLoadNormalizesStoredExclusions(t *testing.T) {
	scope := uuid.New()
	l := New()
	l.Load(scope, []string{"[cheap tours]", "[Bus Tours]", "free stuff"})

	tests := []struct {
		term string
		want bool
	}{
		{"cheap tours", true},
		{"Cheap Tours", true},
		{"[cheap tours]", true},
		{"bus tours", true},
		{"free stuff", true},
		{"cheap tours naples", false},
	}

	for _, tt := range tests {
		if got := l.Has(scope, tt.term); got != tt.want {
			t.Errorf("Has(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestRecordIsIdempotent(t *testing.T) {
	scope := uuid.New()
	l := New()

	l.Record(scope, "bus tours naples")
	l.Record(scope, "Bus Tours Naples")
	l.Record(scope, "[bus tours naples]")

	if !l.Has(scope, "bus tours naples") {
		t.Error("Has() = false after Record()")
	}
	if got := l.Size(scope); got != 1 {
		t.Errorf("Size() = %d, want 1", got)
	}
}

func TestScopesAreIndependent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	l := New()

	l.Record(a, "cheap tours")

	if l.Has(b, "cheap tours") {
		t.Error("Has() leaked a key across scopes")
	}
	if got := l.Size(b); got != 0 {
		t.Errorf("Size() = %d for untouched scope, want 0", got)
	}
}

func TestHasOnUnknownScope(t *testing.T) {
	l := New()
	if l.Has(uuid.New(), "anything") {
		t.Error("Has() = true on empty ledger")
	}
}
