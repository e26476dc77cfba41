package policy

import (
	"reflect"
	"testing"

	"termguard/internal/models"
)

func testPolicy() Policy {
	return Policy{
		AllowTokens:      []string{"private", "luxury", "exclusive", "villa"},
		SuspiciousTokens: []string{"cheap", "budget", "bus tour", "group tour", "free"},
	}
}

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		tokens []string
		want   bool
	}{
		{"single word match", "cheap tours rome", []string{"cheap"}, true},
		{"phrase match", "best bus tours", []string{"bus tour"}, true},
		{"substring inside word", "cheapest deals", []string{"cheap"}, true},
		{"no match", "family holiday", []string{"cheap", "budget"}, false},
		{"empty token list", "anything", nil, false},
		{"empty text", "", []string{"cheap"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContainsAny(tt.text, tt.tokens)
			if got != tt.want {
				t.Errorf("ContainsAny(%q, %v) = %v, want %v", tt.text, tt.tokens, got, tt.want)
			}
		})
	}
}

func TestClassifyAllowOverridesSuspicious(t *testing.T) {
	// "private group tour" contains both an allow and a suspicious token;
	// the allow signal must win.
	got := Classify("private group tour", testPolicy())
	if got.Intent != models.IntentKeep {
		t.Fatalf("Classify() intent = %q, want %q", got.Intent, models.IntentKeep)
	}
	if !reflect.DeepEqual(got.Matched, []string{"private"}) {
		t.Errorf("Classify() matched = %v, want [private]", got.Matched)
	}
	if got.Brand {
		t.Error("Classify() tagged a policy keep as a brand match")
	}
}

func TestClassifyBrandOverridesEverything(t *testing.T) {
	p := testPolicy()
	p.BrandAllowlist = []string{"acme travel"}

	got := Classify("Acme Travel cheap bus tours", p)
	if got.Intent != models.IntentKeep {
		t.Fatalf("Classify() intent = %q, want %q", got.Intent, models.IntentKeep)
	}
	if !got.Brand {
		t.Error("Classify() did not tag the brand match")
	}
	if !reflect.DeepEqual(got.Matched, []string{"acme travel"}) {
		t.Errorf("Classify() matched = %v, want the single brand token", got.Matched)
	}
}

func TestClassifySuspicious(t *testing.T) {
	got := Classify("cheap bus tours", testPolicy())
	if got.Intent != models.IntentBlockCandidate {
		t.Fatalf("Classify() intent = %q, want %q", got.Intent, models.IntentBlockCandidate)
	}
	// All matching suspicious tokens are reported, in token-list order.
	if !reflect.DeepEqual(got.Matched, []string{"cheap", "bus tour"}) {
		t.Errorf("Classify() matched = %v, want [cheap, bus tour]", got.Matched)
	}
}

func TestClassifyUncertain(t *testing.T) {
	got := Classify("best gift ideas", testPolicy())
	if got.Intent != models.IntentUncertain {
		t.Fatalf("Classify() intent = %q, want %q", got.Intent, models.IntentUncertain)
	}
	if len(got.Matched) != 0 {
		t.Errorf("Classify() matched = %v, want empty", got.Matched)
	}
}

func TestClassifyTable(t *testing.T) {
	p := testPolicy()
	p.BrandAllowlist = []string{"acme"}

	tests := []struct {
		term string
		want models.Intent
	}{
		{"private luxury villa", models.IntentKeep},
		{"LUXURY VILLA NAPLES", models.IntentKeep},
		{"bus tours naples", models.IntentBlockCandidate},
		{"budget stay", models.IntentBlockCandidate},
		{"family trip ideas", models.IntentUncertain},
		{"", models.IntentUncertain},
		{"acme free stuff", models.IntentKeep},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Classify(tt.term, p)
			if got.Intent != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.term, got.Intent, tt.want)
			}
		})
	}
}

func TestRuleOrder(t *testing.T) {
	// The cascade priority is data; keep it pinned.
	want := []string{"brand", "allow", "suspicious"}
	if len(rules) != len(want) {
		t.Fatalf("rules has %d entries, want %d", len(rules), len(want))
	}
	for i, r := range rules {
		if r.name != want[i] {
			t.Errorf("rules[%d] = %q, want %q", i, r.name, want[i])
		}
	}
}
