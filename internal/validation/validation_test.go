package validation

import (
	"strings"
	"testing"
)

func TestValidateLabelName(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  bool
	}{
		{"valid alphanumeric", "negatives2024", true},
		{"valid with hyphen", "auto-negatives", true},
		{"valid with underscore", "auto_negatives", true},
		{"valid with space", "Auto Negatives", true},
		{"empty string", "", false},
		{"too long", strings.Repeat("a", 101), false},
		{"max length", strings.Repeat("a", 100), true},
		{"contains slash", "auto/negatives", false},
		{"contains dot", "auto.negatives", false},
		{"special chars", "label@#$", false},
		{"single char", "a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateLabelName(tt.label)
			if got != tt.want {
				t.Errorf("ValidateLabelName(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestNormalizeTerm(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{"plain lowercase", "cheap tours", "cheap tours"},
		{"mixed case", "Cheap Tours", "cheap tours"},
		{"exact-match delimiters", "[cheap tours]", "cheap tours"},
		{"delimiters with case", "[Cheap Tours]", "cheap tours"},
		{"surrounding whitespace", "  cheap tours  ", "cheap tours"},
		{"whitespace inside delimiters", "[ cheap tours ]", "cheap tours"},
		{"empty string", "", ""},
		{"empty brackets", "[]", ""},
		{"lone open bracket", "[", "["},
		{"lone close bracket", "]", "]"},
		{"bracket mid-term kept", "cheap [tours]", "cheap [tours]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTerm(tt.term)
			if got != tt.want {
				t.Errorf("NormalizeTerm(%q) = %q, want %q", tt.term, got, tt.want)
			}
		})
	}
}

func TestExactMatchTerm(t *testing.T) {
	if got := ExactMatchTerm("cheap tours"); got != "[cheap tours]" {
		t.Errorf("ExactMatchTerm() = %q, want %q", got, "[cheap tours]")
	}

	// Round trip back through normalization.
	if got := NormalizeTerm(ExactMatchTerm("cheap tours")); got != "cheap tours" {
		t.Errorf("NormalizeTerm(ExactMatchTerm()) = %q, want %q", got, "cheap tours")
	}
}

func TestValidateTokens(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		wantErr bool
	}{
		{"valid single words", []string{"cheap", "budget"}, false},
		{"valid phrases", []string{"bus tour", "group tour"}, false},
		{"empty list", nil, false},
		{"empty token", []string{"cheap", ""}, true},
		{"blank token", []string{"   "}, true},
		{"uppercase token", []string{"Cheap"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTokens("suspicious_tokens", tt.tokens)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTokens(%v) error = %v, wantErr %v", tt.tokens, err, tt.wantErr)
			}
		})
	}
}
