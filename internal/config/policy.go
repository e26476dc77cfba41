package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"termguard/internal/validation"
)

// DefaultMaxNewExclusions bounds a run when the policy file does not set a cap.
const DefaultMaxNewExclusions = 50

// PolicyConfig is the intent policy loaded from the YAML policy file:
// which label marks participating campaigns, the per-run exclusion cap, and
// the token sets the classifier matches against. Immutable once loaded.
type PolicyConfig struct {
	LabelName              string   `yaml:"label_name"`
	MaxNewExclusionsPerRun int      `yaml:"max_new_exclusions_per_run"`
	AllowTokens            []string `yaml:"allow_tokens"`
	SuspiciousTokens       []string `yaml:"suspicious_tokens"`
	BrandAllowlist         []string `yaml:"brand_allowlist"`
}

// LoadPolicyConfig loads and validates the YAML policy file. Unlike the env
// config the policy file is required: without token sets there is nothing to
// reconcile.
func LoadPolicyConfig(path string) (*PolicyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policy file %s: %w", path, err)
	}

	var cfg PolicyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("policy file %s: %w", path, err)
	}

	if cfg.MaxNewExclusionsPerRun == 0 {
		cfg.MaxNewExclusionsPerRun = DefaultMaxNewExclusions
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("policy file %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the policy for internal consistency.
func (c *PolicyConfig) Validate() error {
	if !validation.ValidateLabelName(c.LabelName) {
		return fmt.Errorf("label_name %q is missing or invalid", c.LabelName)
	}
	if c.MaxNewExclusionsPerRun < 1 {
		return fmt.Errorf("max_new_exclusions_per_run must be positive, got %d", c.MaxNewExclusionsPerRun)
	}
	if len(c.SuspiciousTokens) == 0 {
		return fmt.Errorf("suspicious_tokens must not be empty")
	}

	for name, tokens := range map[string][]string{
		"allow_tokens":      c.AllowTokens,
		"suspicious_tokens": c.SuspiciousTokens,
		"brand_allowlist":   c.BrandAllowlist,
	} {
		if err := validation.ValidateTokens(name, tokens); err != nil {
			return err
		}
	}

	return nil
}
