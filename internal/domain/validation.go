package domain

// ValidateConfig controls the validator engine. The zero value is the
// permissive default: remarks allowed, 512-byte length cap, full catalog.
type ValidateConfig struct {
	// StrictMode forbids a remarks section outright: any RMK marker
	// fails validation regardless of its content.
	StrictMode bool `yaml:"strict_mode" json:"strict_mode"`

	// MaxLength caps the raw report length in bytes. Zero means the
	// default of 512.
	MaxLength int `yaml:"max_length" json:"max_length" validate:"min=0,max=65536"`

	// DisabledRules removes rules from the catalog by identifier
	// before evaluation. Disabling a rule can change which diagnostic
	// surfaces first, never whether some other rule may fail.
	DisabledRules []string `yaml:"disabled_rules" json:"disabled_rules,omitempty"`
}

// DefaultMaxReportLength is the length cap applied when
// ValidateConfig.MaxLength is zero.
const DefaultMaxReportLength = 512

// EffectiveMaxLength resolves the configured length cap.
func (c ValidateConfig) EffectiveMaxLength() int {
	if c.MaxLength <= 0 {
		return DefaultMaxReportLength
	}
	return c.MaxLength
}

// RuleDisabled reports whether the rule with the given identifier has
// been removed from the catalog by configuration.
func (c ValidateConfig) RuleDisabled(id string) bool {
	for _, d := range c.DisabledRules {
		if d == id {
			return true
		}
	}
	return false
}

// ValidationResult is the outcome of one validator run. It is produced
// fresh per call and never persisted.
type ValidationResult struct {
	// Valid reports whether every rule in the catalog passed.
	Valid bool `json:"valid"`

	// RuleID identifies the first failing rule, empty when Valid.
	RuleID string `json:"rule_id,omitempty"`

	// Error is the failing rule's diagnostic message, nil when Valid.
	Error *string `json:"error"`
}

// ValidResult returns the passing result.
func ValidResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// InvalidResult returns a failing result for the given rule and message.
func InvalidResult(ruleID, msg string) ValidationResult {
	return ValidationResult{Valid: false, RuleID: ruleID, Error: &msg}
}
