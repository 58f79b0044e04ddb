// Package application orchestrates the two engines: the Assembler folds
// extractor output into a Report, and the Engine evaluates the rule
// catalog against raw text. Both are pure and safe for concurrent use.
package application

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-metaf/internal/domain"
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// DecodeConfig supplies the reference year and month that reports do
// not carry themselves. Both are required: the in-text time group only
// encodes day, hour and minute.
type DecodeConfig struct {
	// Year is the reference year of the report, e.g. 2021.
	Year int `yaml:"year" json:"year" validate:"required,min=1800,max=2999"`

	// Month is the reference month of the report, 1-12.
	Month int `yaml:"month" json:"month" validate:"required,min=1,max=12"`
}

// Validate checks the configuration against its tag constraints.
func (c DecodeConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("decode configuration invalid: %w", err)
	}
	return nil
}

// LoadValidateConfig parses a YAML validator configuration. Decoding is
// strict so configuration typos fail loudly instead of being ignored.
func LoadValidateConfig(data []byte) (domain.ValidateConfig, error) {
	var cfg domain.ValidateConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return domain.ValidateConfig{}, fmt.Errorf("failed to decode validator config (check for typos): %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return domain.ValidateConfig{}, fmt.Errorf("validator configuration invalid: %w", err)
	}
	return cfg, nil
}
