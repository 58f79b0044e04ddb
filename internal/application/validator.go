package application

import (
	"context"

	"github.com/ahrav/go-metaf/infrastructure/rules"
	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var _ ports.Validator = (*Engine)(nil)

// Engine is the format-validation engine. It evaluates the rule
// catalog in its fixed priority order and short-circuits on the first
// failing rule, so a multiply-malformed report surfaces its most
// specific diagnostic rather than an aggregate.
//
// Reordering or disabling rules changes which single message surfaces,
// never the boolean verdict for inputs that violate several rules at
// once, because every rule is an independent pure predicate.
type Engine struct {
	cfg     domain.ValidateConfig
	catalog []rules.Rule
}

// NewEngine creates a validation engine under the given configuration.
// Rules listed in cfg.DisabledRules are removed from the catalog once,
// at construction.
func NewEngine(cfg domain.ValidateConfig) *Engine {
	full := rules.Catalog()
	catalog := make([]rules.Rule, 0, len(full))
	for _, r := range full {
		if !cfg.RuleDisabled(r.ID) {
			catalog = append(catalog, r)
		}
	}
	return &Engine{cfg: cfg, catalog: catalog}
}

// Validate checks raw report text against the catalog. Malformed input
// is the expected case and never an error; the result carries the
// first failing rule's identifier and diagnostic.
func (e *Engine) Validate(_ context.Context, raw string) domain.ValidationResult {
	target := rules.NewTarget(raw)
	for _, r := range e.catalog {
		if msg := r.Check(target, e.cfg); msg != "" {
			return domain.InvalidResult(r.ID, msg)
		}
	}
	return domain.ValidResult()
}
