// Package ports defines the interfaces between the application layer and
// the infrastructure extractors, rules, and observability decorators.
// Every implementation must be stateless and side-effect free: both
// engines are pure functions of their inputs and safe for concurrent use
// without coordination.
package ports

import (
	"context"

	"github.com/ahrav/go-metaf/internal/domain"
)

// GroupExtractor recognizes one semantic field in the token sequence.
// Extractors are attempted at each position in a fixed priority order by
// the assembler.
type GroupExtractor interface {
	// Name returns a unique identifier for this extractor, used for
	// logging and debugging.
	Name() string

	// Extract inspects the token at pos (and, for multi-token fields,
	// the tokens after it) and folds any recognized value into rep.
	// It returns the number of tokens consumed; zero means the
	// extractor declines and the input is untouched. Partial
	// consumption is not allowed: an extractor claims whole groups
	// or nothing.
	//
	// Errors are reserved for structurally unrecoverable conditions
	// such as an impossible composed date; an unrecognizable group is
	// a decline, never an error.
	Extract(tokens []string, pos int, rep *domain.Report) (consumed int, err error)
}

// Decoder turns raw report text into a structured Report.
type Decoder interface {
	// Decode parses raw text best effort. It fails only with
	// domain.ErrMissingTimeGroup or a *domain.DateCompositionError;
	// any other malformation yields partial or absent fields.
	Decode(ctx context.Context, raw string) (domain.Report, error)
}

// Validator checks raw report text against the wire-format rule catalog.
type Validator interface {
	// Validate never fails for malformed input; malformed input is
	// precisely its subject matter. The result carries the first
	// failing rule's identifier and diagnostic.
	Validate(ctx context.Context, raw string) domain.ValidationResult
}
