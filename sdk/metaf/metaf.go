// Package metaf is the public entry point for decoding and validating
// METAR, SPECI and TAF reports.
//
// The two engines are independent by design. Decoding is best effort:
// it extracts every group it recognizes and silently skips the rest,
// failing only when no time group is present or the composed date does
// not exist. Validation is strict: it checks raw text against an
// ordered rule catalog and reports the first violation. A report can
// decode cleanly and still fail validation.
//
// Basic usage:
//
//	eng, err := metaf.New(2021, 4)
//	if err != nil { ... }
//	rep, err := eng.Decode(ctx, "METAR ZSSS 220030Z 00000MPS CAVOK 26/22 Q1009 NOSIG=")
//
// Validation needs no reference date:
//
//	res := metaf.Validate("METAR ZSSS 220030Z 02SMG11MPS=")
//	if !res.Valid { fmt.Println(res.RuleID, *res.Error) }
package metaf

import (
	"context"

	"github.com/ahrav/go-metaf/infrastructure/middleware"
	"github.com/ahrav/go-metaf/internal/application"
	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

// Re-exported domain types. The SDK is the only import path users
// need; internal packages stay internal.
type (
	Report           = domain.Report
	Kind             = domain.Kind
	Wind             = domain.Wind
	Visibility       = domain.Visibility
	CloudLayer       = domain.CloudLayer
	Cover            = domain.Cover
	WeatherGroup     = domain.WeatherGroup
	Pressure         = domain.Pressure
	ValidateConfig   = domain.ValidateConfig
	ValidationResult = domain.ValidationResult
)

// Re-exported constants.
const (
	KindMETAR = domain.KindMETAR
	KindSPECI = domain.KindSPECI
	KindTAF   = domain.KindTAF

	DirectionVariable = domain.DirectionVariable

	UnitKnots          = domain.UnitKnots
	UnitMetersPerSec   = domain.UnitMetersPerSec
	UnitKilometersHour = domain.UnitKilometersHour
	UnitHectopascals   = domain.UnitHectopascals
	UnitInchesHg       = domain.UnitInchesHg
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrMissingTimeGroup = domain.ErrMissingTimeGroup
	ErrDateOutOfRange   = domain.ErrDateOutOfRange
)

// Engine bundles a configured decoder and validator behind one handle.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	decoder   ports.Decoder
	validator ports.Validator
}

type options struct {
	validateCfg domain.ValidateConfig
	metrics     bool
	tracing     bool
}

// Option configures an Engine at construction.
type Option func(*options)

// WithValidateConfig sets the validator configuration. The zero value
// is the permissive default.
func WithValidateConfig(cfg ValidateConfig) Option {
	return func(o *options) { o.validateCfg = cfg }
}

// WithValidateConfigYAML parses a YAML validator configuration.
// Unknown keys are rejected.
func WithValidateConfigYAML(data []byte) (Option, error) {
	cfg, err := application.LoadValidateConfig(data)
	if err != nil {
		return nil, err
	}
	return WithValidateConfig(cfg), nil
}

// WithMetrics wraps both engines with Prometheus instrumentation,
// registered on the default registry.
func WithMetrics() Option {
	return func(o *options) { o.metrics = true }
}

// WithTracing wraps both engines with OpenTelemetry spans using the
// globally registered tracer provider.
func WithTracing() Option {
	return func(o *options) { o.tracing = true }
}

// New creates an Engine for reports observed in the given reference
// year and month. The reference date is required because the in-text
// time group carries only day, hour and minute.
func New(year, month int, opts ...Option) (*Engine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	asm, err := application.NewAssembler(application.DecodeConfig{Year: year, Month: month})
	if err != nil {
		return nil, err
	}

	var dec ports.Decoder = asm
	var val ports.Validator = application.NewEngine(o.validateCfg)

	if o.tracing {
		dec = middleware.NewTracingDecoder(dec)
		val = middleware.NewTracingValidator(val)
	}
	if o.metrics {
		dec = middleware.NewMetricsDecoder(dec)
		val = middleware.NewMetricsValidator(val)
	}

	return &Engine{decoder: dec, validator: val}, nil
}

// Decode parses one raw report. The only failures are a missing time
// group and a date composition error; malformed optional groups are
// skipped, not reported.
func (e *Engine) Decode(ctx context.Context, raw string) (Report, error) {
	return e.decoder.Decode(ctx, raw)
}

// Validate checks one raw report against the rule catalog. It never
// returns an error: malformed input is a verdict, not a failure.
func (e *Engine) Validate(ctx context.Context, raw string) ValidationResult {
	return e.validator.Validate(ctx, raw)
}

// Decode is a convenience for one-off decoding under a background
// context. Construct an Engine when decoding in volume.
func Decode(raw string, year, month int) (Report, error) {
	eng, err := New(year, month)
	if err != nil {
		return Report{}, err
	}
	return eng.Decode(context.Background(), raw)
}

// Validate is a convenience for one-off validation with the default
// configuration.
func Validate(raw string) ValidationResult {
	eng := application.NewEngine(domain.ValidateConfig{})
	return eng.Validate(context.Background(), raw)
}
