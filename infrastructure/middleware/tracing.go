package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

const tracerName = "github.com/ahrav/go-metaf"

var _ ports.Decoder = (*TracingDecoder)(nil)

// TracingDecoder decorates a Decoder with an OpenTelemetry span per
// decode. Raw report text is not recorded as an attribute: feeds can
// embed remarks the operator may not want exported.
type TracingDecoder struct {
	next   ports.Decoder
	tracer trace.Tracer
}

// NewTracingDecoder wraps next with span creation.
func NewTracingDecoder(next ports.Decoder) *TracingDecoder {
	return &TracingDecoder{next: next, tracer: otel.Tracer(tracerName)}
}

// Decode delegates to the wrapped decoder inside a span.
func (t *TracingDecoder) Decode(ctx context.Context, raw string) (domain.Report, error) {
	ctx, span := t.tracer.Start(ctx, "metaf.decode",
		trace.WithAttributes(attribute.Int("report.length", len(raw))))
	defer span.End()

	rep, err := t.next.Decode(ctx, raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return rep, err
	}

	span.SetAttributes(
		attribute.String("report.kind", string(rep.Kind)),
		attribute.String("report.station", rep.ICAO),
	)
	return rep, nil
}

var _ ports.Validator = (*TracingValidator)(nil)

// TracingValidator decorates a Validator with an OpenTelemetry span
// per validation. An invalid verdict is span metadata, not a span
// error: malformed input is the expected case for this engine.
type TracingValidator struct {
	next   ports.Validator
	tracer trace.Tracer
}

// NewTracingValidator wraps next with span creation.
func NewTracingValidator(next ports.Validator) *TracingValidator {
	return &TracingValidator{next: next, tracer: otel.Tracer(tracerName)}
}

// Validate delegates to the wrapped validator inside a span.
func (t *TracingValidator) Validate(ctx context.Context, raw string) domain.ValidationResult {
	ctx, span := t.tracer.Start(ctx, "metaf.validate",
		trace.WithAttributes(attribute.Int("report.length", len(raw))))
	defer span.End()

	res := t.next.Validate(ctx, raw)
	span.SetAttributes(attribute.Bool("verdict.valid", res.Valid))
	if res.RuleID != "" {
		span.SetAttributes(attribute.String("verdict.rule", res.RuleID))
	}
	return res
}
