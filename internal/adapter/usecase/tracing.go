package usecase

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"traffic-exchange/internal/core/port"
)

var tracer = otel.Tracer("traffic-exchange/usecase")

// finishSpan records err on span unless it is an expected business
// rejection, then ends the span.
func finishSpan(span trace.Span, err error) {
	if err != nil && !port.IsRejection(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
