package forms

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentation = "helixcraftworks.com/helix-web/internal/forms"

var tracer = otel.Tracer(instrumentation)

type instruments struct {
	submissions metric.Int64Counter
	latency     metric.Float64Histogram
}

var (
	instrumentsOnce sync.Once
	relayMetrics    instruments
)

// relayInstruments registers the relay metrics against the global meter
// provider. Registration failures leave the no-op instrument in place.
func relayInstruments(log *zap.Logger) instruments {
	instrumentsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter(instrumentation)
		var err error
		relayMetrics.submissions, err = meter.Int64Counter(
			"forms.submissions",
			metric.WithDescription("Form submissions relayed to the form backend, by outcome"),
		)
		if err != nil {
			log.Warn("forms: unable to register submissions metric", zap.Error(err))
		}
		relayMetrics.latency, err = meter.Float64Histogram(
			"forms.relay.latency",
			metric.WithUnit("ms"),
			metric.WithDescription("Latency in milliseconds of form backend relays"),
		)
		if err != nil {
			log.Warn("forms: unable to register latency metric", zap.Error(err))
		}
	})
	return relayMetrics
}

func (c *Controller) startSpan(ctx context.Context) (context.Context, trace.Span) {
	return tracer.Start(ctx, "forms.submit",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("form.name", c.inst.Def.Name),
			attribute.String("form.strategy", c.strategy.Name()),
			attribute.String("form.instance", c.inst.ID),
		),
	)
}

// observe ends the relay span and records its outcome.
func (c *Controller) observe(ctx context.Context, span trace.Span, start time.Time, status int, err error) {
	defer span.End()

	outcome := c.State().String()
	if status > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}

	m := relayInstruments(c.log)
	attrs := metric.WithAttributes(
		attribute.String("form", c.inst.Def.Name),
		attribute.String("outcome", outcome),
	)
	if m.submissions != nil {
		m.submissions.Add(ctx, 1, attrs)
	}
	if m.latency != nil {
		m.latency.Record(ctx, float64(time.Since(start))/float64(time.Millisecond), attrs)
	}
}
