package generator

import (
	"context"
	"fmt"
	"qrgen/pkg/metrics"
	"qrgen/pkg/serrors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "qrgen/internal/generator"

type instruments struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	requests, err := meter.Int64Counter("qrgen_generate",
		metric.WithDescription("QR generation requests by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram("qrgen_generate_duration",
		metric.WithDescription("QR generation latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &instruments{requests: requests, duration: duration}, nil
}

// outcome maps err to a low-cardinality label value.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}

	return strings.ToLower(serrors.KindOf(err).Error())
}

func (i *instruments) record(ctx context.Context, elapsed time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome(err)))
	i.requests.Add(ctx, 1, attrs)
	i.duration.Record(ctx, elapsed.Seconds(), attrs)
}
