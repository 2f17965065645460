package session

import (
	"context"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/walletsync/internal/session"

// notification kinds recorded on the forwarded counter.
const (
	kindFull  = "full"
	kindBlock = "block"
)

// metrics holds the listener instruments. Instruments come from the global
// MeterProvider, which is a noop until telemetry is initialized.
type metrics struct {
	forwardedCounter metric.Int64Counter
	throttledCounter metric.Int64Counter
}

func newMetrics(mp metric.MeterProvider) *metrics {
	meter := mp.Meter(instrumentationName)

	forwarded, err := meter.Int64Counter("walletsync.notifications.forwarded",
		metric.WithDescription("Refresh notifications delivered to the observer."),
	)
	if err != nil {
		logger.Warn(context.Background(), "unable to create forwarded counter", "error", err)
		forwarded = noop.Int64Counter{}
	}

	throttled, err := meter.Int64Counter("walletsync.notifications.throttled",
		metric.WithDescription("New block notifications dropped by the throttle."),
	)
	if err != nil {
		logger.Warn(context.Background(), "unable to create throttled counter", "error", err)
		throttled = noop.Int64Counter{}
	}

	return &metrics{
		forwardedCounter: forwarded,
		throttledCounter: throttled,
	}
}

func (m *metrics) forwarded(ctx context.Context, kind string) {
	m.forwardedCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *metrics) throttled(ctx context.Context) {
	m.throttledCounter.Add(ctx, 1)
}

// defaultTracer returns the session tracer from the global TracerProvider.
func defaultTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
