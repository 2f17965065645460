// Package telemetry initializes OpenTelemetry metrics and tracing with OTLP
// exporters over gRPC. It creates a unified Resource for the daemon,
// registers the global providers, and returns a ShutdownFunc that flushes
// and stops both pipelines.
//
// Exporter endpoints are taken from the standard OTEL_EXPORTER_OTLP_*
// environment variables. When telemetry is disabled the global no-op
// providers stay in place.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// initMeterProvider sets up an OTLP gRPC MeterProvider using a
// periodic reader and the given Resource. It also registers the
// provider as the global MeterProvider.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider sets up an OTLP gRPC TracerProvider using a
// batched exporter and the given Resource. It also registers the
// provider as the global TracerProvider.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// newResource merges the default system resource with the daemon's name and,
// when set, its version.
func newResource(serviceName, serviceVersion string) (*sdkresource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if serviceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(serviceVersion))
	}

	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}

// ShutdownFunc defines a callback to flush and stop all telemetry providers.
// Call this function at application shutdown to ensure all telemetry is sent.
type ShutdownFunc func(ctx context.Context) error

// nopShutdown is returned when nothing was initialized.
func nopShutdown(context.Context) error { return nil }

// config holds optional settings for Init.
type config struct {
	enabled        bool
	serviceVersion string
}

// Option configures Init.
type Option func(*config)

// WithEnabled turns the OTLP pipelines on or off. Default: enabled.
func WithEnabled(enabled bool) Option {
	return func(c *config) {
		c.enabled = enabled
	}
}

// WithServiceVersion adds a service.version attribute to the Resource.
func WithServiceVersion(v string) Option {
	return func(c *config) {
		c.serviceVersion = v
	}
}

// Init configures OpenTelemetry for metrics and traces using OTLP over gRPC
// and registers both providers globally. serviceName identifies the daemon in
// the observability backend.
//
// The returned ShutdownFunc flushes and stops every provider that was
// started; it is never nil, even on error or when telemetry is disabled. If
// the tracer pipeline fails after the meter pipeline started, the meter
// provider is shut down before returning.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	cfg := config{enabled: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.enabled {
		return nopShutdown, nil
	}

	res, err := newResource(serviceName, cfg.serviceVersion)
	if err != nil {
		return nopShutdown, err
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		return nopShutdown, err
	}

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return nopShutdown, errors.Join(err, mp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		return errors.Join(
			mp.Shutdown(ctx),
			tp.Shutdown(ctx),
		)
	}, nil
}
