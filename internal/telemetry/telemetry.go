// Package telemetry installs the OpenTelemetry trace and metric providers
// used by the sync service.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	ErrMissingServiceName = errors.New("service name is required")
	ErrInvalidSampleRate  = errors.New("sample rate must be between 0.0 and 1.0")
)

// Config selects what gets exported and where.
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	SampleRate     float64
}

// Validate checks the settings needed to build the providers.
func (c Config) Validate() error {
	if c.ServiceName == "" {
		return ErrMissingServiceName
	}
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return ErrInvalidSampleRate
	}
	return nil
}

// Telemetry owns the installed providers.
type Telemetry struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
}

// Option swaps the exporters, mainly for tests.
type Option func(*options)

type options struct {
	traceExporter  sdktrace.SpanExporter
	metricExporter sdkmetric.Exporter
}

// WithTraceExporter uses exp instead of the OTLP gRPC trace exporter.
func WithTraceExporter(exp sdktrace.SpanExporter) Option {
	return func(o *options) {
		o.traceExporter = exp
	}
}

// WithMetricExporter uses exp instead of the OTLP gRPC metric exporter.
func WithMetricExporter(exp sdkmetric.Exporter) Option {
	return func(o *options) {
		o.metricExporter = exp
	}
}

// Setup installs global providers. When telemetry is disabled it returns a
// Telemetry whose TracerProvider is a no-op and whose Shutdown does nothing.
func Setup(ctx context.Context, cfg Config, opts ...Option) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{}, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid telemetry config: %w", err)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
		resource.WithFromEnv(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	traceExp := o.traceExporter
	if traceExp == nil {
		traceExp, err = otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("creating trace exporter: %w", err)
		}
	}

	metricExp := o.metricExporter
	if metricExp == nil {
		metricExp, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			_ = traceExp.Shutdown(ctx)
			return nil, fmt.Errorf("creating metric exporter: %w", err)
		}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.SampleRate)),
		sdktrace.WithBatcher(traceExp),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Telemetry{tracerProvider: tp, meterProvider: mp}, nil
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate <= 0:
		return sdktrace.NeverSample()
	case rate >= 1:
		return sdktrace.AlwaysSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))
	}
}

// TracerProvider returns the provider to hand to mws.WithTracerProvider.
func (t *Telemetry) TracerProvider() trace.TracerProvider {
	if t.tracerProvider == nil {
		return noop.NewTracerProvider()
	}
	return t.tracerProvider
}

// ForceFlush exports everything buffered so far without stopping the
// providers.
func (t *Telemetry) ForceFlush(ctx context.Context) error {
	var errs []error
	if t.tracerProvider != nil {
		if err := t.tracerProvider.ForceFlush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing tracer provider: %w", err))
		}
	}
	if t.meterProvider != nil {
		if err := t.meterProvider.ForceFlush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing meter provider: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Shutdown flushes and stops the providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.tracerProvider != nil {
		if err := t.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down tracer provider: %w", err))
		}
	}
	if t.meterProvider != nil {
		if err := t.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down meter provider: %w", err))
		}
	}
	return errors.Join(errs...)
}
