package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "valid", cfg: Config{ServiceName: "mws-sync", SampleRate: 0.5}},
		{name: "missing name", cfg: Config{SampleRate: 1}, wantErr: ErrMissingServiceName},
		{
			name:    "rate too high",
			cfg:     Config{ServiceName: "x", SampleRate: 1.5},
			wantErr: ErrInvalidSampleRate,
		},
		{
			name:    "negative rate",
			cfg:     Config{ServiceName: "x", SampleRate: -1},
			wantErr: ErrInvalidSampleRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	tel, err := Setup(context.Background(), Config{})
	require.NoError(t, err)
	assert.NotNil(t, tel.TracerProvider())
	require.NoError(t, tel.ForceFlush(context.Background()))
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestSetup_ExportsSpans(t *testing.T) {
	ctx := context.Background()
	spans := tracetest.NewInMemoryExporter()
	metricsExp := &nopMetricExporter{}

	tel, err := Setup(ctx, Config{
		Enabled:     true,
		ServiceName: "mws-sync",
		Endpoint:    "localhost:4317",
		SampleRate:  1,
	}, WithTraceExporter(spans), WithMetricExporter(metricsExp))
	require.NoError(t, err)

	_, span := tel.TracerProvider().Tracer("test").Start(ctx, "mws.ListOrders")
	span.End()

	// The in-memory exporter drops its spans on shutdown, so flush and
	// assert first.
	require.NoError(t, tel.ForceFlush(ctx))
	got := spans.GetSpans()
	require.Len(t, got, 1)
	assert.Equal(t, "mws.ListOrders", got[0].Name)

	require.NoError(t, tel.Shutdown(ctx))
}

func TestSampler(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AlwaysOffSampler", sampler(0).Description())
	assert.Equal(t, "AlwaysOnSampler", sampler(1).Description())
	assert.Contains(t, sampler(0.5).Description(), "TraceIDRatioBased")
}

type nopMetricExporter struct{}

func (*nopMetricExporter) Temporality(k sdkmetric.InstrumentKind) metricdata.Temporality {
	return sdkmetric.DefaultTemporalitySelector(k)
}

func (*nopMetricExporter) Aggregation(k sdkmetric.InstrumentKind) sdkmetric.Aggregation {
	return sdkmetric.DefaultAggregationSelector(k)
}

func (*nopMetricExporter) Export(context.Context, *metricdata.ResourceMetrics) error { return nil }
func (*nopMetricExporter) ForceFlush(context.Context) error                          { return nil }
func (*nopMetricExporter) Shutdown(context.Context) error                            { return nil }
