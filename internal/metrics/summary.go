package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Collector owns an in-process meter provider whose data can be read back,
// for reporting statistics at the end of a command.
type Collector struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
}

// NewCollector creates a Collector and a Recorder that reports to it.
func NewCollector() (*Collector, Recorder, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	rec, err := New(provider)
	if err != nil {
		return nil, nil, err
	}
	return &Collector{reader: reader, provider: provider}, rec, nil
}

// Summary collects the recorded data as log attributes, one group per
// metric and operation, e.g. symdiff.latency_ms.diff with count, sum, min,
// and max.
func (c *Collector) Summary(ctx context.Context) ([]slog.Attr, error) {
	var rm metricdata.ResourceMetrics
	if err := c.reader.Collect(ctx, &rm); err != nil {
		return nil, err
	}
	var attrs []slog.Attr
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, p := range data.DataPoints {
					attrs = append(attrs, slog.Int64(key(m.Name, p.Attributes), p.Value))
				}
			case metricdata.Histogram[float64]:
				for _, p := range data.DataPoints {
					attrs = append(attrs, histogram(key(m.Name, p.Attributes), p))
				}
			case metricdata.Histogram[int64]:
				for _, p := range data.DataPoints {
					attrs = append(attrs, histogram(key(m.Name, p.Attributes), p))
				}
			}
		}
	}
	return attrs, nil
}

// Shutdown releases the provider.
func (c *Collector) Shutdown(ctx context.Context) error {
	return c.provider.Shutdown(ctx)
}

func key(name string, set attribute.Set) string {
	if op, ok := set.Value("op"); ok {
		return name + "." + op.AsString()
	}
	return name
}

func histogram[N int64 | float64](k string, p metricdata.HistogramDataPoint[N]) slog.Attr {
	attrs := []any{
		slog.Uint64("count", p.Count),
		slog.Any("sum", p.Sum),
	}
	if v, ok := p.Min.Value(); ok {
		attrs = append(attrs, slog.Any("min", v))
	}
	if v, ok := p.Max.Value(); ok {
		attrs = append(attrs, slog.Any("max", v))
	}
	return slog.Group(k, attrs...)
}
