// Package metrics records tree sizes and operation latencies of the symdiff
// command with OpenTelemetry.
package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Op names an engine operation.
type Op string

const (
	OpParse Op = "parse"
	OpEval  Op = "eval"
	OpSub   Op = "substitute"
	OpDiff  Op = "diff"
)

// ScopeName is the instrumentation scope of the recorder's meter.
const ScopeName = "github.com/zephyrtronium/symdiff"

// Recorder records symdiff metrics.
// Use New for OTel metrics or Noop when disabled.
type Recorder interface {
	// RecordOp records one operation with its duration, the size of the tree
	// it produced or consumed, and its error status.
	RecordOp(ctx context.Context, op Op, duration time.Duration, size int, err error)
}

// otelRecorder implements Recorder using OpenTelemetry.
type otelRecorder struct {
	ops      metric.Int64Counter
	errors   metric.Int64Counter
	latency  metric.Float64Histogram
	treeSize metric.Int64Histogram
}

// New creates a Recorder whose instruments come from mp. If mp is nil, the
// global provider is used.
func New(mp metric.MeterProvider) (Recorder, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(ScopeName)

	ops, err := meter.Int64Counter("symdiff.ops",
		metric.WithDescription("Number of engine operations"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("symdiff.errors",
		metric.WithDescription("Number of failed engine operations"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("symdiff.latency_ms",
		metric.WithDescription("Engine operation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	treeSize, err := meter.Int64Histogram("symdiff.tree.size",
		metric.WithDescription("Number of nodes in expression trees"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, err
	}

	return &otelRecorder{
		ops:      ops,
		errors:   errs,
		latency:  latency,
		treeSize: treeSize,
	}, nil
}

// RecordOp records an operation.
func (m *otelRecorder) RecordOp(ctx context.Context, op Op, duration time.Duration, size int, err error) {
	attrs := metric.WithAttributes(attribute.String("op", string(op)))

	m.ops.Add(ctx, 1, attrs)
	m.latency.Record(ctx, float64(duration)/float64(time.Millisecond), attrs)

	if err != nil {
		m.errors.Add(ctx, 1, attrs)
		return
	}
	m.treeSize.Record(ctx, int64(size), attrs)
}

// Noop is a Recorder that does nothing.
type Noop struct{}

var _ Recorder = Noop{}

// RecordOp does nothing.
func (Noop) RecordOp(context.Context, Op, time.Duration, int, error) {}
