package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricValuesRead      = "seqstats.values.read.total"
	metricCommandDuration = "seqstats.command.duration.seconds"
	metricCommandErrors   = "seqstats.command.errors.total"

	attrCommand = "command"
)

// durationBucketBoundaries covers 1ms to 60s: from a handful of values to
// multi-gigabyte length files.
var durationBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60}

// CommandMetrics holds the OTel instruments recorded by CLI commands.
type CommandMetrics struct {
	valuesRead      metric.Int64Counter
	commandDuration metric.Float64Histogram
	commandErrors   metric.Int64Counter
}

// NewCommandMetrics creates command metric instruments from the given meter.
func NewCommandMetrics(mt metric.Meter) (*CommandMetrics, error) {
	values, err := mt.Int64Counter(metricValuesRead,
		metric.WithDescription("Total input values parsed"),
		metric.WithUnit("{value}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricValuesRead, err)
	}

	duration, err := mt.Float64Histogram(metricCommandDuration,
		metric.WithDescription("Command duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCommandDuration, err)
	}

	errs, err := mt.Int64Counter(metricCommandErrors,
		metric.WithDescription("Total failed commands"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCommandErrors, err)
	}

	return &CommandMetrics{
		valuesRead:      values,
		commandDuration: duration,
		commandErrors:   errs,
	}, nil
}

// RecordValues counts parsed input values for a command.
func (cm *CommandMetrics) RecordValues(ctx context.Context, command string, n int) {
	cm.valuesRead.Add(ctx, int64(n), metric.WithAttributes(attribute.String(attrCommand, command)))
}

// RecordCommand records the duration of a finished command and counts it as
// an error when failed is true.
func (cm *CommandMetrics) RecordCommand(ctx context.Context, command string, duration time.Duration, failed bool) {
	attrs := metric.WithAttributes(attribute.String(attrCommand, command))

	cm.commandDuration.Record(ctx, duration.Seconds(), attrs)

	if failed {
		cm.commandErrors.Add(ctx, 1, attrs)
	}
}
