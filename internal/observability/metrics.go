// Package observability holds the OTel metric instruments for trace
// generation and live playback, and the Prometheus scrape endpoint that
// exports them.
package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricTracesTotal        = "sortviz.traces.total"
	metricStepsTotal         = "sortviz.steps.total"
	metricGenerationDuration = "sortviz.generation.duration.seconds"
	metricPlaybackTicks      = "sortviz.playback.ticks.total"
	metricActiveSessions     = "sortviz.sessions.active"

	attrAlgorithm = "algorithm"
)

// generationBucketBoundaries covers sub-millisecond traces on tiny arrays up
// to multi-second quicksort expansions over the largest allowed inputs.
var generationBucketBoundaries = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// EngineMetrics holds the OTel instruments for generation and playback.
type EngineMetrics struct {
	tracesTotal        metric.Int64Counter
	stepsTotal         metric.Int64Counter
	generationDuration metric.Float64Histogram
	playbackTicks      metric.Int64Counter
	activeSessions     metric.Int64UpDownCounter
}

// NewEngineMetrics creates the sortviz instruments from the given meter.
func NewEngineMetrics(mt metric.Meter) (*EngineMetrics, error) {
	b := newMetricBuilder(mt)

	em := &EngineMetrics{
		tracesTotal:        b.counter(metricTracesTotal, "Total number of traces generated", "{trace}"),
		stepsTotal:         b.counter(metricStepsTotal, "Total number of steps emitted by generators", "{step}"),
		generationDuration: b.histogram(metricGenerationDuration, "Trace generation duration in seconds", "s", generationBucketBoundaries...),
		playbackTicks:      b.counter(metricPlaybackTicks, "Total number of live playback ticks", "{tick}"),
		activeSessions:     b.upDownCounter(metricActiveSessions, "Number of active playback sessions", "{session}"),
	}

	if b.err != nil {
		return nil, b.err
	}

	return em, nil
}

// RecordGeneration records one completed trace generation.
func (em *EngineMetrics) RecordGeneration(ctx context.Context, algorithm string, steps int, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String(attrAlgorithm, algorithm))

	em.tracesTotal.Add(ctx, 1, attrs)
	em.stepsTotal.Add(ctx, int64(steps), attrs)
	em.generationDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordPlaybackTick records one live playback advance.
func (em *EngineMetrics) RecordPlaybackTick(ctx context.Context, algorithm string) {
	em.playbackTicks.Add(ctx, 1, metric.WithAttributes(attribute.String(attrAlgorithm, algorithm)))
}

// TrackSession increments the active session gauge and returns a function
// to decrement it.
func (em *EngineMetrics) TrackSession(ctx context.Context) func() {
	em.activeSessions.Add(ctx, 1)

	return func() {
		em.activeSessions.Add(ctx, -1)
	}
}
