package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	driftEvents     int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about endpoint calls.
// When constructed through Setup it mirrors every observation into the
// OpenTelemetry instruments as well.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*endpointStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordEndpointCall increments counters for one facade call and stores the
// observed latency.
func (r *Recorder) RecordEndpointCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEndpointCall(endpoint, duration, err)
	}
}

// RecordShapeDrift tracks that a response failed schema validation and was
// passed through unvalidated.
func (r *Recorder) RecordShapeDrift(endpoint string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStats(endpoint).driftEvents++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordShapeDrift(endpoint)
	}
}

// Snapshot reports the counters recorded for an endpoint.
type Snapshot struct {
	Calls       int
	Errors      int
	DriftEvents int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[endpoint]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		DriftEvents: stats.driftEvents,
		LastLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStats(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
