package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderCountsCallsAndErrors(t *testing.T) {
	rec := NewRecorder()

	rec.RecordEndpointCall("leagueleaders", 120*time.Millisecond, nil)
	rec.RecordEndpointCall("leagueleaders", 80*time.Millisecond, errors.New("boom"))
	rec.RecordShapeDrift("leagueleaders")

	snap := rec.Snapshot("leagueleaders")
	if snap.Calls != 2 || snap.Errors != 1 || snap.DriftEvents != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastLatency != 80*time.Millisecond {
		t.Fatalf("unexpected latency %v", snap.LastLatency)
	}
}

func TestRecorderUnknownEndpoint(t *testing.T) {
	snap := NewRecorder().Snapshot("never-called")
	if snap.Calls != 0 || snap.Errors != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordEndpointCall("x", time.Second, nil)
	rec.RecordShapeDrift("x")
	if snap := rec.Snapshot("x"); snap.Calls != 0 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestSetupDisabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder even with telemetry disabled")
	}
	if handler != nil {
		t.Fatal("no handler expected with telemetry disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown must be a no-op: %v", err)
	}
}

func TestSetupEnabledExportsPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer shutdown(context.Background())

	if handler == nil {
		t.Fatal("expected the prometheus handler")
	}
	rec.RecordEndpointCall("scoreboard", 10*time.Millisecond, nil)
	if rec.Snapshot("scoreboard").Calls != 1 {
		t.Fatal("otel-backed recorder must still count in memory")
	}
}
