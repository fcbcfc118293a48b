// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Drill-down outcomes passed to IncDrillDown.
const (
	DrillDownFound   = "found"
	DrillDownEmpty   = "empty"
	DrillDownUnknown = "unknown"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// List view metrics
	IncViewQuery(view string)
	ObserveFilterDuration(duration time.Duration)
	IncPageClamped(view string)

	// Drill-down and trend metrics
	IncDrillDown(outcome string) // outcome: "found", "empty" or "unknown"
	IncTrendBuilt(status string) // status: "success" or "failed"

	// Mock data API metrics
	IncDatasetServed(kind string)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
