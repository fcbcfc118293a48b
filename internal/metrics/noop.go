package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncViewQuery is a no-op.
func (n *NoopRecorder) IncViewQuery(view string) {}

// ObserveFilterDuration is a no-op.
func (n *NoopRecorder) ObserveFilterDuration(duration time.Duration) {}

// IncPageClamped is a no-op.
func (n *NoopRecorder) IncPageClamped(view string) {}

// IncDrillDown is a no-op.
func (n *NoopRecorder) IncDrillDown(outcome string) {}

// IncTrendBuilt is a no-op.
func (n *NoopRecorder) IncTrendBuilt(status string) {}

// IncDatasetServed is a no-op.
func (n *NoopRecorder) IncDatasetServed(kind string) {}
