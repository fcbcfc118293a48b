package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ViewQueries           uint64
	FilterDurationCount   uint64
	FilterDurationTotalNs int64
	PagesClamped          uint64
	DrillDownsFound       uint64
	DrillDownsEmpty       uint64
	DrillDownsUnknown     uint64
	TrendsBuilt           uint64
	TrendsFailed          uint64
	DatasetsServed        uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	viewQueries           uint64
	filterDurationCount   uint64
	filterDurationTotalNs int64
	pagesClamped          uint64
	drillDownsFound       uint64
	drillDownsEmpty       uint64
	drillDownsUnknown     uint64
	trendsBuilt           uint64
	trendsFailed          uint64
	datasetsServed        uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		ViewQueries:           atomic.LoadUint64(&m.viewQueries),
		FilterDurationCount:   atomic.LoadUint64(&m.filterDurationCount),
		FilterDurationTotalNs: atomic.LoadInt64(&m.filterDurationTotalNs),
		PagesClamped:          atomic.LoadUint64(&m.pagesClamped),
		DrillDownsFound:       atomic.LoadUint64(&m.drillDownsFound),
		DrillDownsEmpty:       atomic.LoadUint64(&m.drillDownsEmpty),
		DrillDownsUnknown:     atomic.LoadUint64(&m.drillDownsUnknown),
		TrendsBuilt:           atomic.LoadUint64(&m.trendsBuilt),
		TrendsFailed:          atomic.LoadUint64(&m.trendsFailed),
		DatasetsServed:        atomic.LoadUint64(&m.datasetsServed),
	}
}

// IncViewQuery increments the view query counter.
func (m *InMemoryRecorder) IncViewQuery(view string) {
	atomic.AddUint64(&m.viewQueries, 1)
}

// ObserveFilterDuration records how long a filter pass took.
func (m *InMemoryRecorder) ObserveFilterDuration(duration time.Duration) {
	atomic.AddUint64(&m.filterDurationCount, 1)
	atomic.AddInt64(&m.filterDurationTotalNs, duration.Nanoseconds())
}

// IncPageClamped counts queries whose page had to be moved into range.
func (m *InMemoryRecorder) IncPageClamped(view string) {
	atomic.AddUint64(&m.pagesClamped, 1)
}

// IncDrillDown counts drill-down resolutions by outcome.
func (m *InMemoryRecorder) IncDrillDown(outcome string) {
	switch outcome {
	case DrillDownFound:
		atomic.AddUint64(&m.drillDownsFound, 1)
	case DrillDownEmpty:
		atomic.AddUint64(&m.drillDownsEmpty, 1)
	default:
		atomic.AddUint64(&m.drillDownsUnknown, 1)
	}
}

// IncTrendBuilt counts trend reconstructions by status.
func (m *InMemoryRecorder) IncTrendBuilt(status string) {
	if status == "success" {
		atomic.AddUint64(&m.trendsBuilt, 1)
		return
	}
	atomic.AddUint64(&m.trendsFailed, 1)
}

// IncDatasetServed counts collections served by the mock data API.
func (m *InMemoryRecorder) IncDatasetServed(kind string) {
	atomic.AddUint64(&m.datasetsServed, 1)
}
