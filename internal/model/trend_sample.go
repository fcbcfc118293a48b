package model

// MetricSamples is the ordered sample array of one metric.
type MetricSamples struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// TrendSample holds parallel sample arrays, e.g. sales[] and discount[].
// Index i of every array refers to the same point in time.
type TrendSample struct {
	Metrics []MetricSamples `json:"metrics"`
}

// Len returns the sample count of the first metric, or 0 when empty.
func (t *TrendSample) Len() int {
	if t == nil || len(t.Metrics) == 0 {
		return 0
	}
	return len(t.Metrics[0].Values)
}

// Values returns the samples recorded for name.
func (t *TrendSample) Values(name string) ([]float64, bool) {
	if t == nil {
		return nil, false
	}
	for _, m := range t.Metrics {
		if m.Name == name {
			return m.Values, true
		}
	}
	return nil, false
}
