// Package trend maps sparse metric samples onto evenly spaced calendar dates.
package trend

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Reconstruction errors. They signal programming errors in the caller and
// are never masked.
var (
	ErrNoSeries             = errors.New("trend: no series")
	ErrNoSamples            = errors.New("trend: series has no samples")
	ErrSeriesLengthMismatch = errors.New("trend: series lengths differ")
	ErrInvalidRange         = errors.New("trend: range end before start")
	ErrNonFiniteSample      = errors.New("trend: sample is NaN or infinite")
)

// Display-unit scales.
var (
	// WanScale converts samples recorded in 万 (ten-thousands) to units.
	WanScale = decimal.NewFromInt(10_000)
	// UnitScale leaves samples unchanged.
	UnitScale = decimal.NewFromInt(1)
)

// Layouts of Point.Date and Point.Label.
const (
	DateLayout  = "2006-01-02"
	LabelLayout = "01-02"
)

// Metric names a sampled measure and the factor applied before display.
type Metric struct {
	Name  string
	Scale decimal.Decimal
}

// Series is the ordered sample array of one metric.
type Series struct {
	Metric  Metric
	Samples []float64
}

// Point is one charted date with a value per series, in series order.
type Point struct {
	Date   string    `json:"date"`
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// Reconstruct lays out the samples of every series on dates starting at
// start, spaced floor(totalDays/(n-1)) days apart, where totalDays is the
// calendar-day distance from start to end and n the sample count. A single
// sample maps to start.
//
// When the range is shorter than n-1 days the interval floors to zero and
// samples share dates; the series is returned as is.
func Reconstruct(series []Series, start, end time.Time) ([]Point, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	n := len(series[0].Samples)
	if n < 1 {
		return nil, fmt.Errorf("%w: metric %q", ErrNoSamples, series[0].Metric.Name)
	}
	for _, s := range series[1:] {
		if len(s.Samples) != n {
			return nil, fmt.Errorf("%w: metric %q has %d samples, want %d",
				ErrSeriesLengthMismatch, s.Metric.Name, len(s.Samples), n)
		}
	}
	for _, s := range series {
		for i, v := range s.Samples {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: metric %q sample %d is %v", ErrNonFiniteSample, s.Metric.Name, i, v)
			}
		}
	}

	first, last := calendarDay(start), calendarDay(end)
	totalDays := DaysBetween(first, last)
	if totalDays < 0 {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, first.Format(DateLayout), last.Format(DateLayout))
	}

	interval := 0
	if n > 1 {
		interval = totalDays / (n - 1)
	}

	points := make([]Point, n)
	for i := 0; i < n; i++ {
		d := first.AddDate(0, 0, i*interval)
		values := make([]float64, len(series))
		for j, s := range series {
			values[j] = s.Metric.apply(s.Samples[i])
		}
		points[i] = Point{
			Date:   d.Format(DateLayout),
			Label:  d.Format(LabelLayout),
			Values: values,
		}
	}
	return points, nil
}

// DaysBetween returns the number of calendar days from start to end.
// Clock time and zone offsets are ignored.
func DaysBetween(start, end time.Time) int {
	return int(calendarDay(end).Sub(calendarDay(start)).Hours() / 24)
}

func (m Metric) apply(v float64) float64 {
	scale := m.Scale
	if scale.IsZero() {
		scale = UnitScale
	}
	out, _ := decimal.NewFromFloat(v).Mul(scale).Float64()
	return out
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
