package filter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/promodesk/promodesk/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func activity(id, name string, start, end string) model.Activity {
	a := model.Activity{ID: id, Name: name, Status: model.ActivityStatusRunning}
	if start != "" {
		a.StartDate = model.DateOf(day(start))
	}
	if end != "" {
		a.EndDate = model.DateOf(day(end))
	}
	return a
}

func TestTextContains(t *testing.T) {
	a := activity("230916001", "Mid-Autumn Coupon Festival", "", "")

	cases := []struct {
		name   string
		fields []string
		query  string
		want   bool
	}{
		{"empty query", []string{model.FieldName}, "", true},
		{"blank query", []string{model.FieldName}, "   ", true},
		{"case folded", []string{model.FieldName}, "AUTUMN", true},
		{"second field", []string{model.FieldName, model.FieldID}, "0916", true},
		{"no match", []string{model.FieldName}, "spring", false},
		{"unknown field", []string{"nope"}, "autumn", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TextContains(tc.fields, tc.query)(a))
		})
	}
}

func TestEqualsOrAny(t *testing.T) {
	a := activity("a1", "x", "", "")
	task := model.MonitoringTask{
		ID:                  uuid.New(),
		CollectionTypes:     []string{"price", "stock"},
		MonitoringPlatforms: []string{"jd"},
	}

	assert.True(t, EqualsOrAny(model.FieldStatus, nil)(a), "unset selection matches")
	assert.True(t, EqualsOrAny(model.FieldStatus, []string{"running"})(a))
	assert.False(t, EqualsOrAny(model.FieldStatus, []string{"finished"})(a))
	assert.True(t, EqualsOrAny(model.FieldStatus, []string{"finished", "running"})(a))

	assert.True(t, EqualsOrAny(model.FieldTaskCollectionTypes, []string{"stock", "review"})(task))
	assert.False(t, EqualsOrAny(model.FieldTaskCollectionTypes, []string{"review"})(task))
	assert.False(t, EqualsOrAny(model.FieldActivityChannel, []string{"app"})(a), "absent field never intersects")
}

func TestDateRangeOverlaps(t *testing.T) {
	rec := activity("a1", "Sept", "2025-09-01", "2025-09-30")
	pred := func(from, to string) bool {
		return DateRangeOverlaps(model.FieldStartDate, model.FieldEndDate, NewDateRange(day(from), day(to)))(rec)
	}

	assert.True(t, pred("2025-09-15", "2025-10-15"), "partial overlap at end")
	assert.True(t, pred("2025-08-15", "2025-09-05"), "partial overlap at start")
	assert.True(t, pred("2025-09-10", "2025-09-20"), "window inside record")
	assert.True(t, pred("2025-08-01", "2025-10-31"), "record inside window")
	assert.True(t, pred("2025-09-30", "2025-10-10"), "inclusive end boundary")
	assert.True(t, pred("2025-08-20", "2025-09-01"), "inclusive start boundary")
	assert.False(t, pred("2025-10-01", "2025-10-31"), "disjoint after")
	assert.False(t, pred("2025-08-01", "2025-08-31"), "disjoint before")
}

func TestDateRangeOverlaps_WindowClockTimeIgnored(t *testing.T) {
	rec := activity("a1", "Early Sept", "2025-09-01", "2025-09-15")
	at := func(s string) time.Time {
		v, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return v
	}

	window := NewDateRange(at("2025-09-15T10:00:00Z"), at("2025-09-20T10:00:00Z"))
	assert.True(t, DateRangeOverlaps(model.FieldStartDate, model.FieldEndDate, window)(rec),
		"same-day boundary with clock time matches")

	before := NewDateRange(at("2025-08-20T08:00:00Z"), at("2025-09-01T00:00:01Z"))
	assert.True(t, DateRangeOverlaps(model.FieldStartDate, model.FieldEndDate, before)(rec))

	sameDay := NewDateRange(at("2025-09-16T18:00:00Z"), at("2025-09-16T09:00:00Z"))
	assert.False(t, sameDay.days().Reversed(), "bounds on one day are not reversed")
	assert.False(t, DateRangeOverlaps(model.FieldStartDate, model.FieldEndDate, sameDay)(rec))
}

func TestDateRangeOverlaps_Unset(t *testing.T) {
	rec := activity("a1", "Sept", "2025-09-01", "2025-09-30")
	undated := activity("a2", "Evergreen", "", "")

	assert.True(t, DateRangeOverlaps(model.FieldStartDate, model.FieldEndDate, DateRange{})(rec))
	assert.True(t, DateRangeOverlaps(model.FieldStartDate, model.FieldEndDate,
		NewDateRange(day("2025-10-01"), day("2025-10-31")))(undated))
}

func TestDateRangeOverlaps_OpenEnded(t *testing.T) {
	rec := activity("a1", "Sept", "2025-09-01", "2025-09-30")

	from := DateRange{Start: ptr(day("2025-09-20"))}
	assert.True(t, DateRangeOverlaps(model.FieldStartDate, model.FieldEndDate, from)(rec))

	late := DateRange{Start: ptr(day("2025-10-02"))}
	assert.False(t, DateRangeOverlaps(model.FieldStartDate, model.FieldEndDate, late)(rec))

	until := DateRange{End: ptr(day("2025-08-31"))}
	assert.False(t, DateRangeOverlaps(model.FieldStartDate, model.FieldEndDate, until)(rec))
}

func TestDateRangeOverlaps_ReversedMatchesNothing(t *testing.T) {
	reversed := NewDateRange(day("2025-10-31"), day("2025-09-01"))
	pred := DateRangeOverlaps(model.FieldStartDate, model.FieldEndDate, reversed)

	assert.False(t, pred(activity("a1", "Sept", "2025-09-01", "2025-09-30")))
	assert.False(t, pred(activity("a2", "Evergreen", "", "")))
}
