package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promodesk/promodesk/internal/model"
)

var activitySchema = Schema{
	TextFields: []string{model.FieldName, model.FieldID},
	Keys:       []string{model.FieldStatus, model.FieldActivityChannel},
	StartField: model.FieldStartDate,
	EndField:   model.FieldEndDate,
}

func fixtureActivities() []model.Activity {
	rs := []model.Activity{
		activity("a1", "Autumn Festival", "2025-09-01", "2025-09-30"),
		activity("a2", "Autumn Flash Sale", "2025-10-01", "2025-10-07"),
		activity("a3", "Winter Warmup", "2025-11-15", "2025-12-31"),
		activity("a4", "Autumn Members Day", "2025-09-20", "2025-10-20"),
		activity("a5", "Evergreen Cashback", "", ""),
	}
	rs[1].Status = model.ActivityStatusFinished
	rs[0].Channel = "app"
	rs[3].Channel = "mini_program"
	return rs
}

func ids[R model.Record](rs []R) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.RecordID()
	}
	return out
}

func TestCompile_InertCriteriaContributeNothing(t *testing.T) {
	assert.Empty(t, Compile(activitySchema, Criteria{}))
	assert.Empty(t, Compile(activitySchema, Criteria{}.WithText("  ")))
	assert.Len(t, Compile(activitySchema, Criteria{}.WithText("autumn").WithSelection(model.FieldStatus, "running")), 2)
}

func TestCompile_IgnoresUnrecognizedKeys(t *testing.T) {
	c := Criteria{}.WithSelection("brand", "acme")
	assert.Empty(t, Compile(activitySchema, c))
	assert.Equal(t, []string{"brand"}, NewEngine(activitySchema).Ignored(c))
}

func TestCompile_DateRangeNeedsSchemaFields(t *testing.T) {
	c := Criteria{}.WithRange(NewDateRange(day("2025-01-01"), day("2025-01-02")))
	assert.Empty(t, Compile(Schema{TextFields: []string{model.FieldName}}, c))
	assert.Len(t, Compile(activitySchema, c), 1)
}

func TestFilter_ANDSemantics(t *testing.T) {
	e := NewEngine(activitySchema)
	c := Criteria{}.
		WithText("autumn").
		WithSelection(model.FieldStatus, string(model.ActivityStatusRunning)).
		WithRange(NewDateRange(day("2025-09-15"), day("2025-10-15")))

	got := Filter(e, fixtureActivities(), c)
	assert.Equal(t, []string{"a1", "a4"}, ids(got))
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	records := fixtureActivities()
	before := ids(records)

	got := Filter(NewEngine(activitySchema), records, Criteria{}.WithText("a"))
	assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5"}, ids(got))
	assert.Equal(t, before, ids(records))

	got[0].Name = "mutated"
	assert.Equal(t, "Autumn Festival", records[0].Name, "result must not alias input")
}

func TestFilter_Idempotent(t *testing.T) {
	e := NewEngine(activitySchema)
	criteria := []Criteria{
		{},
		Criteria{}.WithText("autumn"),
		Criteria{}.WithSelection(model.FieldActivityChannel, "app", "mini_program"),
		Criteria{}.WithRange(NewDateRange(day("2025-10-01"), day("2025-10-31"))),
		Criteria{}.WithRange(NewDateRange(day("2025-10-31"), day("2025-10-01"))),
	}

	for _, c := range criteria {
		once := Filter(e, fixtureActivities(), c)
		twice := Filter(e, once, c)
		assert.Equal(t, ids(once), ids(twice))
		assert.Equal(t, ids(once), ids(Filter(e, fixtureActivities(), c)), "deterministic")
	}
}

func TestFilter_ResultIsExactlyTheMatchingSet(t *testing.T) {
	e := NewEngine(activitySchema)
	c := Criteria{}.WithText("autumn").WithRange(NewDateRange(day("2025-10-01"), day("2025-10-31")))
	preds := Compile(activitySchema, c)

	records := fixtureActivities()
	got := Filter(e, records, c)
	in := make(map[string]bool)
	for _, r := range got {
		require.True(t, Matches(r, preds...))
		in[r.ID] = true
	}
	for _, r := range records {
		if !in[r.ID] {
			assert.False(t, Matches(r, preds...), "record %s should have matched", r.ID)
		}
	}
	assert.Equal(t, []string{"a2", "a4"}, ids(got))
}

func TestFilter_ReversedRangeIsEmptyNotError(t *testing.T) {
	c := Criteria{}.WithRange(NewDateRange(day("2025-12-01"), day("2025-01-01")))
	assert.Empty(t, Filter(NewEngine(activitySchema), fixtureActivities(), c))
}

func TestApply_NoPredicatesCopiesAll(t *testing.T) {
	records := fixtureActivities()
	got := Apply(records)
	assert.Equal(t, ids(records), ids(got))
}
