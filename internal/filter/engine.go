package filter

import (
	"strings"

	"github.com/promodesk/promodesk/internal/model"
)

// Schema lists the criteria keys a view recognizes.
// Selections under keys not listed in Keys are ignored.
type Schema struct {
	TextFields []string
	Keys       []string
	StartField string
	EndField   string
}

// Recognizes reports whether key is a selection key of the schema.
func (s Schema) Recognizes(key string) bool {
	for _, k := range s.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// HasDateRange reports whether the schema filters on an active interval.
func (s Schema) HasDateRange() bool {
	return s.StartField != "" && s.EndField != ""
}

// Compile builds the active predicate list for c. Inert criteria contribute
// nothing, so an empty Criteria compiles to an empty list.
func Compile(schema Schema, c Criteria) []Predicate {
	var preds []Predicate

	if strings.TrimSpace(c.text) != "" && len(schema.TextFields) > 0 {
		preds = append(preds, TextContains(schema.TextFields, c.text))
	}

	for _, key := range schema.Keys {
		if sel := c.selections[key]; len(sel) > 0 {
			preds = append(preds, EqualsOrAny(key, sel))
		}
	}

	if schema.HasDateRange() && c.dateRange.IsSet() {
		preds = append(preds, DateRangeOverlaps(schema.StartField, schema.EndField, c.dateRange))
	}

	return preds
}

// Apply returns the records satisfying every predicate, in input order.
// The input slice is never modified; with no predicates a copy of records is
// returned.
func Apply[R model.Record](records []R, preds ...Predicate) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if matches(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether r satisfies every predicate.
func Matches(r model.Record, preds ...Predicate) bool {
	return matches(r, preds)
}

func matches(r model.Record, preds []Predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// Engine filters records of one view.
type Engine struct {
	schema Schema
}

// NewEngine creates an Engine for schema.
func NewEngine(schema Schema) *Engine {
	return &Engine{schema: schema}
}

// Schema returns the engine's schema.
func (e *Engine) Schema() Schema { return e.schema }

// Ignored returns the selection keys in c the schema does not recognize.
func (e *Engine) Ignored(c Criteria) []string {
	var ignored []string
	for _, k := range c.Keys() {
		if !e.schema.Recognizes(k) {
			ignored = append(ignored, k)
		}
	}
	return ignored
}

// Filter applies c to records. See Apply for ordering guarantees.
func Filter[R model.Record](e *Engine, records []R, c Criteria) []R {
	return Apply(records, Compile(e.schema, c)...)
}
