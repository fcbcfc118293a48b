package filter

import (
	"strings"
	"time"

	"github.com/promodesk/promodesk/internal/model"
)

// Predicate reports whether a record passes one criterion.
// Predicates are pure and may be evaluated in any order.
type Predicate func(r model.Record) bool

// MatchAll is the inert predicate.
func MatchAll(model.Record) bool { return true }

// TextContains matches when the case-folded query is a substring of any
// value of any named field. A blank query matches every record.
func TextContains(fields []string, query string) Predicate {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return MatchAll
	}
	return func(r model.Record) bool {
		for _, f := range fields {
			for _, v := range r.Field(f) {
				if strings.Contains(strings.ToLower(v), needle) {
					return true
				}
			}
		}
		return false
	}
}

// EqualsOrAny matches when selection is empty, or when any value of field
// is in selection. A single-element selection is plain equality; for
// multi-valued fields the intersection must be non-empty.
func EqualsOrAny(field string, selection []string) Predicate {
	if len(selection) == 0 {
		return MatchAll
	}
	allowed := make(map[string]struct{}, len(selection))
	for _, s := range selection {
		allowed[s] = struct{}{}
	}
	return func(r model.Record) bool {
		for _, v := range r.Field(field) {
			if _, ok := allowed[v]; ok {
				return true
			}
		}
		return false
	}
}

// DateRangeOverlaps matches records whose [start, end] interval overlaps the
// window with inclusive bounds. Partial overlap, containment in either
// direction and exact boundary contact all match.
//
// Window bounds are trimmed to their calendar day, since record dates carry
// no clock time. An unset window, or a record without both dates, matches.
// A reversed window matches nothing.
func DateRangeOverlaps(startField, endField string, window DateRange) Predicate {
	if !window.IsSet() {
		return MatchAll
	}
	window = window.days()
	if window.Reversed() {
		return func(model.Record) bool { return false }
	}
	return func(r model.Record) bool {
		start, okStart := r.Date(startField)
		end, okEnd := r.Date(endField)
		if !okStart || !okEnd {
			return true
		}
		return overlaps(start, end, window.Start, window.End)
	}
}

// overlaps is the inclusive test start <= winEnd && end >= winStart with
// nil bounds treated as unbounded.
func overlaps(start, end time.Time, winStart, winEnd *time.Time) bool {
	if winEnd != nil && start.After(*winEnd) {
		return false
	}
	if winStart != nil && end.Before(*winStart) {
		return false
	}
	return true
}
