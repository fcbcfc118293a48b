// Package filter composes record predicates into filtered list views.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/promodesk/promodesk/internal/model"
)

// DateRange is an optional calendar window. Both bounds nil means unset;
// a single nil bound leaves that side open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// NewDateRange returns a closed range [start, end].
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: &start, End: &end}
}

// IsSet reports whether either bound is present.
func (r DateRange) IsSet() bool {
	return r.Start != nil || r.End != nil
}

// Reversed reports whether both bounds are set and end precedes start.
func (r DateRange) Reversed() bool {
	return r.Start != nil && r.End != nil && r.End.Before(*r.Start)
}

// days returns the range with each bound truncated to its calendar day.
func (r DateRange) days() DateRange {
	out := DateRange{}
	if r.Start != nil {
		d := model.DateOf(*r.Start).Time
		out.Start = &d
	}
	if r.End != nil {
		d := model.DateOf(*r.End).Time
		out.End = &d
	}
	return out
}

// Criteria is the current filter state of a view: a free-text query, a set
// of categorical selections keyed by field name, and a date range.
//
// Criteria is a value. The With* methods return a modified copy and never
// touch the receiver, so a Criteria handed to Apply cannot change while it
// is being evaluated.
type Criteria struct {
	text       string
	selections map[string][]string
	dateRange  DateRange
}

// Text returns the free-text query.
func (c Criteria) Text() string { return c.text }

// Range returns the date range.
func (c Criteria) Range() DateRange { return c.dateRange }

// Selection returns a copy of the values selected for key.
func (c Criteria) Selection(key string) []string {
	vals := c.selections[key]
	if len(vals) == 0 {
		return nil
	}
	return append([]string(nil), vals...)
}

// Keys returns the keys that currently carry a non-empty selection, sorted.
func (c Criteria) Keys() []string {
	keys := make([]string, 0, len(c.selections))
	for k, v := range c.selections {
		if len(v) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty reports whether no criterion is active.
func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.text) == "" && len(c.Keys()) == 0 && !c.dateRange.IsSet()
}

// WithText returns a copy with the free-text query replaced.
func (c Criteria) WithText(query string) Criteria {
	out := c.clone()
	out.text = query
	return out
}

// WithSelection returns a copy selecting values for key. Passing no values
// clears the selection.
func (c Criteria) WithSelection(key string, values ...string) Criteria {
	out := c.clone()
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		delete(out.selections, key)
	} else {
		out.selections[key] = kept
	}
	return out
}

// WithRange returns a copy with the date range replaced.
func (c Criteria) WithRange(r DateRange) Criteria {
	out := c.clone()
	out.dateRange = r
	return out
}

// Without returns a copy with the selection for key removed.
func (c Criteria) Without(key string) Criteria {
	return c.WithSelection(key)
}

// Equal reports whether both criteria select the same records.
func (c Criteria) Equal(o Criteria) bool {
	if strings.TrimSpace(c.text) != strings.TrimSpace(o.text) {
		return false
	}
	if !sameBound(c.dateRange.Start, o.dateRange.Start) || !sameBound(c.dateRange.End, o.dateRange.End) {
		return false
	}
	ck, ok := c.Keys(), o.Keys()
	if len(ck) != len(ok) {
		return false
	}
	for _, k := range ck {
		a, b := c.selections[k], o.selections[k]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

func (c Criteria) clone() Criteria {
	out := Criteria{
		text:       c.text,
		selections: make(map[string][]string, len(c.selections)),
		dateRange:  c.dateRange,
	}
	for k, v := range c.selections {
		out.selections[k] = append([]string(nil), v...)
	}
	return out
}

func sameBound(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
