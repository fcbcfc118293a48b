// Package drilldown resolves a summary row into its detail collections.
package drilldown

import (
	"sort"

	"github.com/oklog/ulid/v2"

	"github.com/promodesk/promodesk/internal/filter"
	"github.com/promodesk/promodesk/internal/model"
)

// Lookup returns the detail rows attached to one summary record.
// It returns nil when the record has none.
type Lookup func(recordID string) []model.Record

// SampleLookup returns the trend samples attached to one summary record.
type SampleLookup func(recordID string) *model.TrendSample

// Collection is a detail dataset for one summary record. It is built per
// request and dropped when the caller dismisses it.
type Collection struct {
	Kind     string             `json:"kind"`
	RecordID string             `json:"recordId"`
	Token    string             `json:"token"`
	KeyField string             `json:"keyField,omitempty"`
	Rows     []model.Record     `json:"rows"`
	Samples  *model.TrendSample `json:"samples,omitempty"`
}

// Len returns the number of rows, or the number of trend samples for a
// trend collection.
func (c Collection) Len() int {
	if c.Samples != nil {
		return c.Samples.Len()
	}
	return len(c.Rows)
}

// IsEmpty reports whether the collection holds nothing to show.
func (c Collection) IsEmpty() bool { return c.Len() == 0 }

type provider struct {
	keyField string
	rows     Lookup
	samples  SampleLookup
}

// Registry maps a detail kind to its provider. Register every kind before
// the first Resolve; a populated Registry is safe for concurrent reads.
type Registry struct {
	providers map[string]provider
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]provider)}
}

// RegisterRows registers a row provider for kind. Queries passed to Resolve
// are matched against keyField.
func (r *Registry) RegisterRows(kind, keyField string, fn Lookup) {
	r.providers[kind] = provider{keyField: keyField, rows: fn}
}

// RegisterSamples registers a trend-sample provider for kind.
func (r *Registry) RegisterSamples(kind string, fn SampleLookup) {
	r.providers[kind] = provider{samples: fn}
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	_, ok := r.providers[kind]
	return ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.providers))
	for k := range r.providers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Resolve returns the kind details of recordID. A non-blank query keeps only
// rows whose key field contains it, case-insensitively.
//
// Resolve never fails: an unknown kind or a record without details yields an
// empty collection with a non-nil Rows slice.
func (r *Registry) Resolve(kind, recordID, query string) Collection {
	c := Collection{
		Kind:     kind,
		RecordID: recordID,
		Token:    ulid.Make().String(),
		Rows:     []model.Record{},
	}

	p, ok := r.providers[kind]
	if !ok {
		return c
	}
	c.KeyField = p.keyField

	if p.samples != nil {
		c.Samples = p.samples(recordID)
		return c
	}

	rows := p.rows(recordID)
	if len(rows) == 0 {
		return c
	}
	c.Rows = filter.Apply(rows, filter.TextContains([]string{p.keyField}, query))
	return c
}

// Rows converts a typed slice into the row form Lookup returns.
func Rows[R model.Record](rs []R) []model.Record {
	if len(rs) == 0 {
		return nil
	}
	out := make([]model.Record, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}
