// Package model defines the console's record schemas.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Record is one row of a list view.
// Field returns the text or categorical values stored under name; multi-valued
// attributes return every element and unknown names return nil.
type Record interface {
	RecordID() string
	Field(name string) []string
	Date(name string) (time.Time, bool)
}

// Common field names shared by every entity.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldStatus    = "status"
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
)

// DateLayout is the wire and flag format of a calendar day.
const DateLayout = "2006-01-02"

// Date is a calendar day normalized to UTC midnight. The zero value means unset.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "2006-01-02" string. An empty string yields the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// String formats the day, or returns "" when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON encodes the day as "2006-01-02", or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON accepts "2006-01-02", "" and null.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// dateValue adapts a Date to the Record.Date contract.
func dateValue(d Date) (time.Time, bool) {
	if d.IsZero() {
		return time.Time{}, false
	}
	return d.Time, true
}

// one wraps a single attribute value; empty strings are reported as absent.
func one(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}
