package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriteria_WithDoesNotMutateReceiver(t *testing.T) {
	base := Criteria{}.WithSelection("status", "running")
	next := base.WithSelection("status", "finished").WithText("autumn")

	assert.Equal(t, []string{"running"}, base.Selection("status"))
	assert.Equal(t, "", base.Text())
	assert.Equal(t, []string{"finished"}, next.Selection("status"))
	assert.Equal(t, "autumn", next.Text())
}

func TestCriteria_SelectionReturnsCopy(t *testing.T) {
	c := Criteria{}.WithSelection("status", "running")
	sel := c.Selection("status")
	sel[0] = "tampered"

	assert.Equal(t, []string{"running"}, c.Selection("status"))
}

func TestCriteria_EmptyValuesClearSelection(t *testing.T) {
	c := Criteria{}.WithSelection("status", "running").WithSelection("status", "", " ")
	assert.Nil(t, c.Selection("status"))
	assert.True(t, c.IsEmpty())

	c = Criteria{}.WithSelection("channel", "app").Without("channel")
	assert.True(t, c.IsEmpty())
}

func TestCriteria_Equal(t *testing.T) {
	r := NewDateRange(day("2025-01-01"), day("2025-01-31"))
	a := Criteria{}.WithText("x").WithSelection("status", "a", "b").WithRange(r)
	b := Criteria{}.WithRange(NewDateRange(day("2025-01-01"), day("2025-01-31"))).WithSelection("status", "a", "b").WithText("x ")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b.WithSelection("status", "a")))
	assert.False(t, a.Equal(b.WithRange(DateRange{})))
	assert.True(t, Criteria{}.Equal(Criteria{}.WithSelection("status")))
}

func TestDateRange(t *testing.T) {
	assert.False(t, DateRange{}.IsSet())
	assert.True(t, DateRange{Start: ptr(day("2025-01-01"))}.IsSet())
	assert.False(t, DateRange{Start: ptr(day("2025-01-01"))}.Reversed())
	assert.True(t, NewDateRange(day("2025-02-01"), day("2025-01-01")).Reversed())
	assert.False(t, NewDateRange(day("2025-01-01"), day("2025-01-01")).Reversed())
}

func TestCriteria_KeysSorted(t *testing.T) {
	c := Criteria{}.
		WithSelection("status", "running").
		WithSelection("channel", "app").
		WithSelection("region", "east").
		WithSelection("brand", "acme")

	for i := 0; i < 20; i++ {
		assert.Equal(t, []string{"brand", "channel", "region", "status"}, c.Keys())
	}
}
