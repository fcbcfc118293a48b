package drilldown

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promodesk/promodesk/internal/model"
)

func testRegistry() *Registry {
	receive := map[string][]model.ReceiveRecord{
		"230916001": {
			{ID: "r1", ActivityID: "230916001", CouponCode: "MA2025-0001"},
			{ID: "r2", ActivityID: "230916001", CouponCode: "MA2025-0002"},
			{ID: "r3", ActivityID: "230916001", CouponCode: "XMAS-0003"},
		},
	}
	coupons := map[string]model.Coupon{
		"230916001": {ID: "230916001"},
		"230916002": {ID: "230916002", ZeroUsageRetailers: []model.RetailerRef{{ID: "s1", Name: "East Gate Store"}}},
	}
	trends := map[string]*model.TrendSample{
		"s1": {Metrics: []model.MetricSamples{{Name: "sales", Values: []float64{1, 2, 3}}}},
	}

	reg := NewRegistry()
	reg.RegisterRows("receiveDetail", model.FieldCouponCode, func(id string) []model.Record {
		return Rows(receive[id])
	})
	reg.RegisterRows("zeroUsageRetailers", model.FieldName, func(id string) []model.Record {
		return Rows(coupons[id].ZeroUsageRetailers)
	})
	reg.RegisterRows("merchants", model.FieldName, func(id string) []model.Record {
		return nil
	})
	reg.RegisterSamples("retailerTrend", func(id string) *model.TrendSample {
		return trends[id]
	})
	return reg
}

func TestResolve_Rows(t *testing.T) {
	c := testRegistry().Resolve("receiveDetail", "230916001", "")

	assert.Equal(t, "receiveDetail", c.Kind)
	assert.Equal(t, "230916001", c.RecordID)
	assert.Equal(t, model.FieldCouponCode, c.KeyField)
	assert.Len(t, c.Rows, 3)

	_, err := ulid.Parse(c.Token)
	assert.NoError(t, err)
}

func TestResolve_QueryFiltersOnKeyField(t *testing.T) {
	c := testRegistry().Resolve("receiveDetail", "230916001", "ma2025")

	require.Len(t, c.Rows, 2)
	assert.Equal(t, "r1", c.Rows[0].RecordID())
	assert.Equal(t, "r2", c.Rows[1].RecordID())

	c = testRegistry().Resolve("receiveDetail", "230916001", "230916001")
	assert.Empty(t, c.Rows, "query only looks at the key field")
}

func TestResolve_EmptyNeverErrors(t *testing.T) {
	reg := testRegistry()

	cases := []struct {
		name string
		kind string
		id   string
	}{
		{"no merchant list", "merchants", "230916001"},
		{"unknown record", "receiveDetail", "999"},
		{"unknown kind", "nope", "230916001"},
		{"no zero-usage retailers", "zeroUsageRetailers", "230916001"},
		{"no trend", "retailerTrend", "missing"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := reg.Resolve(tc.kind, tc.id, "")
			assert.NotNil(t, c.Rows)
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestResolve_PrecomputedAttribute(t *testing.T) {
	c := testRegistry().Resolve("zeroUsageRetailers", "230916002", "east")
	require.Len(t, c.Rows, 1)
	assert.Equal(t, "s1", c.Rows[0].RecordID())
}

func TestResolve_Samples(t *testing.T) {
	c := testRegistry().Resolve("retailerTrend", "s1", "ignored")
	require.NotNil(t, c.Samples)
	assert.Equal(t, 3, c.Len())
	assert.Empty(t, c.Rows)
}

func TestResolve_TokensAreUnique(t *testing.T) {
	reg := testRegistry()
	a := reg.Resolve("receiveDetail", "230916001", "")
	b := reg.Resolve("receiveDetail", "230916001", "")
	assert.NotEqual(t, a.Token, b.Token)
}

func TestKinds(t *testing.T) {
	reg := testRegistry()
	assert.Equal(t, []string{"merchants", "receiveDetail", "retailerTrend", "zeroUsageRetailers"}, reg.Kinds())
	assert.True(t, reg.Has("merchants"))
	assert.False(t, reg.Has("products"))
}
