package view

import (
	"log/slog"

	"github.com/promodesk/promodesk/internal/dataset"
	"github.com/promodesk/promodesk/internal/drilldown"
	"github.com/promodesk/promodesk/internal/model"
)

// Drill-down kinds registered by the console.
const (
	KindReceiveDetail      = "receiveDetail"
	KindVerifyDetail       = "verifyDetail"
	KindMerchants          = "merchants"
	KindProducts           = "products"
	KindZeroUsageRetailers = "zeroUsageRetailers"
	KindPriceRecords       = "priceRecords"
	KindActivityTrend      = "activityTrend"
	KindRetailerTrend      = "retailerTrend"
)

// newRegistry indexes ds once and registers a provider per drill-down kind.
// Providers only read the indexes, so every Resolve builds a fresh slice.
func newRegistry(ds *dataset.Dataset, logger *slog.Logger) *drilldown.Registry {
	receives := groupBy(ds.ReceiveRecords, func(r model.ReceiveRecord) string { return r.ActivityID })
	verifies := groupBy(ds.VerifyRecords, func(v model.VerifyRecord) string { return v.ActivityID })
	prices := groupBy(ds.PriceRecords, func(p model.PriceRecord) string { return p.TaskID.String() })
	coupons := indexBy(ds.Coupons)
	merchants := indexBy(ds.Merchants)
	products := indexBy(ds.Products)
	activities := indexBy(ds.Activities)
	retailers := indexBy(ds.Retailers)

	reg := drilldown.NewRegistry()

	reg.RegisterRows(KindReceiveDetail, model.FieldCouponCode, func(id string) []model.Record {
		return drilldown.Rows(receives[id])
	})
	reg.RegisterRows(KindVerifyDetail, model.FieldCouponCode, func(id string) []model.Record {
		return drilldown.Rows(verifies[id])
	})
	reg.RegisterRows(KindMerchants, model.FieldName, func(id string) []model.Record {
		return drilldown.Rows(pick(merchants, coupons[id].MerchantIDs, logger, KindMerchants))
	})
	reg.RegisterRows(KindProducts, model.FieldName, func(id string) []model.Record {
		return drilldown.Rows(pick(products, coupons[id].ProductIDs, logger, KindProducts))
	})
	reg.RegisterRows(KindZeroUsageRetailers, model.FieldName, func(id string) []model.Record {
		return drilldown.Rows(coupons[id].ZeroUsageRetailers)
	})
	reg.RegisterRows(KindPriceRecords, model.FieldProductName, func(id string) []model.Record {
		return drilldown.Rows(prices[id])
	})
	reg.RegisterSamples(KindActivityTrend, func(id string) *model.TrendSample {
		return activities[id].Trend
	})
	reg.RegisterSamples(KindRetailerTrend, func(id string) *model.TrendSample {
		return retailers[id].Trend
	})

	return reg
}

func groupBy[R any](rows []R, key func(R) string) map[string][]R {
	out := make(map[string][]R)
	for _, r := range rows {
		k := key(r)
		out[k] = append(out[k], r)
	}
	return out
}

func indexBy[R model.Record](rows []R) map[string]R {
	out := make(map[string]R, len(rows))
	for _, r := range rows {
		out[r.RecordID()] = r
	}
	return out
}

// pick resolves ids against index in order, skipping dangling references.
func pick[R any](index map[string]R, ids []string, logger *slog.Logger, kind string) []R {
	out := make([]R, 0, len(ids))
	for _, id := range ids {
		r, ok := index[id]
		if !ok {
			logger.Warn("dangling drill-down reference", "kind", kind, "ref", id)
			continue
		}
		out = append(out, r)
	}
	return out
}
