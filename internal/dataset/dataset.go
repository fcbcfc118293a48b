// Package dataset loads the console's static record collections.
package dataset

import (
	"errors"
	"fmt"

	"github.com/promodesk/promodesk/internal/model"
)

// Collection kinds. Each kind is stored as "<kind>.json" and served at
// /api/v1/datasets/<kind>.
const (
	KindActivities      = "activities"
	KindCoupons         = "coupons"
	KindRetailers       = "retailers"
	KindProducts        = "products"
	KindMonitoringTasks = "monitoringTasks"
	KindReceiveRecords  = "receiveRecords"
	KindVerifyRecords   = "verifyRecords"
	KindMerchants       = "merchants"
	KindPriceRecords    = "priceRecords"
)

// Kinds lists every collection kind in load order.
var Kinds = []string{
	KindActivities,
	KindCoupons,
	KindRetailers,
	KindProducts,
	KindMonitoringTasks,
	KindReceiveRecords,
	KindVerifyRecords,
	KindMerchants,
	KindPriceRecords,
}

// ViewKinds are the collections behind the console's list views. A dataset
// missing any of them cannot render a view.
var ViewKinds = []string{
	KindActivities,
	KindCoupons,
	KindRetailers,
	KindProducts,
	KindMonitoringTasks,
}

// ErrUnknownKind is returned for a collection kind not in Kinds.
var ErrUnknownKind = errors.New("unknown dataset kind")

// Dataset holds every collection the console renders. It is loaded once and
// treated as read-only afterwards.
type Dataset struct {
	Activities      []model.Activity
	Coupons         []model.Coupon
	Retailers       []model.Retailer
	Products        []model.Product
	MonitoringTasks []model.MonitoringTask
	ReceiveRecords  []model.ReceiveRecord
	VerifyRecords   []model.VerifyRecord
	Merchants       []model.Merchant
	PriceRecords    []model.PriceRecord
}

// Collection returns the slice stored under kind.
func (d *Dataset) Collection(kind string) (any, error) {
	switch kind {
	case KindActivities:
		return d.Activities, nil
	case KindCoupons:
		return d.Coupons, nil
	case KindRetailers:
		return d.Retailers, nil
	case KindProducts:
		return d.Products, nil
	case KindMonitoringTasks:
		return d.MonitoringTasks, nil
	case KindReceiveRecords:
		return d.ReceiveRecords, nil
	case KindVerifyRecords:
		return d.VerifyRecords, nil
	case KindMerchants:
		return d.Merchants, nil
	case KindPriceRecords:
		return d.PriceRecords, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// target returns the pointer a decoder fills for kind.
func (d *Dataset) target(kind string) (any, error) {
	switch kind {
	case KindActivities:
		return &d.Activities, nil
	case KindCoupons:
		return &d.Coupons, nil
	case KindRetailers:
		return &d.Retailers, nil
	case KindProducts:
		return &d.Products, nil
	case KindMonitoringTasks:
		return &d.MonitoringTasks, nil
	case KindReceiveRecords:
		return &d.ReceiveRecords, nil
	case KindVerifyRecords:
		return &d.VerifyRecords, nil
	case KindMerchants:
		return &d.Merchants, nil
	case KindPriceRecords:
		return &d.PriceRecords, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Counts returns the number of rows per kind.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		KindActivities:      len(d.Activities),
		KindCoupons:         len(d.Coupons),
		KindRetailers:       len(d.Retailers),
		KindProducts:        len(d.Products),
		KindMonitoringTasks: len(d.MonitoringTasks),
		KindReceiveRecords:  len(d.ReceiveRecords),
		KindVerifyRecords:   len(d.VerifyRecords),
		KindMerchants:       len(d.Merchants),
		KindPriceRecords:    len(d.PriceRecords),
	}
}

// Empty returns the kinds among kinds that hold no rows, in argument order.
func (d *Dataset) Empty(kinds ...string) []string {
	counts := d.Counts()
	var out []string
	for _, kind := range kinds {
		if counts[kind] == 0 {
			out = append(out, kind)
		}
	}
	return out
}
