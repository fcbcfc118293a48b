package model

import "time"

// Coupon field names.
const (
	FieldCouponActivityID   = "activityId"
	FieldCouponActivityName = "activityName"
	FieldCouponType         = "type"
)

// CouponStatus is the issuing state of a coupon batch.
type CouponStatus string

const (
	CouponStatusNotStarted CouponStatus = "not_started"
	CouponStatusIssuing    CouponStatus = "issuing"
	CouponStatusPaused     CouponStatus = "paused"
	CouponStatusEnded      CouponStatus = "ended"
)

// Coupon is a coupon batch issued under an activity.
//
// MerchantIDs and ProductIDs name the eligible merchants and products.
// ZeroUsageRetailers is computed upstream when the batch is settled and is
// carried on the record as-is.
type Coupon struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	ActivityID         string        `json:"activityId"`
	ActivityName       string        `json:"activityName"`
	Status             CouponStatus  `json:"status"`
	Type               string        `json:"type"`
	Discount           float64       `json:"discount"`
	IssuedCount        int64         `json:"issuedCount"`
	UsedCount          int64         `json:"usedCount"`
	StartDate          Date          `json:"startDate"`
	EndDate            Date          `json:"endDate"`
	MerchantIDs        []string      `json:"merchantIds,omitempty"`
	ProductIDs         []string      `json:"productIds,omitempty"`
	ZeroUsageRetailers []RetailerRef `json:"zeroUsageRetailers,omitempty"`
}

// RecordID implements Record.
func (c Coupon) RecordID() string { return c.ID }

// Field implements Record.
func (c Coupon) Field(name string) []string {
	switch name {
	case FieldID:
		return one(c.ID)
	case FieldName:
		return one(c.Name)
	case FieldStatus:
		return one(string(c.Status))
	case FieldCouponActivityID:
		return one(c.ActivityID)
	case FieldCouponActivityName:
		return one(c.ActivityName)
	case FieldCouponType:
		return one(c.Type)
	}
	return nil
}

// Date implements Record.
func (c Coupon) Date(name string) (time.Time, bool) {
	switch name {
	case FieldStartDate:
		return dateValue(c.StartDate)
	case FieldEndDate:
		return dateValue(c.EndDate)
	}
	return time.Time{}, false
}

// UsageRate returns UsedCount/IssuedCount, or 0 for a batch with nothing issued.
func (c Coupon) UsageRate() float64 {
	if c.IssuedCount <= 0 {
		return 0
	}
	return float64(c.UsedCount) / float64(c.IssuedCount)
}
