package model

import (
	"time"

	"github.com/google/uuid"
)

// Detail field names.
const (
	FieldActivityID   = "activityId"
	FieldCouponCode   = "couponCode"
	FieldUserID       = "userId"
	FieldChannel      = "channel"
	FieldRetailerName = "retailerName"
	FieldRegion       = "region"
	FieldTaskID       = "taskId"
	FieldPlatform     = "platform"
	FieldProductName  = "productName"
	FieldReceivedAt   = "receivedAt"
	FieldVerifiedAt   = "verifiedAt"
	FieldCollectedAt  = "collectedAt"
)

// ReceiveRecord is one coupon claim made during an activity.
type ReceiveRecord struct {
	ID         string `json:"id"`
	ActivityID string `json:"activityId"`
	CouponCode string `json:"couponCode"`
	UserID     string `json:"userId"`
	Channel    string `json:"channel"`
	ReceivedAt Date   `json:"receivedAt"`
}

func (r ReceiveRecord) RecordID() string { return r.ID }

func (r ReceiveRecord) Field(name string) []string {
	switch name {
	case FieldID:
		return one(r.ID)
	case FieldActivityID:
		return one(r.ActivityID)
	case FieldCouponCode:
		return one(r.CouponCode)
	case FieldUserID:
		return one(r.UserID)
	case FieldChannel:
		return one(r.Channel)
	}
	return nil
}

func (r ReceiveRecord) Date(name string) (time.Time, bool) {
	if name == FieldReceivedAt {
		return dateValue(r.ReceivedAt)
	}
	return time.Time{}, false
}

// VerifyRecord is one coupon redemption at a retailer.
type VerifyRecord struct {
	ID           string  `json:"id"`
	ActivityID   string  `json:"activityId"`
	CouponCode   string  `json:"couponCode"`
	RetailerName string  `json:"retailerName"`
	Amount       float64 `json:"amount"`
	VerifiedAt   Date    `json:"verifiedAt"`
}

func (v VerifyRecord) RecordID() string { return v.ID }

func (v VerifyRecord) Field(name string) []string {
	switch name {
	case FieldID:
		return one(v.ID)
	case FieldActivityID:
		return one(v.ActivityID)
	case FieldCouponCode:
		return one(v.CouponCode)
	case FieldRetailerName:
		return one(v.RetailerName)
	}
	return nil
}

func (v VerifyRecord) Date(name string) (time.Time, bool) {
	if name == FieldVerifiedAt {
		return dateValue(v.VerifiedAt)
	}
	return time.Time{}, false
}

// Merchant is a merchant a coupon may be redeemed with.
type Merchant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

func (m Merchant) RecordID() string { return m.ID }

func (m Merchant) Field(name string) []string {
	switch name {
	case FieldID:
		return one(m.ID)
	case FieldName:
		return one(m.Name)
	case FieldRegion:
		return one(m.Region)
	}
	return nil
}

func (m Merchant) Date(string) (time.Time, bool) { return time.Time{}, false }

// PriceRecord is one competitor price observed by a monitoring task.
type PriceRecord struct {
	ID          string    `json:"id"`
	TaskID      uuid.UUID `json:"taskId"`
	Platform    string    `json:"platform"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	CollectedAt Date      `json:"collectedAt"`
}

func (p PriceRecord) RecordID() string { return p.ID }

func (p PriceRecord) Field(name string) []string {
	switch name {
	case FieldID:
		return one(p.ID)
	case FieldTaskID:
		return one(p.TaskID.String())
	case FieldPlatform:
		return one(p.Platform)
	case FieldProductName:
		return one(p.ProductName)
	}
	return nil
}

func (p PriceRecord) Date(name string) (time.Time, bool) {
	if name == FieldCollectedAt {
		return dateValue(p.CollectedAt)
	}
	return time.Time{}, false
}
