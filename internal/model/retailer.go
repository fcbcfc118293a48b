package model

import "time"

// Retailer field names.
const (
	FieldRetailerRegion  = "region"
	FieldRetailerChannel = "channel"
)

// Retailer is a store that redeems coupons.
type Retailer struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Region     string       `json:"region"`
	Channel    string       `json:"channel"`
	Status     string       `json:"status"`
	GMV        float64      `json:"gmv"`
	CouponUsed int64        `json:"couponUsed"`
	Trend      *TrendSample `json:"trend,omitempty"`
}

// RecordID implements Record.
func (r Retailer) RecordID() string { return r.ID }

// Field implements Record.
func (r Retailer) Field(name string) []string {
	switch name {
	case FieldID:
		return one(r.ID)
	case FieldName:
		return one(r.Name)
	case FieldStatus:
		return one(r.Status)
	case FieldRetailerRegion:
		return one(r.Region)
	case FieldRetailerChannel:
		return one(r.Channel)
	}
	return nil
}

// Date implements Record. Retailers carry no active interval.
func (r Retailer) Date(string) (time.Time, bool) { return time.Time{}, false }

// Ref returns the short form stored on coupons.
func (r Retailer) Ref() RetailerRef {
	return RetailerRef{ID: r.ID, Name: r.Name, Region: r.Region}
}

// RetailerRef is the short retailer form embedded in other records.
type RetailerRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// RecordID implements Record.
func (r RetailerRef) RecordID() string { return r.ID }

// Field implements Record.
func (r RetailerRef) Field(name string) []string {
	switch name {
	case FieldID:
		return one(r.ID)
	case FieldName:
		return one(r.Name)
	case FieldRetailerRegion:
		return one(r.Region)
	}
	return nil
}

// Date implements Record.
func (r RetailerRef) Date(string) (time.Time, bool) { return time.Time{}, false }
