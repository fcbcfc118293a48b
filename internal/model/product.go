package model

import "time"

// Product field names.
const (
	FieldProductCategory = "category"
	FieldProductBrand    = "brand"
)

// Product is a sellable SKU.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
}

// RecordID implements Record.
func (p Product) RecordID() string { return p.ID }

// Field implements Record.
func (p Product) Field(name string) []string {
	switch name {
	case FieldID:
		return one(p.ID)
	case FieldName:
		return one(p.Name)
	case FieldStatus:
		return one(p.Status)
	case FieldProductCategory:
		return one(p.Category)
	case FieldProductBrand:
		return one(p.Brand)
	}
	return nil
}

// Date implements Record.
func (p Product) Date(string) (time.Time, bool) { return time.Time{}, false }
