// Package view wires the filter, pagination, drill-down and trend engines
// into the console's five list views.
package view

import (
	"errors"
	"fmt"
	"sort"

	"github.com/promodesk/promodesk/internal/filter"
	"github.com/promodesk/promodesk/internal/model"
)

// View names.
const (
	Activities      = "activities"
	Coupons         = "coupons"
	Retailers       = "retailers"
	Products        = "products"
	MonitoringTasks = "monitoringTasks"
)

// ErrUnknownView is returned for a view name not in Names.
var ErrUnknownView = errors.New("unknown view")

// schemas lists the criteria keys each view recognizes.
var schemas = map[string]filter.Schema{
	Activities: {
		TextFields: []string{model.FieldName, model.FieldID},
		Keys:       []string{model.FieldStatus, model.FieldActivityType, model.FieldActivityChannel},
		StartField: model.FieldStartDate,
		EndField:   model.FieldEndDate,
	},
	Coupons: {
		TextFields: []string{model.FieldName, model.FieldID},
		Keys:       []string{model.FieldStatus, model.FieldCouponActivityName, model.FieldCouponType},
		StartField: model.FieldStartDate,
		EndField:   model.FieldEndDate,
	},
	Retailers: {
		TextFields: []string{model.FieldName, model.FieldID},
		Keys:       []string{model.FieldRetailerRegion, model.FieldRetailerChannel, model.FieldStatus},
	},
	Products: {
		TextFields: []string{model.FieldName, model.FieldID},
		Keys:       []string{model.FieldProductCategory, model.FieldProductBrand, model.FieldStatus},
	},
	MonitoringTasks: {
		TextFields: []string{model.FieldName},
		Keys:       []string{model.FieldStatus, model.FieldTaskCollectionTypes, model.FieldTaskMonitoringPlatforms},
		StartField: model.FieldStartDate,
		EndField:   model.FieldEndDate,
	},
}

// Schema returns the recognized criteria of a view.
func Schema(name string) (filter.Schema, error) {
	s, ok := schemas[name]
	if !ok {
		return filter.Schema{}, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
	return s, nil
}

// Names returns every view name in sorted order.
func Names() []string {
	names := make([]string, 0, len(schemas))
	for n := range schemas {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
