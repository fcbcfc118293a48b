package model

import "time"

// Activity field names.
const (
	FieldActivityType    = "type"
	FieldActivityChannel = "channel"
)

// ActivityStatus is the lifecycle state shown on the activities page.
type ActivityStatus string

const (
	ActivityStatusDraft    ActivityStatus = "draft"
	ActivityStatusPending  ActivityStatus = "pending"
	ActivityStatusRunning  ActivityStatus = "running"
	ActivityStatusFinished ActivityStatus = "finished"
)

// Activity is a marketing campaign. Money metrics are in currency units.
type Activity struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Status    ActivityStatus `json:"status"`
	Channel   string         `json:"channel"`
	Budget    float64        `json:"budget"`
	Consumed  float64        `json:"consumed"`
	GMV       float64        `json:"gmv"`
	StartDate Date           `json:"startDate"`
	EndDate   Date           `json:"endDate"`
	Trend     *TrendSample   `json:"trend,omitempty"`
}

// RecordID implements Record.
func (a Activity) RecordID() string { return a.ID }

// Field implements Record.
func (a Activity) Field(name string) []string {
	switch name {
	case FieldID:
		return one(a.ID)
	case FieldName:
		return one(a.Name)
	case FieldStatus:
		return one(string(a.Status))
	case FieldActivityType:
		return one(a.Type)
	case FieldActivityChannel:
		return one(a.Channel)
	}
	return nil
}

// Date implements Record.
func (a Activity) Date(name string) (time.Time, bool) {
	switch name {
	case FieldStartDate:
		return dateValue(a.StartDate)
	case FieldEndDate:
		return dateValue(a.EndDate)
	}
	return time.Time{}, false
}

// BudgetUsage returns Consumed/Budget, or 0 when no budget is set.
func (a Activity) BudgetUsage() float64 {
	if a.Budget <= 0 {
		return 0
	}
	return a.Consumed / a.Budget
}
