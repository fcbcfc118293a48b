package model

import (
	"time"

	"github.com/google/uuid"
)

// MonitoringTask field names.
const (
	FieldTaskCollectionTypes     = "collectionTypes"
	FieldTaskMonitoringPlatforms = "monitoringPlatforms"
)

// TaskStatus is the run state of a price-monitoring task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

// MonitoringTask collects competitor prices on one or more platforms.
type MonitoringTask struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Status              TaskStatus `json:"status"`
	CollectionTypes     []string   `json:"collectionTypes"`
	MonitoringPlatforms []string   `json:"monitoringPlatforms"`
	ProductCount        int        `json:"productCount"`
	StartDate           Date       `json:"startDate"`
	EndDate             Date       `json:"endDate"`
}

// RecordID implements Record.
func (t MonitoringTask) RecordID() string { return t.ID.String() }

// Field implements Record.
func (t MonitoringTask) Field(name string) []string {
	switch name {
	case FieldID:
		return one(t.ID.String())
	case FieldName:
		return one(t.Name)
	case FieldStatus:
		return one(string(t.Status))
	case FieldTaskCollectionTypes:
		return t.CollectionTypes
	case FieldTaskMonitoringPlatforms:
		return t.MonitoringPlatforms
	}
	return nil
}

// Date implements Record.
func (t MonitoringTask) Date(name string) (time.Time, bool) {
	switch name {
	case FieldStartDate:
		return dateValue(t.StartDate)
	case FieldEndDate:
		return dateValue(t.EndDate)
	}
	return time.Time{}, false
}
