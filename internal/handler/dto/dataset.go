// Package dto provides Data Transfer Objects for API responses.
package dto

// Error codes carried in ErrorResponse.Code.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeUnknownKind      = "UNKNOWN_KIND"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// DatasetInfo describes one collection in the index.
type DatasetInfo struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Href  string `json:"href"`
}

// DatasetIndexResponse lists the collections the API serves.
type DatasetIndexResponse struct {
	Data []DatasetInfo `json:"data"`
}
