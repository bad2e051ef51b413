package dto

import "time"

// APIResponse is the generic envelope used for non-resource payloads such as health checks
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
