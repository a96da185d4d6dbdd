package dto

import "time"

// HealthResponse is returned by the liveness and readiness endpoints
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Database  string    `json:"database,omitempty" example:"up"`
	Timestamp time.Time `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}
