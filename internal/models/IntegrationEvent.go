package models

import (
	"time"

	"gorm.io/datatypes"
)

// Integration event statuses.
const (
	EventStatusSuccess = "success"
	EventStatusError   = "error"
	EventStatusPending = "pending"
)

// IntegrationEvent is an append-only log entry for an external
// workflow step. Payload is schema-free on purpose: callbacks from
// heterogeneous systems land here without schema changes, and the
// shape per event_type is the consumer's problem.
type IntegrationEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	EventType string            `json:"event_type" gorm:"not null;index"`
	Payload   datatypes.JSONMap `json:"payload" gorm:"type:jsonb"`

	Status           string `json:"status" gorm:"not null;default:'pending';check:status IN ('success','error','pending')"`
	ErrorMessage     string `json:"error_message"`
	ProcessingTimeMs *int   `json:"processing_time_ms"`
}
