package models

import (
	"time"
)

// RouteRequest is one user trip query. Immutable history: rows are
// inserted once by the public write path and never touched again.
type RouteRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	OriginLat float64 `json:"origin_lat" gorm:"type:decimal(10,8);not null"`
	OriginLng float64 `json:"origin_lng" gorm:"type:decimal(11,8);not null"`

	DestinationName string   `json:"destination_name" gorm:"not null"`
	DestinationLat  *float64 `json:"destination_lat" gorm:"type:decimal(10,8)"`
	DestinationLng  *float64 `json:"destination_lng" gorm:"type:decimal(11,8)"`

	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	SessionID string `json:"session_id" gorm:"index"`
}
