package models

import (
	"time"
)

// RouteResult is a computed suggestion persisted by the external
// planning logic. RequestID stays nullable: a result can be stored
// without a logged request (synthetic or replayed results).
type RouteResult struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	RequestID *uint         `json:"request_id" gorm:"index"`
	Request   *RouteRequest `gorm:"foreignKey:RequestID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"request,omitempty"`

	RouteID uint  `json:"route_id" gorm:"index;not null"`
	Route   Route `gorm:"foreignKey:RouteID" json:"route,omitempty"`

	OriginLat float64 `json:"origin_lat" gorm:"type:decimal(10,8);not null"`
	OriginLng float64 `json:"origin_lng" gorm:"type:decimal(11,8);not null"`

	DestinationName string   `json:"destination_name"`
	DestinationLat  *float64 `json:"destination_lat" gorm:"type:decimal(10,8)"`
	DestinationLng  *float64 `json:"destination_lng" gorm:"type:decimal(11,8)"`

	BoardingLat      float64 `json:"boarding_lat" gorm:"type:decimal(10,8);not null"`
	BoardingLng      float64 `json:"boarding_lng" gorm:"type:decimal(11,8);not null"`
	BoardingStopName string  `json:"boarding_stop_name"`

	DistanceKm        float64 `json:"distance_km" gorm:"type:decimal(6,2)"`
	WalkingDistanceKm float64 `json:"walking_distance_km" gorm:"type:decimal(5,2)"`
	WalkingTimeMin    int     `json:"walking_time_min"`
	EstimatedTimeMin  int     `json:"estimated_time_min"`
	EstimatedFare     float64 `json:"estimated_fare" gorm:"type:decimal(5,2)"`

	ConfidenceScore float64 `json:"confidence_score" gorm:"type:decimal(3,2);check:confidence_score >= 0 AND confidence_score <= 1"`
}
