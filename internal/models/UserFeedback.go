package models

import (
	"time"
)

// UserFeedback is a post-hoc accuracy rating tied to one result.
type UserFeedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	RouteResultID uint        `json:"route_result_id" gorm:"index;not null"`
	Result        RouteResult `gorm:"foreignKey:RouteResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"result,omitempty"`

	Rating  int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment string `json:"comment"`

	WasAccurate   *bool    `json:"was_accurate"`
	ActualFare    *float64 `json:"actual_fare" gorm:"type:decimal(5,2)"`
	ActualTimeMin *int     `json:"actual_time_min"`
}
