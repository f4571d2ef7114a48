package models

import (
	"time"

	"gorm.io/datatypes"
)

// RouteAnalytics holds the aggregated metrics for one calendar date.
// Exactly one row per date; the aggregator upserts on the date column.
type RouteAnalytics struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Date datatypes.Date `json:"date" gorm:"uniqueIndex;not null"`

	TotalRequests     int `json:"total_requests"`
	SuccessfulResults int `json:"successful_results"`

	AvgDistanceKm float64 `json:"avg_distance_km" gorm:"type:decimal(6,2)"`
	AvgTimeMin    float64 `json:"avg_time_min" gorm:"type:decimal(6,2)"`
	AvgFare       float64 `json:"avg_fare" gorm:"type:decimal(5,2)"`

	TopDestination string `json:"top_destination"`
	PeakHour       *int   `json:"peak_hour" gorm:"check:peak_hour >= 0 AND peak_hour <= 23"`
	UniqueUsers    int    `json:"unique_users"`
}

func (RouteAnalytics) TableName() string {
	return "route_analytics"
}

// DateOf normalizes a timestamp to its UTC calendar date, the form the
// unique index and upsert key on route_analytics expect.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
