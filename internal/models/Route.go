package models

import (
	"time"

	"gorm.io/gorm"
)

// Route represents a transit path served by one or more companies.
// The path is an ordered waypoint sequence; order is the route.
type Route struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name            string `json:"name" gorm:"not null"`
	Description     string `json:"description"`
	OriginName      string `json:"origin_name"`
	DestinationName string `json:"destination_name"`

	Path Path `json:"path"`

	DistanceKm           float64 `json:"distance_km" gorm:"type:decimal(6,2)"`
	EstimatedDurationMin int     `json:"estimated_duration_min"`
	Active               bool    `json:"active"`

	// Companies die with their route; stops only lose the reference.
	Companies []Company `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"companies,omitempty"`
	Stops     []Stop    `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stops,omitempty"`
}

// BeforeUpdate refreshes the update timestamp inside the same write,
// matching the set_updated_at trigger installed on postgres.
func (r *Route) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("UpdatedAt", time.Now())
	return nil
}
