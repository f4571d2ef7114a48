package models

import (
	"time"

	"gorm.io/gorm"
)

// Stop is a physical boarding/alighting point. RouteID is nullable:
// deleting a route detaches its stops instead of removing them, so
// historical results can keep pointing at a real location.
type Stop struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `json:"name" gorm:"not null"`
	RouteID *uint  `json:"route_id" gorm:"index"`

	Lat     float64 `json:"lat" gorm:"type:decimal(10,8);not null"`
	Lng     float64 `json:"lng" gorm:"type:decimal(11,8);not null"`
	Address string  `json:"address"`

	IsTerminal bool `json:"is_terminal"`
	HasShelter bool `json:"has_shelter"`
	Active     bool `json:"active"`
}

func (s *Stop) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("UpdatedAt", time.Now())
	return nil
}
