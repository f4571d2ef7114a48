package models

import (
	"time"

	"gorm.io/gorm"
)

// Company represents an operator running service along a route.
// A company row is meaningless without its route: route deletion
// cascades here (see the association on Route).
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `json:"name" gorm:"not null"`
	RouteID uint   `json:"route_id" gorm:"index"`

	FrequencyMin     int     `json:"frequency_min"`
	Fare             float64 `json:"fare" gorm:"type:decimal(5,2)"`
	ReliabilityScore float64 `json:"reliability_score" gorm:"type:decimal(3,2);check:reliability_score >= 0 AND reliability_score <= 1"`

	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

func (c *Company) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("UpdatedAt", time.Now())
	return nil
}
