// Package seed loads the initial Trujillo reference data: the routes
// the planner recommends most, their operators and boarding points.
package seed

import (
	"gorm.io/gorm"

	"geoguia/internal/models"
)

func uintPtr(v uint) *uint { return &v }

// Load inserts the reference data once. A non-empty routes table means
// the seed already ran and the call is a no-op.
func Load(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Route{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	routes := []models.Route{
		{
			Name:            "Centro - Mall Aventura Plaza",
			Description:     "Por Av. España y Av. América Sur",
			OriginName:      "Plaza de Armas",
			DestinationName: "Mall Aventura Plaza",
			Path: models.Path{
				{Lat: -8.111700, Lng: -79.028800},
				{Lat: -8.114722, Lng: -79.038611},
				{Lat: -8.122900, Lng: -79.037400},
				{Lat: -8.133100, Lng: -79.031900},
			},
			DistanceKm:           4.8,
			EstimatedDurationMin: 25,
			Active:               true,
		},
		{
			Name:            "Centro - Universidad Nacional de Trujillo",
			Description:     "Por Av. Juan Pablo II",
			OriginName:      "Plaza de Armas",
			DestinationName: "Universidad Nacional de Trujillo",
			Path: models.Path{
				{Lat: -8.111700, Lng: -79.028800},
				{Lat: -8.108900, Lng: -79.036800},
				{Lat: -8.112500, Lng: -79.046700},
				{Lat: -8.114800, Lng: -79.054300},
			},
			DistanceKm:           3.9,
			EstimatedDurationMin: 20,
			Active:               true,
		},
		{
			Name:            "Centro - Hospital Regional",
			Description:     "Por Av. Mansiche",
			OriginName:      "Plaza de Armas",
			DestinationName: "Hospital Regional Docente",
			Path: models.Path{
				{Lat: -8.111700, Lng: -79.028800},
				{Lat: -8.106200, Lng: -79.033900},
				{Lat: -8.100800, Lng: -79.040600},
			},
			DistanceKm:           2.7,
			EstimatedDurationMin: 15,
			Active:               true,
		},
	}
	if err := db.Create(&routes).Error; err != nil {
		return err
	}

	companies := []models.Company{
		{Name: "Empresa de Transportes Nuevo California", RouteID: routes[0].ID, FrequencyMin: 8, Fare: 1.50, ReliabilityScore: 0.86, Phone: "+51 44 223344", Active: true},
		{Name: "Transportes El Cortijo", RouteID: routes[0].ID, FrequencyMin: 12, Fare: 1.20, ReliabilityScore: 0.74, Active: true},
		{Name: "Empresa Huanchaco", RouteID: routes[1].ID, FrequencyMin: 10, Fare: 1.50, ReliabilityScore: 0.81, Phone: "+51 44 556677", Active: true},
		{Name: "Transportes Salaverry", RouteID: routes[2].ID, FrequencyMin: 15, Fare: 1.00, ReliabilityScore: 0.68, Active: true},
	}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}

	stops := []models.Stop{
		{Name: "Paradero Plaza de Armas", RouteID: uintPtr(routes[0].ID), Lat: -8.111900, Lng: -79.028600, Address: "Jr. Pizarro 402", IsTerminal: true, HasShelter: true, Active: true},
		{Name: "Paradero Av. España", RouteID: uintPtr(routes[0].ID), Lat: -8.114500, Lng: -79.038200, Address: "Av. España cdra. 18", HasShelter: true, Active: true},
		{Name: "Paradero Mall Aventura", RouteID: uintPtr(routes[0].ID), Lat: -8.133000, Lng: -79.032100, Address: "Av. América Sur 3100", IsTerminal: true, HasShelter: true, Active: true},
		{Name: "Paradero Av. Juan Pablo II", RouteID: uintPtr(routes[1].ID), Lat: -8.112300, Lng: -79.046400, Address: "Av. Juan Pablo II cdra. 5", Active: true},
		{Name: "Paradero Ciudad Universitaria", RouteID: uintPtr(routes[1].ID), Lat: -8.114900, Lng: -79.054100, Address: "Av. Juan Pablo II s/n", IsTerminal: true, HasShelter: true, Active: true},
		{Name: "Paradero Av. Mansiche", RouteID: uintPtr(routes[2].ID), Lat: -8.106000, Lng: -79.034100, Address: "Av. Mansiche cdra. 10", HasShelter: true, Active: true},
		{Name: "Paradero Hospital Regional", RouteID: uintPtr(routes[2].ID), Lat: -8.100900, Lng: -79.040400, Address: "Av. Mansiche 795", IsTerminal: true, Active: true},
	}
	return db.Create(&stops).Error
}
