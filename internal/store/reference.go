package store

import (
	"gorm.io/gorm"

	"geoguia/internal/models"
)

// RouteUpdate carries a partial route update; nil fields are left alone.
type RouteUpdate struct {
	Name                 *string
	Description          *string
	OriginName           *string
	DestinationName      *string
	Path                 *models.Path
	DistanceKm           *float64
	EstimatedDurationMin *int
	Active               *bool
}

// CompanyUpdate carries a partial company update.
type CompanyUpdate struct {
	Name             *string
	FrequencyMin     *int
	Fare             *float64
	ReliabilityScore *float64
	Phone            *string
	Email            *string
	Active           *bool
}

// StopUpdate carries a partial stop update.
type StopUpdate struct {
	Name       *string
	Lat        *float64
	Lng        *float64
	Address    *string
	IsTerminal *bool
	HasShelter *bool
	Active     *bool
}

// --- Routes ---

func (s *Store) CreateRoute(route *models.Route) error {
	return translate(s.db.Create(route).Error)
}

func (s *Store) GetRoute(id uint) (*models.Route, error) {
	var route models.Route
	if err := s.db.Preload("Companies").Preload("Stops").First(&route, id).Error; err != nil {
		return nil, translate(err)
	}
	return &route, nil
}

func (s *Store) ListRoutes() ([]models.Route, error) {
	var routes []models.Route
	if err := s.db.Order("id").Find(&routes).Error; err != nil {
		return nil, translate(err)
	}
	return routes, nil
}

func (s *Store) UpdateRoute(id uint, upd RouteUpdate) (*models.Route, error) {
	var route models.Route
	if err := s.db.First(&route, id).Error; err != nil {
		return nil, translate(err)
	}
	if upd.Name != nil {
		route.Name = *upd.Name
	}
	if upd.Description != nil {
		route.Description = *upd.Description
	}
	if upd.OriginName != nil {
		route.OriginName = *upd.OriginName
	}
	if upd.DestinationName != nil {
		route.DestinationName = *upd.DestinationName
	}
	if upd.Path != nil {
		route.Path = *upd.Path
	}
	if upd.DistanceKm != nil {
		route.DistanceKm = *upd.DistanceKm
	}
	if upd.EstimatedDurationMin != nil {
		route.EstimatedDurationMin = *upd.EstimatedDurationMin
	}
	if upd.Active != nil {
		route.Active = *upd.Active
	}
	if err := s.db.Save(&route).Error; err != nil {
		return nil, translate(err)
	}
	return &route, nil
}

// DeactivateRoute soft-disables a route without touching history.
func (s *Store) DeactivateRoute(id uint) error {
	active := false
	_, err := s.UpdateRoute(id, RouteUpdate{Active: &active})
	return err
}

// DeleteRoute removes a route for good, in one transaction: its
// companies go with it, its stops keep their row with route_id
// cleared. Mirrors the ON DELETE actions declared on the schema so the
// behavior holds on every dialect.
func (s *Store) DeleteRoute(id uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		var route models.Route
		if err := tx.First(&route, id).Error; err != nil {
			return err
		}
		if err := tx.Where("route_id = ?", id).Delete(&models.Company{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Stop{}).Where("route_id = ?", id).Update("route_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&route).Error
	}))
}

// --- Companies ---

func (s *Store) CreateCompany(company *models.Company) error {
	return translate(s.db.Create(company).Error)
}

func (s *Store) GetCompany(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.db.First(&company, id).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (s *Store) ListCompanies() ([]models.Company, error) {
	var companies []models.Company
	if err := s.db.Order("id").Find(&companies).Error; err != nil {
		return nil, translate(err)
	}
	return companies, nil
}

// ListActiveCompanies is the public read surface for operators.
func (s *Store) ListActiveCompanies() ([]models.Company, error) {
	var companies []models.Company
	if err := s.db.Where("active = ?", true).Order("id").Find(&companies).Error; err != nil {
		return nil, translate(err)
	}
	return companies, nil
}

func (s *Store) UpdateCompany(id uint, upd CompanyUpdate) (*models.Company, error) {
	var company models.Company
	if err := s.db.First(&company, id).Error; err != nil {
		return nil, translate(err)
	}
	if upd.Name != nil {
		company.Name = *upd.Name
	}
	if upd.FrequencyMin != nil {
		company.FrequencyMin = *upd.FrequencyMin
	}
	if upd.Fare != nil {
		company.Fare = *upd.Fare
	}
	if upd.ReliabilityScore != nil {
		company.ReliabilityScore = *upd.ReliabilityScore
	}
	if upd.Phone != nil {
		company.Phone = *upd.Phone
	}
	if upd.Email != nil {
		company.Email = *upd.Email
	}
	if upd.Active != nil {
		company.Active = *upd.Active
	}
	if err := s.db.Save(&company).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (s *Store) DeactivateCompany(id uint) error {
	active := false
	_, err := s.UpdateCompany(id, CompanyUpdate{Active: &active})
	return err
}

// --- Stops ---

func (s *Store) CreateStop(stop *models.Stop) error {
	return translate(s.db.Create(stop).Error)
}

func (s *Store) GetStop(id uint) (*models.Stop, error) {
	var stop models.Stop
	if err := s.db.First(&stop, id).Error; err != nil {
		return nil, translate(err)
	}
	return &stop, nil
}

func (s *Store) ListStops() ([]models.Stop, error) {
	var stops []models.Stop
	if err := s.db.Order("id").Find(&stops).Error; err != nil {
		return nil, translate(err)
	}
	return stops, nil
}

func (s *Store) ListStopsByRoute(routeID uint) ([]models.Stop, error) {
	var stops []models.Stop
	if err := s.db.Where("route_id = ?", routeID).Order("id").Find(&stops).Error; err != nil {
		return nil, translate(err)
	}
	return stops, nil
}

func (s *Store) UpdateStop(id uint, upd StopUpdate) (*models.Stop, error) {
	var stop models.Stop
	if err := s.db.First(&stop, id).Error; err != nil {
		return nil, translate(err)
	}
	if upd.Name != nil {
		stop.Name = *upd.Name
	}
	if upd.Lat != nil {
		stop.Lat = *upd.Lat
	}
	if upd.Lng != nil {
		stop.Lng = *upd.Lng
	}
	if upd.Address != nil {
		stop.Address = *upd.Address
	}
	if upd.IsTerminal != nil {
		stop.IsTerminal = *upd.IsTerminal
	}
	if upd.HasShelter != nil {
		stop.HasShelter = *upd.HasShelter
	}
	if upd.Active != nil {
		stop.Active = *upd.Active
	}
	if err := s.db.Save(&stop).Error; err != nil {
		return nil, translate(err)
	}
	return &stop, nil
}

func (s *Store) DeactivateStop(id uint) error {
	active := false
	_, err := s.UpdateStop(id, StopUpdate{Active: &active})
	return err
}
