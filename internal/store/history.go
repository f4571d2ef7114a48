package store

import (
	"strings"

	"github.com/google/uuid"

	"geoguia/internal/models"
)

// History is insert-only: no update or delete operations exist on the
// types below, so rows are permanent once written.

// LogRouteRequest persists one trip query. A blank session id gets a
// generated UUID so distinct-user counting still works.
func (s *Store) LogRouteRequest(req *models.RouteRequest) error {
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return translate(s.db.Create(req).Error)
}

// SaveRouteResult persists a computed suggestion. RequestID may be
// nil; RouteID must reference an existing route or the insert is
// rejected with ErrForeignKey.
func (s *Store) SaveRouteResult(res *models.RouteResult) error {
	return translate(s.db.Create(res).Error)
}

func (s *Store) GetRouteResult(id uint) (*models.RouteResult, error) {
	var res models.RouteResult
	if err := s.db.Preload("Request").First(&res, id).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

// RecordReport logs an exported report artifact.
func (s *Store) RecordReport(rep *models.GeneratedReport) error {
	if rep.ReportType == "" {
		rep.ReportType = "route_summary"
	}
	return translate(s.db.Create(rep).Error)
}

// LogIntegrationEvent appends one external-workflow log entry.
func (s *Store) LogIntegrationEvent(ev *models.IntegrationEvent) error {
	if ev.Status == "" {
		ev.Status = models.EventStatusPending
	}
	return translate(s.db.Create(ev).Error)
}

func (s *Store) ListIntegrationEvents(eventType string, limit int) ([]models.IntegrationEvent, error) {
	q := s.db.Order("created_at DESC, id DESC")
	if eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var events []models.IntegrationEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, translate(err)
	}
	return events, nil
}

// InsertFeedback stores a post-hoc rating for a result. Rating bounds
// are enforced by the check constraint, not here.
func (s *Store) InsertFeedback(fb *models.UserFeedback) error {
	return translate(s.db.Create(fb).Error)
}

// SearchDestinations returns known destination names matching the
// query, most requested first. A blank query lists everything. Backs
// the destination typeahead in the planning frontend.
func (s *Store) SearchDestinations(q string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + strings.ToLower(q) + "%"
	var names []string
	err := s.db.Model(&models.RouteRequest{}).
		Where("LOWER(destination_name) LIKE ?", pattern).
		Group("destination_name").
		Order("COUNT(*) DESC, destination_name").
		Limit(limit).
		Pluck("destination_name", &names).Error
	if err != nil {
		return nil, translate(err)
	}
	return names, nil
}

// PopularDestination is one entry of the top-destinations list.
type PopularDestination struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Statistics are the live overall totals the source app showed in its
// sidebar: request volume, system confidence, operator count and the
// most asked-for destinations.
type Statistics struct {
	TotalRequests       int64                `json:"total_requests"`
	AverageConfidence   float64              `json:"average_confidence"`
	ActiveCompanies     int64                `json:"active_companies"`
	PopularDestinations []PopularDestination `json:"popular_destinations"`
}

func (s *Store) Statistics(topN int) (*Statistics, error) {
	if topN <= 0 {
		topN = 5
	}
	var stats Statistics

	if err := s.db.Model(&models.RouteRequest{}).Count(&stats.TotalRequests).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.Model(&models.Company{}).Where("active = ?", true).Count(&stats.ActiveCompanies).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.Model(&models.RouteResult{}).Select("COALESCE(AVG(confidence_score), 0)").Scan(&stats.AverageConfidence).Error; err != nil {
		return nil, translate(err)
	}
	err := s.db.Model(&models.RouteRequest{}).
		Select("destination_name AS name, COUNT(*) AS count").
		Group("destination_name").
		Order("count DESC").
		Limit(topN).
		Scan(&stats.PopularDestinations).Error
	if err != nil {
		return nil, translate(err)
	}
	return &stats, nil
}
