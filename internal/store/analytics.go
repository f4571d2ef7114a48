package store

import (
	"time"

	"gorm.io/gorm/clause"

	"geoguia/internal/models"
)

// analyticsColumns are the metrics overwritten when a day is
// recomputed.
var analyticsColumns = []string{
	"total_requests",
	"successful_results",
	"avg_distance_km",
	"avg_time_min",
	"avg_fare",
	"top_destination",
	"peak_hour",
	"unique_users",
	"updated_at",
}

// AggregateDay recomputes the metrics for one calendar date (UTC) and
// upserts the single route_analytics row for it. Re-running is safe:
// the ON CONFLICT clause overwrites instead of duplicating.
func (s *Store) AggregateDay(day time.Time) (*models.RouteAnalytics, error) {
	y, m, d := day.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var requests []models.RouteRequest
	err := s.db.Select("id", "created_at", "session_id", "destination_name").
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&requests).Error
	if err != nil {
		return nil, translate(err)
	}

	var results []models.RouteResult
	err = s.db.Select("id", "created_at", "distance_km", "estimated_time_min", "estimated_fare").
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&results).Error
	if err != nil {
		return nil, translate(err)
	}

	row := models.RouteAnalytics{
		Date:              models.DateOf(start),
		TotalRequests:     len(requests),
		SuccessfulResults: len(results),
	}

	sessions := map[string]struct{}{}
	hours := [24]int{}
	destinations := map[string]int{}
	for _, req := range requests {
		if req.SessionID != "" {
			sessions[req.SessionID] = struct{}{}
		}
		hours[req.CreatedAt.UTC().Hour()]++
		destinations[req.DestinationName]++
	}
	row.UniqueUsers = len(sessions)

	if len(requests) > 0 {
		peak := 0
		for h := 1; h < 24; h++ {
			if hours[h] > hours[peak] {
				peak = h
			}
		}
		row.PeakHour = &peak

		best := ""
		for name, n := range destinations {
			if best == "" || n > destinations[best] || (n == destinations[best] && name < best) {
				best = name
			}
		}
		row.TopDestination = best
	}

	if len(results) > 0 {
		var distance, minutes, fare float64
		for _, res := range results {
			distance += res.DistanceKm
			minutes += float64(res.EstimatedTimeMin)
			fare += res.EstimatedFare
		}
		n := float64(len(results))
		row.AvgDistanceKm = distance / n
		row.AvgTimeMin = minutes / n
		row.AvgFare = fare / n
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns(analyticsColumns),
	}).Create(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// AggregateRange backfills one row per day over [from, to].
func (s *Store) AggregateRange(from, to time.Time) ([]models.RouteAnalytics, error) {
	var out []models.RouteAnalytics
	for day := from.UTC().Truncate(24 * time.Hour); !day.After(to.UTC()); day = day.Add(24 * time.Hour) {
		row, err := s.AggregateDay(day)
		if err != nil {
			return out, err
		}
		out = append(out, *row)
	}
	return out, nil
}

// AnalyticsWindow returns the stored rows for the trailing N days,
// oldest first, the shape the analytics dashboard consumes.
func (s *Store) AnalyticsWindow(days int) ([]models.RouteAnalytics, error) {
	if days <= 0 {
		days = 30
	}
	since := models.DateOf(time.Now().UTC().AddDate(0, 0, -days))
	var rows []models.RouteAnalytics
	if err := s.db.Where("date >= ?", since).Order("date").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
