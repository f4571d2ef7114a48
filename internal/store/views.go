package store

import (
	"sort"
	"time"

	"geoguia/internal/models"
)

// The three reporting projections. Pure read transforms over history
// and reference data, recomputed on each call; postgres deployments
// additionally expose them as SQL views (internal/config/policies.go).

// RoutePopularity is one row of the popularity ranking.
type RoutePopularity struct {
	RouteID       uint    `json:"route_id"`
	RouteName     string  `json:"route_name"`
	TimesUsed     int64   `json:"times_used"`
	AvgConfidence float64 `json:"avg_confidence"`
}

func (s *Store) RoutePopularity() ([]RoutePopularity, error) {
	var rows []RoutePopularity
	err := s.db.Model(&models.RouteResult{}).
		Select("route_results.route_id AS route_id, routes.name AS route_name, COUNT(route_results.id) AS times_used, AVG(route_results.confidence_score) AS avg_confidence").
		Joins("JOIN routes ON routes.id = route_results.route_id").
		Group("route_results.route_id, routes.name").
		Order("times_used DESC, route_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// DailyDemand is the per-day request volume with the fare spread of
// the results produced that day.
type DailyDemand struct {
	Date          string  `json:"date"`
	TotalRequests int64   `json:"total_requests"`
	MinFare       float64 `json:"min_fare"`
	MaxFare       float64 `json:"max_fare"`
	AvgFare       float64 `json:"avg_fare"`
}

// DailyDemandRange rolls up request volume and result fares per
// calendar day over [from, to). Grouping happens in Go so the same
// code serves postgres and the sqlite test rig.
func (s *Store) DailyDemandRange(from, to time.Time) ([]DailyDemand, error) {
	var requests []models.RouteRequest
	err := s.db.Select("id", "created_at").
		Where("created_at >= ? AND created_at < ?", from, to).
		Find(&requests).Error
	if err != nil {
		return nil, translate(err)
	}
	var results []models.RouteResult
	err = s.db.Select("id", "created_at", "estimated_fare").
		Where("created_at >= ? AND created_at < ?", from, to).
		Find(&results).Error
	if err != nil {
		return nil, translate(err)
	}

	byDay := map[string]*DailyDemand{}
	day := func(t time.Time) string { return t.UTC().Format("2006-01-02") }
	for _, req := range requests {
		d := day(req.CreatedAt)
		row, ok := byDay[d]
		if !ok {
			row = &DailyDemand{Date: d}
			byDay[d] = row
		}
		row.TotalRequests++
	}
	fareSum := map[string]float64{}
	fareCount := map[string]int64{}
	for _, res := range results {
		d := day(res.CreatedAt)
		row, ok := byDay[d]
		if !ok {
			row = &DailyDemand{Date: d}
			byDay[d] = row
		}
		if fareCount[d] == 0 || res.EstimatedFare < row.MinFare {
			row.MinFare = res.EstimatedFare
		}
		if fareCount[d] == 0 || res.EstimatedFare > row.MaxFare {
			row.MaxFare = res.EstimatedFare
		}
		fareSum[d] += res.EstimatedFare
		fareCount[d]++
	}
	out := make([]DailyDemand, 0, len(byDay))
	for d, row := range byDay {
		if n := fareCount[d]; n > 0 {
			row.AvgFare = fareSum[d] / float64(n)
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// CompanyStanding is one row of the operator leaderboard.
type CompanyStanding struct {
	CompanyID        uint    `json:"company_id"`
	CompanyName      string  `json:"company_name"`
	RouteName        string  `json:"route_name"`
	ReliabilityScore float64 `json:"reliability_score"`
	ResultsServed    int64   `json:"results_served"`
}

// CompanyLeaderboard ranks active operators by reliability, then by
// how many results chose their route.
func (s *Store) CompanyLeaderboard() ([]CompanyStanding, error) {
	var rows []CompanyStanding
	err := s.db.Model(&models.Company{}).
		Select("companies.id AS company_id, companies.name AS company_name, routes.name AS route_name, companies.reliability_score AS reliability_score, COUNT(route_results.id) AS results_served").
		Joins("JOIN routes ON routes.id = companies.route_id").
		Joins("LEFT JOIN route_results ON route_results.route_id = companies.route_id").
		Where("companies.active = ?", true).
		Group("companies.id, companies.name, routes.name, companies.reliability_score").
		Order("reliability_score DESC, results_served DESC, company_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
