package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoguia/internal/models"
)

func seedHistoryForDay(t *testing.T, s *Store, day time.Time) *models.Route {
	t.Helper()
	route := newTestRoute(t, s, "Centro - Mall Aventura")

	// three requests: two sessions, peak hour 9, top destination Mall
	requests := []models.RouteRequest{
		{OriginLat: -8.11, OriginLng: -79.03, DestinationName: "Mall Aventura Plaza", SessionID: "s1", CreatedAt: day.Add(9 * time.Hour)},
		{OriginLat: -8.11, OriginLng: -79.03, DestinationName: "Mall Aventura Plaza", SessionID: "s1", CreatedAt: day.Add(9*time.Hour + 30*time.Minute)},
		{OriginLat: -8.11, OriginLng: -79.03, DestinationName: "UNT", SessionID: "s2", CreatedAt: day.Add(17 * time.Hour)},
	}
	for i := range requests {
		require.NoError(t, s.LogRouteRequest(&requests[i]))
	}

	results := []models.RouteResult{
		{RouteID: route.ID, OriginLat: -8.11, OriginLng: -79.03, BoardingLat: -8.11, BoardingLng: -79.03,
			DistanceKm: 4.0, EstimatedTimeMin: 20, EstimatedFare: 1.00, ConfidenceScore: 0.9, CreatedAt: day.Add(9 * time.Hour)},
		{RouteID: route.ID, OriginLat: -8.11, OriginLng: -79.03, BoardingLat: -8.11, BoardingLng: -79.03,
			DistanceKm: 6.0, EstimatedTimeMin: 30, EstimatedFare: 2.00, ConfidenceScore: 0.7, CreatedAt: day.Add(17 * time.Hour)},
	}
	for i := range results {
		require.NoError(t, s.SaveRouteResult(&results[i]))
	}
	return route
}

func TestAggregateDayComputesMetrics(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	seedHistoryForDay(t, s, day)

	// noise outside the window must not count
	outside := models.RouteRequest{OriginLat: -8.11, OriginLng: -79.03, DestinationName: "UNT", SessionID: "s9", CreatedAt: day.AddDate(0, 0, 1)}
	require.NoError(t, s.LogRouteRequest(&outside))

	row, err := s.AggregateDay(day)
	require.NoError(t, err)

	assert.Equal(t, 3, row.TotalRequests)
	assert.Equal(t, 2, row.SuccessfulResults)
	assert.Equal(t, 2, row.UniqueUsers)
	assert.Equal(t, "Mall Aventura Plaza", row.TopDestination)
	require.NotNil(t, row.PeakHour)
	assert.Equal(t, 9, *row.PeakHour)
	assert.InDelta(t, 5.0, row.AvgDistanceKm, 1e-9)
	assert.InDelta(t, 25.0, row.AvgTimeMin, 1e-9)
	assert.InDelta(t, 1.50, row.AvgFare, 1e-9)
}

func TestAggregateDayIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	route := seedHistoryForDay(t, s, day)

	_, err := s.AggregateDay(day)
	require.NoError(t, err)

	// more history lands, the rerun must overwrite, not duplicate
	late := models.RouteResult{RouteID: route.ID, OriginLat: -8.11, OriginLng: -79.03, BoardingLat: -8.11, BoardingLng: -79.03,
		DistanceKm: 2.0, EstimatedTimeMin: 10, EstimatedFare: 1.00, ConfidenceScore: 0.8, CreatedAt: day.Add(22 * time.Hour)}
	require.NoError(t, s.SaveRouteResult(&late))

	_, err = s.AggregateDay(day)
	require.NoError(t, err)

	var count int64
	require.NoError(t, s.db.Model(&models.RouteAnalytics{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored models.RouteAnalytics
	require.NoError(t, s.db.First(&stored).Error)
	assert.Equal(t, 3, stored.SuccessfulResults, "rerun must reflect the latest computation")
}

func TestAggregateEmptyDay(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	row, err := s.AggregateDay(day)
	require.NoError(t, err)
	assert.Zero(t, row.TotalRequests)
	assert.Zero(t, row.SuccessfulResults)
	assert.Nil(t, row.PeakHour)
	assert.Empty(t, row.TopDestination)
}

func TestAggregateRangeBackfill(t *testing.T) {
	s := newTestStore(t)
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	seedHistoryForDay(t, s, to)

	rows, err := s.AggregateRange(from, to)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	var count int64
	require.NoError(t, s.db.Model(&models.RouteAnalytics{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, 3, rows[2].TotalRequests)
}
