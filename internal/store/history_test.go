package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"geoguia/internal/models"
)

func TestLogRouteRequestAssignsSessionID(t *testing.T) {
	s := newTestStore(t)

	req := &models.RouteRequest{
		OriginLat:       -8.114722,
		OriginLng:       -79.038611,
		DestinationName: "Mall Aventura Plaza",
		UserAgent:       "streamlit-app",
	}
	require.NoError(t, s.LogRouteRequest(req))
	assert.NotEmpty(t, req.SessionID)

	withSession := &models.RouteRequest{
		OriginLat:       -8.114722,
		OriginLng:       -79.038611,
		DestinationName: "Hospital Regional",
		SessionID:       "abc-123",
	}
	require.NoError(t, s.LogRouteRequest(withSession))
	assert.Equal(t, "abc-123", withSession.SessionID)
}

func TestSaveRouteResultWithoutRequest(t *testing.T) {
	s := newTestStore(t)
	route := newTestRoute(t, s, "Centro - Mall Aventura")

	// a result may exist without a logged request
	res := &models.RouteResult{
		RouteID:         route.ID,
		OriginLat:       -8.1147,
		OriginLng:       -79.0386,
		BoardingLat:     -8.1145,
		BoardingLng:     -79.0382,
		DistanceKm:      4.8,
		EstimatedFare:   1.50,
		ConfidenceScore: 0.92,
	}
	require.NoError(t, s.SaveRouteResult(res))

	got, err := s.GetRouteResult(res.ID)
	require.NoError(t, err)
	assert.Nil(t, got.RequestID)
	assert.Nil(t, got.Request)
}

func TestSaveRouteResultRejectsUnknownRoute(t *testing.T) {
	s := newTestStore(t)

	res := &models.RouteResult{
		RouteID:         9999,
		OriginLat:       -8.1147,
		OriginLng:       -79.0386,
		BoardingLat:     -8.1145,
		BoardingLng:     -79.0382,
		ConfidenceScore: 0.5,
	}
	err := s.SaveRouteResult(res)
	assert.ErrorIs(t, err, ErrForeignKey)
}

func TestRouteResultConfidenceBounds(t *testing.T) {
	s := newTestStore(t)
	route := newTestRoute(t, s, "Centro - UNT")

	res := &models.RouteResult{
		RouteID:         route.ID,
		OriginLat:       -8.1147,
		OriginLng:       -79.0386,
		BoardingLat:     -8.1145,
		BoardingLng:     -79.0382,
		ConfidenceScore: 1.5,
	}
	err := s.SaveRouteResult(res)
	assert.ErrorIs(t, err, ErrCheckViolation)
}

func TestFeedbackRatingBounds(t *testing.T) {
	s := newTestStore(t)
	route := newTestRoute(t, s, "Centro - Mall Aventura")

	res := &models.RouteResult{
		RouteID:         route.ID,
		OriginLat:       -8.1147,
		OriginLng:       -79.0386,
		BoardingLat:     -8.1145,
		BoardingLng:     -79.0382,
		ConfidenceScore: 0.9,
	}
	require.NoError(t, s.SaveRouteResult(res))

	for rating, wantOK := range map[int]bool{0: false, 1: true, 5: true, 6: false} {
		fb := &models.UserFeedback{RouteResultID: res.ID, Rating: rating}
		err := s.InsertFeedback(fb)
		if wantOK {
			assert.NoError(t, err, "rating %d must be accepted", rating)
		} else {
			assert.ErrorIs(t, err, ErrCheckViolation, "rating %d must be rejected", rating)
		}
	}
}

func TestRecordReportDefaultsType(t *testing.T) {
	s := newTestStore(t)
	route := newTestRoute(t, s, "Centro - UNT")

	res := &models.RouteResult{
		RouteID:         route.ID,
		OriginLat:       -8.1147,
		OriginLng:       -79.0386,
		BoardingLat:     -8.1145,
		BoardingLng:     -79.0382,
		ConfidenceScore: 0.8,
	}
	require.NoError(t, s.SaveRouteResult(res))

	rep := &models.GeneratedReport{RouteResultID: res.ID, FileName: "ruta_123.pdf", FileSizeBytes: 48231}
	require.NoError(t, s.RecordReport(rep))
	assert.Equal(t, "route_summary", rep.ReportType)
}

func TestIntegrationEventPayloadAndStatus(t *testing.T) {
	s := newTestStore(t)

	ms := 412
	ev := &models.IntegrationEvent{
		EventType: "n8n_route_calculated",
		Payload: datatypes.JSONMap{
			"workflow": "calculate-route",
			"attempt":  float64(1),
		},
		Status:           models.EventStatusSuccess,
		ProcessingTimeMs: &ms,
	}
	require.NoError(t, s.LogIntegrationEvent(ev))

	// blank status defaults to pending
	pending := &models.IntegrationEvent{EventType: "n8n_report_requested"}
	require.NoError(t, s.LogIntegrationEvent(pending))
	assert.Equal(t, models.EventStatusPending, pending.Status)

	// anything outside the enum is rejected
	bad := &models.IntegrationEvent{EventType: "n8n_route_calculated", Status: "retrying"}
	err := s.LogIntegrationEvent(bad)
	assert.ErrorIs(t, err, ErrCheckViolation)

	events, err := s.ListIntegrationEvents("n8n_route_calculated", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "calculate-route", events[0].Payload["workflow"])
}

func TestSearchDestinations(t *testing.T) {
	s := newTestStore(t)

	for _, dest := range []string{"Mall Aventura Plaza", "Mall Aventura Plaza", "Hospital Regional", "UNT"} {
		req := &models.RouteRequest{OriginLat: -8.11, OriginLng: -79.03, DestinationName: dest}
		require.NoError(t, s.LogRouteRequest(req))
	}

	// case-insensitive substring match
	names, err := s.SearchDestinations("mall", 5)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "Mall Aventura Plaza", names[0])

	// blank query lists everything, most requested first
	all, err := s.SearchDestinations("", 5)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Mall Aventura Plaza", all[0])

	none, err := s.SearchDestinations("chan chan", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStatistics(t *testing.T) {
	s := newTestStore(t)
	route := newTestRoute(t, s, "Centro - Mall Aventura")

	company := &models.Company{Name: "Nuevo California", RouteID: route.ID, ReliabilityScore: 0.86, Active: true}
	require.NoError(t, s.CreateCompany(company))
	suspended := &models.Company{Name: "Suspendida", RouteID: route.ID, ReliabilityScore: 0.4, Active: true}
	require.NoError(t, s.CreateCompany(suspended))
	require.NoError(t, s.DeactivateCompany(suspended.ID))

	for _, dest := range []string{"Mall Aventura Plaza", "Mall Aventura Plaza", "UNT"} {
		req := &models.RouteRequest{OriginLat: -8.11, OriginLng: -79.03, DestinationName: dest}
		require.NoError(t, s.LogRouteRequest(req))
	}
	for _, conf := range []float64{0.8, 0.6} {
		res := &models.RouteResult{
			RouteID: route.ID, OriginLat: -8.11, OriginLng: -79.03,
			BoardingLat: -8.11, BoardingLng: -79.03, ConfidenceScore: conf,
		}
		require.NoError(t, s.SaveRouteResult(res))
	}

	stats, err := s.Statistics(5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalRequests)
	assert.Equal(t, int64(1), stats.ActiveCompanies)
	assert.InDelta(t, 0.7, stats.AverageConfidence, 1e-9)
	require.NotEmpty(t, stats.PopularDestinations)
	assert.Equal(t, "Mall Aventura Plaza", stats.PopularDestinations[0].Name)
	assert.Equal(t, int64(2), stats.PopularDestinations[0].Count)
}
