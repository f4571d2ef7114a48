package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"geoguia/internal/models"
)

// newTestStore opens an in-memory sqlite DB (foreign keys on, one DB
// per test) and migrates the full schema.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return New(db)
}

func newTestRoute(t *testing.T, s *Store, name string) *models.Route {
	t.Helper()
	route := &models.Route{
		Name:            name,
		OriginName:      "Plaza de Armas",
		DestinationName: "Mall Aventura Plaza",
		Path: models.Path{
			{Lat: -8.1117, Lng: -79.0288},
			{Lat: -8.1147, Lng: -79.0386},
			{Lat: -8.1331, Lng: -79.0319},
		},
		DistanceKm:           4.8,
		EstimatedDurationMin: 25,
		Active:               true,
	}
	require.NoError(t, s.CreateRoute(route))
	return route
}
