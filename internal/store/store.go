// Package store is the storage boundary of the trip-planning schema:
// reference-data CRUD, insert-only history, the daily aggregation
// upsert and the three reporting projections. Authorization lives one
// level up, in internal/access.
package store

import (
	"gorm.io/gorm"
)

// Store wraps a gorm connection with the storage-boundary operations.
type Store struct {
	db *gorm.DB
}

// New returns a Store over an already-migrated connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migration tooling.
func (s *Store) DB() *gorm.DB {
	return s.db
}
