// Package access is the Go-side equivalent of the row-level-security
// policies: a role-gated wrapper over the store. The public role can
// read reference data (companies only while active) and insert
// request/result history; everything else needs the service or admin
// role. Denials surface as ErrDenied, never as a silent no-op.
package access

import (
	"errors"
	"time"

	"geoguia/internal/models"
	"geoguia/internal/store"
)

// ErrDenied reports a write or read the caller's role may not perform.
var ErrDenied = errors.New("operation denied for caller role")

// Role identifies the caller at the storage boundary.
type Role int

const (
	// RolePublic is the unauthenticated browser-facing role.
	RolePublic Role = iota
	// RoleService is the planning backend and its workflow jobs.
	RoleService
	// RoleAdmin is the curation tooling for reference data.
	RoleAdmin
)

// Guard wraps a Store with a caller role.
type Guard struct {
	store *store.Store
	role  Role
}

// ForRole returns the storage boundary as seen by one role.
func ForRole(s *store.Store, role Role) *Guard {
	return &Guard{store: s, role: role}
}

func (g *Guard) elevated() bool {
	return g.role == RoleService || g.role == RoleAdmin
}

// --- Read surface ---

func (g *Guard) Routes() ([]models.Route, error) {
	return g.store.ListRoutes()
}

func (g *Guard) Route(id uint) (*models.Route, error) {
	route, err := g.store.GetRoute(id)
	if err != nil {
		return nil, err
	}
	if g.role == RolePublic {
		// the active-only company policy also applies to preloads
		visible := route.Companies[:0]
		for _, c := range route.Companies {
			if c.Active {
				visible = append(visible, c)
			}
		}
		route.Companies = visible
	}
	return route, nil
}

func (g *Guard) Stops() ([]models.Stop, error) {
	return g.store.ListStops()
}

// Companies returns every operator for elevated roles and only active
// ones for the public role.
func (g *Guard) Companies() ([]models.Company, error) {
	if g.elevated() {
		return g.store.ListCompanies()
	}
	return g.store.ListActiveCompanies()
}

// Company hides inactive rows from the public role entirely, the way
// a row-level policy would: the row does not exist for that caller.
func (g *Guard) Company(id uint) (*models.Company, error) {
	company, err := g.store.GetCompany(id)
	if err != nil {
		return nil, err
	}
	if g.role == RolePublic && !company.Active {
		return nil, store.ErrNotFound
	}
	return company, nil
}

func (g *Guard) RoutePopularity() ([]store.RoutePopularity, error) {
	return g.store.RoutePopularity()
}

func (g *Guard) DailyDemandRange(from, to time.Time) ([]store.DailyDemand, error) {
	return g.store.DailyDemandRange(from, to)
}

func (g *Guard) CompanyLeaderboard() ([]store.CompanyStanding, error) {
	return g.store.CompanyLeaderboard()
}

func (g *Guard) Statistics(topN int) (*store.Statistics, error) {
	return g.store.Statistics(topN)
}

func (g *Guard) SearchDestinations(q string, limit int) ([]string, error) {
	return g.store.SearchDestinations(q, limit)
}

// --- Public write path ---

// LogRouteRequest is open to every role: it is the public write path.
func (g *Guard) LogRouteRequest(req *models.RouteRequest) error {
	return g.store.LogRouteRequest(req)
}

// SaveRouteResult is likewise open; history rows are permanent once
// written, so there is no public update or delete to pair with it.
func (g *Guard) SaveRouteResult(res *models.RouteResult) error {
	return g.store.SaveRouteResult(res)
}

// --- Elevated writes ---

// InsertFeedback and RecordReport default-deny the public role; the
// backend writes them on the user's behalf with the service role.
func (g *Guard) InsertFeedback(fb *models.UserFeedback) error {
	if !g.elevated() {
		return ErrDenied
	}
	return g.store.InsertFeedback(fb)
}

func (g *Guard) RecordReport(rep *models.GeneratedReport) error {
	if !g.elevated() {
		return ErrDenied
	}
	return g.store.RecordReport(rep)
}

func (g *Guard) LogIntegrationEvent(ev *models.IntegrationEvent) error {
	if !g.elevated() {
		return ErrDenied
	}
	return g.store.LogIntegrationEvent(ev)
}

// --- Admin reference-data writes ---

func (g *Guard) CreateRoute(route *models.Route) error {
	if g.role != RoleAdmin {
		return ErrDenied
	}
	return g.store.CreateRoute(route)
}

func (g *Guard) UpdateRoute(id uint, upd store.RouteUpdate) (*models.Route, error) {
	if g.role != RoleAdmin {
		return nil, ErrDenied
	}
	return g.store.UpdateRoute(id, upd)
}

func (g *Guard) DeleteRoute(id uint) error {
	if g.role != RoleAdmin {
		return ErrDenied
	}
	return g.store.DeleteRoute(id)
}

func (g *Guard) CreateCompany(company *models.Company) error {
	if g.role != RoleAdmin {
		return ErrDenied
	}
	return g.store.CreateCompany(company)
}

func (g *Guard) UpdateCompany(id uint, upd store.CompanyUpdate) (*models.Company, error) {
	if g.role != RoleAdmin {
		return nil, ErrDenied
	}
	return g.store.UpdateCompany(id, upd)
}

func (g *Guard) CreateStop(stop *models.Stop) error {
	if g.role != RoleAdmin {
		return ErrDenied
	}
	return g.store.CreateStop(stop)
}

func (g *Guard) UpdateStop(id uint, upd store.StopUpdate) (*models.Stop, error) {
	if g.role != RoleAdmin {
		return nil, ErrDenied
	}
	return g.store.UpdateStop(id, upd)
}
