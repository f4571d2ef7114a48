// Package models defines the persisted schema of the trip-planning
// store: reference data, request/result history, analytics and
// feedback. Constraints (checks, FK actions, unique indexes) live on
// the models so every backend migrated from them enforces the same
// invariants.
package models

// All lists every persisted model in dependency order, referenced
// tables first, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Route{},
		&Company{},
		&Stop{},
		&RouteRequest{},
		&RouteResult{},
		&GeneratedReport{},
		&IntegrationEvent{},
		&RouteAnalytics{},
		&UserFeedback{},
	}
}
