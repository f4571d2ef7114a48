package config

import (
	"fmt"

	"gorm.io/gorm"
)

// policyDDL is the postgres-only part of the schema: the updated_at
// trigger, the three reporting views and the row-level-security
// policies. Statements are idempotent so the migrator can re-run them.
var policyDDL = []string{
	// updated_at trigger, shared by the mutable reference tables
	`CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
	BEGIN
		NEW.updated_at = now();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,

	`DROP TRIGGER IF EXISTS routes_set_updated_at ON routes;`,
	`CREATE TRIGGER routes_set_updated_at BEFORE UPDATE ON routes
		FOR EACH ROW EXECUTE FUNCTION set_updated_at();`,
	`DROP TRIGGER IF EXISTS companies_set_updated_at ON companies;`,
	`CREATE TRIGGER companies_set_updated_at BEFORE UPDATE ON companies
		FOR EACH ROW EXECUTE FUNCTION set_updated_at();`,
	`DROP TRIGGER IF EXISTS stops_set_updated_at ON stops;`,
	`CREATE TRIGGER stops_set_updated_at BEFORE UPDATE ON stops
		FOR EACH ROW EXECUTE FUNCTION set_updated_at();`,

	// reporting views, recomputed on each query
	`CREATE OR REPLACE VIEW route_popularity AS
		SELECT r.id AS route_id,
		       r.name AS route_name,
		       COUNT(rr.id) AS times_used,
		       AVG(rr.confidence_score) AS avg_confidence
		FROM routes r
		JOIN route_results rr ON rr.route_id = r.id
		GROUP BY r.id, r.name
		ORDER BY times_used DESC, route_id;`,

	// requests and results are rolled up by their own day: a result
	// may have no request at all, and never inherits its request's date
	`CREATE OR REPLACE VIEW daily_demand AS
		SELECT COALESCE(req.date, res.date) AS date,
		       COALESCE(req.total_requests, 0) AS total_requests,
		       COALESCE(res.min_fare, 0) AS min_fare,
		       COALESCE(res.max_fare, 0) AS max_fare,
		       COALESCE(res.avg_fare, 0) AS avg_fare
		FROM (SELECT created_at::date AS date,
		             COUNT(*) AS total_requests
		      FROM route_requests
		      GROUP BY created_at::date) req
		FULL OUTER JOIN (SELECT created_at::date AS date,
		             MIN(estimated_fare) AS min_fare,
		             MAX(estimated_fare) AS max_fare,
		             AVG(estimated_fare) AS avg_fare
		      FROM route_results
		      GROUP BY created_at::date) res
		ON res.date = req.date
		ORDER BY date;`,

	`CREATE OR REPLACE VIEW company_leaderboard AS
		SELECT c.id AS company_id,
		       c.name AS company_name,
		       r.name AS route_name,
		       c.reliability_score,
		       COUNT(res.id) AS results_served
		FROM companies c
		JOIN routes r ON r.id = c.route_id
		LEFT JOIN route_results res ON res.route_id = c.route_id
		WHERE c.active
		GROUP BY c.id, c.name, r.name, c.reliability_score
		ORDER BY c.reliability_score DESC, results_served DESC;`,

	// row-level security: public read of reference data (companies
	// only while active), public insert of the request/result history
	`ALTER TABLE routes ENABLE ROW LEVEL SECURITY;`,
	`DROP POLICY IF EXISTS routes_public_read ON routes;`,
	`CREATE POLICY routes_public_read ON routes FOR SELECT USING (true);`,

	`ALTER TABLE stops ENABLE ROW LEVEL SECURITY;`,
	`DROP POLICY IF EXISTS stops_public_read ON stops;`,
	`CREATE POLICY stops_public_read ON stops FOR SELECT USING (true);`,

	`ALTER TABLE companies ENABLE ROW LEVEL SECURITY;`,
	`DROP POLICY IF EXISTS companies_public_read_active ON companies;`,
	`CREATE POLICY companies_public_read_active ON companies FOR SELECT USING (active);`,

	`ALTER TABLE route_requests ENABLE ROW LEVEL SECURITY;`,
	`DROP POLICY IF EXISTS route_requests_public_insert ON route_requests;`,
	`CREATE POLICY route_requests_public_insert ON route_requests FOR INSERT WITH CHECK (true);`,

	`ALTER TABLE route_results ENABLE ROW LEVEL SECURITY;`,
	`DROP POLICY IF EXISTS route_results_public_insert ON route_results;`,
	`CREATE POLICY route_results_public_insert ON route_results FOR INSERT WITH CHECK (true);`,
}

// ApplyPolicies installs triggers, views and row-level-security
// policies. Only meaningful on postgres; other dialects (the sqlite
// test rig) get the same behavior from model hooks and store queries.
func ApplyPolicies(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, stmt := range policyDDL {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply policy DDL: %w", err)
		}
	}
	return nil
}
