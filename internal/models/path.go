package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Waypoint is a single point along a route path.
type Waypoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Path is the ordered waypoint sequence of a route, stored as a JSON
// document column. Order must survive a write/read round trip exactly.
type Path []Waypoint

// Value implements driver.Valuer.
func (p Path) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *Path) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into Path", value)
	}
}

// GormDataType tells the schema parser this is a plain data column,
// not a relation.
func (Path) GormDataType() string {
	return "json"
}

// GormDBDataType keeps jsonb on postgres and plain json elsewhere.
func (Path) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "json"
}

// LineString converts the path to an XY line string (lng, lat order).
func (p Path) LineString() *geom.LineString {
	coords := make([]geom.Coord, len(p))
	for i, w := range p {
		coords[i] = geom.Coord{w.Lng, w.Lat}
	}
	ls := geom.NewLineString(geom.XY)
	if len(coords) > 0 {
		ls.MustSetCoords(coords)
	}
	return ls
}

// GeoJSON renders the path as a GeoJSON LineString for map clients.
func (p Path) GeoJSON() (string, error) {
	b, err := gjson.Marshal(p.LineString())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PathFromGeoJSON parses a GeoJSON LineString back into a Path.
func PathFromGeoJSON(raw string) (Path, error) {
	if raw == "" {
		return nil, nil
	}
	var g geom.T
	if err := gjson.Unmarshal([]byte(raw), &g); err != nil {
		return nil, err
	}
	ls, ok := g.(*geom.LineString)
	if !ok {
		return nil, errors.New("geometry is not a LineString")
	}
	coords := ls.Coords()
	path := make(Path, len(coords))
	for i, c := range coords {
		path[i] = Waypoint{Lat: c.Y(), Lng: c.X()}
	}
	return path, nil
}
