package geom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// ParseWKT reads a POLYGON, MULTIPOLYGON or GEOMETRYCOLLECTION of those and
// returns their outer rings with the union extent.
func ParseWKT(src string) (Data, error) {
	const op = "geom.parse_wkt"
	s := strings.TrimSpace(src)
	if s == "" {
		return Data{}, malformed(op, "", 0, errors.New("empty wkt"))
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Data{}, malformed(op, "", 0, err)
	}
	var d Data
	if err := appendOuterRings(&d, g); err != nil {
		return Data{}, unexpectedGeometry(op, "", -1, err)
	}
	d.BBox = bboxFromOrb(g.Bound())
	return d, nil
}

// appendOuterRings adds the first ring of every polygon found in g.
func appendOuterRings(d *Data, g orb.Geometry) error {
	switch t := g.(type) {
	case orb.Polygon:
		if len(t) == 0 {
			return errors.New("polygon has no rings")
		}
		d.Rings = append(d.Rings, ringFromOrb(t[0]))
	case orb.MultiPolygon:
		if len(t) == 0 {
			return errors.New("multipolygon has no polygons")
		}
		for _, p := range t {
			if err := appendOuterRings(d, p); err != nil {
				return err
			}
		}
	case orb.Collection:
		for _, sub := range t {
			if err := appendOuterRings(d, sub); err != nil {
				return err
			}
		}
	case nil:
		return errors.New("missing geometry")
	default:
		return fmt.Errorf("want polygon, got %s", g.GeoJSONType())
	}
	return nil
}
