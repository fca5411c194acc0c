package geom

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadGeoJSON reads a FeatureCollection, Feature or bare geometry and returns
// the outer ring of every polygon. A declared top-level bbox is passed through;
// otherwise the extent is the union of the feature bounds.
func LoadGeoJSON(path string) (Data, error) {
	const op = "geom.load_geojson"
	f, err := os.Open(path)
	if err != nil {
		return Data{}, notFound(op, path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return Data{}, notFound(op, path, err)
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Data{}, malformed(op, path, 0, err)
	}

	var (
		geoms    []orb.Geometry
		declared geojson.BBox
	)
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return Data{}, malformed(op, path, 0, err)
		}
		declared = fc.BBox
		for _, ft := range fc.Features {
			geoms = append(geoms, ft.Geometry)
		}
	case "Feature":
		ft, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Data{}, malformed(op, path, 0, err)
		}
		declared = ft.BBox
		geoms = append(geoms, ft.Geometry)
	case "":
		return Data{}, malformed(op, path, 0, errors.New("invalid geojson: missing type"))
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return Data{}, malformed(op, path, 0, err)
		}
		geoms = append(geoms, g.Geometry())
	}

	var d Data
	var bound orb.Bound
	for i, g := range geoms {
		if err := appendOuterRings(&d, g); err != nil {
			return Data{}, unexpectedGeometry(op, path, i, err)
		}
		if i == 0 {
			bound = g.Bound()
		} else {
			bound = bound.Union(g.Bound())
		}
	}
	if len(d.Rings) == 0 {
		return Data{}, unexpectedGeometry(op, path, -1, errors.New("no polygons found"))
	}
	if declared.Valid() && len(declared) == 4 {
		d.BBox = BBox{MinX: declared[0], MinY: declared[1], MaxX: declared[2], MaxY: declared[3]}
	} else {
		d.BBox = bboxFromOrb(bound)
	}
	return d, nil
}
