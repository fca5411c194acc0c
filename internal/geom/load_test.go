package geom

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeShapefile(t *testing.T, shapeType shp.ShapeType, shapes ...shp.Shape) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.shp")
	w, err := shp.Create(path, shapeType)
	require.NoError(t, err)
	for _, s := range shapes {
		w.Write(s)
	}
	w.Close()
	return path
}

func newPolygon(rings [][]shp.Point) *shp.Polygon {
	return (*shp.Polygon)(shp.NewPolyLine(rings))
}

func TestLoadShapefile_Triangle(t *testing.T) {
	path := writeShapefile(t, shp.POLYGON, newPolygon([][]shp.Point{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}},
	}))

	d, err := LoadShapefile(path)
	require.NoError(t, err)
	require.Len(t, d.Rings, 1)
	assert.Equal(t, triangle, d.Rings[0])
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 4, MaxY: 3}, d.BBox)

	segs := FeatureSegments(d.Rings)
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{A: Point{0, 0}, B: Point{4, 0}}, segs[0])
	assert.Equal(t, Segment{A: Point{4, 0}, B: Point{4, 3}}, segs[1])
}

func TestLoadShapefile_OuterRingOnly(t *testing.T) {
	path := writeShapefile(t, shp.POLYGON,
		newPolygon([][]shp.Point{
			{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}},
			{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 2}},
		}),
		newPolygon([][]shp.Point{
			{{X: 20, Y: 20}, {X: 21, Y: 21}},
		}),
	)

	d, err := LoadShapefile(path)
	require.NoError(t, err)
	require.Len(t, d.Rings, 2)
	assert.Len(t, d.Rings[0], 5)
	assert.Equal(t, Ring{{20, 20}, {21, 21}}, d.Rings[1])
	assert.Len(t, FeatureSegments(d.Rings), 5)
	assert.Equal(t, 21.0, d.BBox.MaxX)
}

func TestLoadShapefile_NotPolygon(t *testing.T) {
	path := writeShapefile(t, shp.POINT, &shp.Point{X: 1, Y: 1})

	_, err := LoadShapefile(path)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindUnexpectedGeometry))

	var oe *OpError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, 0, oe.Index)
}

func TestLoadShapefile_Missing(t *testing.T) {
	_, err := LoadShapefile(filepath.Join(t.TempDir(), "absent.shp"))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestLoadShapefile_BadHeader(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "empty.shp")
	require.NoError(t, os.WriteFile(short, nil, 0o644))
	junk := filepath.Join(dir, "junk.shp")
	require.NoError(t, os.WriteFile(junk, []byte(strings.Repeat("not a shapefile\n", 10)), 0o644))

	for _, p := range []string{short, junk} {
		d, err := LoadShapefile(p)
		require.Error(t, err, p)
		assert.True(t, IsKind(err, KindMalformedRecord), p)
		assert.Contains(t, err.Error(), p)
		assert.Empty(t, d.Rings)
	}
}

func TestLoadShapefile_UnknownShapeType(t *testing.T) {
	path := writeShapefile(t, shp.POLYGON, newPolygon([][]shp.Point{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}},
	}))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	binary.LittleEndian.PutUint32(b[32:36], 7)
	require.NoError(t, os.WriteFile(path, b, 0o644))

	_, err = LoadShapefile(path)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindMalformedRecord))
	assert.Contains(t, err.Error(), "shape type 7")
}

func TestLoadShapefile_UppercaseExtension(t *testing.T) {
	path := writeShapefile(t, shp.POLYGON, newPolygon([][]shp.Point{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}},
	}))
	upper := filepath.Join(filepath.Dir(path), "FIXTURE.SHP")
	require.NoError(t, os.Rename(path, upper))

	_, err := Load(upper)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.Contains(t, err.Error(), "lowercase .shp")
}

func TestParseWKT(t *testing.T) {
	d, err := ParseWKT("MULTIPOLYGON(((0 0, 4 0, 4 3, 0 0)), ((10 10, 11 10, 10 12, 10 10), (10.2 10.2, 10.4 10.2, 10.2 10.4, 10.2 10.2)))")
	require.NoError(t, err)
	require.Len(t, d.Rings, 2)
	assert.Equal(t, Ring{{0, 0}, {4, 0}, {4, 3}, {0, 0}}, d.Rings[0])
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 11, MaxY: 12}, d.BBox)
}

func TestParseWKT_Errors(t *testing.T) {
	_, err := ParseWKT("   ")
	assert.True(t, IsKind(err, KindMalformedRecord))

	_, err = ParseWKT("CIRCLE(1 2, 3)")
	assert.True(t, IsKind(err, KindMalformedRecord))

	_, err = ParseWKT("LINESTRING(0 0, 1 1)")
	assert.True(t, IsKind(err, KindUnexpectedGeometry))
}

func TestLoadGeoJSON(t *testing.T) {
	dir := t.TempDir()

	withBBox := filepath.Join(dir, "declared.geojson")
	require.NoError(t, os.WriteFile(withBBox, []byte(`{
		"type": "FeatureCollection",
		"bbox": [-1, -1, 9, 9],
		"features": [
			{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[0,0],[4,0],[4,3],[0,0]]]}}
		]
	}`), 0o644))
	d, err := LoadGeoJSON(withBBox)
	require.NoError(t, err)
	require.Len(t, d.Rings, 1)
	assert.Equal(t, Ring{{0, 0}, {4, 0}, {4, 3}, {0, 0}}, d.Rings[0])
	assert.Equal(t, BBox{MinX: -1, MinY: -1, MaxX: 9, MaxY: 9}, d.BBox)

	bare := filepath.Join(dir, "bare.json")
	require.NoError(t, os.WriteFile(bare, []byte(`{"type": "Polygon", "coordinates": [[[1,1],[5,1],[5,2],[1,1]]]}`), 0o644))
	d, err = LoadGeoJSON(bare)
	require.NoError(t, err)
	assert.Equal(t, BBox{MinX: 1, MinY: 1, MaxX: 5, MaxY: 2}, d.BBox)

	points := filepath.Join(dir, "points.geojson")
	require.NoError(t, os.WriteFile(points, []byte(`{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [1,1]}}`), 0o644))
	_, err = LoadGeoJSON(points)
	assert.True(t, IsKind(err, KindUnexpectedGeometry))
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "shape.WKT")
	require.NoError(t, os.WriteFile(p, []byte("POLYGON((0 0, 2 0, 2 2, 0 0))"), 0o644))

	d, err := Load(p)
	require.NoError(t, err)
	assert.Len(t, d.Rings, 1)

	_, err = Load(filepath.Join(dir, "x.kml"))
	assert.True(t, IsKind(err, KindNotFound))

	bad := filepath.Join(dir, "bad.wkt")
	require.NoError(t, os.WriteFile(bad, []byte("POINT(1 1)"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}
