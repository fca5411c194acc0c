package geom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonas-p/go-shp"
)

const (
	shpFileCode   = 9994
	shpHeaderSize = 100
)

var shpShapeTypes = map[int32]bool{
	0: true, 1: true, 3: true, 5: true, 8: true,
	11: true, 13: true, 15: true, 18: true,
	21: true, 23: true, 25: true, 28: true, 31: true,
}

// LoadShapefile reads the first ring of every polygon feature. The extent is
// the one declared in the shapefile header, passed through unmodified.
func LoadShapefile(path string) (Data, error) {
	const op = "geom.load_shapefile"
	if err := checkShpHeader(op, path); err != nil {
		return Data{}, err
	}
	// go-shp derives the .shp and .dbf names by swapping in a lowercase
	// extension, so FOO.SHP would resolve to FOO.shp.
	if ext := filepath.Ext(path); ext != ".shp" {
		return Data{}, notFound(op, path, fmt.Errorf("shapefile extension must be lowercase .shp, got %q", ext))
	}
	r, err := shp.Open(path)
	if err != nil {
		return Data{}, notFound(op, path, err)
	}
	defer r.Close()

	b := r.BBox()
	d := Data{BBox: BBox{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}}
	for r.Next() {
		idx, s := r.Shape()
		ring, err := outerRing(s)
		if err != nil {
			return Data{}, unexpectedGeometry(op, path, idx, err)
		}
		d.Rings = append(d.Rings, ring)
	}
	if err := r.Err(); err != nil {
		return Data{}, malformed(op, path, 0, err)
	}
	return d, nil
}

// checkShpHeader validates the fixed 100-byte main file header. shp.Open
// drops header read errors, so an empty or foreign file would otherwise
// load as zero features.
func checkShpHeader(op, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return notFound(op, path, err)
	}
	defer f.Close()

	var h [shpHeaderSize]byte
	if _, err := io.ReadFull(f, h[:]); err != nil {
		return malformed(op, path, 0, fmt.Errorf("short shapefile header: %w", err))
	}
	if code := binary.BigEndian.Uint32(h[0:4]); code != shpFileCode {
		return malformed(op, path, 0, fmt.Errorf("bad shapefile file code %d", code))
	}
	// file length is counted in 16-bit words and includes the header
	if words := int32(binary.BigEndian.Uint32(h[24:28])); words < shpHeaderSize/2 {
		return malformed(op, path, 0, fmt.Errorf("bad shapefile length %d words", words))
	}
	if st := int32(binary.LittleEndian.Uint32(h[32:36])); !shpShapeTypes[st] {
		return malformed(op, path, 0, fmt.Errorf("unknown shape type %d", st))
	}
	return nil
}

func outerRing(s shp.Shape) (Ring, error) {
	var parts []int32
	var pts []shp.Point
	switch g := s.(type) {
	case *shp.Polygon:
		parts, pts = g.Parts, g.Points
	case *shp.PolygonZ:
		parts, pts = g.Parts, g.Points
	case *shp.PolygonM:
		parts, pts = g.Parts, g.Points
	case nil:
		return nil, errors.New("missing geometry")
	default:
		return nil, fmt.Errorf("want polygon, got %T", s)
	}
	if len(parts) == 0 {
		return nil, errors.New("polygon has no rings")
	}
	start, end := int(parts[0]), len(pts)
	if len(parts) > 1 {
		end = int(parts[1])
	}
	if start < 0 || start > end || end > len(pts) {
		return nil, fmt.Errorf("ring bounds [%d:%d] outside %d points", start, end, len(pts))
	}
	ring := make(Ring, 0, end-start)
	for _, p := range pts[start:end] {
		ring = append(ring, Point{X: p.X, Y: p.Y})
	}
	return ring, nil
}
