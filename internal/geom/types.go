package geom

import "github.com/paulmach/orb"

type Point struct {
	X float64
	Y float64
}

// Segment is one boundary piece between consecutive ring vertices, in
// traversal order.
type Segment struct {
	A Point
	B Point
}

// Ring is the ordered vertex sequence of one polygon boundary.
type Ring []Point

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Dataset is the segment collection read from one input file, keyed by the
// file's stem.
type Dataset struct {
	Name     string
	Segments []Segment
}

// Data is what a geometry source yields: the first ring of every feature, in
// feature order, and the extent of the whole source.
type Data struct {
	Rings []Ring
	BBox  BBox
}

func ringFromOrb(r orb.Ring) Ring {
	out := make(Ring, 0, len(r))
	for _, p := range r {
		out = append(out, Point{X: p[0], Y: p[1]})
	}
	return out
}

func bboxFromOrb(b orb.Bound) BBox {
	return BBox{MinX: b.Min[0], MinY: b.Min[1], MaxX: b.Max[0], MaxY: b.Max[1]}
}
