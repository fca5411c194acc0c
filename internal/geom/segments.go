package geom

// RingSegments pairs each vertex with its successor. The ring is treated as an
// open polyline: no segment joins the last vertex back to the first, so a
// closed ring must repeat its first vertex to get a closing edge. Rings with
// fewer than two vertices yield no segments.
func RingSegments(r Ring) []Segment {
	if len(r) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(r)-1)
	for i := 0; i+1 < len(r); i++ {
		out = append(out, Segment{A: r[i], B: r[i+1]})
	}
	return out
}

// FeatureSegments concatenates RingSegments over all rings in order.
func FeatureSegments(rings []Ring) []Segment {
	var out []Segment
	for _, r := range rings {
		out = append(out, RingSegments(r)...)
	}
	return out
}

// Bounds returns the union extent of all segment endpoints. ok is false for an
// empty list.
func Bounds(segs []Segment) (bbox BBox, ok bool) {
	add := func(p Point) {
		if !ok {
			bbox = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			ok = true
			return
		}
		if p.X < bbox.MinX {
			bbox.MinX = p.X
		}
		if p.Y < bbox.MinY {
			bbox.MinY = p.Y
		}
		if p.X > bbox.MaxX {
			bbox.MaxX = p.X
		}
		if p.Y > bbox.MaxY {
			bbox.MaxY = p.Y
		}
	}
	for _, s := range segs {
		add(s.A)
		add(s.B)
	}
	return bbox, ok
}
