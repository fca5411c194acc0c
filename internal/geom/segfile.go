package geom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AxisOrder selects the positional field order of the segment text format.
type AxisOrder string

const (
	// OrderXYXY writes "minx miny maxx maxy" and "x1 y1 x2 y2". Canonical.
	OrderXYXY AxisOrder = "xyxy"
	// OrderXXYY writes "minx maxx miny maxy" and "x1 x2 y1 y2".
	OrderXXYY AxisOrder = "xxyy"
)

// ParseAxisOrder maps a flag value to an AxisOrder; empty means canonical.
func ParseAxisOrder(s string) (AxisOrder, error) {
	switch AxisOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderXYXY:
		return OrderXYXY, nil
	case OrderXXYY:
		return OrderXXYY, nil
	}
	return "", fmt.Errorf("unknown axis order %q (want %s or %s)", s, OrderXYXY, OrderXXYY)
}

func (o AxisOrder) bboxFields(b BBox) [4]float64 {
	if o == OrderXXYY {
		return [4]float64{b.MinX, b.MaxX, b.MinY, b.MaxY}
	}
	return [4]float64{b.MinX, b.MinY, b.MaxX, b.MaxY}
}

func (o AxisOrder) segmentFields(s Segment) [4]float64 {
	if o == OrderXXYY {
		return [4]float64{s.A.X, s.B.X, s.A.Y, s.B.Y}
	}
	return [4]float64{s.A.X, s.A.Y, s.B.X, s.B.Y}
}

func (o AxisOrder) bboxFrom(v [4]float64) BBox {
	if o == OrderXXYY {
		return BBox{MinX: v[0], MaxX: v[1], MinY: v[2], MaxY: v[3]}
	}
	return BBox{MinX: v[0], MinY: v[1], MaxX: v[2], MaxY: v[3]}
}

func (o AxisOrder) segmentFrom(v [4]float64) Segment {
	if o == OrderXXYY {
		return Segment{A: Point{X: v[0], Y: v[2]}, B: Point{X: v[1], Y: v[3]}}
	}
	return Segment{A: Point{X: v[0], Y: v[1]}, B: Point{X: v[2], Y: v[3]}}
}

// FormatScalar renders v in its shortest exact decimal form with no exponent,
// so integral coordinates print as "4" and floats round-trip losslessly.
func FormatScalar(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinFields(v [4]float64) string {
	return FormatScalar(v[0]) + " " + FormatScalar(v[1]) + " " + FormatScalar(v[2]) + " " + FormatScalar(v[3])
}

// EncodeSegments writes the count line, the bbox line and one line per
// segment.
func EncodeSegments(w io.Writer, bbox BBox, segs []Segment, order AxisOrder) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(segs))
	fmt.Fprintln(bw, joinFields(order.bboxFields(bbox)))
	for _, s := range segs {
		fmt.Fprintln(bw, joinFields(order.segmentFields(s)))
	}
	return bw.Flush()
}

// WriteSegments encodes into path through a sibling temp file that is renamed
// into place, leaving no partial output on failure.
func WriteSegments(path string, bbox BBox, segs []Segment, order AxisOrder) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		return EncodeSegments(w, bbox, segs, order)
	})
}

// WriteFileAtomic streams fill into a temp file next to path and renames it
// over path once fill and close both succeed.
func WriteFileAtomic(path string, fill func(io.Writer) error) error {
	const op = "geom.write"
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return writeFailed(op, path, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return writeFailed(op, path, err)
	}
	tmp := f.Name()
	if err := fill(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return writeFailed(op, path, err)
	}
	// CreateTemp uses 0600; outputs get the usual 0644
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return writeFailed(op, path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return writeFailed(op, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return writeFailed(op, path, err)
	}
	return nil
}

// SegmentFile is a parsed segment text file. Count is the declared count and
// is not checked against len(Segments).
type SegmentFile struct {
	Count    int
	BBox     BBox
	Segments []Segment
}

// ReadSegments opens and decodes a segment text file.
func ReadSegments(path string, order AxisOrder) (SegmentFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return SegmentFile{}, notFound("geom.read_segments", path, err)
	}
	defer f.Close()
	return DecodeSegments(f, path, order)
}

// DecodeSegments parses the segment text format. Blank lines after the bbox
// line are skipped; name is used only in errors.
func DecodeSegments(r io.Reader, name string, order AxisOrder) (SegmentFile, error) {
	const op = "geom.read_segments"
	var out SegmentFile
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			if s := strings.TrimSpace(sc.Text()); s != "" {
				return s, true
			}
		}
		return "", false
	}

	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return SegmentFile{}, malformed(op, name, line, err)
		}
		return SegmentFile{}, malformed(op, name, 1, errors.New("missing segment count"))
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return SegmentFile{}, malformed(op, name, line, fmt.Errorf("segment count: %w", err))
	}
	out.Count = n

	bline, ok := next()
	if !ok {
		return SegmentFile{}, malformed(op, name, line+1, errors.New("missing bounding box"))
	}
	bv, err := parseFloat4(bline)
	if err != nil {
		return SegmentFile{}, malformed(op, name, line, fmt.Errorf("bounding box: %w", err))
	}
	out.BBox = order.bboxFrom(bv)

	for {
		s, ok := next()
		if !ok {
			break
		}
		v, err := parseFloat4(s)
		if err != nil {
			return SegmentFile{}, malformed(op, name, line, err)
		}
		out.Segments = append(out.Segments, order.segmentFrom(v))
	}
	if err := sc.Err(); err != nil {
		return SegmentFile{}, malformed(op, name, line, err)
	}
	return out, nil
}

func parseFloat4(s string) ([4]float64, error) {
	var v [4]float64
	parts := strings.Fields(s)
	if len(parts) != 4 {
		return v, fmt.Errorf("want 4 fields, got %d", len(parts))
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return v, fmt.Errorf("field %d: %w", i+1, err)
		}
		v[i] = f
	}
	return v, nil
}
