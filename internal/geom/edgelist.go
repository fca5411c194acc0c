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

// ReadEdgeList reads one edge-list input file into a Dataset named after the
// file's stem.
func ReadEdgeList(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, notFound("geom.read_edge_list", path, err)
	}
	defer f.Close()
	segs, err := DecodeEdgeList(f, path)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Name: Stem(path), Segments: segs}, nil
}

// DecodeEdgeList parses the edge-list text format: an integer count on the
// first line, then any number of "x1 y1 x2 y2" integer lines. Blank lines are
// skipped. The count is advisory and never compared to the lines read.
func DecodeEdgeList(r io.Reader, name string) ([]Segment, error) {
	const op = "geom.read_edge_list"
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, malformed(op, name, 1, err)
		}
		return nil, malformed(op, name, 1, errors.New("missing segment count"))
	}
	if _, err := strconv.Atoi(strings.TrimSpace(sc.Text())); err != nil {
		return nil, malformed(op, name, 1, fmt.Errorf("segment count: %w", err))
	}

	segs := []Segment{}
	line := 1
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		parts := strings.Fields(s)
		if len(parts) != 4 {
			return nil, malformed(op, name, line, fmt.Errorf("want 4 integers, got %d fields", len(parts)))
		}
		var v [4]int
		for i, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return nil, malformed(op, name, line, fmt.Errorf("field %d: %w", i+1, err))
			}
			v[i] = n
		}
		segs = append(segs, Segment{
			A: Point{X: float64(v[0]), Y: float64(v[1])},
			B: Point{X: float64(v[2]), Y: float64(v[3])},
		})
	}
	if err := sc.Err(); err != nil {
		return nil, malformed(op, name, line, err)
	}
	return segs, nil
}

// Stem is the file's base name without its final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
