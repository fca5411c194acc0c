// Package codegen turns directories of edge-list files into the INPUT_FILES
// initialisation file consumed by the trapezoidal map front end.
package codegen

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"trapmap/internal/geom"
)

// Format selects the generated artifact's syntax.
type Format string

const (
	// FormatJS emits `const INPUT_FILES = {...};` with Edge/Point literals.
	FormatJS Format = "js"
	// FormatJSON emits {"name": [[x1, y1, x2, y2], ...]}.
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJS:
		return FormatJS, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (want %s or %s)", s, FormatJS, FormatJSON)
}

// Discover returns the files in dir matching pattern, sorted by stem so the
// generated output does not depend on directory listing order.
func Discover(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &geom.OpError{Op: "codegen.discover", Kind: geom.KindNotFound, Path: dir, Index: -1, Err: err}
	}
	if !info.IsDir() {
		return nil, &geom.OpError{Op: "codegen.discover", Kind: geom.KindNotFound, Path: dir, Index: -1, Err: fmt.Errorf("not a directory")}
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("codegen.discover: pattern %q: %w", pattern, err)
	}
	var files []string
	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && fi.Mode().IsRegular() {
			files = append(files, m)
		}
	}
	sort.SliceStable(files, func(i, j int) bool {
		si, sj := geom.Stem(files[i]), geom.Stem(files[j])
		if si != sj {
			return si < sj
		}
		return files[i] < files[j]
	})
	return files, nil
}

// ReadAll parses every file in order. The first failure aborts the batch.
func ReadAll(files []string) ([]geom.Dataset, error) {
	out := make([]geom.Dataset, 0, len(files))
	for _, f := range files {
		ds, err := geom.ReadEdgeList(f)
		if err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	return out, nil
}

// Encode writes datasets in the given format, preserving their order.
func Encode(w io.Writer, datasets []geom.Dataset, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, datasets)
	default:
		return encodeJS(w, datasets)
	}
}

func encodeJS(w io.Writer, datasets []geom.Dataset) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("const INPUT_FILES = {\n")
	for _, ds := range datasets {
		fmt.Fprintf(bw, "    %s: [\n", strconv.Quote(ds.Name))
		for _, s := range ds.Segments {
			fmt.Fprintf(bw, "        new Edge(new Point(%s, %s), new Point(%s, %s)),\n",
				geom.FormatScalar(s.A.X), geom.FormatScalar(s.A.Y),
				geom.FormatScalar(s.B.X), geom.FormatScalar(s.B.Y))
		}
		bw.WriteString("    ],\n")
	}
	bw.WriteString("};\n")
	return bw.Flush()
}

// encodeJSON writes keys in dataset order; encoding a map would re-sort them.
func encodeJSON(w io.Writer, datasets []geom.Dataset) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("{\n")
	for i, ds := range datasets {
		key, err := json.Marshal(ds.Name)
		if err != nil {
			return err
		}
		rows := make([][4]float64, 0, len(ds.Segments))
		for _, s := range ds.Segments {
			rows = append(rows, [4]float64{s.A.X, s.A.Y, s.B.X, s.B.Y})
		}
		val, err := json.Marshal(rows)
		if err != nil {
			return err
		}
		sep := ","
		if i == len(datasets)-1 {
			sep = ""
		}
		fmt.Fprintf(bw, "  %s: %s%s\n", key, val, sep)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// Compile discovers, parses and writes in one all-or-nothing pass: output is
// only created once every input has parsed.
func Compile(dir, pattern, output string, format Format) ([]geom.Dataset, error) {
	files, err := Discover(dir, pattern)
	if err != nil {
		return nil, err
	}
	datasets, err := ReadAll(files)
	if err != nil {
		return nil, err
	}
	err = geom.WriteFileAtomic(output, func(w io.Writer) error {
		return Encode(w, datasets, format)
	})
	if err != nil {
		return nil, err
	}
	return datasets, nil
}
