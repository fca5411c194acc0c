package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"trapmap/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func supportedExt(ext string) bool {
	return ext == ".txt" || slices.Contains(geom.SourceExts, ext)
}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if supportedExt(ext) {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// readSegmentsAny reads a .txt either as a segment file (count, bbox,
// segments) or, failing that, as an edge-list input file.
func readSegmentsAny(p string, order geom.AxisOrder) ([]geom.Segment, geom.BBox, error) {
	sf, err := geom.ReadSegments(p, order)
	if err == nil {
		return sf.Segments, sf.BBox, nil
	}
	ds, eerr := geom.ReadEdgeList(p)
	if eerr != nil {
		return nil, geom.BBox{}, err
	}
	bb, _ := geom.Bounds(ds.Segments)
	return ds.Segments, bb, nil
}

// loadPath loads supported formats into the model.
func (m *Model) loadPath(p string) {
	m.selPath = p
	ext := strings.ToLower(filepath.Ext(p))
	var (
		segs     []geom.Segment
		declared geom.BBox
		err      error
	)
	switch {
	case ext == ".txt":
		segs, declared, err = readSegmentsAny(p, m.order)
	case supportedExt(ext):
		var d geom.Data
		d, err = geom.Load(p)
		segs, declared = geom.FeatureSegments(d.Rings), d.BBox
	default:
		m.status = "unsupported file: " + ext
		return
	}
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.setSegments(segs, declared)
	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  segments=%d", len(m.segments))
	if m.showTable {
		m.refreshTable()
	}
}

// setSegments replaces the dataset and resets the viewport.
func (m *Model) setSegments(segs []geom.Segment, declared geom.BBox) {
	m.segments = segs
	m.declared = declared
	if bb, ok := geom.Bounds(segs); ok {
		m.bbox = padExtent(bb)
	} else {
		m.bbox = declared
	}
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
}
