package tui

import (
	"strings"

	"trapmap/internal/geom"
)

// cellToXY converts a map cell coordinate back to data x/y using bbox, zoom, and pan.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if !m.hasExtent() {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	y := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return x, y, true
}

// padExtent widens a zero-width axis so collinear or single-point data still
// maps onto the canvas.
func padExtent(b geom.BBox) geom.BBox {
	w, h := b.MaxX-b.MinX, b.MaxY-b.MinY
	pad := max(w, h) / 2
	if pad == 0 {
		pad = 1
	}
	if w == 0 {
		b.MinX, b.MaxX = b.MinX-pad, b.MaxX+pad
	}
	if h == 0 {
		b.MinY, b.MaxY = b.MinY-pad, b.MaxY+pad
	}
	return b
}

func (m Model) hasExtent() bool {
	return m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY
}

func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)

	if m.showSegments {
		for _, s := range m.segments {
			ax, ay, ok1 := m.screenXYMicro(s.A, w, h)
			bx, by, ok2 := m.screenXYMicro(s.B, w, h)
			if !ok1 || !ok2 {
				continue
			}
			br.drawLineMicro(ax, ay, bx, by)
		}
	}
	if m.showVertices {
		for _, s := range m.segments {
			for _, p := range []geom.Point{s.A, s.B} {
				if mx, my, ok := m.screenXYMicro(p, w, h); ok {
					br.setPixel(mx, my)
				}
			}
		}
	}
	lines := br.toLines()

	// mark the hovered vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				circle := hoverStyle.Render("◯")
				lines[cy] = string(r[:cx]) + circle + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps data x/y into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(p geom.Point, w, h int) (int, int, bool) {
	if !m.hasExtent() {
		return 0, 0, false
	}
	nx := (p.X - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (p.Y - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// nearestVertex returns the segment endpoint closest to micro coords (hx, hy).
func (m Model) nearestVertex(hx, hy, w, h int) (p geom.Point, mx, my int, ok bool) {
	best := 1<<31 - 1
	for _, s := range m.segments {
		for _, v := range []geom.Point{s.A, s.B} {
			sx, sy, vok := m.screenXYMicro(v, w, h)
			if !vok {
				continue
			}
			dx := sx - hx
			dy := sy - hy
			if d := dx*dx + dy*dy; d < best {
				best = d
				p, mx, my, ok = v, sx, sy, true
			}
		}
	}
	return p, mx, my, ok
}

// inspectNearest finds the vertex closest to the viewport center.
func (m Model) inspectNearest() (geom.Point, bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	p, _, _, ok := m.nearestVertex(w, h*2, w, h)
	return p, ok
}
