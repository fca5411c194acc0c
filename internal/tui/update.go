package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"trapmap/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout returns the map origin and size; it must match View.
func (m Model) layout() (originX, originY, mapWidth, mapHeight int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	mapWidth = max(10, contentWidth-sw-1)
	if m.showSidebar {
		originX = sw + 1
	}
	return originX, headerHeight, mapWidth, contentHeight
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showTable {
			switch msg.String() {
			case "a", "esc":
				m.showTable = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showSegments = !m.showSegments
			m.status = fmt.Sprintf("segments: %v", m.showSegments)
		case "2":
			m.showVertices = !m.showVertices
			m.status = fmt.Sprintf("vertices: %v", m.showVertices)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = true
			m.refreshTable()
		case "i":
			m.inspect()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "esc":
			m.inspectPopup = ""
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.trackHover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		src := strings.TrimSpace(m.ta.Value())
		if src == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKT(src)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setSegments(geom.FeatureSegments(d.Rings), d.BBox)
		m.status = fmt.Sprintf("rendered WKT  segments=%d", len(m.segments))
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) inspect() {
	p, ok := m.inspectNearest()
	if !ok {
		m.inspectPopup = "no vertex nearby"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	d := m.declared
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("declared bbox: %s %s %s %s", geom.FormatScalar(d.MinX), geom.FormatScalar(d.MinY), geom.FormatScalar(d.MaxX), geom.FormatScalar(d.MaxY)),
		fmt.Sprintf("segments: %d", len(m.segments)),
		fmt.Sprintf("axis order: %s", m.order),
		fmt.Sprintf("nearest: x=%s y=%s", geom.FormatScalar(p.X), geom.FormatScalar(p.Y)),
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// trackHover records the hovered cell, its data coordinates and the nearest vertex.
func (m *Model) trackHover(cx, cy int) {
	ox, oy, mw, mh := m.layout()
	if cx < ox || cx >= ox+mw || cy < oy || cy >= oy+mh {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	m.hovering = true
	m.hoverCellX = cx - ox
	m.hoverCellY = cy - oy
	if x, y, ok := m.cellToXY(m.hoverCellX, m.hoverCellY, mw, mh); ok {
		m.hoverHasGeo = true
		m.hoverX, m.hoverY = x, y
	} else {
		m.hoverHasGeo = false
	}
	hx, hy := m.hoverCellX*2, m.hoverCellY*4
	m.hoverMicX, m.hoverMicY = hx, hy
	if _, mx, my, ok := m.nearestVertex(hx, hy, mw, mh); ok {
		m.hoverMicX, m.hoverMicY = mx, my
	}
}
