package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"trapmap/internal/geom"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	order    geom.AxisOrder
	segments []geom.Segment
	declared geom.BBox // bbox line of a segment file, or the source extent
	bbox     geom.BBox // render extent, union of segment endpoints

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showSegments bool
	showVertices bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverX      float64
	hoverY      float64

	// segment table
	showTable bool
	tbl       table.Model
}

func New(order geom.AxisOrder) Model {
	m := Model{
		showSidebar:  false,
		helpVisible:  true,
		zoom:         1.0,
		status:       "trapmap view ready",
		order:        order,
		showSegments: true,
		showVertices: false,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POLYGON, MULTIPOLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, order geom.AxisOrder) Model {
	m := New(order)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Run starts the full-screen viewer, optionally preloading path.
func Run(path string, order geom.AxisOrder) error {
	var m tea.Model
	if path != "" {
		m = NewWithPath(path, order)
	} else {
		m = New(order)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
