package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"trapmap/internal/geom"
)

// refreshTable rebuilds the segment table from the current dataset.
func (m *Model) refreshTable() {
	if len(m.segments) == 0 {
		// Do not touch table internals here to avoid re-render during SetColumns
		m.showTable = false
		m.status = "no segments in current dataset"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 6},
		{Title: "x1", Width: 14},
		{Title: "y1", Width: 14},
		{Title: "x2", Width: 14},
		{Title: "y2", Width: 14},
	}
	rows := make([]table.Row, 0, len(m.segments))
	for i, s := range m.segments {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			geom.FormatScalar(s.A.X),
			geom.FormatScalar(s.A.Y),
			geom.FormatScalar(s.B.X),
			geom.FormatScalar(s.B.Y),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
