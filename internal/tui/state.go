package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"svgdraw/internal/plot"
)

// stateRows describes the drawing state the next export will use.
func (m Model) stateRows() []table.Row {
	v := plot.Viewbox(m.data.BBox, m.opts.Padding)
	dash := "solid"
	if m.style.Dashed() {
		dash = strconv.Itoa(m.style.DashPitch)
	}
	return []table.Row{
		{"stroke", m.style.StrokeColor},
		{"width", strconv.FormatFloat(m.style.StrokeWidth, 'g', -1, 64)},
		{"dash", dash},
		{"fill", m.style.FillColor},
		{"viewbox", v.String()},
		{"canvas", fmt.Sprintf("%dx%d", m.opts.Width, m.opts.Height)},
		{"output", m.outPath},
	}
}

func (m *Model) refreshState() {
	m.tbl.SetRows(m.stateRows())
}
