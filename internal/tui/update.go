package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"svgdraw/internal/geom"
	"svgdraw/internal/plot"
)

const sidebarWidth = 28

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
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.opts.Layers.Points = !m.opts.Layers.Points
			m.status = fmt.Sprintf("points: %v", m.opts.Layers.Points)
		case "2":
			m.opts.Layers.Lines = !m.opts.Layers.Lines
			m.status = fmt.Sprintf("lines: %v", m.opts.Layers.Lines)
		case "3":
			m.opts.Layers.Polygons = !m.opts.Layers.Polygons
			m.status = fmt.Sprintf("polys: %v", m.opts.Layers.Polygons)
		case "c":
			m.style.StrokeColor = next(strokeColors, m.style.StrokeColor)
			m.status = "stroke: " + m.style.StrokeColor
		case "f":
			m.style.FillColor = next(fillColors, m.style.FillColor)
			m.status = "fill: " + m.style.FillColor
		case "w":
			m.style.StrokeWidth = next(strokeWidths, m.style.StrokeWidth)
			m.status = fmt.Sprintf("stroke width: %g", m.style.StrokeWidth)
		case "d":
			m.style.DashPitch = next(dashPitches, m.style.DashPitch)
			m.status = fmt.Sprintf("dash: %d", m.style.DashPitch)
		case "e":
			m.status = m.export()
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
			cmd := m.ta.Focus()
			return m, cmd
		case "h":
			m.helpVisible = !m.helpVisible
		case "s":
			m.showState = !m.showState
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
		m.refreshState()
	case tea.MouseMsg:
		x, y, w, h := m.mapArea()
		cx, cy := msg.X-x, msg.Y-y
		m.hoverHasGeo = false
		if cx >= 0 && cx < w && cy >= 0 && cy < h {
			m.hoverX, m.hoverY, m.hoverHasGeo = m.cellToData(cx, cy, w, h)
		}
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
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setData(d)
		m.status = "rendered WKT  " + countsLabel(d)
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// export writes the current data with the current drawing state and
// returns a status line.
func (m Model) export() string {
	if m.data.Empty() {
		return "export: nothing to draw"
	}
	if err := plot.RenderFile(m.outPath, m.data, m.exportOptions()); err != nil {
		return "export error: " + err.Error()
	}
	return "exported: " + m.outPath
}

// mapArea returns the origin and size of the map viewport in cells. It
// must match the layout in View.
func (m Model) mapArea() (x, y, w, h int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	const headerHeight, footerHeight = 1, 2
	h = max(4, m.height-headerHeight-footerHeight)
	w = max(10, max(10, m.width)-sw)
	return sw, headerHeight, w, h
}
