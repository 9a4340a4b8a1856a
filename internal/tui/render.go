package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svgdraw/internal/plot"
	"svgdraw/internal/svg"
)

// previewTransform maps the data onto a w x h cell area through the same
// viewbox the export uses, narrowed around its centre by the zoom factor.
// The result addresses micro pixels.
func (m Model) previewTransform(w, h int) svg.Transform {
	v := plot.Viewbox(m.data.BBox, m.opts.Padding)
	cx, cy := (v.MinX+v.MaxX)/2, (v.MinY+v.MaxY)/2
	hx, hy := (v.MaxX-v.MinX)/2/m.zoom, (v.MaxY-v.MinY)/2/m.zoom
	return svg.Transform{
		View:   svg.Viewbox{MinX: cx - hx, MinY: cy - hy, MaxX: cx + hx, MaxY: cy + hy},
		Width:  float64(w*2 - 1),
		Height: float64(h*4 - 1),
	}
}

// micro maps a data point to micro pixel coordinates, including the pan.
func (m Model) micro(tr svg.Transform, x, y float64) (int, int, bool) {
	p := tr.Apply(svg.Pt(x, y))
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return 0, 0, false
	}
	return int(math.Round(p.X)) + m.offsetX*2, int(math.Round(p.Y)) + m.offsetY*4, true
}

// cellToData converts a map cell back to data coordinates.
func (m Model) cellToData(cx, cy, w, h int) (float64, float64, bool) {
	if m.data.Empty() || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	tr := m.previewTransform(w, h)
	p := tr.Invert(svg.Pt(float64((cx-m.offsetX)*2), float64((cy-m.offsetY)*4)))
	return p.X, p.Y, true
}

// renderPreview draws the current data the way the export would, with
// the stroke color of the drawing state.
func (m Model) renderPreview(w, h int) string {
	br := newBrailleBuf(w, h)
	if !m.data.Empty() {
		tr := m.previewTransform(w, h)
		line := func(a, b [2]float64) {
			x0, y0, ok0 := m.micro(tr, a[0], a[1])
			x1, y1, ok1 := m.micro(tr, b[0], b[1])
			if ok0 && ok1 {
				br.drawLineMicro(x0, y0, x1, y1)
			}
		}
		layers := m.opts.Layers
		if layers.Polygons {
			for _, poly := range m.data.Polygons {
				for _, ring := range poly {
					for i := 1; i < len(ring); i++ {
						line(ring[i-1], ring[i])
					}
					if n := len(ring); n > 2 && ring[0] != ring[n-1] {
						line(ring[n-1], ring[0])
					}
				}
			}
		}
		if layers.Lines {
			for _, ls := range m.data.Lines {
				for i := 1; i < len(ls); i++ {
					line(ls[i-1], ls[i])
				}
			}
		}
		if layers.Points {
			// the export radius is in canvas pixels; scale it to the preview
			r := 0
			if m.opts.Width > 0 {
				r = int(m.opts.PointRadius * tr.Width / float64(m.opts.Width))
			}
			for _, p := range m.data.Points {
				if x, y, ok := m.micro(tr, p[0], p[1]); ok {
					br.drawCircleMicro(x, y, r)
				}
			}
		}
	}
	fg := lipgloss.NewStyle().Foreground(previewColor(m.style.StrokeColor))
	lines := br.toLines()
	for y := range lines {
		lines[y] = fg.Render(lines[y])
	}
	return strings.Join(lines, "\n")
}
