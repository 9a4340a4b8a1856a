// Package plot draws geometry read by package geom onto an svg.Canvas.
package plot

import (
	"io"

	"svgdraw/internal/geom"
	"svgdraw/internal/svg"
)

// Layers selects which kinds of geometry are drawn.
type Layers struct {
	Points   bool
	Lines    bool
	Polygons bool
}

// Options controls the output document.
type Options struct {
	Width  int
	Height int
	// Padding is added around the data bounds, as a fraction of their extent.
	Padding float64
	// PointRadius is in canvas pixels.
	PointRadius float64
	Layers      Layers

	PointStyle   svg.Style
	LineStyle    svg.Style
	PolygonStyle svg.Style

	// CanvasOptions are passed through to svg.New.
	CanvasOptions []svg.Option
}

func DefaultOptions() Options {
	line := svg.DefaultStyle()
	line.FillColor = "none"
	return Options{
		Width:        300,
		Height:       300,
		Padding:      0.05,
		PointRadius:  2,
		Layers:       Layers{Points: true, Lines: true, Polygons: true},
		PointStyle:   svg.DefaultStyle(),
		LineStyle:    line,
		PolygonStyle: line,
	}
}

// SetStyle applies s to every layer, keeping lines unfilled.
func (o *Options) SetStyle(s svg.Style) {
	o.PointStyle = s
	o.PolygonStyle = s
	o.LineStyle = s
	o.LineStyle.FillColor = "none"
}

// Viewbox returns the viewbox showing b with the given padding. An axis
// with an extent below svg.MinSpan, as for a single point, is widened by
// one unit on each side so the result is never degenerate.
func Viewbox(b geom.BBox, padding float64) svg.Viewbox {
	if b.Empty() {
		return svg.Viewbox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	}
	b = b.Pad(padding)
	if b.MaxX-b.MinX < svg.MinSpan {
		b.MinX, b.MaxX = b.MinX-1, b.MaxX+1
	}
	if b.MaxY-b.MinY < svg.MinSpan {
		b.MinY, b.MaxY = b.MinY-1, b.MaxY+1
	}
	return svg.Viewbox{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}

// Draw fits the viewbox of c to d and draws polygons, then lines, then
// points, each layer in its own style. The style of c is restored after.
func Draw(c *svg.Canvas, d geom.Data, o Options) {
	v := Viewbox(d.BBox, o.Padding)
	c.SetViewBox(v.MinX, v.MinY, v.MaxX, v.MaxY)
	saved := c.Style()
	defer c.SetStyle(saved)

	if o.Layers.Polygons && len(d.Polygons) > 0 {
		c.SetStyle(o.PolygonStyle)
		for _, poly := range d.Polygons {
			for _, ring := range poly {
				drawRing(c, ring)
			}
		}
	}
	if o.Layers.Lines && len(d.Lines) > 0 {
		c.SetStyle(o.LineStyle)
		for _, ls := range d.Lines {
			for i := 1; i < len(ls); i++ {
				c.DrawLine(ls[i-1][0], ls[i-1][1], ls[i][0], ls[i][1])
			}
		}
	}
	if o.Layers.Points && len(d.Points) > 0 {
		c.SetStyle(o.PointStyle)
		for _, p := range d.Points {
			c.DrawCircle(p[0], p[1], o.PointRadius)
		}
	}
}

// drawRing strokes every edge of ring, closing it if the last vertex
// differs from the first.
func drawRing(c *svg.Canvas, ring [][2]float64) {
	n := len(ring)
	if n < 2 {
		return
	}
	for i := 1; i < n; i++ {
		c.DrawLine(ring[i-1][0], ring[i-1][1], ring[i][0], ring[i][1])
	}
	if ring[0] != ring[n-1] && n > 2 {
		c.DrawLine(ring[n-1][0], ring[n-1][1], ring[0][0], ring[0][1])
	}
}

// Render writes a complete document showing d to w.
func Render(w io.Writer, d geom.Data, o Options) error {
	return svg.Render(w, o.Width, o.Height, func(c *svg.Canvas) error {
		Draw(c, d, o)
		return c.Err()
	}, o.CanvasOptions...)
}

// RenderFile writes a complete document showing d to the named file.
func RenderFile(name string, d geom.Data, o Options) error {
	c, err := svg.Create(name, o.Width, o.Height, o.CanvasOptions...)
	if err != nil {
		return err
	}
	defer c.Close()
	Draw(c, d, o)
	return c.Close()
}
