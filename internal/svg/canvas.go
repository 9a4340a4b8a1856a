// Package svg writes lines, circles and rectangles given in an arbitrary
// viewbox as SVG elements on a fixed size canvas.
//
// Elements are written to the destination as soon as they are drawn. The
// document header is written by New and the closing tag by Close:
//
//	c := svg.New(w, 300, 300)
//	defer c.Close()
//	c.SetViewBox(-2, -2, 2, 2)
//	c.SetStrokeColor("red")
//	c.DrawLine(-1.5, -1.5, -1.5, 1.5)
package svg

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
)

// DefaultFilename is used by Create when no name is given.
const DefaultFilename = "draw.svg"

const (
	headerTag = "<svg xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\" width=\"%d\" height=\"%d\">\n"
	footerTag = "</svg>\n"

	dashAttr = " stroke-dasharray=\"%d\""
)

// ErrClosed is recorded when a Canvas is used after Close.
var ErrClosed = errors.New("svg: canvas closed")

type state int

const (
	stateOpen state = iota
	stateClosed
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithLogger sets where diagnostics such as a degenerate viewbox are reported.
// A nil logger discards them.
func WithLogger(l *log.Logger) Option {
	return func(c *Canvas) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		c.log = l
	}
}

// WithIndent sets the prefix written before every shape element.
func WithIndent(indent string) Option {
	return func(c *Canvas) { c.indent = indent }
}

// Canvas is an open SVG document of fixed pixel size. It is not safe for
// concurrent use.
type Canvas struct {
	w      io.Writer
	closer io.Closer
	width  int
	height int

	tr    Transform
	style Style

	log    *log.Logger
	indent string

	state state
	err   error
}

// New writes the document header to w and returns a Canvas with the
// default viewbox (0, 0, width, height) and DefaultStyle. Width and height
// are not validated.
func New(w io.Writer, width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		w:      w,
		width:  width,
		height: height,
		tr:     NewTransform(width, height),
		style:  DefaultStyle(),
		log:    log.New(os.Stderr, "svgdraw: ", 0),
		indent: "  ",
	}
	for _, opt := range opts {
		opt(c)
	}
	c.printf(headerTag, width, height)
	return c
}

// Create opens the named file for writing, truncating it, and starts a
// document in it. An empty name means DefaultFilename. Close also closes
// the file.
func Create(name string, width, height int, opts ...Option) (*Canvas, error) {
	if name == "" {
		name = DefaultFilename
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("svg: create %s: %w", name, err)
	}
	c := New(f, width, height, opts...)
	c.closer = f
	return c, nil
}

// Render starts a document on w, calls fn and closes the document on
// every exit path of fn, including a panic.
func Render(w io.Writer, width, height int, fn func(*Canvas) error, opts ...Option) (err error) {
	c := New(w, width, height, opts...)
	defer func() {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(c)
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Transform returns the current viewbox to canvas mapping.
func (c *Canvas) Transform() Transform { return c.tr }

// Style returns the current drawing state.
func (c *Canvas) Style() Style { return c.style }

// SetStyle replaces the whole drawing state.
func (c *Canvas) SetStyle(s Style) {
	if c.usable() {
		c.style = s
	}
}

// SetViewBox sets the logical rectangle mapped onto the canvas. A viewbox
// with a near-zero span is reported on the diagnostic logger but kept:
// later shapes get huge or non-finite coordinates.
func (c *Canvas) SetViewBox(minX, minY, maxX, maxY float64) {
	if !c.usable() {
		return
	}
	v := Viewbox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	if v.Degenerate() {
		c.log.Printf("warning: invalid viewport size %v", v)
	}
	c.tr.View = v
}

// SetStrokeColor sets the stroke color, written verbatim.
func (c *Canvas) SetStrokeColor(color string) {
	if c.usable() {
		c.style.StrokeColor = color
	}
}

// SetFillColor sets the fill of circles and rectangles.
func (c *Canvas) SetFillColor(color string) {
	if c.usable() {
		c.style.FillColor = color
	}
}

// SetStrokeWidth sets the stroke width in canvas pixels.
func (c *Canvas) SetStrokeWidth(width float64) {
	if c.usable() {
		c.style.StrokeWidth = width
	}
}

// SetStrokeDash sets the dash pitch. Zero or less draws solid strokes.
func (c *Canvas) SetStrokeDash(pitch int) {
	if c.usable() {
		c.style.DashPitch = pitch
	}
}

// DrawLine draws a stroked line between (x0,y0) and (x1,y1).
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64) {
	if !c.usable() {
		return
	}
	p0 := c.tr.Apply(Pt(x0, y0))
	p1 := c.tr.Apply(Pt(x1, y1))
	c.printf("%s<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"", c.indent, num(p0.X), num(p0.Y), num(p1.X), num(p1.Y))
	c.dash()
	c.printf(" stroke-width=\"%s\" stroke=\"%s\" />\n", num(c.style.StrokeWidth), c.style.StrokeColor)
}

// DrawCircle draws a circle centred on (cx,cy). The radius is in canvas
// pixels and is not affected by the viewbox.
func (c *Canvas) DrawCircle(cx, cy, r float64) {
	if !c.usable() {
		return
	}
	p := c.tr.Apply(Pt(cx, cy))
	c.printf("%s<circle cx=\"%s\" cy=\"%s\" r=\"%s\"", c.indent, num(p.X), num(p.Y), num(r))
	c.printf(" stroke-width=\"%s\" stroke=\"%s\"", num(c.style.StrokeWidth), c.style.StrokeColor)
	c.dash()
	c.printf(" fill=\"%s\" />\n", c.style.FillColor)
}

// DrawRect draws the rectangle spanned by (x0,y0) and (x0+w,y0+h). Either
// of w and h may be negative.
func (c *Canvas) DrawRect(x0, y0, w, h float64) {
	if !c.usable() {
		return
	}
	p0 := c.tr.Apply(Pt(x0, y0))
	p1 := c.tr.Apply(Pt(x0+w, y0+h))
	minX, maxX := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
	minY, maxY := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)
	c.printf("%s<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\"", c.indent, num(minX), num(minY), num(maxX-minX), num(maxY-minY))
	c.dash()
	c.printf(" stroke-width=\"%s\" stroke=\"%s\" fill=\"%s\" />\n", num(c.style.StrokeWidth), c.style.StrokeColor, c.style.FillColor)
}

// Close writes the closing tag and, for canvases from Create, closes the
// file. Only the first call has an effect; it returns the first write
// error seen by the canvas.
func (c *Canvas) Close() error {
	if c.state == stateClosed {
		return nil
	}
	c.printf(footerTag)
	c.state = stateClosed
	if c.closer != nil {
		if err := c.closer.Close(); err != nil && c.err == nil {
			c.err = err
		}
	}
	return c.err
}

// Closed reports whether Close has been called.
func (c *Canvas) Closed() bool { return c.state == stateClosed }

// Err returns the first error met while writing, or ErrClosed when the
// canvas was used after Close.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) usable() bool {
	if c.state == stateClosed {
		if c.err == nil {
			c.err = ErrClosed
		}
		return false
	}
	return true
}

func (c *Canvas) dash() {
	if c.style.Dashed() {
		c.printf(dashAttr, c.style.DashPitch)
	}
}

// printf keeps the first write error and skips writing after it.
func (c *Canvas) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintf(c.w, format, args...); err != nil {
		c.err = err
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
