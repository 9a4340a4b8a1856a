package plot

import "svgdraw/internal/svg"

// Demo draws a square with one colored line per side, in a (-2,-2)-(2,2)
// viewbox.
func Demo(c *svg.Canvas) {
	c.SetViewBox(-2, -2, 2, 2)

	c.SetStrokeColor("red")
	c.DrawLine(-1.5, -1.5, -1.5, 1.5)
	c.SetStrokeColor("blue")
	c.DrawLine(-1.5, 1.5, 1.5, 1.5)
	c.SetStrokeColor("yellow")
	c.DrawLine(1.5, 1.5, 1.5, -1.5)
	c.SetStrokeColor("green")
	c.DrawLine(1.5, -1.5, -1.5, -1.5)
}
