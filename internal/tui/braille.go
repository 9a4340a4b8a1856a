package tui

import "strings"

// brailleDots holds the dot bit of each micro pixel, indexed [row][col].
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleBuf rasterises strokes onto a grid of braille cells, each holding
// 2x4 micro pixels.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell dot mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro pixel; pixels off the grid are dropped.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 || mx >= b.w*2 || my >= b.h*4 {
		return
	}
	b.m[my/4][mx/2] |= brailleDots[my%4][mx%2]
}

// drawLineMicro draws a line on the micro grid using Bresenham.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	for e := dx + dy; ; {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		if 2*e >= dy {
			e += dy
			x0 += sx
		}
		if 2*e <= dx {
			e += dx
			y0 += sy
		}
	}
}

// drawCircleMicro outlines a circle of radius r micro pixels around (cx, cy)
// using the midpoint algorithm. A radius below one sets a single pixel.
func (b *brailleBuf) drawCircleMicro(cx, cy, r int) {
	if r < 1 {
		b.setPixel(cx, cy)
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		for _, p := range [8][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			b.setPixel(cx+p[0], cy+p[1])
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// lit reports whether any micro pixel of the cell is set.
func (b *brailleBuf) lit(cx, cy int) bool {
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return false
	}
	return b.m[cy][cx] != 0
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	var sb strings.Builder
	for y, row := range b.m {
		sb.Reset()
		for _, mask := range row {
			if mask == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(rune(0x2800 + int(mask)))
			}
		}
		out[y] = sb.String()
	}
	return out
}
