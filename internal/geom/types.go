package geom

import "math"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBBox contains nothing; extending it by a point yields that point.
func EmptyBBox() BBox {
	return BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// Empty reports whether no point was ever added.
func (b BBox) Empty() bool { return b.MinX > b.MaxX || b.MinY > b.MaxY }

// Extend grows b to contain (x, y).
func (b *BBox) Extend(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxX = math.Max(b.MaxX, x)
	b.MaxY = math.Max(b.MaxY, y)
}

// Pad grows b on every side by frac of its extent on that axis.
func (b BBox) Pad(frac float64) BBox {
	dx := (b.MaxX - b.MinX) * frac
	dy := (b.MaxY - b.MinY) * frac
	return BBox{MinX: b.MinX - dx, MinY: b.MinY - dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
}

// Data is a minimal geometry container for rendering
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes)
	BBox     BBox
}

func newData() Data { return Data{BBox: EmptyBBox()} }

func (d *Data) addPoint(p [2]float64) {
	d.Points = append(d.Points, p)
	d.BBox.Extend(p[0], p[1])
}

func (d *Data) addLine(ls [][2]float64) {
	if len(ls) == 0 {
		return
	}
	d.Lines = append(d.Lines, ls)
	for _, p := range ls {
		d.BBox.Extend(p[0], p[1])
	}
}

func (d *Data) addPolygon(poly [][][2]float64) {
	if len(poly) == 0 {
		return
	}
	d.Polygons = append(d.Polygons, poly)
	for _, ring := range poly {
		for _, p := range ring {
			d.BBox.Extend(p[0], p[1])
		}
	}
}

// Counts returns the number of points, line strings and polygons.
func (d Data) Counts() (points, lines, polygons int) {
	return len(d.Points), len(d.Lines), len(d.Polygons)
}

// Empty reports whether d holds no geometry.
func (d Data) Empty() bool {
	return len(d.Points)+len(d.Lines)+len(d.Polygons) == 0
}
