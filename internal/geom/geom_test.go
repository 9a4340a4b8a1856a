package geom

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func TestParseWKT(t *testing.T) {
	t.Parallel()
	data := []struct {
		in       string
		points   [][2]float64
		lines    [][][2]float64
		polygons [][][][2]float64
		bbox     BBox
	}{
		// 0
		{
			"POINT(1 2)",
			[][2]float64{{1, 2}}, nil, nil,
			BBox{1, 2, 1, 2},
		},
		// 1 lower case and extra whitespace
		{
			"  multipoint (1 2, -3 4.5) ",
			[][2]float64{{1, 2}, {-3, 4.5}}, nil, nil,
			BBox{-3, 2, 1, 4.5},
		},
		// 2 parenthesised members
		{
			"MULTIPOINT((1 2), (3 4))",
			[][2]float64{{1, 2}, {3, 4}}, nil, nil,
			BBox{1, 2, 3, 4},
		},
		// 3
		{
			"LINESTRING(0 0, 10 5, 20 -5)",
			nil, [][][2]float64{{{0, 0}, {10, 5}, {20, -5}}}, nil,
			BBox{0, -5, 20, 5},
		},
		// 4
		{
			"MULTILINESTRING((0 0, 1 1), (2 2, 3 3))",
			nil, [][][2]float64{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}, nil,
			BBox{0, 0, 3, 3},
		},
		// 5 polygon with a hole
		{
			"POLYGON((0 0, 4 0, 4 4, 0 4, 0 0), (1 1, 2 1, 2 2, 1 1))",
			nil, nil,
			[][][][2]float64{{
				{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
				{{1, 1}, {2, 1}, {2, 2}, {1, 1}},
			}},
			BBox{0, 0, 4, 4},
		},
		// 6 malformed tuples are skipped
		{
			"LINESTRING(0 0, a b, 1 1, 7)",
			nil, [][][2]float64{{{0, 0}, {1, 1}}}, nil,
			BBox{0, 0, 1, 1},
		},
	}
	for i, v := range data {
		d, err := ParseWKT(v.in)
		ut.AssertEqualIndex(t, i, nil, err)
		ut.AssertEqualIndex(t, i, v.points, d.Points)
		ut.AssertEqualIndex(t, i, v.lines, d.Lines)
		ut.AssertEqualIndex(t, i, v.polygons, d.Polygons)
		ut.AssertEqualIndex(t, i, v.bbox, d.BBox)
	}
}

func TestParseWKTErrors(t *testing.T) {
	t.Parallel()
	for i, in := range []string{
		"",
		"   ",
		"CIRCLE(1 2 3)",
		"POINT 1 2",
		"POLYGON(0 0, 1 1)",
		"LINESTRING(a b)",
	} {
		_, err := ParseWKT(in)
		if err == nil {
			t.Fatalf("Test %d (%q): wanted error, got no error", i, in)
		}
	}
}

func TestDecodeGeoJSON(t *testing.T) {
	t.Parallel()
	in := `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "a"}, "geometry": {"type": "Point", "coordinates": [1, 2]}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [3, -1]]}},
    {"type": "Feature", "geometry": {"type": "MultiPolygon", "coordinates": [[[[0, 0], [1, 0], [1, 1], [0, 0]]]]}},
    {"type": "Feature", "geometry": {"type": "GeometryCollection", "geometries": [
      {"type": "MultiPoint", "coordinates": [[5, 5], [6, 6]]},
      {"type": "MultiLineString", "coordinates": [[[7, 7], [8, 8]]]}
    ]}},
    {"type": "Feature", "geometry": null}
  ]
}`
	d, err := DecodeGeoJSON(strings.NewReader(in))
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, [][2]float64{{1, 2}, {5, 5}, {6, 6}}, d.Points)
	ut.AssertEqual(t, [][][2]float64{{{0, 0}, {3, -1}}, {{7, 7}, {8, 8}}}, d.Lines)
	ut.AssertEqual(t, [][][][2]float64{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}}, d.Polygons)
	ut.AssertEqual(t, BBox{0, -1, 8, 8}, d.BBox)
}

func TestDecodeGeoJSONBareGeometry(t *testing.T) {
	t.Parallel()
	d, err := DecodeGeoJSON(strings.NewReader(`{"type": "Polygon", "coordinates": [[[0, 0], [2, 0], [2, 2], [0, 0]]]}`))
	ut.AssertEqual(t, nil, err)
	p, l, g := d.Counts()
	ut.AssertEqual(t, []int{0, 0, 1}, []int{p, l, g})

	d, err = DecodeGeoJSON(strings.NewReader(`{"type": "Feature", "geometry": {"type": "Point", "coordinates": [3, 4, 100]}}`))
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, [][2]float64{{3, 4}}, d.Points)
}

func TestDecodeGeoJSONErrors(t *testing.T) {
	t.Parallel()
	for i, in := range []string{
		`not json`,
		`{"type": "FeatureCollection", "features": []}`,
		`{"type": "Point", "coordinates": ["a", "b"]}`,
	} {
		if _, err := DecodeGeoJSON(strings.NewReader(in)); err == nil {
			t.Fatalf("Test %d: wanted error, got no error", i)
		}
	}
}

func TestDecodeCSV(t *testing.T) {
	t.Parallel()
	data := []struct {
		in     string
		points [][2]float64
	}{
		// 0
		{"name,lat,lon\na,1,2\nb,3,4\n", [][2]float64{{2, 1}, {4, 3}}},
		// 1 mixed case headers, spaces, bad rows skipped
		{"Longitude, LATITUDE\n10, 20\nx,y\n11\n 12 , 22\n", [][2]float64{{10, 20}, {12, 22}}},
		// 2 x/y columns
		{"X,Y,Z\n1,2,3\n", [][2]float64{{1, 2}}},
	}
	for i, v := range data {
		d, err := DecodeCSV(strings.NewReader(v.in))
		ut.AssertEqualIndex(t, i, nil, err)
		ut.AssertEqualIndex(t, i, v.points, d.Points)
	}
}

func TestDecodeCSVErrors(t *testing.T) {
	t.Parallel()
	for i, in := range []string{
		"",
		"a,b\n1,2\n",
		"lat,lon\nfoo,bar\n",
	} {
		if _, err := DecodeCSV(strings.NewReader(in)); err == nil {
			t.Fatalf("Test %d (%q): wanted error, got no error", i, in)
		}
	}
}

const kmlDoc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Folder>
      <Placemark>
        <name>p</name>
        <Point><coordinates>1,2,0</coordinates></Point>
      </Placemark>
    </Folder>
    <Placemark>
      <LineString><coordinates>0,0 3,3</coordinates></LineString>
    </Placemark>
    <Placemark>
      <MultiGeometry>
        <Polygon>
          <outerBoundaryIs><LinearRing><coordinates>0,0 4,0 4,-4 0,0</coordinates></LinearRing></outerBoundaryIs>
          <innerBoundaryIs><LinearRing><coordinates>1,-1 2,-1 2,-2 1,-1</coordinates></LinearRing></innerBoundaryIs>
        </Polygon>
      </MultiGeometry>
    </Placemark>
  </Document>
</kml>
`

func TestDecodeKML(t *testing.T) {
	t.Parallel()
	d, err := DecodeKML(strings.NewReader(kmlDoc))
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, [][2]float64{{1, 2}}, d.Points)
	ut.AssertEqual(t, [][][2]float64{{{0, 0}, {3, 3}}}, d.Lines)
	ut.AssertEqual(t, 1, len(d.Polygons))
	ut.AssertEqual(t, 2, len(d.Polygons[0]))
	ut.AssertEqual(t, BBox{0, -4, 4, 3}, d.BBox)
}

func TestDecodeKMLLatin1(t *testing.T) {
	t.Parallel()
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<kml><Placemark><name>Z\xfcrich</name><Point><coordinates>8.5,47.4</coordinates></Point></Placemark></kml>"
	d, err := DecodeKML(strings.NewReader(doc))
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, [][2]float64{{8.5, 47.4}}, d.Points)
}

func TestDecodeKMLErrors(t *testing.T) {
	t.Parallel()
	for i, in := range []string{
		"<kml><Document></Document></kml>",
		"<kml><Placemark><Point>",
	} {
		if _, err := DecodeKML(strings.NewReader(in)); err == nil {
			t.Fatalf("Test %d: wanted error, got no error", i)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	files := map[string]string{
		"a.wkt":     "LINESTRING(0 0, 1 1)",
		"b.GeoJSON": `{"type": "Point", "coordinates": [1, 1]}`,
		"c.csv":     "lat,lon\n1,1\n",
		"d.kml":     kmlDoc,
	}
	for name, body := range files {
		p := filepath.Join(dir, name)
		ut.AssertEqual(t, nil, os.WriteFile(p, []byte(body), 0o644))
		ut.AssertEqual(t, true, Supported(p))
		d, err := Load(p)
		ut.AssertEqual(t, nil, err)
		ut.AssertEqual(t, false, d.Empty())
	}
	_, err := Load(filepath.Join(dir, "e.shp"))
	ut.AssertEqual(t, true, errors.Is(err, ErrUnsupported))
	ut.AssertEqual(t, false, Supported("e.shp"))
	_, err = Load(filepath.Join(dir, "missing.wkt"))
	ut.AssertEqual(t, true, errors.Is(err, os.ErrNotExist))
}

func TestBBox(t *testing.T) {
	t.Parallel()
	b := EmptyBBox()
	ut.AssertEqual(t, true, b.Empty())
	b.Extend(1, 2)
	ut.AssertEqual(t, BBox{1, 2, 1, 2}, b)
	ut.AssertEqual(t, false, b.Empty())
	b.Extend(-1, 4)
	ut.AssertEqual(t, BBox{-1, 2, 1, 4}, b)
	ut.AssertEqual(t, BBox{-1.5, 1.5, 1.5, 4.5}, b.Pad(0.25))
}
