package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlBoundary struct {
	Ring kmlCoords `xml:"LinearRing"`
}

type kmlPolygon struct {
	Outer kmlBoundary   `xml:"outerBoundaryIs"`
	Inner []kmlBoundary `xml:"innerBoundaryIs"`
}

type kmlGeometry struct {
	Points   []kmlCoords   `xml:"Point"`
	Lines    []kmlCoords   `xml:"LineString"`
	Polygons []kmlPolygon  `xml:"Polygon"`
	Multi    []kmlGeometry `xml:"MultiGeometry"`
}

// LoadKML reads a KML file. See DecodeKML.
func LoadKML(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return DecodeKML(f)
}

// DecodeKML extracts Point, LineString and Polygon geometries from every
// Placemark, at any depth of Document/Folder nesting. KML coordinates are
// "lon,lat[,alt]"; altitude is ignored. Documents declaring a non UTF-8
// encoding are transcoded.
func DecodeKML(r io.Reader) (Data, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	d := newData()
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlGeometry
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
		d.addKML(pm)
	}
	if d.Empty() {
		return Data{}, errors.New("kml: no geometries found")
	}
	return d, nil
}

func (d *Data) addKML(g kmlGeometry) {
	for _, p := range g.Points {
		for _, pt := range kmlTuples(p.Coordinates) {
			d.addPoint(pt)
		}
	}
	for _, l := range g.Lines {
		d.addLine(kmlTuples(l.Coordinates))
	}
	for _, p := range g.Polygons {
		outer := kmlTuples(p.Outer.Ring.Coordinates)
		if len(outer) == 0 {
			continue
		}
		poly := [][][2]float64{outer}
		for _, in := range p.Inner {
			if ring := kmlTuples(in.Ring.Coordinates); len(ring) > 0 {
				poly = append(poly, ring)
			}
		}
		d.addPolygon(poly)
	}
	for _, m := range g.Multi {
		d.addKML(m)
	}
}

// kmlTuples parses whitespace separated "lon,lat[,alt]" tuples.
func kmlTuples(s string) [][2]float64 {
	var out [][2]float64
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, [2]float64{lon, lat})
	}
	return out
}
