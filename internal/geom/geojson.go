package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadGeoJSON reads a GeoJSON file. See DecodeGeoJSON.
func LoadGeoJSON(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return DecodeGeoJSON(f)
}

// DecodeGeoJSON reads a FeatureCollection, a Feature or a bare geometry.
// Point, MultiPoint, LineString, MultiLineString, Polygon, MultiPolygon and
// GeometryCollection are supported; properties are ignored.
func DecodeGeoJSON(r io.Reader) (Data, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	d := newData()
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			d.walkGeoJSON(g)
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			if fm, ok := f.(map[string]any); ok {
				if g, ok := fm["geometry"].(map[string]any); ok {
					d.walkGeoJSON(g)
				}
			}
		}
	default:
		d.walkGeoJSON(raw)
	}
	if d.Empty() {
		return Data{}, errors.New("geojson: no geometries found")
	}
	return d, nil
}

func (d *Data) walkGeoJSON(g map[string]any) {
	coords := g["coordinates"]
	switch g["type"] {
	case "Point":
		if pt, ok := jsonPoint(coords); ok {
			d.addPoint(pt)
		}
	case "MultiPoint":
		for _, p := range jsonLine(coords) {
			d.addPoint(p)
		}
	case "LineString":
		d.addLine(jsonLine(coords))
	case "MultiLineString":
		arr, _ := coords.([]any)
		for _, el := range arr {
			d.addLine(jsonLine(el))
		}
	case "Polygon":
		d.addPolygon(jsonPolygon(coords))
	case "MultiPolygon":
		arr, _ := coords.([]any)
		for _, el := range arr {
			d.addPolygon(jsonPolygon(el))
		}
	case "GeometryCollection":
		gs, _ := g["geometries"].([]any)
		for _, el := range gs {
			if gm, ok := el.(map[string]any); ok {
				d.walkGeoJSON(gm)
			}
		}
	}
}

func jsonPoint(v any) ([2]float64, bool) {
	a, ok := v.([]any)
	if !ok || len(a) < 2 {
		return [2]float64{}, false
	}
	x, xok := a[0].(float64)
	y, yok := a[1].(float64)
	if !xok || !yok {
		return [2]float64{}, false
	}
	return [2]float64{x, y}, true
}

func jsonLine(v any) [][2]float64 {
	arr, _ := v.([]any)
	var out [][2]float64
	for _, el := range arr {
		if pt, ok := jsonPoint(el); ok {
			out = append(out, pt)
		}
	}
	return out
}

func jsonPolygon(v any) [][][2]float64 {
	arr, _ := v.([]any)
	var poly [][][2]float64
	for _, ring := range arr {
		if ls := jsonLine(ring); len(ls) > 0 {
			poly = append(poly, ls)
		}
	}
	return poly
}
