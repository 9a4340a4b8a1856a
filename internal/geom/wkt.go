package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses a subset of WKT.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// MULTILINESTRING((x y, ...), ...), POLYGON((x y, ...), ...).
func ParseWKT(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	body := func(open, close string) (string, error) {
		i := strings.Index(s, open)
		j := strings.LastIndex(s, close)
		if i < 0 || j <= i {
			return "", errors.New("wkt: unbalanced parentheses")
		}
		return s[i+len(open) : j], nil
	}
	d := newData()
	// MULTI* must be tested before the plain type it starts with.
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		b, err := body("(", ")")
		if err != nil {
			return Data{}, err
		}
		// both MULTIPOINT(1 2, 3 4) and MULTIPOINT((1 2), (3 4))
		b = strings.NewReplacer("(", "", ")", "").Replace(b)
		for _, p := range parseTuples(b) {
			d.addPoint(p)
		}
	case strings.HasPrefix(up, "POINT"):
		b, err := body("(", ")")
		if err != nil {
			return Data{}, err
		}
		for _, p := range parseTuples(b) {
			d.addPoint(p)
		}
	case strings.HasPrefix(up, "MULTILINESTRING"):
		b, err := body("((", "))")
		if err != nil {
			return Data{}, err
		}
		for _, part := range splitRings(b) {
			d.addLine(parseTuples(part))
		}
	case strings.HasPrefix(up, "LINESTRING"):
		b, err := body("(", ")")
		if err != nil {
			return Data{}, err
		}
		d.addLine(parseTuples(b))
	case strings.HasPrefix(up, "POLYGON"):
		b, err := body("((", "))")
		if err != nil {
			return Data{}, err
		}
		var poly [][][2]float64
		for _, part := range splitRings(b) {
			if ring := parseTuples(part); len(ring) > 0 {
				poly = append(poly, ring)
			}
		}
		d.addPolygon(poly)
	default:
		return Data{}, errors.New("unsupported wkt type")
	}
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// splitRings splits "a),(b" style ring lists, tolerating spaces around the
// separator.
func splitRings(block string) []string {
	var out []string
	for _, part := range strings.Split(block, ")") {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, ",")
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "(")
		if strings.TrimSpace(part) != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseTuples reads comma separated "x y" pairs, skipping malformed ones.
func parseTuples(block string) [][2]float64 {
	var out [][2]float64
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, [2]float64{x, y})
	}
	return out
}
