package geom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned by Load for unknown file extensions.
var ErrUnsupported = errors.New("unsupported file type")

// Extensions lists the file extensions Load understands.
var Extensions = []string{".csv", ".geojson", ".json", ".kml", ".wkt"}

// Supported reports whether Load can read path, judging by its extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a geometry file, picking the format from its extension.
func Load(path string) (Data, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		return ParseWKT(string(b))
	default:
		return Data{}, fmt.Errorf("%s: %w", ext, ErrUnsupported)
	}
}
