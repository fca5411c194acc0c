package geom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SourceExts lists the extensions Load understands.
var SourceExts = []string{".shp", ".geojson", ".json", ".wkt"}

// Load dispatches on the file extension.
func Load(path string) (Data, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		return LoadShapefile(path)
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".wkt":
		return LoadWKT(path)
	}
	return Data{}, &OpError{
		Op:    "geom.load",
		Kind:  KindNotFound,
		Path:  path,
		Index: -1,
		Err:   fmt.Errorf("unsupported source type %q", filepath.Ext(path)),
	}
}

// LoadWKT reads a file holding one WKT geometry.
func LoadWKT(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, notFound("geom.load_wkt", path, err)
	}
	d, err := ParseWKT(string(b))
	if err != nil {
		var oe *OpError
		if errors.As(err, &oe) {
			oe.Path = path
		}
		return Data{}, err
	}
	return d, nil
}
