package airspace

import (
	"github.com/twpayne/go-geom"
)

// GeomPolygon converts the feature's ring to a go-geom polygon, for
// interop with WKB/WKT encoders and PostGIS drivers.
func (f *Feature) GeomPolygon() (*geom.Polygon, error) {
	coords := make([]geom.Coord, len(f.Ring))
	for i, point := range f.Ring {
		coords[i] = geom.Coord{point[0], point[1]}
	}
	return geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{coords})
}
