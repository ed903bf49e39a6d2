package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes coordinates into the google encoded polyline
// format the frontend map layer consumes.
func PolylineFromCoords(coords []Coordinate) string {
	latLons := make([][]float64, len(coords))
	for i, c := range coords {
		latLons[i] = []float64{c.GetLat(), c.GetLon()}
	}
	return string(polyline.EncodeCoords(latLons))
}
