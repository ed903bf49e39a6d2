package datastructure

import (
	"github.com/bagas-w/gridway/pkg"
)

// RoadSegment is one classified piece of an osm way, kept as raw endpoint
// coordinates so the spatial index can box it without further lookups.
type RoadSegment struct {
	FromLat float64
	FromLon float64
	ToLat   float64
	ToLon   float64
	Class   pkg.RoadClass
}

func NewRoadSegment(fromLat, fromLon, toLat, toLon float64, class pkg.RoadClass) RoadSegment {
	return RoadSegment{
		FromLat: fromLat,
		FromLon: fromLon,
		ToLat:   toLat,
		ToLon:   toLon,
		Class:   class,
	}
}

// TerrainArea is the bounding box of an osm area feature: building footprints
// (impassable) and parks (high traversal cost).
type TerrainArea struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
	Class  pkg.RoadClass
}

func NewTerrainArea(minLat, minLon, maxLat, maxLon float64, class pkg.RoadClass) TerrainArea {
	return TerrainArea{
		MinLat: minLat,
		MinLon: minLon,
		MaxLat: maxLat,
		MaxLon: maxLon,
		Class:  class,
	}
}

func (a TerrainArea) ContainsPoint(lat, lon float64) bool {
	return lat >= a.MinLat && lat <= a.MaxLat && lon >= a.MinLon && lon <= a.MaxLon
}

// TerrainData is everything the parser extracts from an osm extract that the
// weight provider needs.
type TerrainData struct {
	Segments []RoadSegment
	Areas    []TerrainArea
}

func NewTerrainData() *TerrainData {
	return &TerrainData{
		Segments: make([]RoadSegment, 0),
		Areas:    make([]TerrainArea, 0),
	}
}
