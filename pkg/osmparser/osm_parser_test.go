package osmparser

import (
	"testing"

	"github.com/bagas-w/gridway/pkg"
	"github.com/paulmach/osm"
)

func wayWithTags(tags map[string]string) *osm.Way {
	way := &osm.Way{}
	for k, v := range tags {
		way.Tags = append(way.Tags, osm.Tag{Key: k, Value: v})
	}
	return way
}

func TestClassifyWay(t *testing.T) {
	testCases := []struct {
		name     string
		tags     map[string]string
		want     pkg.RoadClass
		wantArea bool
	}{
		{name: "primary road", tags: map[string]string{"highway": "primary"}, want: pkg.ARTERIAL},
		{name: "residential street", tags: map[string]string{"highway": "residential"}, want: pkg.RESIDENTIAL},
		{name: "footpath", tags: map[string]string{"highway": "footway"}, want: pkg.FOOTWAY},
		{name: "building footprint", tags: map[string]string{"building": "yes"}, want: pkg.BUILDING, wantArea: true},
		{name: "park", tags: map[string]string{"leisure": "park"}, want: pkg.PARK, wantArea: true},
		{name: "grass landuse", tags: map[string]string{"landuse": "grass"}, want: pkg.PARK, wantArea: true},
		{name: "building tag wins over highway", tags: map[string]string{"building": "yes", "highway": "service"}, want: pkg.BUILDING, wantArea: true},
		{name: "untagged way", tags: map[string]string{"waterway": "river"}, want: pkg.UNKNOWN},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, isArea := classifyWay(wayWithTags(tt.tags))
			if got != tt.want {
				t.Errorf("got class %v, want %v", got, tt.want)
			}
			if isArea != tt.wantArea {
				t.Errorf("got area %v, want %v", isArea, tt.wantArea)
			}
		})
	}
}

func TestAreaBounds(t *testing.T) {
	p := NewOsmParser(nil)
	p.nodeCoords[1] = nodeCoord{lat: 1.0, lon: 2.0}
	p.nodeCoords[2] = nodeCoord{lat: 3.0, lon: 0.5}
	p.nodeCoords[3] = nodeCoord{lat: 2.0, lon: 4.0}

	area, ok := p.areaBounds(parsedWay{nodes: []int64{1, 2, 3}, class: pkg.BUILDING, area: true})
	if !ok {
		t.Fatal("want bounds for a resolvable way")
	}
	if area.MinLat != 1.0 || area.MaxLat != 3.0 || area.MinLon != 0.5 || area.MaxLon != 4.0 {
		t.Errorf("got bounds (%f,%f)-(%f,%f)", area.MinLat, area.MinLon, area.MaxLat, area.MaxLon)
	}

	// a way whose nodes were never resolved yields nothing
	if _, ok := p.areaBounds(parsedWay{nodes: []int64{7, 8}, class: pkg.PARK, area: true}); ok {
		t.Error("want no bounds for unresolved nodes")
	}
}
