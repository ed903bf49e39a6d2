package osmparser

import (
	"context"
	"os"

	"github.com/bagas-w/gridway/pkg"
	"github.com/bagas-w/gridway/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type nodeCoord struct {
	lat float64
	lon float64
}

type parsedWay struct {
	nodes []int64
	class pkg.RoadClass
	area  bool
}

// OsmParser extracts classified road segments and terrain areas from an
// .osm.pbf extract. Two scans: the first collects the ways we care about, the
// second resolves the coordinates of the nodes those ways reference.
type OsmParser struct {
	ways        []parsedWay
	neededNodes map[int64]struct{}
	nodeCoords  map[int64]nodeCoord
	logger      *zap.Logger
}

func NewOsmParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		ways:        make([]parsedWay, 0),
		neededNodes: make(map[int64]struct{}),
		nodeCoords:  make(map[int64]nodeCoord),
		logger:      logger,
	}
}

// Parse scans the extract and returns terrain data for the weight provider.
func (p *OsmParser) Parse(mapFile string) (*datastructure.TerrainData, error) {
	if err := p.scanWays(mapFile); err != nil {
		return nil, err
	}
	if err := p.scanNodes(mapFile); err != nil {
		return nil, err
	}
	return p.buildTerrainData(), nil
}

func (p *OsmParser) scanWays(mapFile string) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	countWays := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if len(way.Nodes) < 2 {
			continue
		}

		class, isArea := classifyWay(way)
		if class == pkg.UNKNOWN {
			continue
		}
		if (countWays+1)%50000 == 0 {
			p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		nodes := make([]int64, len(way.Nodes))
		for i, node := range way.Nodes {
			nodes[i] = int64(node.ID)
			p.neededNodes[int64(node.ID)] = struct{}{}
		}
		p.ways = append(p.ways, parsedWay{nodes: nodes, class: class, area: isArea})
	}
	return scanner.Err()
}

func (p *OsmParser) scanNodes(mapFile string) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if _, needed := p.neededNodes[int64(node.ID)]; !needed {
			continue
		}
		p.nodeCoords[int64(node.ID)] = nodeCoord{lat: node.Lat, lon: node.Lon}
	}
	return scanner.Err()
}

func (p *OsmParser) buildTerrainData() *datastructure.TerrainData {
	data := &datastructure.TerrainData{
		Segments: make([]datastructure.RoadSegment, 0),
		Areas:    make([]datastructure.TerrainArea, 0),
	}

	for _, way := range p.ways {
		if way.area {
			if area, ok := p.areaBounds(way); ok {
				data.Areas = append(data.Areas, area)
			}
			continue
		}

		for i := 0; i+1 < len(way.nodes); i++ {
			from, okFrom := p.nodeCoords[way.nodes[i]]
			to, okTo := p.nodeCoords[way.nodes[i+1]]
			if !okFrom || !okTo {
				continue
			}
			data.Segments = append(data.Segments,
				datastructure.NewRoadSegment(from.lat, from.lon, to.lat, to.lon, way.class))
		}
	}

	p.logger.Info("parsed openstreetmap extract",
		zap.Int("roadSegments", len(data.Segments)),
		zap.Int("areas", len(data.Areas)))
	return data
}

func (p *OsmParser) areaBounds(way parsedWay) (datastructure.TerrainArea, bool) {
	first := true
	var minLat, minLon, maxLat, maxLon float64
	for _, id := range way.nodes {
		coord, ok := p.nodeCoords[id]
		if !ok {
			continue
		}
		if first {
			minLat, maxLat = coord.lat, coord.lat
			minLon, maxLon = coord.lon, coord.lon
			first = false
			continue
		}
		if coord.lat < minLat {
			minLat = coord.lat
		}
		if coord.lat > maxLat {
			maxLat = coord.lat
		}
		if coord.lon < minLon {
			minLon = coord.lon
		}
		if coord.lon > maxLon {
			maxLon = coord.lon
		}
	}
	if first {
		return datastructure.TerrainArea{}, false
	}
	return datastructure.NewTerrainArea(minLat, minLon, maxLat, maxLon, way.class), true
}

// classifyWay maps osm tags to a road class. Buildings and parks are area
// features; every highway-tagged way is a linear feature.
func classifyWay(way *osm.Way) (pkg.RoadClass, bool) {
	if way.Tags.Find("building") != "" {
		return pkg.BUILDING, true
	}
	if leisure := way.Tags.Find("leisure"); leisure == "park" || leisure == "garden" {
		return pkg.PARK, true
	}
	if landuse := way.Tags.Find("landuse"); landuse == "grass" || landuse == "recreation_ground" {
		return pkg.PARK, true
	}

	highway := way.Tags.Find("highway")
	if highway == "" {
		return pkg.UNKNOWN, false
	}
	return pkg.GetRoadClass(highway), false
}
