package pkg

const (
	INF_WEIGHT float64 = 1e15

	MIN_CELL_WEIGHT = 1.0
)

const (
	DEBUG = false
)

type RoadClass uint8

// enum of osm highway classes relevant for grid traversal cost: https://wiki.openstreetmap.org/wiki/Key:highway
const (
	ARTERIAL    RoadClass = 0
	SECONDARY   RoadClass = 1
	TERTIARY    RoadClass = 2
	RESIDENTIAL RoadClass = 3
	SERVICE     RoadClass = 4
	FOOTWAY     RoadClass = 5
	PARK        RoadClass = 6
	BUILDING    RoadClass = 7
	UNKNOWN     RoadClass = 8
)

func GetRoadClass(roadType string) RoadClass {
	switch roadType {
	case "motorway", "trunk", "primary", "motorway_link", "trunk_link", "primary_link":
		return ARTERIAL
	case "secondary", "secondary_link":
		return SECONDARY
	case "tertiary", "tertiary_link", "unclassified", "road":
		return TERTIARY
	case "residential", "living_street":
		return RESIDENTIAL
	case "service", "track":
		return SERVICE
	case "footway", "path", "pedestrian", "steps", "cycleway":
		return FOOTWAY
	default:
		return UNKNOWN
	}
}

func (rc RoadClass) String() string {
	switch rc {
	case ARTERIAL:
		return "arterial"
	case SECONDARY:
		return "secondary"
	case TERTIARY:
		return "tertiary"
	case RESIDENTIAL:
		return "residential"
	case SERVICE:
		return "service"
	case FOOTWAY:
		return "footway"
	case PARK:
		return "park"
	case BUILDING:
		return "building"
	default:
		return "unknown"
	}
}
