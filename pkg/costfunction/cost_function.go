package costfunction

import (
	"github.com/bagas-w/gridway/pkg"
)

type CostFunction interface {
	GetWeight(class pkg.RoadClass) float64
	IsImpassable(class pkg.RoadClass) bool
}

// RoadClassCostFunction maps osm road classification to the traversal weight
// charged for entering a grid cell. Fast roads cost the minimum weight 1,
// slower classes cost proportionally more, buildings are impassable.
type RoadClassCostFunction struct {
	weights map[pkg.RoadClass]float64
}

func NewRoadClassCostFunction() *RoadClassCostFunction {
	return &RoadClassCostFunction{
		weights: map[pkg.RoadClass]float64{
			pkg.ARTERIAL:    1.0,
			pkg.SECONDARY:   1.5,
			pkg.TERTIARY:    1.75,
			pkg.RESIDENTIAL: 2.0,
			pkg.SERVICE:     2.5,
			pkg.FOOTWAY:     3.0,
			pkg.PARK:        3.0,
		},
	}
}

func (cf *RoadClassCostFunction) GetWeight(class pkg.RoadClass) float64 {
	if cf.IsImpassable(class) {
		return pkg.INF_WEIGHT
	}
	w, ok := cf.weights[class]
	if !ok {
		// unclassified cells are traversable at the worst passable rate
		return cf.weights[pkg.FOOTWAY]
	}
	return w
}

func (cf *RoadClassCostFunction) IsImpassable(class pkg.RoadClass) bool {
	return class == pkg.BUILDING
}
