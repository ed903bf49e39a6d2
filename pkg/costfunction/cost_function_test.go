package costfunction

import (
	"testing"

	"github.com/bagas-w/gridway/pkg"
)

func TestGetWeight(t *testing.T) {
	cf := NewRoadClassCostFunction()

	testCases := []struct {
		name  string
		class pkg.RoadClass
		want  float64
	}{
		{name: "arterial is the cheapest", class: pkg.ARTERIAL, want: 1.0},
		{name: "secondary", class: pkg.SECONDARY, want: 1.5},
		{name: "residential", class: pkg.RESIDENTIAL, want: 2.0},
		{name: "park", class: pkg.PARK, want: 3.0},
		{name: "unknown falls back to the worst passable rate", class: pkg.UNKNOWN, want: 3.0},
		{name: "building is impassable", class: pkg.BUILDING, want: pkg.INF_WEIGHT},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := cf.GetWeight(tt.class); got != tt.want {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestWeightsRespectClassOrdering(t *testing.T) {
	cf := NewRoadClassCostFunction()

	ordered := []pkg.RoadClass{
		pkg.ARTERIAL, pkg.SECONDARY, pkg.TERTIARY, pkg.RESIDENTIAL, pkg.SERVICE, pkg.FOOTWAY,
	}
	for i := 1; i < len(ordered); i++ {
		if cf.GetWeight(ordered[i-1]) > cf.GetWeight(ordered[i]) {
			t.Errorf("%v should not cost more than %v", ordered[i-1], ordered[i])
		}
	}

	for _, class := range ordered {
		if cf.GetWeight(class) < pkg.MIN_CELL_WEIGHT {
			t.Errorf("%v weight below the minimum cell weight", class)
		}
		if cf.IsImpassable(class) {
			t.Errorf("%v should be passable", class)
		}
	}

	if !cf.IsImpassable(pkg.BUILDING) {
		t.Error("buildings should be impassable")
	}
}
