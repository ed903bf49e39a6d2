package spatialindex

import (
	"testing"

	"github.com/bagas-w/gridway/pkg"
	"github.com/bagas-w/gridway/pkg/costfunction"
	da "github.com/bagas-w/gridway/pkg/datastructure"
	"github.com/bagas-w/gridway/pkg/geo"
	"go.uber.org/zap"
)

func TestAnnotateGrid(t *testing.T) {
	// 4x4 grid over a 4x4 degree box, one degree per cell, row 0 north
	mapper, err := geo.NewGridMapper(0, 0, 4, 4, 4, 4)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	grid, err := da.NewGrid(4, 4)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	terrain := da.NewTerrainData()
	// arterial road crossing the two northwestern cells
	terrain.Segments = append(terrain.Segments,
		da.NewRoadSegment(3.5, 0.2, 3.5, 1.8, pkg.ARTERIAL))
	// building footprint inside the southeastern cell
	terrain.Areas = append(terrain.Areas,
		da.NewTerrainArea(0.1, 3.1, 0.9, 3.9, pkg.BUILDING))
	// park inside cell (2,0)
	terrain.Areas = append(terrain.Areas,
		da.NewTerrainArea(1.2, 0.2, 1.8, 0.8, pkg.PARK))

	log := zap.NewNop()
	index := NewTerrainIndex()
	index.Build(terrain, 0, log)

	cf := costfunction.NewRoadClassCostFunction()
	if err := index.AnnotateGrid(grid, mapper, cf, log); err != nil {
		t.Fatalf("err: %v", err)
	}

	testCases := []struct {
		name       string
		pos        da.CellPosition
		wantWeight float64
		wantWall   bool
	}{
		{name: "road cell west", pos: da.NewCellPosition(0, 0), wantWeight: cf.GetWeight(pkg.ARTERIAL)},
		{name: "road cell east", pos: da.NewCellPosition(0, 1), wantWeight: cf.GetWeight(pkg.ARTERIAL)},
		{name: "building cell is a wall", pos: da.NewCellPosition(3, 3), wantWall: true},
		{name: "park cell", pos: da.NewCellPosition(2, 0), wantWeight: cf.GetWeight(pkg.PARK)},
		{name: "bare cell gets the worst passable rate", pos: da.NewCellPosition(1, 1), wantWeight: cf.GetWeight(pkg.UNKNOWN)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := grid.IsWall(tt.pos); got != tt.wantWall {
				t.Fatalf("wall: got %v, want %v", got, tt.wantWall)
			}
			if !tt.wantWall && grid.Weight(tt.pos) != tt.wantWeight {
				t.Errorf("weight: got %f, want %f", grid.Weight(tt.pos), tt.wantWeight)
			}
		})
	}
}

func TestBuildPadsSegmentBoxes(t *testing.T) {
	// 2x2 grid over a 2x2 degree box; the segment sits in column 0 but ends
	// close to the column border at lon 1.0
	buildGrid := func(radiusKM float64) *da.Grid {
		mapper, err := geo.NewGridMapper(0, 0, 2, 2, 2, 2)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		grid, err := da.NewGrid(2, 2)
		if err != nil {
			t.Fatalf("err: %v", err)
		}

		terrain := da.NewTerrainData()
		terrain.Segments = append(terrain.Segments,
			da.NewRoadSegment(1.5, 0.9, 1.5, 0.98, pkg.ARTERIAL))

		log := zap.NewNop()
		index := NewTerrainIndex()
		index.Build(terrain, radiusKM, log)

		cf := costfunction.NewRoadClassCostFunction()
		if err := index.AnnotateGrid(grid, mapper, cf, log); err != nil {
			t.Fatalf("err: %v", err)
		}
		return grid
	}

	cf := costfunction.NewRoadClassCostFunction()

	unpadded := buildGrid(0)
	if got := unpadded.Weight(da.NewCellPosition(0, 0)); got != cf.GetWeight(pkg.ARTERIAL) {
		t.Errorf("segment's own cell: got %f, want the road weight", got)
	}
	if got := unpadded.Weight(da.NewCellPosition(0, 1)); got != cf.GetWeight(pkg.UNKNOWN) {
		t.Errorf("without padding the neighboring column stays unclassified, got %f", got)
	}

	// 5 km of padding (about 0.045 degrees) carries the road across the border
	padded := buildGrid(5)
	if got := padded.Weight(da.NewCellPosition(0, 1)); got != cf.GetWeight(pkg.ARTERIAL) {
		t.Errorf("border-hugging road should price the adjacent cell, got %f", got)
	}
}

func TestRoadBeatsOverlappingPark(t *testing.T) {
	mapper, err := geo.NewGridMapper(0, 0, 2, 2, 2, 2)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	grid, err := da.NewGrid(2, 2)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	terrain := da.NewTerrainData()
	// a residential street through a park: the road class prices the cell
	terrain.Segments = append(terrain.Segments,
		da.NewRoadSegment(1.5, 0.2, 1.5, 0.8, pkg.RESIDENTIAL))
	terrain.Areas = append(terrain.Areas,
		da.NewTerrainArea(1.1, 0.1, 1.9, 0.9, pkg.PARK))

	log := zap.NewNop()
	index := NewTerrainIndex()
	index.Build(terrain, 0, log)

	cf := costfunction.NewRoadClassCostFunction()
	if err := index.AnnotateGrid(grid, mapper, cf, log); err != nil {
		t.Fatalf("err: %v", err)
	}

	pos := da.NewCellPosition(0, 0)
	if got := grid.Weight(pos); got != cf.GetWeight(pkg.RESIDENTIAL) {
		t.Errorf("got %f, want the road weight %f", got, cf.GetWeight(pkg.RESIDENTIAL))
	}
}
