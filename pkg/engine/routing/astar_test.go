package routing

import (
	"testing"

	da "github.com/bagas-w/gridway/pkg/datastructure"
)

func TestAStarOpenGridShortestPath(t *testing.T) {
	engine := newTestEngine(t, 5, 5)
	start := da.NewCellPosition(0, 0)
	end := da.NewCellPosition(4, 4)

	result, err := engine.AStar(start, end)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if !result.Found {
		t.Fatal("path should exist on an open grid")
	}
	assertConnectedPath(t, result.Path, start, end)
	if got := PathEdges(result.Path); got != 8 {
		t.Errorf("got %d edges, want 8", got)
	}
	// uniform weight 1 makes cost equal edge count
	if result.TotalCost != 8 {
		t.Errorf("got cost %f, want 8", result.TotalCost)
	}
}

func TestAStarMatchesBFSOnUniformWeights(t *testing.T) {
	engine := newTestEngine(t, 7, 7)
	for _, pos := range []da.CellPosition{
		da.NewCellPosition(1, 1), da.NewCellPosition(1, 2), da.NewCellPosition(3, 4),
		da.NewCellPosition(4, 4), da.NewCellPosition(5, 1), da.NewCellPosition(2, 5),
	} {
		if err := engine.SetWall(pos, true); err != nil {
			t.Fatalf("err: %v", err)
		}
	}
	start := da.NewCellPosition(0, 0)
	end := da.NewCellPosition(6, 6)

	bfsResult, err := engine.BFS(start, end)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	astarResult, err := engine.AStar(start, end)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if bfsResult.Found != astarResult.Found {
		t.Fatalf("found disagrees: bfs %v, astar %v", bfsResult.Found, astarResult.Found)
	}
	if bfsResult.TotalCost != astarResult.TotalCost {
		t.Errorf("optimal cost disagrees on uniform weights: bfs %f, astar %f",
			bfsResult.TotalCost, astarResult.TotalCost)
	}
}

func TestBlockedLastColumnKeepsOptimalLength(t *testing.T) {
	engine := newTestEngine(t, 5, 5)
	start := da.NewCellPosition(0, 0)
	end := da.NewCellPosition(4, 4)

	// the direct approach along column 4 is blocked, but a route through
	// (4,3) still exists at the same manhattan length
	for row := 0; row < 4; row++ {
		if err := engine.SetWall(da.NewCellPosition(row, 4), true); err != nil {
			t.Fatalf("err: %v", err)
		}
	}

	bfsResult, err := engine.BFS(start, end)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	astarResult, err := engine.AStar(start, end)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	for _, result := range []*SearchResult{bfsResult, astarResult} {
		if !result.Found {
			t.Fatalf("%v should reach the end", result.Algorithm)
		}
		assertConnectedPath(t, result.Path, start, end)
		if len(result.Path) != 9 {
			t.Errorf("%v path: got %d cells, want 9", result.Algorithm, len(result.Path))
		}
	}
}

func TestAStarAvoidsExpensiveRegion(t *testing.T) {
	engine := newTestEngine(t, 5, 5)
	start := da.NewCellPosition(2, 0)
	end := da.NewCellPosition(2, 4)

	// column 2 is expensive except the bottom row
	for row := 0; row < 4; row++ {
		if err := engine.SetWeight(da.NewCellPosition(row, 2), 9); err != nil {
			t.Fatalf("err: %v", err)
		}
	}

	astarResult, err := engine.AStar(start, end)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !astarResult.Found {
		t.Fatal("path should exist")
	}
	assertConnectedPath(t, astarResult.Path, start, end)

	// the detour through (4,2) costs 8, the direct route 12
	if astarResult.TotalCost != 8 {
		t.Errorf("got cost %f, want 8", astarResult.TotalCost)
	}
	for _, pos := range astarResult.Path {
		if pos.Col == 2 && pos.Row < 4 {
			t.Errorf("path enters expensive cell %v", pos)
		}
	}

	// bfs takes the short direct route and pays for it
	bfsResult, err := engine.BFS(start, end)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := PathCost(engine.GetGrid(), bfsResult.Path); got < astarResult.TotalCost {
		t.Errorf("bfs weighted cost %f beats the weighted optimum %f", got, astarResult.TotalCost)
	}
}

func TestAStarPathCostMatchesGScore(t *testing.T) {
	engine := newTestEngine(t, 6, 6)
	weights := []struct {
		pos    da.CellPosition
		weight float64
	}{
		{da.NewCellPosition(1, 2), 4}, {da.NewCellPosition(2, 2), 2.5},
		{da.NewCellPosition(3, 1), 7}, {da.NewCellPosition(4, 4), 3},
	}
	for _, w := range weights {
		if err := engine.SetWeight(w.pos, w.weight); err != nil {
			t.Fatalf("err: %v", err)
		}
	}

	result, err := engine.AStar(da.NewCellPosition(0, 0), da.NewCellPosition(5, 5))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !result.Found {
		t.Fatal("path should exist")
	}
	if got := PathCost(engine.GetGrid(), result.Path); got != result.TotalCost {
		t.Errorf("summed path cost %f != final gScore %f", got, result.TotalCost)
	}
}

func TestAStarFinalizedFScoresNeverDecrease(t *testing.T) {
	engine := newTestEngine(t, 6, 6)
	for _, w := range []struct {
		pos    da.CellPosition
		weight float64
	}{
		{da.NewCellPosition(0, 3), 5}, {da.NewCellPosition(1, 3), 5},
		{da.NewCellPosition(2, 3), 5}, {da.NewCellPosition(3, 3), 5},
		{da.NewCellPosition(2, 1), 2},
	} {
		if err := engine.SetWeight(w.pos, w.weight); err != nil {
			t.Fatalf("err: %v", err)
		}
	}

	result, err := engine.AStar(da.NewCellPosition(0, 0), da.NewCellPosition(5, 5))
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// with a consistent heuristic the f score of finalized cells is monotone
	state := result.State()
	grid := engine.GetGrid()
	prev := 0.0
	for i, pos := range result.Order {
		f := state.FScore(grid.IndexOf(pos))
		if f < prev {
			t.Fatalf("pop %d at %v: f %f after %f", i, pos, f, prev)
		}
		prev = f
	}
}

func TestAStarUnreachableEnd(t *testing.T) {
	engine := newTestEngine(t, 5, 5)
	end := da.NewCellPosition(0, 4)
	for _, pos := range engine.GetGrid().Neighbors(end) {
		if err := engine.SetWall(pos, true); err != nil {
			t.Fatalf("err: %v", err)
		}
	}

	result, err := engine.AStar(da.NewCellPosition(4, 0), end)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if result.Found {
		t.Fatal("enclosed end must be unreachable")
	}
	if result.TotalCost != 0 {
		t.Errorf("unreachable end cost: got %f, want 0", result.TotalCost)
	}
}

func TestRace(t *testing.T) {
	engine := newTestEngine(t, 5, 5)
	for row := 0; row < 4; row++ {
		if err := engine.SetWeight(da.NewCellPosition(row, 2), 9); err != nil {
			t.Fatalf("err: %v", err)
		}
	}
	start := da.NewCellPosition(2, 0)
	end := da.NewCellPosition(2, 4)

	race, err := engine.Race(start, end)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if race.BFS == nil || race.AStar == nil {
		t.Fatal("both race results must be present")
	}
	if race.BFS.Algorithm != ALGORITHM_BFS || race.AStar.Algorithm != ALGORITHM_ASTAR {
		t.Error("race results attributed to the wrong algorithm")
	}
	if !race.BFS.Found || !race.AStar.Found {
		t.Fatal("both searches should find the end")
	}

	// both runs own private scratch state over the shared grid
	if race.BFS.State() == race.AStar.State() {
		t.Error("concurrent runs must not share a scratch arena")
	}
	if race.AStar.TotalCost != 8 {
		t.Errorf("astar race leg cost: got %f, want 8", race.AStar.TotalCost)
	}
	if race.BFS.TotalCost != 4 {
		t.Errorf("bfs race leg edge count: got %f, want 4", race.BFS.TotalCost)
	}
}

func TestRaceValidationError(t *testing.T) {
	engine := newTestEngine(t, 5, 5)

	if _, err := engine.Race(da.NewCellPosition(0, 0), da.NewCellPosition(0, 0)); err == nil {
		t.Error("want validation error for identical endpoints")
	}
}
