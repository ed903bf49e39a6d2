package routing

import (
	da "github.com/bagas-w/gridway/pkg/datastructure"
	"github.com/bagas-w/gridway/pkg/util"
)

// ReconstructPath walks predecessor links backward from end and reverses the
// chain, yielding a start-to-end sequence when the preceding search reached
// end. When it did not, the result is whatever partial chain exists, possibly
// just end itself. Callers must check path[0] against the start cell rather
// than trusting a non-empty slice.
func ReconstructPath(state *da.SearchState, end da.CellPosition) []da.CellPosition {
	grid := state.Grid()
	if !grid.InBounds(end) {
		return nil
	}

	path := make([]da.CellPosition, 0)
	currentIdx := grid.IndexOf(end)
	path = append(path, end)
	for state.HasPredecessor(currentIdx) {
		currentIdx = state.Predecessor(currentIdx)
		path = append(path, grid.PositionOf(currentIdx))
	}

	return util.ReverseG(path)
}

// PathCost sums the weights of every cell entered along path, i.e. all cells
// after the first. Matches the a-star cost model, so for an a-star result it
// equals the end cell's final gScore.
func PathCost(grid *da.Grid, path []da.CellPosition) float64 {
	cost := 0.0
	for i := 1; i < len(path); i++ {
		cost += grid.Weight(path[i])
	}
	return cost
}

// PathEdges is the number of moves along path.
func PathEdges(path []da.CellPosition) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}
