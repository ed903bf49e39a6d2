package routing

import (
	da "github.com/bagas-w/gridway/pkg/datastructure"
	"go.uber.org/zap"
)

// bfs is the unweighted flood fill: FIFO queue, visited set at enqueue time so
// every cell is processed at most once, cells appended to the visitation order
// at dequeue. gScore holds the edge count from start, which doubles as the
// unweighted path length.
func (e *GridSearchEngine) bfs(start, end da.CellPosition) (*SearchResult, error) {
	if err := e.validateEndpoints(start, end); err != nil {
		return nil, err
	}

	grid := e.grid
	state := da.NewSearchState(grid)
	startIdx := grid.IndexOf(start)
	endIdx := grid.IndexOf(end)

	state.SetVisited(startIdx)
	state.SetGScore(startIdx, 0)

	queue := make([]da.CellPosition, 0, grid.NumCells())
	queue = append(queue, start)

	order := make([]da.CellPosition, 0, grid.NumCells())
	found := false

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentIdx := grid.IndexOf(current)

		order = append(order, current)
		if currentIdx == endIdx {
			found = true
			break
		}

		for _, neighbor := range grid.Neighbors(current) {
			neighborIdx := grid.IndexOf(neighbor)
			if state.Visited(neighborIdx) || grid.IsWall(neighbor) {
				continue
			}
			state.SetVisited(neighborIdx)
			state.SetPredecessor(neighborIdx, currentIdx)
			state.SetGScore(neighborIdx, state.GScore(currentIdx)+1)
			queue = append(queue, neighbor)
		}
	}

	result := &SearchResult{
		Algorithm: ALGORITHM_BFS,
		Order:     order,
		Path:      ReconstructPath(state, end),
		Found:     found,
		Expanded:  len(order),
		state:     state,
	}
	if found {
		result.TotalCost = state.GScore(endIdx)
	}

	e.logger.Debug("bfs finished",
		zap.Int("expanded", result.Expanded),
		zap.Bool("found", found))
	return result, nil
}
