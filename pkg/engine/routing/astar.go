package routing

import (
	"github.com/bagas-w/gridway/pkg"
	da "github.com/bagas-w/gridway/pkg/datastructure"
	"go.uber.org/zap"
)

// astar is weighted best-first search ordered by f = g + manhattan(n, end).
// g charges the weight of the cell being entered, not an edge weight; with
// every weight >= 1 the manhattan heuristic never overestimates, so the first
// time end is finalized its cost is minimal. Walls are filtered before they
// can reach the open set, so the INF_WEIGHT sentinel never takes part in a
// finite comparison.
func (e *GridSearchEngine) astar(start, end da.CellPosition) (*SearchResult, error) {
	if err := e.validateEndpoints(start, end); err != nil {
		return nil, err
	}

	grid := e.grid
	state := da.NewSearchState(grid)
	startIdx := grid.IndexOf(start)
	endIdx := grid.IndexOf(end)

	pq := da.NewFourAryHeap[da.Index]()
	pq.Preallocate(grid.NumCells())
	openNodes := make(map[da.Index]*da.PriorityQueueNode[da.Index], grid.NumCells())

	state.SetGScore(startIdx, 0)
	startF := float64(da.ManhattanDistance(start, end))
	state.SetFScore(startIdx, startF)

	startNode := da.NewPriorityQueueNode(startF, startIdx)
	pq.Insert(startNode)
	openNodes[startIdx] = startNode

	order := make([]da.CellPosition, 0, grid.NumCells())
	found := false

	for !pq.IsEmpty() {
		minNode, err := pq.ExtractMin()
		if err != nil {
			break
		}
		currentIdx := minNode.GetItem()
		delete(openNodes, currentIdx)

		if state.Visited(currentIdx) {
			continue
		}
		// finalize: the open set held its proven minimum cost
		state.SetVisited(currentIdx)
		current := grid.PositionOf(currentIdx)
		order = append(order, current)

		if currentIdx == endIdx {
			found = true
			break
		}

		for _, neighbor := range grid.Neighbors(current) {
			if grid.IsWall(neighbor) {
				continue
			}
			neighborIdx := grid.IndexOf(neighbor)
			if state.Visited(neighborIdx) {
				continue
			}

			newG := state.GScore(currentIdx) + grid.Weight(neighbor)
			if newG >= pkg.INF_WEIGHT {
				continue
			}
			if newG >= state.GScore(neighborIdx) {
				// not an improvement, keep the existing label
				continue
			}

			state.SetGScore(neighborIdx, newG)
			state.SetPredecessor(neighborIdx, currentIdx)
			priority := newG + float64(da.ManhattanDistance(neighbor, end))
			state.SetFScore(neighborIdx, priority)

			if neighborNode, inOpen := openNodes[neighborIdx]; inOpen {
				if err := pq.DecreaseKey(neighborNode, priority); err != nil {
					return nil, err
				}
			} else {
				neighborNode = da.NewPriorityQueueNode(priority, neighborIdx)
				pq.Insert(neighborNode)
				openNodes[neighborIdx] = neighborNode
			}
		}
	}

	result := &SearchResult{
		Algorithm: ALGORITHM_ASTAR,
		Order:     order,
		Path:      ReconstructPath(state, end),
		Found:     found,
		Expanded:  len(order),
		state:     state,
	}
	if found {
		result.TotalCost = state.GScore(endIdx)
	}

	e.logger.Debug("astar finished",
		zap.Int("expanded", result.Expanded),
		zap.Bool("found", found))
	return result, nil
}
