package routing

import (
	da "github.com/bagas-w/gridway/pkg/datastructure"
	"golang.org/x/sync/errgroup"
)

type RaceResult struct {
	BFS   *SearchResult
	AStar *SearchResult
}

// Race runs both algorithms over the same grid side by side. Each run gets
// its own SearchState arena, so the only shared structure is the read-locked
// grid; no deep copy is needed.
func (e *GridSearchEngine) Race(start, end da.CellPosition) (*RaceResult, error) {
	result := &RaceResult{}

	g := errgroup.Group{}
	g.Go(func() error {
		bfsResult, err := e.BFS(start, end)
		if err != nil {
			return err
		}
		result.BFS = bfsResult
		return nil
	})
	g.Go(func() error {
		astarResult, err := e.AStar(start, end)
		if err != nil {
			return err
		}
		result.AStar = astarResult
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
