package routing

import (
	"sync"

	da "github.com/bagas-w/gridway/pkg/datastructure"
	"github.com/bagas-w/gridway/pkg/util"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

type Algorithm uint8

const (
	ALGORITHM_BFS Algorithm = iota
	ALGORITHM_ASTAR
)

func (a Algorithm) String() string {
	if a == ALGORITHM_BFS {
		return "bfs"
	}
	return "astar"
}

// SearchResult is one completed run: the cells in the order the search
// finalized them, the reconstructed route, and the scratch arena the run used
// (so callers can re-reconstruct or inspect costs).
type SearchResult struct {
	Algorithm Algorithm
	Order     []da.CellPosition
	Path      []da.CellPosition
	Found     bool
	TotalCost float64
	Expanded  int

	state *da.SearchState
}

func (r *SearchResult) State() *da.SearchState {
	return r.state
}

type queryKey struct {
	algorithm Algorithm
	start     da.CellPosition
	end       da.CellPosition
	version   uint64
}

const resultCacheSize = 128

// GridSearchEngine runs BFS and a-star over one caller-owned grid. Each run
// allocates its own SearchState arena, so concurrent runs over the same grid
// never share scratch fields. Grid mutation and searching are serialized by
// an RWMutex; the version counter keys the result cache so any mutation
// invalidates cached runs.
type GridSearchEngine struct {
	mu      sync.RWMutex
	grid    *da.Grid
	logger  *zap.Logger
	cache   *lru.Cache[queryKey, *SearchResult]
	version uint64
}

func NewGridSearchEngine(grid *da.Grid, logger *zap.Logger) (*GridSearchEngine, error) {
	cache, err := lru.New[queryKey, *SearchResult](resultCacheSize)
	if err != nil {
		return nil, err
	}
	return &GridSearchEngine{
		grid:   grid,
		logger: logger,
		cache:  cache,
	}, nil
}

func (e *GridSearchEngine) GetGrid() *da.Grid {
	return e.grid
}

// SetWall toggles a wall between runs. Rejected for endpoint cells by the
// grid itself. Bumps the grid version so stale cached results never surface.
func (e *GridSearchEngine) SetWall(pos da.CellPosition, isWall bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.grid.SetWall(pos, isWall); err != nil {
		return err
	}
	e.version++
	e.logger.Debug("wall toggled",
		zap.Int("row", pos.Row), zap.Int("col", pos.Col), zap.Bool("isWall", isWall))
	return nil
}

func (e *GridSearchEngine) SetWeight(pos da.CellPosition, weight float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.grid.SetWeight(pos, weight); err != nil {
		return err
	}
	e.version++
	e.logger.Debug("weight assigned",
		zap.Int("row", pos.Row), zap.Int("col", pos.Col), zap.Float64("weight", weight))
	return nil
}

func (e *GridSearchEngine) SetStart(pos da.CellPosition) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.grid.SetStart(pos); err != nil {
		return err
	}
	e.version++
	return nil
}

func (e *GridSearchEngine) SetEnd(pos da.CellPosition) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.grid.SetEnd(pos); err != nil {
		return err
	}
	e.version++
	return nil
}

func (e *GridSearchEngine) BFS(start, end da.CellPosition) (*SearchResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cachedSearch(ALGORITHM_BFS, start, end, e.bfs)
}

func (e *GridSearchEngine) AStar(start, end da.CellPosition) (*SearchResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cachedSearch(ALGORITHM_ASTAR, start, end, e.astar)
}

func (e *GridSearchEngine) cachedSearch(algorithm Algorithm, start, end da.CellPosition,
	search func(start, end da.CellPosition) (*SearchResult, error)) (*SearchResult, error) {
	key := queryKey{algorithm: algorithm, start: start, end: end, version: e.version}
	if cached, ok := e.cache.Get(key); ok {
		return cached, nil
	}

	result, err := search(start, end)
	if err != nil {
		return nil, err
	}
	e.cache.Add(key, result)
	return result, nil
}

// validateEndpoints fails fast on malformed input instead of silently
// returning an empty exploration: out-of-bounds cells, identical endpoints,
// and wall endpoints can never produce a path.
func (e *GridSearchEngine) validateEndpoints(start, end da.CellPosition) error {
	if !e.grid.InBounds(start) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"start (%d,%d) out of grid bounds %dx%d", start.Row, start.Col, e.grid.Rows(), e.grid.Cols())
	}
	if !e.grid.InBounds(end) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"end (%d,%d) out of grid bounds %dx%d", end.Row, end.Col, e.grid.Rows(), e.grid.Cols())
	}
	if start == end {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"start and end are the same cell (%d,%d)", start.Row, start.Col)
	}
	if e.grid.IsWall(start) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"start (%d,%d) is a wall", start.Row, start.Col)
	}
	if e.grid.IsWall(end) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"end (%d,%d) is a wall", end.Row, end.Col)
	}
	return nil
}
