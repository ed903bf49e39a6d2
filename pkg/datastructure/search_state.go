package datastructure

import (
	"github.com/bagas-w/gridway/pkg"
)

type Index uint32

const INVALID_INDEX Index = ^Index(0)

// SearchState is the scratch arena for one search run: visited flags,
// best-known costs and predecessor links, all keyed by flattened cell index.
// Keeping this off the grid lets two searches race over the same board
// without their bookkeeping colliding.
type SearchState struct {
	grid *Grid

	visited     []bool
	gScore      []float64
	fScore      []float64
	predecessor []Index
}

// NewSearchState allocates a fresh arena over grid. Costs start at the wall
// sentinel, predecessors at INVALID_INDEX.
func NewSearchState(grid *Grid) *SearchState {
	n := grid.NumCells()
	s := &SearchState{
		grid:        grid,
		visited:     make([]bool, n),
		gScore:      make([]float64, n),
		fScore:      make([]float64, n),
		predecessor: make([]Index, n),
	}
	for i := 0; i < n; i++ {
		s.gScore[i] = pkg.INF_WEIGHT
		s.fScore[i] = pkg.INF_WEIGHT
		s.predecessor[i] = INVALID_INDEX
	}
	return s
}

func (s *SearchState) Grid() *Grid {
	return s.grid
}

func (s *SearchState) Visited(idx Index) bool {
	return s.visited[idx]
}

func (s *SearchState) SetVisited(idx Index) {
	s.visited[idx] = true
}

func (s *SearchState) GScore(idx Index) float64 {
	return s.gScore[idx]
}

func (s *SearchState) SetGScore(idx Index, g float64) {
	s.gScore[idx] = g
}

func (s *SearchState) FScore(idx Index) float64 {
	return s.fScore[idx]
}

func (s *SearchState) SetFScore(idx Index, f float64) {
	s.fScore[idx] = f
}

func (s *SearchState) Predecessor(idx Index) Index {
	return s.predecessor[idx]
}

func (s *SearchState) SetPredecessor(idx, from Index) {
	s.predecessor[idx] = from
}

func (s *SearchState) HasPredecessor(idx Index) bool {
	return s.predecessor[idx] != INVALID_INDEX
}
