package datastructure

import (
	"github.com/bagas-w/gridway/pkg"
	"github.com/bagas-w/gridway/pkg/util"
)

// CellPosition identifies one cell by its (row, col) pair, 0-based.
type CellPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCellPosition(row, col int) CellPosition {
	return CellPosition{Row: row, Col: col}
}

func (cp CellPosition) GetRow() int {
	return cp.Row
}

func (cp CellPosition) GetCol() int {
	return cp.Col
}

// ManhattanDistance is the grid metric |dRow| + |dCol|. With all cell weights
// >= 1 this never overestimates the remaining traversal cost, so it is an
// admissible and consistent a-star heuristic on a 4-connected grid.
func ManhattanDistance(a, b CellPosition) int {
	return util.Abs(a.Row-b.Row) + util.Abs(a.Col-b.Col)
}

type cell struct {
	weight  float64
	isWall  bool
	isStart bool
	isEnd   bool
}

// Grid is a fixed-size rectangular board of weighted cells. The caller owns it
// for the whole simulation run; searches only borrow it read-only, all
// per-search scratch state lives in a SearchState arena.
type Grid struct {
	rows  int
	cols  int
	cells []cell

	start    CellPosition
	end      CellPosition
	hasStart bool
	hasEnd   bool
}

func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"grid dimensions must be positive, got %dx%d", rows, cols)
	}

	cells := make([]cell, rows*cols)
	for i := range cells {
		cells[i].weight = pkg.MIN_CELL_WEIGHT
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}, nil
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) NumCells() int {
	return len(g.cells)
}

func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// IndexOf flattens (row, col) to a slice index. Caller must bounds-check first.
func (g *Grid) IndexOf(pos CellPosition) Index {
	return Index(pos.Row*g.cols + pos.Col)
}

func (g *Grid) PositionOf(idx Index) CellPosition {
	return CellPosition{Row: int(idx) / g.cols, Col: int(idx) % g.cols}
}

// neighborOffsets is the fixed expansion order: up, down, left, right.
// Not semantically significant, but it must stay deterministic so visitation
// orders are reproducible run to run.
var neighborOffsets = [4][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// Neighbors returns the 2-4 in-bounds 4-directional neighbors of pos.
// Wall filtering is the search's job, not the grid's.
func (g *Grid) Neighbors(pos CellPosition) []CellPosition {
	neighbors := make([]CellPosition, 0, 4)
	for _, off := range neighborOffsets {
		next := CellPosition{Row: pos.Row + off[0], Col: pos.Col + off[1]}
		if g.InBounds(next) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

func (g *Grid) Weight(pos CellPosition) float64 {
	return g.cells[g.IndexOf(pos)].weight
}

func (g *Grid) IsWall(pos CellPosition) bool {
	return g.cells[g.IndexOf(pos)].isWall
}

// SetWeight assigns the traversal cost charged for entering pos. Weights below
// 1 are clamped up to 1: zero or negative weights would break the
// cost-monotonicity both searches rely on. A weight at or above the wall
// sentinel marks the cell impassable instead.
func (g *Grid) SetWeight(pos CellPosition, weight float64) error {
	if !g.InBounds(pos) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"cell (%d,%d) out of grid bounds %dx%d", pos.Row, pos.Col, g.rows, g.cols)
	}
	idx := g.IndexOf(pos)
	if g.cells[idx].isStart || g.cells[idx].isEnd {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"cell (%d,%d) is a search endpoint", pos.Row, pos.Col)
	}

	if weight >= pkg.INF_WEIGHT {
		g.cells[idx].isWall = true
		g.cells[idx].weight = pkg.INF_WEIGHT
		return nil
	}
	if weight < pkg.MIN_CELL_WEIGHT {
		weight = pkg.MIN_CELL_WEIGHT
	}
	g.cells[idx].isWall = false
	g.cells[idx].weight = weight
	return nil
}

// SetWall toggles impassability. Clearing a wall restores the minimum weight;
// re-annotate afterwards if the cell had a road class.
func (g *Grid) SetWall(pos CellPosition, isWall bool) error {
	if !g.InBounds(pos) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"cell (%d,%d) out of grid bounds %dx%d", pos.Row, pos.Col, g.rows, g.cols)
	}
	idx := g.IndexOf(pos)
	if g.cells[idx].isStart || g.cells[idx].isEnd {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"cell (%d,%d) is a search endpoint", pos.Row, pos.Col)
	}

	g.cells[idx].isWall = isWall
	if isWall {
		g.cells[idx].weight = pkg.INF_WEIGHT
	} else {
		g.cells[idx].weight = pkg.MIN_CELL_WEIGHT
	}
	return nil
}

// SetStart designates the search origin. At most one cell holds it; the
// previous designation is cleared.
func (g *Grid) SetStart(pos CellPosition) error {
	if !g.InBounds(pos) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"start (%d,%d) out of grid bounds %dx%d", pos.Row, pos.Col, g.rows, g.cols)
	}
	if g.IsWall(pos) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"start (%d,%d) is a wall", pos.Row, pos.Col)
	}
	if g.hasEnd && pos == g.end {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"start (%d,%d) equals end", pos.Row, pos.Col)
	}

	if g.hasStart {
		g.cells[g.IndexOf(g.start)].isStart = false
	}
	g.cells[g.IndexOf(pos)].isStart = true
	g.start = pos
	g.hasStart = true
	return nil
}

func (g *Grid) SetEnd(pos CellPosition) error {
	if !g.InBounds(pos) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"end (%d,%d) out of grid bounds %dx%d", pos.Row, pos.Col, g.rows, g.cols)
	}
	if g.IsWall(pos) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"end (%d,%d) is a wall", pos.Row, pos.Col)
	}
	if g.hasStart && pos == g.start {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"end (%d,%d) equals start", pos.Row, pos.Col)
	}

	if g.hasEnd {
		g.cells[g.IndexOf(g.end)].isEnd = false
	}
	g.cells[g.IndexOf(pos)].isEnd = true
	g.end = pos
	g.hasEnd = true
	return nil
}

func (g *Grid) Start() (CellPosition, bool) {
	return g.start, g.hasStart
}

func (g *Grid) End() (CellPosition, bool) {
	return g.end, g.hasEnd
}
