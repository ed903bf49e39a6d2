package usecases

import (
	da "github.com/bagas-w/gridway/pkg/datastructure"
	"github.com/bagas-w/gridway/pkg/engine/routing"
	"github.com/bagas-w/gridway/pkg/geo"
	"github.com/bagas-w/gridway/pkg/util"
	"go.uber.org/zap"
)

// SearchSummary is one algorithm run shaped for the frontend: the visitation
// order to animate, the final route, and an encoded polyline when the grid is
// anchored to real coordinates.
type SearchSummary struct {
	Algorithm string            `json:"algorithm"`
	Order     []da.CellPosition `json:"order"`
	Path      []da.CellPosition `json:"path"`
	Found     bool              `json:"found"`
	TotalCost float64           `json:"total_cost"`
	Expanded  int               `json:"expanded"`
	Polyline  string            `json:"polyline,omitempty"`
}

// GridSnapshot is the initial board state the frontend renders before any
// search runs.
type GridSnapshot struct {
	Rows    int       `json:"rows"`
	Cols    int       `json:"cols"`
	Weights []float64 `json:"weights"`
	Walls   []bool    `json:"walls"`
}

type PathfinderService struct {
	log    *zap.Logger
	engine SearchEngine
	mapper *geo.GridMapper
}

// NewPathfinderService wires the search engine for the API layer. mapper may
// be nil when the grid is not geo-anchored; polylines are then omitted.
func NewPathfinderService(log *zap.Logger, engine SearchEngine, mapper *geo.GridMapper) *PathfinderService {
	return &PathfinderService{
		log:    log,
		engine: engine,
		mapper: mapper,
	}
}

func (ps *PathfinderService) Search(algorithm string, startRow, startCol, endRow, endCol int) (*SearchSummary, error) {
	start := da.NewCellPosition(startRow, startCol)
	end := da.NewCellPosition(endRow, endCol)

	var (
		result *routing.SearchResult
		err    error
	)
	switch algorithm {
	case "bfs":
		result, err = ps.engine.BFS(start, end)
	case "astar":
		result, err = ps.engine.AStar(start, end)
	default:
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown algorithm %q, want bfs or astar", algorithm)
	}
	if err != nil {
		return nil, err
	}

	return ps.summarize(result), nil
}

func (ps *PathfinderService) Race(startRow, startCol, endRow, endCol int) (*SearchSummary, *SearchSummary, error) {
	start := da.NewCellPosition(startRow, startCol)
	end := da.NewCellPosition(endRow, endCol)

	result, err := ps.engine.Race(start, end)
	if err != nil {
		return nil, nil, err
	}
	return ps.summarize(result.BFS), ps.summarize(result.AStar), nil
}

func (ps *PathfinderService) ToggleWall(row, col int, isWall bool) error {
	return ps.engine.SetWall(da.NewCellPosition(row, col), isWall)
}

func (ps *PathfinderService) AssignWeight(row, col int, weight float64) error {
	return ps.engine.SetWeight(da.NewCellPosition(row, col), weight)
}

func (ps *PathfinderService) Snapshot() *GridSnapshot {
	grid := ps.engine.GetGrid()
	snapshot := &GridSnapshot{
		Rows:    grid.Rows(),
		Cols:    grid.Cols(),
		Weights: make([]float64, 0, grid.NumCells()),
		Walls:   make([]bool, 0, grid.NumCells()),
	}
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			pos := da.NewCellPosition(row, col)
			snapshot.Weights = append(snapshot.Weights, util.RoundFloat(grid.Weight(pos), 2))
			snapshot.Walls = append(snapshot.Walls, grid.IsWall(pos))
		}
	}
	return snapshot
}

func (ps *PathfinderService) summarize(result *routing.SearchResult) *SearchSummary {
	summary := &SearchSummary{
		Algorithm: result.Algorithm.String(),
		Order:     result.Order,
		Path:      result.Path,
		Found:     result.Found,
		TotalCost: result.TotalCost,
		Expanded:  result.Expanded,
	}
	if ps.mapper != nil && result.Found {
		summary.Polyline = geo.PolylineFromCoords(ps.mapper.PathCoordinates(result.Path))
	}
	return summary
}
