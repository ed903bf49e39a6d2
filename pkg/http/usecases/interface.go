package usecases

import (
	da "github.com/bagas-w/gridway/pkg/datastructure"
	"github.com/bagas-w/gridway/pkg/engine/routing"
)

type SearchEngine interface {
	BFS(start, end da.CellPosition) (*routing.SearchResult, error)
	AStar(start, end da.CellPosition) (*routing.SearchResult, error)
	Race(start, end da.CellPosition) (*routing.RaceResult, error)
	SetWall(pos da.CellPosition, isWall bool) error
	SetWeight(pos da.CellPosition, weight float64) error
	SetStart(pos da.CellPosition) error
	SetEnd(pos da.CellPosition) error
	GetGrid() *da.Grid
}
