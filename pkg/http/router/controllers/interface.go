package controllers

import (
	"github.com/bagas-w/gridway/pkg/http/usecases"
)

type PathfinderService interface {
	Search(algorithm string, startRow, startCol, endRow, endCol int) (*usecases.SearchSummary, error)
	Race(startRow, startCol, endRow, endCol int) (*usecases.SearchSummary, *usecases.SearchSummary, error)
	ToggleWall(row, col int, isWall bool) error
	AssignWeight(row, col int, weight float64) error
	Snapshot() *usecases.GridSnapshot
}
