package controllers

import (
	"github.com/bagas-w/gridway/pkg/http/usecases"
)

type searchRequest struct {
	Algorithm string `json:"algorithm" validate:"required,oneof=bfs astar"`
	StartRow  int    `json:"start_row" validate:"min=0"`
	StartCol  int    `json:"start_col" validate:"min=0"`
	EndRow    int    `json:"end_row" validate:"min=0"`
	EndCol    int    `json:"end_col" validate:"min=0"`
}

type raceRequest struct {
	StartRow int `json:"start_row" validate:"min=0"`
	StartCol int `json:"start_col" validate:"min=0"`
	EndRow   int `json:"end_row" validate:"min=0"`
	EndCol   int `json:"end_col" validate:"min=0"`
}

type wallRequest struct {
	Row    int   `json:"row" validate:"min=0"`
	Col    int   `json:"col" validate:"min=0"`
	IsWall *bool `json:"is_wall" validate:"required"`
}

type weightRequest struct {
	Row    int     `json:"row" validate:"min=0"`
	Col    int     `json:"col" validate:"min=0"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

type raceResponse struct {
	BFS   *usecases.SearchSummary `json:"bfs"`
	AStar *usecases.SearchSummary `json:"astar"`
}

func NewRaceResponse(bfs, astar *usecases.SearchSummary) raceResponse {
	return raceResponse{
		BFS:   bfs,
		AStar: astar,
	}
}

// playbackRequest is the websocket message asking for an animated replay of
// one search's visitation order.
type playbackRequest struct {
	Algorithm string `json:"algorithm" validate:"required,oneof=bfs astar"`
	StartRow  int    `json:"start_row" validate:"min=0"`
	StartCol  int    `json:"start_col" validate:"min=0"`
	EndRow    int    `json:"end_row" validate:"min=0"`
	EndCol    int    `json:"end_col" validate:"min=0"`
	BatchSize int    `json:"batch_size" validate:"omitempty,min=1,max=256"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
