package controllers

import (
	"github.com/lintang-b-s/congestion-router/pkg/engine"
)

type shortestPathRequest struct {
	Start string `json:"start" validate:"required,max=256"`
	End   string `json:"end" validate:"required,max=256"`
	Time  string `json:"time" validate:"omitempty,datetime=15:04"` // departure, HH:MM
}

type batchShortestPathRequest struct {
	Queries []shortestPathRequest `json:"queries" validate:"required,min=1,maxbatch,dive"`
}

type shortestPathResponse struct {
	Path            []string      `json:"path"`
	Stops           []engine.Stop `json:"stops"`
	TotalCongestion float64       `json:"total_congestion"`
}

func NewShortestPathResponse(stops []engine.Stop, totalCongestion float64) shortestPathResponse {
	path := make([]string, len(stops))
	for i, s := range stops {
		path[i] = s.Location
	}
	return shortestPathResponse{
		Path:            path,
		Stops:           stops,
		TotalCongestion: totalCongestion,
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type batchItemResponse struct {
	Route *shortestPathResponse `json:"route,omitempty"`
	Error *errorBody            `json:"error,omitempty"`
}

func NewBatchResponse(results []engine.RouteResult) []batchItemResponse {
	items := make([]batchItemResponse, len(results))
	for i, res := range results {
		if res.OK() {
			route := NewShortestPathResponse(res.Path, res.TotalCongestion)
			items[i] = batchItemResponse{Route: &route}
			continue
		}
		body := publicError(res.Err)
		items[i] = batchItemResponse{Error: &body}
	}
	return items
}

type locationsResponse struct {
	Locations []string     `json:"locations"`
	Stats     engine.Stats `json:"stats"`
}
