package controllers

import (
	"context"
	"time"

	"github.com/lintang-b-s/congestion-router/pkg/engine"
)

type RoutingService interface {
	ShortestPath(start, end string, departure time.Time) ([]engine.Stop, float64, error)
	ShortestPaths(ctx context.Context, queries []engine.Query) []engine.RouteResult
	Locations() []string
	Stats() engine.Stats
}
