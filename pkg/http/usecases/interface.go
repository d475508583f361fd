package usecases

import (
	"context"
	"time"

	"github.com/lintang-b-s/congestion-router/pkg/engine"
)

type RoutingEngine interface {
	ComputeRouteAt(start, end string, departure time.Time) engine.RouteResult
	ComputeRoutes(ctx context.Context, queries []engine.Query, workers int) []engine.RouteResult
	Locations() []string
	Stats() engine.Stats
}
