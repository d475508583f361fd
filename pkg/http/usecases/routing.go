package usecases

import (
	"context"
	"time"

	"github.com/lintang-b-s/congestion-router/pkg/engine"
	"go.uber.org/zap"
)

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	batchWorkers int
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, batchWorkers int) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		batchWorkers: batchWorkers,
	}
}

// ShortestPath returns the annotated least congested route and its total congestion.
func (rs *RoutingService) ShortestPath(start, end string, departure time.Time) ([]engine.Stop, float64, error) {
	res := rs.engine.ComputeRouteAt(start, end, departure)
	if !res.OK() {
		if res.ErrorKind == engine.KIND_MISSING_OBSERVATION || res.ErrorKind == engine.KIND_INTERNAL {
			rs.log.Error("route computation failed", zap.String("start", start), zap.String("end", end),
				zap.String("kind", string(res.ErrorKind)), zap.Error(res.Err))
		}
		return nil, 0, res.Err
	}
	return res.Path, res.TotalCongestion, nil
}

func (rs *RoutingService) ShortestPaths(ctx context.Context, queries []engine.Query) []engine.RouteResult {
	start := time.Now()
	results := rs.engine.ComputeRoutes(ctx, queries, rs.batchWorkers)
	rs.log.Info("batch routes computed", zap.Int("queries", len(queries)), zap.Duration("took", time.Since(start)))
	return results
}

func (rs *RoutingService) Locations() []string {
	return rs.engine.Locations()
}

func (rs *RoutingService) Stats() engine.Stats {
	return rs.engine.Stats()
}
