package engine

import (
	"context"
	"time"

	"github.com/lintang-b-s/congestion-router/pkg"
	da "github.com/lintang-b-s/congestion-router/pkg/datastructure"
	"github.com/lintang-b-s/congestion-router/pkg/engine/routing"
	"github.com/lintang-b-s/congestion-router/pkg/ledger"
	"go.uber.org/zap"
)

// Engine owns the traffic ledger and the route graph derived from it. both are built once in NewEngine
// and only read afterwards, so an Engine serves concurrent route requests without locking.
type Engine struct {
	ledger        *ledger.Ledger
	graph         *da.Graph
	numComponents int
	log           *zap.Logger
}

func NewEngine(l *ledger.Ledger, log *zap.Logger) *Engine {
	log.Info("Building route graph...")
	g := ledger.BuildGraph(l)
	_, numComponents := g.ConnectedComponents()
	log.Info("Route graph built.", zap.Int("vertices", g.NumberOfVertices()), zap.Int("edges", g.NumberOfEdges()),
		zap.Int("components", numComponents))
	return &Engine{ledger: l, graph: g, numComponents: numComponents, log: log}
}

// NewEngineFromSource loads the ledger from src and builds the engine.
func NewEngineFromSource(ctx context.Context, src ledger.Source, log *zap.Logger) (*Engine, error) {
	l, err := ledger.Load(ctx, src, log)
	if err != nil {
		return nil, err
	}
	return NewEngine(l, log), nil
}

func (e *Engine) Locations() []string {
	return e.graph.Locations()
}

type Stats struct {
	Observations int `json:"observations"`
	Locations    int `json:"locations"`
	Edges        int `json:"edges"`
	Components   int `json:"components"`
}

func (e *Engine) Stats() Stats {
	return Stats{
		Observations: e.ledger.Len(),
		Locations:    e.graph.NumberOfVertices(),
		Edges:        e.graph.NumberOfEdges(),
		Components:   e.numComponents,
	}
}

// ComputeRoute finds the least congested path from start to end and annotates every stop.
func (e *Engine) ComputeRoute(start, end string) RouteResult {
	var router routing.Router = routing.NewDijkstra(e.graph)
	path, cost, err := router.ShortestPath(start, end)
	if err != nil {
		return failed(err)
	}

	stops, err := Annotate(e.ledger, path)
	if err != nil {
		e.log.Error("route annotation failed", zap.String("start", start), zap.String("end", end), zap.Error(err))
		return failed(err)
	}

	return RouteResult{Path: stops, TotalCongestion: cost}
}

// ComputeRouteAt is ComputeRoute with a departure time. edge weights are not time dependent, the departure
// is only recorded.
func (e *Engine) ComputeRouteAt(start, end string, departure time.Time) RouteResult {
	e.log.Debug("route request", zap.String("start", start), zap.String("end", end),
		zap.String("departure", departure.Format(pkg.CLOCK_LAYOUT)))
	return e.ComputeRoute(start, end)
}
