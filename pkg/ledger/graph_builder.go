package ledger

import (
	"github.com/lintang-b-s/congestion-router/pkg/datastructure"
)

// BuildGraph derives the undirected congestion graph from ledger adjacency: observations i and i+1 are
// connected by an edge weighted with the congestion count of observation i, inserted in both directions.
// a location recurring next to itself yields a self-loop. a repeated pair keeps the most recent weight.
func BuildGraph(l *Ledger) *datastructure.Graph {
	dg := datastructure.NewDynamicGraph()

	for _, loc := range l.Locations() {
		dg.AddVertex(loc)
	}

	for i := 0; i+1 < l.Len(); i++ {
		cur, next := l.At(i), l.At(i+1)
		u := dg.AddVertex(cur.Location)
		v := dg.AddVertex(next.Location)
		weight := float64(cur.CongestionCount)

		dg.AddEdge(u, v, weight)
		dg.AddEdge(v, u, weight) // reverse edge, no-op rewrite for a self-loop
	}

	return dg.Freeze()
}
