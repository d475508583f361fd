package routing

import (
	"math"

	da "github.com/lintang-b-s/congestion-router/pkg/datastructure"
	"github.com/lintang-b-s/congestion-router/pkg/util"
)

// Dijkstra. single-pair least-congestion search over the read-only graph. a Dijkstra value holds the
// search state of one query and must not be shared between goroutines, the graph can be.
type Dijkstra struct {
	graph *da.Graph

	dist      []float64
	parent    []da.Index
	settled   []bool
	heapNodes []*da.PriorityQueueNode[da.DijkstraKey]

	pq *da.MinHeap[da.DijkstraKey]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph) *Dijkstra {
	return &Dijkstra{
		graph: graph,
		pq:    da.NewFourAryHeap[da.DijkstraKey](),
	}
}

// ShortestPath returns the locations of a minimum total congestion path from start to end and its cost.
// unknown start is reported before unknown end.
func (us *Dijkstra) ShortestPath(start, end string) ([]string, float64, error) {
	s, ok := us.graph.GetVertexId(start)
	if !ok {
		return nil, 0, util.WrapErrorf(ErrUnknownLocation, util.ErrNotFound,
			"the start location %q does not exist in the traffic data", start)
	}
	t, ok := us.graph.GetVertexId(end)
	if !ok {
		return nil, 0, util.WrapErrorf(ErrUnknownLocation, util.ErrNotFound,
			"the end location %q does not exist in the traffic data", end)
	}

	vertexPath, cost, found := us.ShortestPathSearch(s, t)
	if !found {
		return nil, 0, util.WrapErrorf(ErrNoPathFound, util.ErrBadParamInput,
			"no path available between %q and %q", start, end)
	}

	path := make([]string, len(vertexPath))
	for i, v := range vertexPath {
		path[i] = us.graph.GetLocation(v)
	}
	return path, cost, nil
}

// ShortestPathSearch runs dijkstra from s and stops once t is settled.
// equal tentative costs are settled in ascending vertex id order, so the result is deterministic.
func (us *Dijkstra) ShortestPathSearch(s, t da.Index) ([]da.Index, float64, bool) {
	if s == t {
		return []da.Index{s}, 0, true
	}

	us.Preallocate()

	us.dist[s] = 0
	us.heapNodes[s] = da.NewPriorityQueueNode(0, s, da.NewDijkstraKey(s))
	us.pq.Insert(us.heapNodes[s])

	for !us.pq.IsEmpty() {
		if us.graphSearchUni(t) {
			break
		}
	}

	if !us.settled[t] {
		return nil, math.Inf(1), false
	}

	path := make([]da.Index, 0)
	for v := t; v != da.INVALID_VERTEX_ID; v = us.parent[v] {
		path = append(path, v)
	}
	return util.ReverseG(path), us.dist[t], true
}

// graphSearchUni settles the closest vertex and relaxes its outEdges. returns true once target is settled.
func (us *Dijkstra) graphSearchUni(target da.Index) bool {
	node, _ := us.pq.ExtractMin()
	uId := node.GetItem().GetNode()
	us.settled[uId] = true
	us.numSettledNodes++

	if uId == target {
		return true
	}

	us.graph.ForOutEdgesOf(uId, func(e *da.OutEdge) {
		vId := e.GetHead()
		if us.settled[vId] {
			// never re-open a settled vertex, this also drops self-loops
			return
		}

		newDist := us.dist[uId] + e.GetWeight()
		if newDist >= us.dist[vId] {
			return
		}

		us.dist[vId] = newDist
		us.parent[vId] = uId

		if us.heapNodes[vId] != nil {
			// vId is queued and not settled, and newDist < dist[vId], so DecreaseKey cannot fail
			_ = us.pq.DecreaseKey(us.heapNodes[vId], newDist)
			return
		}
		us.heapNodes[vId] = da.NewPriorityQueueNode(newDist, vId, da.NewDijkstraKey(vId))
		us.pq.Insert(us.heapNodes[vId])
	})

	return false
}

func (us *Dijkstra) Preallocate() {
	n := us.graph.NumberOfVertices()
	us.dist = make([]float64, n)
	us.parent = make([]da.Index, n)
	us.settled = make([]bool, n)
	us.heapNodes = make([]*da.PriorityQueueNode[da.DijkstraKey], n)
	for v := 0; v < n; v++ {
		us.dist[v] = math.Inf(1) // unreached, larger than any finite path cost
		us.parent[v] = da.INVALID_VERTEX_ID
	}
	us.pq.Preallocate(n)
	us.numSettledNodes = 0
}

func (us *Dijkstra) GetNumSettledNodes() int {
	return us.numSettledNodes
}
