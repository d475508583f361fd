package datastructure

type edgeKey struct {
	tail, head Index
}

// DynamicGraph. mutable adjacency list used while the graph is being built. a repeated (tail, head) pair
// keeps its first position in the adjacency list but takes the most recent weight.
type DynamicGraph struct {
	vertices      []*Vertex
	outEdges      [][]*OutEdge // adjacency list
	locationIndex map[string]Index
	edgePos       map[edgeKey]int
}

func NewDynamicGraph() *DynamicGraph {
	return &DynamicGraph{
		vertices:      make([]*Vertex, 0),
		outEdges:      make([][]*OutEdge, 0),
		locationIndex: make(map[string]Index),
		edgePos:       make(map[edgeKey]int),
	}
}

// AddVertex adds location if it is new and returns its vertex id.
func (g *DynamicGraph) AddVertex(location string) Index {
	if id, ok := g.locationIndex[location]; ok {
		return id
	}
	id := Index(len(g.vertices))
	g.vertices = append(g.vertices, NewVertex(location, id))
	g.outEdges = append(g.outEdges, make([]*OutEdge, 0))
	g.locationIndex[location] = id
	return id
}

// AddEdge inserts the directed edge u->v. last write wins for a repeated (u, v) pair.
func (g *DynamicGraph) AddEdge(u, v Index, weight float64) {
	key := edgeKey{tail: u, head: v}
	if pos, ok := g.edgePos[key]; ok {
		g.outEdges[u][pos].SetWeight(weight)
		return
	}
	g.edgePos[key] = len(g.outEdges[u])
	g.outEdges[u] = append(g.outEdges[u], NewOutEdge(v, weight))
}

func (g *DynamicGraph) ForOutEdgesOf(u Index, handle func(e *OutEdge)) {
	for _, e := range g.outEdges[u] {
		handle(e)
	}
}

func (g *DynamicGraph) GetVertex(v Index) *Vertex {
	return g.vertices[v]
}

func (g *DynamicGraph) NumberOfVertices() int {
	return len(g.vertices)
}

// Freeze flattens the adjacency lists into a read-only Graph. the DynamicGraph must not be used afterwards.
func (g *DynamicGraph) Freeze() *Graph {
	numEdges := 0
	for _, adj := range g.outEdges {
		numEdges += len(adj)
	}

	vertices := make([]*Vertex, 0, len(g.vertices)+1)
	outEdges := make([]*OutEdge, 0, numEdges)
	for u, v := range g.vertices {
		v.SetFirstOut(Index(len(outEdges)))
		vertices = append(vertices, v)
		outEdges = append(outEdges, g.outEdges[u]...)
	}

	sentinel := NewVertex("", INVALID_VERTEX_ID)
	sentinel.SetFirstOut(Index(len(outEdges)))
	vertices = append(vertices, sentinel)

	return NewGraph(vertices, outEdges)
}
