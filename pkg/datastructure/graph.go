package datastructure

type Index uint32

const INVALID_VERTEX_ID Index = ^Index(0)

type Vertex struct {
	location string
	firstOut Index // index of the first outEdge of this vertex in the flattened graph.outEdges array
	id       Index
}

func NewVertex(location string, id Index) *Vertex {
	return &Vertex{
		location: location,
		id:       id,
	}
}

func (v *Vertex) SetFirstOut(firstOut Index) {
	v.firstOut = firstOut
}

func (v *Vertex) GetLocation() string {
	return v.location
}

func (v *Vertex) GetFirstOut() Index {
	return v.firstOut
}

type OutEdge struct {
	head   Index
	weight float64 // congestion count recorded at the earlier ledger position
}

func NewOutEdge(head Index, weight float64) *OutEdge {
	return &OutEdge{
		head:   head,
		weight: weight,
	}
}

func (e *OutEdge) GetWeight() float64 {
	return e.weight
}

func (e *OutEdge) SetWeight(weight float64) {
	e.weight = weight
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

// Graph. undirected congestion graph stored as a forward star: the outEdges of vertex v are
// outEdges[vertices[v].firstOut : vertices[v+1].firstOut]. every undirected edge {u,v} is stored as two
// mirrored outEdges (u->v, v->u) with the same weight, a self-loop is stored once.
// Graph is read-only once built and may be shared across goroutines without locking.
type Graph struct {
	vertices      []*Vertex // len = numberOfVertices + 1, the last one is a sentinel
	outEdges      []*OutEdge
	locationIndex map[string]Index
}

func NewGraph(vertices []*Vertex, outEdges []*OutEdge) *Graph {
	locationIndex := make(map[string]Index, len(vertices))
	for i := 0; i < len(vertices)-1; i++ {
		locationIndex[vertices[i].location] = vertices[i].id
	}
	return &Graph{vertices: vertices, outEdges: outEdges, locationIndex: locationIndex}
}

func (g *Graph) NumberOfVertices() int {
	if len(g.vertices) == 0 {
		return 0
	}
	return len(g.vertices) - 1
}

func (g *Graph) NumberOfEdges() int {
	return len(g.outEdges)
}

func (g *Graph) GetOutDegree(u Index) Index {
	return g.vertices[u+1].firstOut - g.vertices[u].firstOut
}

func (g *Graph) GetOutEdge(e Index) *OutEdge {
	return g.outEdges[e]
}

func (g *Graph) GetVertex(u Index) *Vertex {
	return g.vertices[u]
}

func (g *Graph) GetLocation(u Index) string {
	return g.vertices[u].location
}

// GetVertexId returns the vertex of a location identifier.
func (g *Graph) GetVertexId(location string) (Index, bool) {
	id, ok := g.locationIndex[location]
	return id, ok
}

func (g *Graph) HasLocation(location string) bool {
	_, ok := g.locationIndex[location]
	return ok
}

// ForOutEdgesOf iterates outEdges of u in insertion order.
func (g *Graph) ForOutEdgesOf(u Index, handle func(e *OutEdge)) {
	for e := g.vertices[u].firstOut; e < g.vertices[u+1].firstOut; e++ {
		handle(g.outEdges[e])
	}
}

// FindOutEdge returns the outEdge u->v if it exists.
func (g *Graph) FindOutEdge(u, v Index) (*OutEdge, bool) {
	for e := g.vertices[u].firstOut; e < g.vertices[u+1].firstOut; e++ {
		if g.outEdges[e].head == v {
			return g.outEdges[e], true
		}
	}
	return nil, false
}

// GetWeight returns the weight of the edge between two locations.
func (g *Graph) GetWeight(from, to string) (float64, bool) {
	u, ok := g.GetVertexId(from)
	if !ok {
		return 0, false
	}
	v, ok := g.GetVertexId(to)
	if !ok {
		return 0, false
	}
	e, ok := g.FindOutEdge(u, v)
	if !ok {
		return 0, false
	}
	return e.weight, true
}

// Locations returns the location identifiers in vertex order (first appearance in the ledger).
func (g *Graph) Locations() []string {
	locs := make([]string, 0, g.NumberOfVertices())
	for i := 0; i < g.NumberOfVertices(); i++ {
		locs = append(locs, g.vertices[i].location)
	}
	return locs
}
