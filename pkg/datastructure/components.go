package datastructure

// ConnectedComponents labels every vertex with the id of its connected component. components are numbered
// in order of their smallest vertex id. every edge is stored in both directions, so following outEdges is enough.
func (g *Graph) ConnectedComponents() ([]Index, int) {
	n := g.NumberOfVertices()
	comp := make([]Index, n)
	for v := range comp {
		comp[v] = INVALID_VERTEX_ID
	}

	numComponents := 0
	stack := make([]Index, 0, 16)
	for root := Index(0); root < Index(n); root++ {
		if comp[root] != INVALID_VERTEX_ID {
			continue
		}
		c := Index(numComponents)
		numComponents++

		comp[root] = c
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			g.ForOutEdgesOf(v, func(e *OutEdge) {
				if comp[e.GetHead()] == INVALID_VERTEX_ID {
					comp[e.GetHead()] = c
					stack = append(stack, e.GetHead())
				}
			})
		}
	}
	return comp, numComponents
}
