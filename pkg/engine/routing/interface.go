package routing

type Router interface {
	ShortestPath(start, end string) ([]string, float64, error)
}
