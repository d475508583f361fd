package ledger

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/lintang-b-s/congestion-router/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerOf(rows ...Observation) *Ledger {
	return New(rows)
}

func obs(loc string, count int) Observation {
	return Observation{Location: loc, CongestionCount: count, Time: "08:00"}
}

func TestBuildGraph(t *testing.T) {
	l := ledgerOf(obs("A", 1), obs("B", 3), obs("C", 6))
	g := BuildGraph(l)

	require.Equal(t, 3, g.NumberOfVertices())
	assert.Equal(t, 4, g.NumberOfEdges())

	testCases := []struct {
		from, to string
		want     float64
	}{
		{"A", "B", 1}, {"B", "A", 1},
		{"B", "C", 3}, {"C", "B", 3},
	}
	for _, tt := range testCases {
		t.Run(tt.from+"-"+tt.to, func(t *testing.T) {
			w, ok := g.GetWeight(tt.from, tt.to)
			require.True(t, ok)
			assert.Equal(t, tt.want, w)
		})
	}

	_, ok := g.GetWeight("A", "C")
	assert.False(t, ok, "only ledger neighbours are connected")
}

func TestBuildGraphSingleObservation(t *testing.T) {
	g := BuildGraph(ledgerOf(obs("A", 4)))
	assert.Equal(t, 1, g.NumberOfVertices())
	assert.Equal(t, 0, g.NumberOfEdges())
	assert.True(t, g.HasLocation("A"))
}

func TestBuildGraphSelfLoop(t *testing.T) {
	g := BuildGraph(ledgerOf(obs("A", 2), obs("A", 0), obs("B", 1)))

	w, ok := g.GetWeight("A", "A")
	require.True(t, ok, "self-loop must be kept")
	assert.Equal(t, 2.0, w)

	a, _ := g.GetVertexId("A")
	loops := 0
	g.ForOutEdgesOf(a, func(e *datastructure.OutEdge) {
		if e.GetHead() == a {
			loops++
		}
	})
	assert.Equal(t, 1, loops)
}

func TestBuildGraphLastWriteWins(t *testing.T) {
	// A-B written with 5, then B-A written with 2 (both directions each time)
	g := BuildGraph(ledgerOf(obs("A", 5), obs("B", 2), obs("A", 9)))

	ab, _ := g.GetWeight("A", "B")
	ba, _ := g.GetWeight("B", "A")
	assert.Equal(t, 2.0, ab)
	assert.Equal(t, 2.0, ba)
	assert.Equal(t, 2, g.NumberOfEdges())
}

// every ledger neighbour pair is connected in both directions with the same weight
func TestBuildGraphSymmetric(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		n := 2 + rnd.Intn(30)
		rows := make([]Observation, n)
		for i := range rows {
			rows[i] = obs(fmt.Sprintf("L%d", rnd.Intn(8)), rnd.Intn(10))
		}
		l := ledgerOf(rows...)
		g := BuildGraph(l)

		for i := 0; i+1 < l.Len(); i++ {
			u, v := l.At(i).Location, l.At(i+1).Location
			uv, ok := g.GetWeight(u, v)
			require.True(t, ok, "missing %s->%s", u, v)
			vu, ok := g.GetWeight(v, u)
			require.True(t, ok, "missing %s->%s", v, u)
			assert.Equal(t, uv, vu)
		}
	}
}

func TestParseThenBuild(t *testing.T) {
	l, err := Parse(strings.NewReader(sampleLedger))
	require.NoError(t, err)
	g := BuildGraph(l)
	assert.Equal(t, l.Locations(), g.Locations())
}
