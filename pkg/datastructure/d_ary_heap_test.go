package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapExtractOrder(t *testing.T) {
	testCases := []struct {
		name  string
		d     int
		ranks []float64
		want  []Index
	}{
		{
			name:  "binary heap",
			d:     2,
			ranks: []float64{5, 1, 4, 2, 3},
			want:  []Index{1, 3, 4, 2, 0},
		},
		{
			name:  "four-ary heap, equal ranks ordered by tie key",
			d:     4,
			ranks: []float64{2, 2, 1, 2, 1, 0},
			want:  []Index{5, 2, 4, 0, 1, 3},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			h := NewdAryHeap[DijkstraKey](tt.d)
			// insert in reverse so tie order cannot come from insertion order
			for i := len(tt.ranks) - 1; i >= 0; i-- {
				h.Insert(NewPriorityQueueNode(tt.ranks[i], Index(i), NewDijkstraKey(Index(i))))
			}

			got := make([]Index, 0, len(tt.ranks))
			for !h.IsEmpty() {
				n, err := h.ExtractMin()
				require.NoError(t, err)
				got = append(got, n.GetItem().GetNode())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewFourAryHeap[DijkstraKey]()
	nodes := make([]*PriorityQueueNode[DijkstraKey], 0)
	for i, r := range []float64{10, 20, 30, 40} {
		n := NewPriorityQueueNode(r, Index(i), NewDijkstraKey(Index(i)))
		nodes = append(nodes, n)
		h.Insert(n)
	}

	require.NoError(t, h.DecreaseKey(nodes[3], 5))
	assert.Error(t, h.DecreaseKey(nodes[2], 35), "increasing a key must fail")

	min, err := h.GetMin()
	require.NoError(t, err)
	assert.Equal(t, Index(3), min.GetItem().GetNode())
	assert.Equal(t, 5.0, min.GetRank())

	for !h.IsEmpty() {
		_, err = h.ExtractMin()
		require.NoError(t, err)
	}
	_, err = h.ExtractMin()
	assert.Error(t, err)
	_, err = h.GetMin()
	assert.Error(t, err)
}
