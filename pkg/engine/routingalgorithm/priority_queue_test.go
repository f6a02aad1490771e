package routingalgorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinHeap(t *testing.T) {
	t.Run("extract in rank order", func(t *testing.T) {
		pq := NewMinHeap[string]()
		ranks := map[string]float64{"a": 5, "b": 1, "c": 3, "d": -2, "e": 4, "f": 0}
		for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
			pq.Insert(ranks[id], id)
		}
		assert.Equal(t, 6, pq.Size())

		min, err := pq.GetMin()
		assert.NoError(t, err)
		assert.Equal(t, "d", min.Item)

		got := []string{}
		for !pq.IsEmpty() {
			node, err := pq.ExtractMin()
			assert.NoError(t, err)
			got = append(got, node.Item)
		}
		assert.Equal(t, []string{"d", "f", "b", "c", "e", "a"}, got)
	})

	t.Run("equal rank pops in insertion order", func(t *testing.T) {
		pq := NewMinHeap[int]()
		for i := 0; i < 10; i++ {
			pq.Insert(1.5, i)
		}
		for i := 0; i < 10; i++ {
			node, err := pq.ExtractMin()
			assert.NoError(t, err)
			assert.Equal(t, i, node.Item)
		}
	})

	t.Run("empty heap", func(t *testing.T) {
		pq := NewMinHeap[string]()
		_, err := pq.ExtractMin()
		assert.ErrorIs(t, err, errEmptyHeap)
		_, err = pq.GetMin()
		assert.ErrorIs(t, err, errEmptyHeap)
	})
}
