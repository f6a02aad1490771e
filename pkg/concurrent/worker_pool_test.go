package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWorkerPool(t *testing.T) {
	square := func(job Job[int]) int {
		return job.JobItem * job.JobItem
	}

	for _, numWorkers := range []int{0, 1, 4, 16} {
		wp := NewWorkerPool[Job[int], int](numWorkers, 50)
		for i := 0; i < 50; i++ {
			wp.AddJob(Job[int]{ID: i, JobItem: i})
		}
		wp.Close()
		wp.Start(square)
		wp.Wait()

		got := []int{}
		for r := range wp.CollectResults() {
			got = append(got, r)
		}
		sort.Ints(got)
		assert.Len(t, got, 50)
		for i, v := range got {
			assert.Equal(t, i*i, v)
		}
	}
}

func TestWorkerPoolRoutePair(t *testing.T) {
	wp := NewWorkerPool[Job[RoutePair], string](2, 2)
	wp.AddJob(Job[RoutePair]{ID: 0, JobItem: RoutePair{From: "Anoka", To: "Blaine"}})
	wp.AddJob(Job[RoutePair]{ID: 1, JobItem: RoutePair{From: "Edina", To: "Eagan"}})
	wp.Close()
	wp.Start(func(job Job[RoutePair]) string {
		return job.JobItem.From + "-" + job.JobItem.To
	})
	wp.Wait()

	got := []string{}
	for r := range wp.CollectResults() {
		got = append(got, r)
	}
	assert.ElementsMatch(t, []string{"Anoka-Blaine", "Edina-Eagan"}, got)
}
