package concurrent

// RoutePair satu job point-to-point query buat worker pool.
type RoutePair struct {
	From string
	To   string
}

type Job[T any] struct {
	ID      int
	JobItem T
}

type JobFunc[T any, G any] func(job T) G
