package ppssp

import (
	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

// topK returns the k items with the highest priority, highest first. A
// min-heap of size k keeps the cost at O(n log k).
func topK[T comparable, P int64 | float64](items []T, k int, priority func(T) P) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}

	pq := priorityqueue.New[T, P](priorityqueue.MinHeap)
	for _, item := range items {
		pq.Put(item, priority(item))
		if pq.Len() > k {
			pq.Get()
		}
	}

	out := make([]T, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = pq.Get().Value
	}
	return out
}

// TopProjects returns the k most expensive projects, most expensive first.
func TopProjects(projects []*Project, k int) []*Project {
	return topK(projects, k, func(p *Project) float64 { return p.TotalCost })
}
