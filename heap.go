// File: heap.go
// Role: the bounded max-heap of search candidates NearestSearch maintains,
// in the same container/heap idiom the teacher's dijkstra package uses for
// its min-heap of path candidates — inverted here so the root is the
// worst-kept candidate, letting Search evict-and-push in O(log k).

package kdtree

// candidate is one kept point during a NearestSearch, together with its
// squared distance to the query point.
type candidate struct {
	point Point
	dist  float64
}

// candidateHeap is a max-heap (by dist) of up to k candidates. The heap
// root (index 0) is always the farthest of the currently kept candidates,
// so "is this new point better than our worst kept one" is an O(1) peek.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool { return h[i].dist > h[j].dist }

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
