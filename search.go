// File: search.go
// Role: pruned best-first k-nearest-neighbor traversal.

package kdtree

import (
	"container/heap"
	"math"
)

// searchNode visits n looking for points closer to q than the current
// worst-kept candidate in h, recursing into children in nearest-box-first
// order and pruning the farther child once h is full and provably
// un-improvable by it.
func searchNode(n *node, q Point, k int, h *candidateHeap, searchCounter *int) {
	if n == nil || n.treeDeleted {
		return
	}
	*searchCounter++

	if !n.pointDeleted {
		d := sqDist(q, n.pivot)
		if h.Len() < k {
			heap.Push(h, candidate{point: n.pivot, dist: d})
		} else if d < (*h)[0].dist {
			heap.Pop(h)
			heap.Push(h, candidate{point: n.pivot, dist: d})
		}
	}

	dLeft := childBoxDist(q, n.left)
	dRight := childBoxDist(q, n.right)

	nearChild, farChild, farDist := n.left, n.right, dRight
	if dRight < dLeft {
		nearChild, farChild, farDist = n.right, n.left, dLeft
	}

	searchNode(nearChild, q, k, h, searchCounter)
	if h.Len() < k || farDist < (*h)[0].dist {
		searchNode(farChild, q, k, h, searchCounter)
	}
}

// childBoxDist is boxDist against a possibly-nil child, returning +Inf for
// an absent child so it is never preferred and never wins the "still worth
// visiting" comparison.
func childBoxDist(q Point, c *node) float64 {
	if c == nil {
		return math.Inf(1)
	}

	return boxDist(q, c.bbox)
}
