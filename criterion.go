// File: criterion.go
// Role: the rebuild criterion — decides whether a subtree has accumulated
// too much deletion garbage, or grown too lopsided, to leave alone.

package kdtree

// criterionCheck reports whether n's subtree should be rebuilt under the
// given tuning parameters.
//
// Let total = n.treeSize + n.invalidNum be n's physical node count. A
// rebuild is required when the deleted fraction of total exceeds
// alphaDelete, or when the dominant child's physical node count is more
// than an alphaBalance fraction of total (or less than 1-alphaBalance).
//
// The source algorithm picks the left child as "the" child whenever both
// exist, only falling back to the right child when there is no left one.
// This uses max(left, right) instead, which is the strict improvement the
// spec permits: it catches a lopsided right-heavy subtree that a
// left-only check would miss.
//
// A node with exactly one valid point (treeSize == 1) never triggers,
// matching the source's guard exactly.
func criterionCheck(n *node, alphaDelete, alphaBalance float64) bool {
	if n.treeSize == 1 {
		return false
	}

	total := n.treeSize + n.invalidNum
	if total == 0 {
		return false
	}

	deleteRatio := float64(n.invalidNum) / float64(total)
	if deleteRatio > alphaDelete {
		return true
	}

	dominant := childTotal(n.left)
	if childTotal(n.right) > dominant {
		dominant = childTotal(n.right)
	}
	if n.left == nil && n.right == nil {
		return false
	}

	balanceRatio := float64(dominant) / float64(total)

	return balanceRatio > alphaBalance || balanceRatio < 1-alphaBalance
}
