// File: rebuild.go
// Role: flattening a subtree's valid points and reconstructing it balanced,
// in place.

package kdtree

// flatten appends every valid (non-deleted) point in n's subtree to *out,
// in-order, short-circuiting subtrees that are entirely deleted. It appends
// after whatever *out already holds; rebuild truncates the scratch buffer
// before calling it.
func flatten(n *node, out *[]Point) {
	if n == nil || n.treeDeleted {
		return
	}

	flatten(n.left, out)
	if !n.pointDeleted {
		*out = append(*out, n.pivot)
	}
	flatten(n.right, out)
}

// rebuild replaces *nodePtr with a fresh, balanced subtree built from its
// own valid points, discarding every lazily-deleted node in the process.
// scratch is reused across calls to avoid reallocating on every rebuild;
// its contents are meaningful only for the duration of this call.
func rebuild(nodePtr **node, scratch *[]Point, rebuildCounter *int) {
	*scratch = (*scratch)[:0]
	flatten(*nodePtr, scratch)
	pts := *scratch
	*nodePtr = buildTree(pts, 0, len(pts)-1)
	*rebuildCounter++
}
