// Package kdtree implements an incremental, self-balancing 3D k-d tree over
// point clouds.
//
// It supports bulk construction, k-nearest-neighbor search, point insertion,
// point deletion, and axis-aligned box deletion, while keeping the tree
// approximately balanced under arbitrary update sequences through partial
// subtree rebuilds. It targets SLAM-style workloads: a mapping process keeps
// adding newly observed points and retiring stale ones, interleaved with many
// nearest-neighbor queries for scan-to-map registration.
//
// Design:
//
//   - Deletion is lazy: a deleted point's node stays in the tree, marked, and
//     is only physically reclaimed the next time its subtree is rebuilt.
//   - Every node carries an axis-aligned bounding box over all physical
//     points in its subtree (valid or deleted), which lower-bounds the
//     distance to any live point below it and drives search pruning.
//   - Two tuning parameters control how eagerly subtrees rebuild:
//     DeleteParam bounds the fraction of deleted points tolerated in a
//     subtree, BalanceParam bounds how lopsided a subtree's two children may
//     be before a rebuild restores balance.
//
// Concurrency:
//
//   - A *Tree is not safe for concurrent use. Callers wanting concurrent
//     access must synchronize externally; distinct trees are independent.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidParameter: DeleteParam outside (0,1], BalanceParam outside
//     (0.5,1), or NearestSearch called with k <= 0.
//
// Example usage:
//
//	t, err := kdtree.New(kdtree.WithDeleteParam(0.5), kdtree.WithBalanceParam(0.7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t.Build(points)
//	nearest, err := t.NearestSearch(kdtree.Point{X: 1, Y: 0, Z: 0}, 5)
package kdtree
