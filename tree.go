// File: tree.go
// Role: the public facade — construction with tuning parameters, and the
// six public operations (Build, NearestSearch, AddPoints, DeletePoints,
// DeletePointBoxes, plus the tuning setters).

package kdtree

import "container/heap"

const (
	// DefaultDeleteParam and DefaultBalanceParam are sensible defaults for
	// SLAM-style workloads: tolerate up to half a subtree being garbage,
	// and up to a 70/30 split between children, before rebuilding.
	DefaultDeleteParam  = 0.5
	DefaultBalanceParam = 0.7
)

// Tree is an incremental, self-balancing 3D k-d tree. The zero value is not
// usable; construct one with New.
//
// A *Tree is not safe for concurrent use: no operation may be called
// concurrently with any other operation on the same tree. Distinct trees
// are independent.
type Tree struct {
	root *node

	// scratch is reused across Build and every internal rebuild to avoid
	// reallocating on each one. Its contents are meaningful only for the
	// duration of one (re)build; callers never observe it.
	scratch []Point

	alphaDelete  float64
	alphaBalance float64

	rebuildCounter int
	searchCounter  int
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithDeleteParam sets the delete-ratio tuning parameter (must end up in
// (0,1]; validated by New, not by the option itself).
func WithDeleteParam(alphaDelete float64) Option {
	return func(t *Tree) { t.alphaDelete = alphaDelete }
}

// WithBalanceParam sets the balance tuning parameter (must end up in
// (0.5,1); validated by New, not by the option itself).
func WithBalanceParam(alphaBalance float64) Option {
	return func(t *Tree) { t.alphaBalance = alphaBalance }
}

// New constructs an empty Tree with the given tuning options applied over
// the defaults. It returns ErrInvalidParameter if the resolved DeleteParam
// is outside (0,1] or BalanceParam is outside (0.5,1).
func New(opts ...Option) (*Tree, error) {
	t := &Tree{
		alphaDelete:  DefaultDeleteParam,
		alphaBalance: DefaultBalanceParam,
	}
	for _, opt := range opts {
		opt(t)
	}

	if !validDeleteParam(t.alphaDelete) {
		return nil, wrapf(opNew, "DeleteParam=%v must be in (0,1]: %w", t.alphaDelete, ErrInvalidParameter)
	}
	if !validBalanceParam(t.alphaBalance) {
		return nil, wrapf(opNew, "BalanceParam=%v must be in (0.5,1): %w", t.alphaBalance, ErrInvalidParameter)
	}

	return t, nil
}

func validDeleteParam(v float64) bool  { return v > 0 && v <= 1 }
func validBalanceParam(v float64) bool { return v > 0.5 && v < 1 }

// SetDeleteParam updates the delete-ratio tuning parameter. Existing nodes
// are not re-checked against the new value; it takes effect on subsequent
// operations.
func (t *Tree) SetDeleteParam(alphaDelete float64) error {
	if !validDeleteParam(alphaDelete) {
		return wrapf(opSetDeleteParam, "%v must be in (0,1]: %w", alphaDelete, ErrInvalidParameter)
	}
	t.alphaDelete = alphaDelete

	return nil
}

// SetBalanceParam updates the balance tuning parameter. Existing nodes are
// not re-checked against the new value; it takes effect on subsequent
// operations.
func (t *Tree) SetBalanceParam(alphaBalance float64) error {
	if !validBalanceParam(alphaBalance) {
		return wrapf(opSetBalanceParam, "%v must be in (0.5,1): %w", alphaBalance, ErrInvalidParameter)
	}
	t.alphaBalance = alphaBalance

	return nil
}

// Build discards any existing tree and constructs a new, balanced one from
// points. Duplicate and coincident points are allowed.
func (t *Tree) Build(points []Point) {
	t.scratch = append(t.scratch[:0], points...)
	t.rebuildCounter = 0
	t.root = buildTree(t.scratch, 0, len(t.scratch)-1)
}

// AddPoints inserts each point in order. Each point's effect, including any
// rebuild it triggers, is fully committed before the next point is
// processed.
func (t *Tree) AddPoints(points []Point) {
	for _, p := range points {
		addPoint(&t.root, p, &t.scratch, &t.rebuildCounter, t.alphaDelete, t.alphaBalance)
		if t.root != nil && t.root.needRebuild {
			rebuild(&t.root, &t.scratch, &t.rebuildCounter)
		}
	}
}

// DeletePoints marks each point in points as deleted, in order, and reports
// per point whether a matching, not-yet-deleted point was found. Deleting
// the same point twice reports success once and failure the second time.
func (t *Tree) DeletePoints(points []Point) []bool {
	found := make([]bool, len(points))
	for i, p := range points {
		found[i] = deleteByPoint(&t.root, p, &t.scratch, &t.rebuildCounter, t.alphaDelete, t.alphaBalance)
	}

	return found
}

// DeletePointBoxes marks every point strictly inside any of boxes as
// deleted, processing boxes in order.
func (t *Tree) DeletePointBoxes(boxes []Box) {
	for _, b := range boxes {
		deleteByRange(&t.root, b, &t.scratch, &t.rebuildCounter, t.alphaDelete, t.alphaBalance)
	}
}

// NearestSearch returns up to k of the tree's currently valid points
// closest to q, in ascending squared-distance order. If fewer than k valid
// points exist, the result is clamped to however many there are; an empty
// or fully-deleted tree returns an empty, non-nil slice. The order among
// points at equal distance is not defined; callers must not depend on it. Returns
// ErrInvalidParameter if k <= 0, or ErrNonFinitePoint if q carries a NaN or
// infinite coordinate.
func (t *Tree) NearestSearch(q Point, k int) ([]Point, error) {
	if k <= 0 {
		return nil, wrapf(opNearestSearch, "k=%d must be >= 1: %w", k, ErrInvalidParameter)
	}
	if !finitePoint(q) {
		return nil, wrapf(opNearestSearch, "query point %v has a non-finite coordinate: %w", q, ErrNonFinitePoint)
	}

	t.searchCounter = 0
	h := make(candidateHeap, 0, k)
	searchNode(t.root, q, k, &h, &t.searchCounter)

	out := make([]Point, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(candidate).point
	}

	return out, nil
}

// Size returns the number of currently valid (non-deleted) points in the
// tree.
func (t *Tree) Size() int {
	if t.root == nil {
		return 0
	}

	return t.root.treeSize
}

// RebuildCount returns the number of partial or whole-tree rebuilds
// performed since the tree was constructed or last reset by Build. It is a diagnostic counter, not part of the semantic
// contract: tests should not depend on its exact value.
func (t *Tree) RebuildCount() int { return t.rebuildCounter }

// SearchCount returns the number of nodes visited by the most recent
// NearestSearch call. It is a diagnostic counter, not part of the semantic
// contract.
func (t *Tree) SearchCount() int { return t.searchCounter }
