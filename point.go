// File: point.go
// Role: the 3D point value type this package consumes, plus the metric
// primitives (equality, squared distance, per-axis access) everything else
// is built on.

package kdtree

import "math"

// Epsilon is the absolute tolerance used for coordinate equality throughout
// the tree (same_point in the source algorithm). It is fixed for the
// package's lifetime, not per-Tree configurable, matching the spec's
// description of epsilon as a compile-time constant of the metric.
const Epsilon = 1e-8

// Point is a point in 3D space. It is the minimal value type the tree
// engine needs from its caller: everything upstream of it (file formats,
// sensor drivers, visualization) is out of scope for this package.
type Point struct {
	X, Y, Z float64
}

// Box is an axis-aligned box [MinX,MaxX]x[MinY,MaxY]x[MinZ,MaxZ], used as
// the query shape for DeletePointBoxes.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// samePoint reports whether a and b are equal within Epsilon on every axis.
func samePoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < Epsilon &&
		math.Abs(a.Y-b.Y) < Epsilon &&
		math.Abs(a.Z-b.Z) < Epsilon
}

// sqDist returns the squared Euclidean distance between a and b.
func sqDist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return dx*dx + dy*dy + dz*dz
}

// finitePoint reports whether every coordinate of p is neither NaN nor
// infinite.
func finitePoint(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// axisValue returns the coordinate of p along the given division axis
// (0=X, 1=Y, 2=Z).
func axisValue(p Point, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}
