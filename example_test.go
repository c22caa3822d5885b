// Package kdtree_test provides runnable examples demonstrating how to use
// the kdtree package. Each example is runnable via "go test -run Example",
// showing both code and expected output.
package kdtree_test

import (
	"fmt"

	"github.com/katalvlaran/kdtree3"
)

// Example_scanToMap demonstrates a SLAM-style scan-to-map registration
// loop: build a map from an initial scan, query it for the points nearest a
// new reading, then fold that reading's points into the map.
func Example_scanToMap() {
	// 1) Build the initial map from a first LiDAR scan.
	t, err := kdtree.New(kdtree.WithDeleteParam(0.5), kdtree.WithBalanceParam(0.7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	t.Build([]kdtree.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 3, Z: 0},
		{X: 5, Y: 5, Z: 0},
	})

	// 2) A new scan reading arrives; find its 2 nearest neighbors already
	//    in the map for registration.
	nearest, err := t.NearestSearch(kdtree.Point{X: 0.1, Y: 0.1, Z: 0}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("nearest=%v\n", nearest)

	// 3) Fold the new scan's points into the map.
	t.AddPoints([]kdtree.Point{{X: 0.2, Y: 0.1, Z: 0}})
	fmt.Printf("size=%d\n", t.Size())

	// Output:
	// nearest=[{0 0 0} {1 0 0}]
	// size=5
}

// Example_retireStalePoints demonstrates removing points that have aged out
// of the map, either individually or within an axis-aligned region.
func Example_retireStalePoints() {
	// 1) Start with a small map.
	t, err := kdtree.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	t.Build([]kdtree.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 10, Z: 10},
		{X: 10.5, Y: 10.5, Z: 10.5},
	})

	// 2) Retire a single stale landmark by exact coordinates.
	found := t.DeletePoints([]kdtree.Point{{X: 0, Y: 0, Z: 0}})
	fmt.Printf("found=%v size=%d\n", found, t.Size())

	// 3) Retire every remaining point inside a stale region in one call.
	t.DeletePointBoxes([]kdtree.Box{{
		MinX: 9, MaxX: 11,
		MinY: 9, MaxY: 11,
		MinZ: 9, MaxZ: 11,
	}})
	fmt.Printf("size=%d\n", t.Size())

	// Output:
	// found=[true] size=2
	// size=0
}
