package svgo

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestConvexHull(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}, {5, 0}}
	test.T(t, ConvexHull(points), []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	test.T(t, ConvexHull([]Point{{1, 1}}), []Point{{1, 1}})
}

func TestIntersects(t *testing.T) {
	var tests = []struct {
		p1, p2   string
		expected bool
	}{
		{"M0 0h10v10h-10z", "M5 5h10v10h-10z", true},
		{"M0 0h10v10h-10z", "M20 0h10v10h-10z", false},
		{"M0 0h10v10h-10z", "M2 2h6v6h-6z", true},
		{"M0 0L10 0L0 10z", "M10 10L10 5L5 10z", false},
		{"M0 0h10v10h-10zM30 30h10v10h-10z", "M35 35h10v10h-10z", true},
		{"M0 0h10", "M0 5h10", false},
		{"", "M0 0h10v10h-10z", false},
	}
	for _, tt := range tests {
		t.Run(tt.p1+" "+tt.p2, func(t *testing.T) {
			test.T(t, Intersects(ParsePathData(tt.p1), ParsePathData(tt.p2)), tt.expected)
		})
	}
}

func TestHullsIntersectDegenerate(t *testing.T) {
	// a line has no area and is treated as intersecting
	test.That(t, hullsIntersect([]Point{{0, 0}, {10, 0}}, []Point{{0, 0}, {10, 0}, {0, 10}}))
}
