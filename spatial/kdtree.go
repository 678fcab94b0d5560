package spatial

import (
	"math"
	"sort"
)

const dims = 3

// Build constructs a k-d tree over points. An empty input yields an empty
// tree whose BallQuery always returns nil.
func Build(points []Point) *Tree {
	pts := make([]Point, len(points))
	copy(pts, points)

	return &Tree{root: build(pts, 0), size: len(pts)}
}

// Len returns the number of points indexed by t.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

func build(points []Point, depth int) *node {
	if len(points) == 0 {
		return nil
	}

	axis := depth % dims
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].axis(axis) < points[j].axis(axis)
	})

	mid := len(points) / 2
	return &node{
		point: points[mid],
		axis:  axis,
		left:  build(points[:mid], depth+1),
		right: build(points[mid+1:], depth+1),
	}
}

// BallQuery returns every indexed point within the closed Euclidean ball of
// radius r centered at c. The result has no duplicate point ids and no
// ordering guarantee.
func (t *Tree) BallQuery(c Point, r float64) []Point {
	if t == nil || t.root == nil || r < 0 {
		return nil
	}

	seen := make(map[int]Point)
	ballQuery(t.root, c, r, seen)

	out := make([]Point, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	return out
}

func ballQuery(n *node, c Point, r float64, out map[int]Point) {
	if n == nil {
		return
	}

	dx := n.point.X - c.X
	dy := n.point.Y - c.Y
	dz := n.point.Z - c.Z
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if dist <= r {
		out[n.point.ID] = n.point
	}

	axisVal := c.axis(n.axis)
	nodeVal := n.point.axis(n.axis)

	if !(axisVal-r > nodeVal) {
		ballQuery(n.left, c, r, out)
	}
	if !(axisVal+r < nodeVal) {
		ballQuery(n.right, c, r, out)
	}
}
