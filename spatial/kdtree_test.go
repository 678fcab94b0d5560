package spatial_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/starbeam/spatial"
)

// S2 — ball query exclusion. Same points as S1; query ((0,0,0), 5).
// Result = {(1,2,3)}.
func TestBallQuery_Exclusion(t *testing.T) {
	pts := []spatial.Point{
		{ID: 0, X: 1, Y: 2, Z: 3},
		{ID: 1, X: 4, Y: 5, Z: 6},
		{ID: 2, X: 7, Y: 8, Z: 9},
	}
	tree := spatial.Build(pts)

	got := tree.BallQuery(spatial.Point{}, 5)
	assert.Len(t, got, 1)
	assert.Equal(t, 0, got[0].ID)
}

// Invariant 5 — k-d tree ball-query soundness: for any build input P and query
// (c, r), returned set = { p ∈ P : ‖p − c‖ ≤ r }.
func TestBallQuery_Soundness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 300

	pts := make([]spatial.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = spatial.Point{
			ID: i,
			X:  rng.Float64()*200 - 100,
			Y:  rng.Float64()*200 - 100,
			Z:  rng.Float64()*200 - 100,
		}
	}
	tree := spatial.Build(pts)

	for trial := 0; trial < 20; trial++ {
		center := spatial.Point{
			X: rng.Float64()*200 - 100,
			Y: rng.Float64()*200 - 100,
			Z: rng.Float64()*200 - 100,
		}
		r := rng.Float64() * 80

		want := make(map[int]bool)
		for _, p := range pts {
			if euclid(p, center) <= r {
				want[p.ID] = true
			}
		}

		got := tree.BallQuery(center, r)
		gotSet := make(map[int]bool, len(got))
		for _, p := range got {
			gotSet[p.ID] = true
		}

		assert.Equal(t, want, gotSet, "trial %d: center=%+v r=%v", trial, center, r)
	}
}

func TestBallQuery_NegativeRadius(t *testing.T) {
	tree := spatial.Build([]spatial.Point{{ID: 0}})
	assert.Nil(t, tree.BallQuery(spatial.Point{}, -1))
}

func euclid(p, c spatial.Point) float64 {
	dx := p.X - c.X
	dy := p.Y - c.Y
	dz := p.Z - c.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
