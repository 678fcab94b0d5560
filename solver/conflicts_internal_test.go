package solver

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/starbeam/beam"
	"github.com/katalvlaran/starbeam/geo"
)

// S6 — min-conflict rescue, first half: with an empty unassigned pool,
// Blue/Green/Red each collide with u4 along the (1,1,1) ray — Blue and
// Green via the other ray occupants, Red via the victim's own still-present
// connection (same user, same point, compared as a foreign probe per spec
// §4.6 step 2) — leaving Yellow as the unique free color.
func TestRescueCandidate_OnlyFreeColorWins(t *testing.T) {
	sat := beam.NewSatellite(0, geo.Vector{}, 32)
	u1 := beam.NewUser(1, geo.Vector{X: 1, Y: 1, Z: 1})
	u2 := beam.NewUser(2, geo.Vector{X: 2, Y: 2, Z: 2})
	u3 := beam.NewUser(3, geo.Vector{X: 3, Y: 3, Z: 3})
	u4 := beam.NewUser(4, geo.Vector{X: 4, Y: 4, Z: 4})

	mustAdd(t, sat, beam.Connection{SatID: 0, ConnID: 1, User: u1, Color: beam.Blue})
	mustAdd(t, sat, beam.Connection{SatID: 0, ConnID: 2, User: u2, Color: beam.Green})
	mustAdd(t, sat, beam.Connection{SatID: 0, ConnID: 3, User: u3, Color: beam.Red})
	victim := beam.Connection{SatID: 0, ConnID: 4, User: u4, Color: beam.Red}
	mustAdd(t, sat, victim)

	rng := rand.New(rand.NewSource(42))
	got := rescueCandidate(sat, victim, nil, rng, 10)

	if got.User.ID != u4.ID || got.Color != beam.Yellow {
		t.Fatalf("got %+v; want user=4 color=Yellow", got)
	}
}

// S6 — min-conflict rescue, extension: once all four colors are taken
// along the (1,1,1) ray, the rescue must hop rays entirely and pick the
// newly unassigned u5 on the (-1,-1,-1) ray, in any color.
func TestRescueCandidate_HopsRayWhenAllColorsTaken(t *testing.T) {
	sat := beam.NewSatellite(0, geo.Vector{}, 32)
	u1 := beam.NewUser(1, geo.Vector{X: 1, Y: 1, Z: 1})
	u2 := beam.NewUser(2, geo.Vector{X: 2, Y: 2, Z: 2})
	u3 := beam.NewUser(3, geo.Vector{X: 3, Y: 3, Z: 3})
	u4 := beam.NewUser(4, geo.Vector{X: 4, Y: 4, Z: 4})
	u5 := beam.NewUser(5, geo.Vector{X: -5, Y: -5, Z: -5})

	mustAdd(t, sat, beam.Connection{SatID: 0, ConnID: 1, User: u1, Color: beam.Blue})
	mustAdd(t, sat, beam.Connection{SatID: 0, ConnID: 2, User: u2, Color: beam.Green})
	mustAdd(t, sat, beam.Connection{SatID: 0, ConnID: 3, User: u3, Color: beam.Red})
	mustAdd(t, sat, beam.Connection{SatID: 0, ConnID: 4, User: u4, Color: beam.Yellow})
	victim := beam.Connection{SatID: 0, ConnID: 5, User: u4, Color: beam.Red}
	mustAdd(t, sat, victim)

	rng := rand.New(rand.NewSource(7))
	got := rescueCandidate(sat, victim, []*beam.User{u5}, rng, 10)

	if got.User.ID != u5.ID {
		t.Fatalf("got user=%d; want user=5 (ray hop), any color", got.User.ID)
	}
}

func mustAdd(t *testing.T, sat *beam.Satellite, c beam.Connection) {
	t.Helper()
	if err := sat.AddConnection(c); err != nil {
		t.Fatalf("AddConnection: %v", err)
	}
}
