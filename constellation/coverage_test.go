package constellation

import (
	"testing"

	"github.com/katalvlaran/starbeam/beam"
	"github.com/katalvlaran/starbeam/geo"
)

func TestCoverageUpperBound_RespectsCapacityAcrossOverlap(t *testing.T) {
	u1 := beam.NewUser(1, geo.Vector{})
	u2 := beam.NewUser(2, geo.Vector{})
	u3 := beam.NewUser(3, geo.Vector{})
	u4 := beam.NewUser(4, geo.Vector{})
	users := []*beam.User{u1, u2, u3, u4}

	sat0 := beam.NewSatellite(0, geo.Vector{}, 2)
	sat0.SetVisibleUsers(map[int]*beam.User{1: u1, 2: u2, 3: u3})

	sat1 := beam.NewSatellite(1, geo.Vector{}, 1)
	sat1.SetVisibleUsers(map[int]*beam.User{2: u2, 3: u3, 4: u4})

	satellites := []*beam.Satellite{sat0, sat1}

	got := coverageUpperBound(users, satellites)
	if got != 3 {
		t.Fatalf("got %d; want 3 (total capacity 3 is the binding constraint)", got)
	}
}

func TestCoverageUpperBound_ZeroWhenNoVisibility(t *testing.T) {
	u1 := beam.NewUser(1, geo.Vector{})
	sat0 := beam.NewSatellite(0, geo.Vector{}, 32)
	sat0.SetVisibleUsers(map[int]*beam.User{})

	got := coverageUpperBound([]*beam.User{u1}, []*beam.Satellite{sat0})
	if got != 0 {
		t.Fatalf("got %d; want 0", got)
	}
}

func TestCoverageUpperBound_BoundedByTotalVisibleUsers(t *testing.T) {
	u1 := beam.NewUser(1, geo.Vector{})
	sat0 := beam.NewSatellite(0, geo.Vector{}, 32)
	sat0.SetVisibleUsers(map[int]*beam.User{1: u1})

	got := coverageUpperBound([]*beam.User{u1}, []*beam.Satellite{sat0})
	if got != 1 {
		t.Fatalf("got %d; want 1 (only one visible user, capacity 32 is slack)", got)
	}
}
