package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starbeam/beam"
	"github.com/katalvlaran/starbeam/geo"
	"github.com/katalvlaran/starbeam/solver"
)

func buildScenario(seed int64) ([]*beam.Satellite, []*beam.User) {
	rng := rand.New(rand.NewSource(seed))
	const numUsers = 120
	const numSatellites = 6

	users := make([]*beam.User, numUsers)
	for i := range users {
		users[i] = beam.NewUser(i, geo.Vector{X: rng.Float64() * 50, Y: rng.Float64() * 50, Z: rng.Float64() * 50})
	}

	satellites := make([]*beam.Satellite, numSatellites)
	for i := range satellites {
		sat := beam.NewSatellite(i, geo.Vector{X: float64(i) * 5, Y: 0, Z: 200}, 32)
		visible := make(map[int]*beam.User, numUsers)
		for _, u := range users {
			visible[u.ID] = u
		}
		sat.SetVisibleUsers(visible)
		satellites[i] = sat
	}
	return satellites, users
}

// Invariant 7 — determinism under fixed seed: two runs with identical
// inputs and seed produce identical result sequences.
func TestPipeline_DeterministicUnderFixedSeed(t *testing.T) {
	run := func() []solver.Pair {
		satellites, users := buildScenario(1)
		pool := solver.NewUnassignedPool(users)
		rng := solver.RNGFromSeed(1234)

		require.NoError(t, solver.RandomInit(satellites, pool, rng))
		solver.Run(satellites, pool, rng, solver.DefaultParams())
		return solver.Finalize(satellites, solver.DefaultParams().SatelliteAngleDeg)
	}

	r1 := run()
	r2 := run()
	assert.Equal(t, r1, r2)
}

// Invariants 2–4: after the full pipeline, no two same-satellite
// same-color connections violate the angular threshold, every satellite
// stays within capacity, and every user appears at most once.
func TestPipeline_FinalResultSatisfiesInvariants(t *testing.T) {
	satellites, users := buildScenario(2)
	pool := solver.NewUnassignedPool(users)
	rng := solver.RNGFromSeed(77)

	require.NoError(t, solver.RandomInit(satellites, pool, rng))
	solver.Run(satellites, pool, rng, solver.DefaultParams())
	result := solver.Finalize(satellites, solver.DefaultParams().SatelliteAngleDeg)

	seen := make(map[int]bool)
	for _, pair := range result {
		assert.False(t, seen[pair.UserID], "user %d appears more than once", pair.UserID)
		seen[pair.UserID] = true
	}

	for _, sat := range satellites {
		conns := sat.Connections()
		assert.LessOrEqual(t, len(conns), sat.Capacity())
		for i := 0; i < len(conns); i++ {
			for j := i + 1; j < len(conns); j++ {
				assert.False(t, sat.Conflicts(conns[i], conns[j], 10), "unresolved conflict survived finalize on satellite %d", sat.ID)
			}
		}
	}
}
