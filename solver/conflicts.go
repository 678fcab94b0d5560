package solver

import (
	"math/rand"

	"github.com/katalvlaran/starbeam/beam"
)

// candidateScore pairs a hypothetical connection with its conflict count
// against the satellite's current connections.
type candidateScore struct {
	conn      beam.Connection
	conflicts int
}

// FindRandomConflictedPair uniformly shuffles the satellite's current
// connections and scans pairs (i, j) in that order, returning the first
// pair that conflicts. found is false if no conflicting pair exists.
func FindRandomConflictedPair(sat *beam.Satellite, rng *rand.Rand, thresholdDeg float64) (c1, c2 beam.Connection, found bool) {
	conns := sat.Connections()
	if len(conns) < 2 {
		return beam.Connection{}, beam.Connection{}, false
	}

	order := make([]int, len(conns))
	for i := range order {
		order[i] = i
	}
	shuffleInts(order, rng)

	for _, i := range order {
		for _, j := range order {
			a, b := conns[i], conns[j]
			if sat.Conflicts(a, b, thresholdDeg) {
				return a, b, true
			}
		}
	}
	return beam.Connection{}, beam.Connection{}, false
}

// rescueCandidate builds the candidate set of spec §4.6 step 2 — the
// victim's own user plus every unassigned visible user — and, for each
// candidate user and each of the four colors (including the victim's
// current color: spec §9 quirk 2), scores a hypothetical replacement
// connection by its conflict count against the satellite's current
// connections, the victim itself included: step 2 is explicit that the
// hypothetical is scored "as if it were a foreign probe," excluding
// nothing. Satellite.ProbeConflicts (not Conflicts) is used for this
// count precisely so the victim's still-present connection is not
// skipped merely because the hypothetical reuses its ConnID. It returns
// the minimum-conflict hypothetical, breaking ties uniformly at random
// among all minimizers.
//
// pool must already be locked by the caller (see Repair), so the
// candidate computation and the eventual pick are atomic with respect
// to other satellites' repair steps — spec §5's atomicity requirement.
func rescueCandidate(sat *beam.Satellite, victim beam.Connection, poolUsersLocked []*beam.User, rng *rand.Rand, thresholdDeg float64) beam.Connection {
	current := sat.Connections()
	colors := beam.Colors()

	candidateUsers := make([]*beam.User, 0, len(poolUsersLocked)+1)
	candidateUsers = append(candidateUsers, victim.User)
	seen := map[int]bool{victim.User.ID: true}
	for _, u := range poolUsersLocked {
		if !seen[u.ID] {
			seen[u.ID] = true
			candidateUsers = append(candidateUsers, u)
		}
	}

	var scored []candidateScore
	for _, u := range candidateUsers {
		for _, color := range colors {
			hyp := beam.Connection{SatID: victim.SatID, ConnID: victim.ConnID, User: u, Color: color}
			n := 0
			for _, other := range current {
				if sat.ProbeConflicts(hyp, other, thresholdDeg) {
					n++
				}
			}
			scored = append(scored, candidateScore{conn: hyp, conflicts: n})
		}
	}

	minConflicts := scored[0].conflicts
	for _, s := range scored[1:] {
		if s.conflicts < minConflicts {
			minConflicts = s.conflicts
		}
	}

	best := make([]beam.Connection, 0, len(scored))
	for _, s := range scored {
		if s.conflicts == minConflicts {
			best = append(best, s.conn)
		}
	}

	return best[rng.Intn(len(best))]
}

// Repair performs one min-conflicts repair step on sat: find a random
// conflicted pair, compute the minimum-conflict replacement for its
// first element, and swap it in. It is a no-op if sat currently has no
// conflicting pair. Per spec §4.6 step 4, neither pool nor any user
// back-reference is updated here — the Finalizer reconciles user state.
func Repair(sat *beam.Satellite, pool *UnassignedPool, rng *rand.Rand, thresholdDeg float64) {
	victim, _, found := FindRandomConflictedPair(sat, rng, thresholdDeg)
	if !found {
		return
	}

	var chosen beam.Connection
	pool.WithLock(func(p *UnassignedPool) {
		available := p.intersectVisibleLocked(sat.VisibleUsers())
		chosen = rescueCandidate(sat, victim, available, rng, thresholdDeg)
	})

	sat.SwapConnection(victim.ConnID, chosen)
}

// Run executes the full min-conflicts outer loop of spec §4.6: for
// max_steps iterations, shuffle the satellite list and attempt one
// repair step per satellite in that order.
func Run(satellites []*beam.Satellite, pool *UnassignedPool, rng *rand.Rand, params Params) {
	maxSteps := params.MaxSteps(len(satellites))

	order := make([]int, len(satellites))
	for i := range order {
		order[i] = i
	}

	for step := 0; step < maxSteps; step++ {
		shuffleInts(order, rng)
		for _, idx := range order {
			Repair(satellites[idx], pool, rng, params.SatelliteAngleDeg)
		}
	}
}
