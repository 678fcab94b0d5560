package constellation

import "github.com/katalvlaran/starbeam/beam"

// CoverageUpperBound computes the size of a maximum bipartite matching
// between satellites (capacity BeamsPerSatellite) and their visible
// users (capacity 1), ignoring color and angle constraints entirely
// (spec §4.8). It is the best any assignment — heuristic or optimal —
// could possibly cover, independent of what Run actually achieved.
//
// Computed via augmenting-path search over per-satellite capacity
// counters: a capacitated simplification of Kuhn's algorithm. Unlike
// flow.Dinic's level-graph blocking-flow machinery, no level graph is
// built here — the bipartite instance is small (users x satellites) and
// a single-phase augmenting search per user is sufficient (see
// DESIGN.md for why the full Dinic port was not reused).
func (m *Manager) CoverageUpperBound() int {
	return coverageUpperBound(m.users, m.satellites)
}

func coverageUpperBound(users []*beam.User, satellites []*beam.Satellite) int {
	assigned := make(map[int][]int, len(satellites)) // satID -> assigned user ids
	matched := make(map[int]int, len(users))          // userID -> satID

	capacity := make(map[int]int, len(satellites))
	for _, sat := range satellites {
		capacity[sat.ID] = sat.Capacity()
	}

	visibleSats := make(map[int][]*beam.Satellite, len(users))
	for _, sat := range satellites {
		for uid := range sat.VisibleUsers() {
			visibleSats[uid] = append(visibleSats[uid], sat)
		}
	}

	count := 0
	for _, u := range users {
		visited := make(map[int]bool, len(satellites))
		if augment(u.ID, visibleSats, capacity, assigned, matched, visited) {
			count++
		}
	}
	return count
}

// augment attempts to find an augmenting path that assigns userID to
// some satellite with spare capacity, possibly by displacing an
// already-assigned user onto a different satellite.
func augment(
	userID int,
	visibleSats map[int][]*beam.Satellite,
	capacity map[int]int,
	assigned map[int][]int,
	matched map[int]int,
	visited map[int]bool,
) bool {
	for _, sat := range visibleSats[userID] {
		if visited[sat.ID] {
			continue
		}
		visited[sat.ID] = true

		if len(assigned[sat.ID]) < capacity[sat.ID] {
			assigned[sat.ID] = append(assigned[sat.ID], userID)
			matched[userID] = sat.ID
			return true
		}

		for i, occupant := range assigned[sat.ID] {
			if augment(occupant, visibleSats, capacity, assigned, matched, visited) {
				assigned[sat.ID][i] = userID
				matched[userID] = sat.ID
				return true
			}
		}
	}
	return false
}
