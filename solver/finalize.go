package solver

import "github.com/katalvlaran/starbeam/beam"

// Pair is a finalized (satellite, user) assignment.
type Pair struct {
	SatID  int
	UserID int
}

// Finalize performs the conflict sweep and result assembly of spec §4.7.
// For each satellite, every connection participating in at least one
// conflicting pair is dropped (via Satellite.RemoveConnection, which
// clears that connection's own user back-reference). The remaining
// per-satellite connections are then assembled into the ordered result,
// iterating satellites in the order given (assumed to be id order) and,
// because the min-conflicts rescue quirk can leave the same user
// assigned on more than one satellite, de-duplicated globally by
// keeping only the first satellite (in iteration order) that claims any
// given user.
func Finalize(satellites []*beam.Satellite, thresholdDeg float64) []Pair {
	for _, sat := range satellites {
		sweep(sat, thresholdDeg)
	}

	seenUsers := make(map[int]bool)
	result := make([]Pair, 0)
	for _, sat := range satellites {
		for _, conn := range sat.Connections() {
			if conn.User == nil || seenUsers[conn.User.ID] {
				continue
			}
			seenUsers[conn.User.ID] = true
			result = append(result, Pair{SatID: sat.ID, UserID: conn.User.ID})
		}
	}
	return result
}

// sweep drops every connection on sat that participates in at least one
// conflicting pair, leaving only pairwise non-conflicting connections.
func sweep(sat *beam.Satellite, thresholdDeg float64) {
	conns := sat.Connections()

	toDrop := make(map[int]bool)
	for i := 0; i < len(conns); i++ {
		for j := 0; j < len(conns); j++ {
			if sat.Conflicts(conns[i], conns[j], thresholdDeg) {
				toDrop[conns[i].ConnID] = true
				toDrop[conns[j].ConnID] = true
			}
		}
	}

	for connID := range toDrop {
		sat.RemoveConnection(connID)
	}
}
