package solver

import (
	"math/rand"

	"github.com/katalvlaran/starbeam/beam"
)

// RandomInit performs the greedy random initialization of spec §4.5:
// satellites are visited in the order given (construction order); each
// satellite is offered up to its capacity of random, still-unassigned
// visible users with a uniformly random color. No guarantee is made
// about conflicts at this stage.
func RandomInit(satellites []*beam.Satellite, pool *UnassignedPool, rng *rand.Rand) error {
	if len(satellites) == 0 {
		return ErrNoSatellites
	}

	colors := beam.Colors()

	for _, sat := range satellites {
		for i := 0; i < sat.Capacity(); i++ {
			available := pool.IntersectVisible(sat.VisibleUsers())
			if len(available) == 0 {
				break
			}

			user := available[rng.Intn(len(available))]
			color := colors[rng.Intn(len(colors))]

			conn := beam.Connection{
				SatID:  sat.ID,
				ConnID: sat.NextConnID(),
				User:   user,
				Color:  color,
			}
			if err := sat.AddConnection(conn); err != nil {
				return err
			}
			pool.Remove(user.ID)
		}
	}

	return nil
}
