package visibility

import (
	"math"

	"github.com/katalvlaran/starbeam/beam"
	"github.com/katalvlaran/starbeam/geo"
	"github.com/katalvlaran/starbeam/spatial"
)

// Options configures visibility resolution.
type Options struct {
	// UserHalfAngleDeg is the maximum off-normal angle at the user
	// (USER_ANGLE_DEGREES, default 45).
	UserHalfAngleDeg float64

	// Strict, if true, re-checks the user half-angle per returned point
	// instead of trusting the k-d tree reduction alone (spec §4.2).
	Strict bool
}

// DefaultOptions returns the spec's default visibility configuration.
func DefaultOptions() Options {
	return Options{UserHalfAngleDeg: 45}
}

// Resolve computes, for every satellite, the set of users visible to it
// and installs it via Satellite.SetVisibleUsers. tree must be built over
// points keyed by the same ids as users. r (the shared user sphere
// radius) is ‖users[0].Position‖ by convention (spec §6); callers compute
// it once and pass it in to avoid recomputation per satellite.
func Resolve(users []*beam.User, satellites []*beam.Satellite, tree *spatial.Tree, r float64, opts Options) error {
	usersByID := make(map[int]*beam.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	halfAngleRad := opts.UserHalfAngleDeg * math.Pi / 180

	for _, sat := range satellites {
		d := sat.Position.Norm()
		critRadius, err := geo.VisibilityRadius(d, r, halfAngleRad)
		if err != nil {
			return err
		}

		center := spatial.Point{X: sat.Position.X, Y: sat.Position.Y, Z: sat.Position.Z}
		hits := tree.BallQuery(center, critRadius)

		visible := make(map[int]*beam.User, len(hits))
		for _, p := range hits {
			u, ok := usersByID[p.ID]
			if !ok {
				continue
			}
			if opts.Strict && !withinHalfAngle(u, sat, halfAngleRad) {
				continue
			}
			visible[u.ID] = u
		}
		sat.SetVisibleUsers(visible)
	}

	return nil
}

// withinHalfAngle reports whether the angle at u between its own outward
// normal (u.Position, apex at the sphere's center) and the vector to sat
// does not exceed halfAngleRad.
func withinHalfAngle(u *beam.User, sat *beam.Satellite, halfAngleRad float64) bool {
	toSat := sat.Position.Sub(u.Position)
	deg, ok := geo.AngleBetween(u.Position, toSat)
	if !ok {
		return false
	}
	return deg <= halfAngleRad*180/math.Pi
}
