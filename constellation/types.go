package constellation

import (
	"fmt"

	"github.com/katalvlaran/starbeam/solver"
	"github.com/katalvlaran/starbeam/visibility"
)

// Config realizes spec §6's recognized-options table.
type Config struct {
	// UserAngleDeg is the maximum user-side off-normal angle for
	// visibility (USER_ANGLE_DEGREES, default 45).
	UserAngleDeg float64

	// SatelliteAngleDeg is the minimum same-color angular separation at
	// a satellite (SATELLITE_ANGLE_DEGREES, default 10).
	SatelliteAngleDeg float64

	// BeamsPerSatellite is the per-satellite connection capacity
	// (BEAMS_PER_SATELLITE, default 32).
	BeamsPerSatellite int

	// MaxStepsMultiplier scales the outer min-conflicts iteration count
	// (MAX_STEPS_MULTIPLIER, default 2).
	MaxStepsMultiplier int

	// Seed seeds the PRNG. Zero is a valid seed; Run is always
	// deterministic for a given Seed and input (invariant 7).
	Seed int64

	// Strict, if true, re-checks the user half-angle per candidate
	// rather than trusting the k-d tree ball-query reduction alone
	// (spec §4.2, invariant 1's "strict mode" clause).
	Strict bool

	// Parallel, if true, runs the min-conflicts repair step with one
	// goroutine per satellite per outer iteration (spec §5), instead of
	// the serial reference path.
	Parallel bool
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		UserAngleDeg:       45,
		SatelliteAngleDeg:  10,
		BeamsPerSatellite:  32,
		MaxStepsMultiplier: 2,
		Seed:               0,
		Strict:             false,
		Parallel:           false,
	}
}

// Validate rejects nonsensical tunables before any work begins,
// following the teacher's Options.Validate convention (dtw.Options).
func (c Config) Validate() error {
	if c.UserAngleDeg <= 0 || c.UserAngleDeg >= 90 {
		return fmt.Errorf("%w: UserAngleDeg must be in (0, 90), got %g", ErrInvalidConfig, c.UserAngleDeg)
	}
	if c.SatelliteAngleDeg <= 0 || c.SatelliteAngleDeg >= 180 {
		return fmt.Errorf("%w: SatelliteAngleDeg must be in (0, 180), got %g", ErrInvalidConfig, c.SatelliteAngleDeg)
	}
	if c.BeamsPerSatellite <= 0 {
		return fmt.Errorf("%w: BeamsPerSatellite must be positive, got %d", ErrInvalidConfig, c.BeamsPerSatellite)
	}
	if c.MaxStepsMultiplier <= 0 {
		return fmt.Errorf("%w: MaxStepsMultiplier must be positive, got %d", ErrInvalidConfig, c.MaxStepsMultiplier)
	}
	return nil
}

// visibilityOptions projects the user-facing Config onto the
// visibility package's narrower Options type.
func (c Config) visibilityOptions() visibility.Options {
	return visibility.Options{UserHalfAngleDeg: c.UserAngleDeg, Strict: c.Strict}
}

// solverParams projects the user-facing Config onto the solver
// package's narrower Params type.
func (c Config) solverParams() solver.Params {
	return solver.Params{
		SatelliteAngleDeg:  c.SatelliteAngleDeg,
		BeamsPerSatellite:  c.BeamsPerSatellite,
		MaxStepsMultiplier: c.MaxStepsMultiplier,
	}
}

// RunResult is the outcome of one Manager.Run call.
type RunResult struct {
	// Assignments is the finalized (satellite_id, user_id) pair sequence
	// (spec §6 Output). No ordering guarantee beyond stability under a
	// fixed seed and input.
	Assignments []solver.Pair

	// CoverageUpperBound is the size of the best possible capacitated
	// bipartite matching between satellites and their visible users,
	// ignoring color/angle constraints (§4.8). A ceiling, not a target.
	CoverageUpperBound int

	// RunID identifies this run in log output (§4.9, §6). It has no
	// bearing on determinism.
	RunID string
}
