package constellation

import "errors"

// Sentinel errors for constellation-level validation (spec §7,
// InvalidInput). Each is reported once, before any work begins.
var (
	// ErrNoUsers indicates an empty user coordinate set was supplied.
	ErrNoUsers = errors.New("constellation: no users supplied")

	// ErrNoSatellites indicates an empty satellite coordinate set was supplied.
	ErrNoSatellites = errors.New("constellation: no satellites supplied")

	// ErrSatelliteTooClose indicates a satellite at distance <= R, the
	// shared user-sphere radius, violating spec §6's input contract.
	ErrSatelliteTooClose = errors.New("constellation: satellite distance does not exceed user radius")

	// ErrInvalidConfig indicates a Config field outside its valid domain.
	ErrInvalidConfig = errors.New("constellation: invalid configuration")
)
