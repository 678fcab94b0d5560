package beam

import "errors"

// Sentinel errors for beam entity operations.
var (
	// ErrUserNotVisible indicates a satellite was asked to connect a user
	// outside its visible set. Satellite.AddConnection does not check
	// visibility and never returns it.
	ErrUserNotVisible = errors.New("beam: user is not visible to this satellite")

	// ErrAtCapacity indicates a satellite already hosts BeamsPerSatellite connections.
	ErrAtCapacity = errors.New("beam: satellite is at connection capacity")

	// ErrConnNotFound indicates a requested connection id does not exist on the satellite.
	ErrConnNotFound = errors.New("beam: connection not found")

	// ErrUnknownColor indicates a Color value outside the closed four-color alphabet.
	ErrUnknownColor = errors.New("beam: unknown color")
)
