package geo

import "errors"

// Sentinel errors for geo operations.
var (
	// ErrNonPositiveRadius indicates a zero or negative sphere radius was supplied.
	ErrNonPositiveRadius = errors.New("geo: radius must be positive")

	// ErrSatelliteTooLow indicates a satellite distance that does not exceed
	// the shared user radius, violating the "D > R" precondition.
	ErrSatelliteTooLow = errors.New("geo: satellite distance must exceed user radius")

	// ErrBadHalfAngle indicates a user half-angle outside (0, π/2).
	ErrBadHalfAngle = errors.New("geo: user half-angle must be in (0, π/2)")
)

// Vector is a point or displacement in ℝ³.
type Vector struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Dot returns the Euclidean dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	return sqrt(v.Dot(v))
}
