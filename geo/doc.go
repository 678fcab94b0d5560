// Package geo provides the vector math used by the beam-assignment
// pipeline: the angle subtended at a common apex by two rays, and the
// derivation of the critical ball-query radius used by the visibility
// resolver.
//
// What:
//
//   - Vector is a plain 3D point/vector (x, y, z).
//   - Angle computes the angle at an apex between two rays in degrees.
//   - VisibilityRadius derives the Euclidean ball radius, centered on a
//     satellite, that is guaranteed to contain every user within its
//     configured visibility half-angle.
//
// Why:
//
//   - The solver only ever reasons about angles at a satellite (conflict
//     detection) and at a user (visibility), never about raw coordinates;
//     isolating that math keeps both the spatial index and the solver
//     free of trigonometry.
//
// Numerical policy:
//
//   - The normalized dot product is rounded to 3 decimal places before
//     acos, matching the conflict-boundary convention the solver was
//     derived from; this keeps acos's input safely inside [-1, 1] after
//     floating-point error and stabilizes the < 10° conflict boundary.
//   - A zero-length ray (a user coincident with its satellite, i.e. a
//     point identical to the apex) is a geometric degeneracy: Angle reports ok=false
//     and callers must treat the pair as never conflicting.
package geo
