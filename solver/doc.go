// Package solver implements the random initializer, min-conflicts local
// search, and finalizer of the beam-assignment pipeline (spec §4.5–4.7).
//
// All randomness funnels through a single injectable, seedable source
// (rng.go, adapted from the teacher's tsp/rng.go) so a fixed seed yields
// identical results across runs (spec §5, invariant 7).
//
// The solver's three quirks are preserved verbatim per spec §9:
//
//  1. A rescue move that picks a different (previously unassigned) user
//     does not remove that user from the shared unassigned pool.
//  2. The rescue candidate loop probes all four colors, including the
//     victim's current color, which can yield a no-op candidate.
//  3. Two connections at the same (SatID, ConnID) slot never conflict
//     with each other, even if the slice momentarily holds a duplicate.
package solver
