// Package spatial implements a 3D k-d tree over a fixed set of points,
// supporting ball (radius) queries.
//
// What:
//
//   - Build indexes a slice of Points, splitting on axis (depth mod 3)
//     at each level, using the median of the current slice on that axis.
//   - Tree.BallQuery returns every indexed point within a closed Euclidean
//     ball, pruning subtrees that cannot intersect it.
//
// Why:
//
//   - The visibility resolver needs "every user within r_crit of this
//     satellite" for each of potentially thousands of satellites; a linear
//     scan per satellite is the straightforward alternative, the k-d tree
//     trades a one-time O(n log² n) build for expected O(n^(2/3) + k) per
//     query.
//
// Complexity:
//
//   - Build: O(n log² n) (sort-based median at each level).
//   - BallQuery: expected O(n^(2/3) + k) on reasonably distributed data,
//     worst case O(n).
//
// Determinism:
//
//   - Ties on the splitting axis are broken by a stable sort, so the tree
//     shape (and therefore query results) is deterministic for a fixed
//     input order.
package spatial
