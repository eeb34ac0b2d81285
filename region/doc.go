// Package region finds and edits connected regions of cells in an
// ndarray.Buffer of any rank.
//
// What:
//
//   - Components labels contiguous regions of cells accepted by a predicate.
//   - Fill flood-fills the region around a seed cell.
//   - Bridge computes the cheapest chain of non-member cells joining two regions (0-1 BFS).
//   - Neighbours enumerates face or full neighbour step vectors for rank D.
//
// All traversal goes through ndarray.Walker.AxisTarget, so regions stop at
// the edge of each axis instead of wrapping into the next row.
//
// Complexity:
//
//   - Components, Fill, Bridge: O(N·k) time, O(N) memory
//     (N = cells, k = 2·D for Faces, 3^D-1 for Full).
//
// Errors:
//
//   - ErrNilBuffer, ErrNilMember: nil arguments.
//   - ErrSeedNotMember: Fill seed fails the predicate.
//   - ErrComponentIndex: Bridge component index out of range.
//   - ErrNoPath: no path joins the two components.
//   - ErrRankTooHigh: Full connectivity above MaxFullRank.
package region
