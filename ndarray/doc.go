// Package ndarray provides a fixed-rank, N-dimensional dense buffer with
// explicit stride addressing and a bounds-checked cursor over it.
//
// What:
//
//   - Buffer[T] owns a flat []T of length Π size[i] in column-major order
//     (axis 0 fastest): stride[0] = 1, stride[i] = stride[i-1]*size[i-1].
//   - Offset/Coord convert between coordinate vectors and flat offsets with
//     overflow checking; Validate/InBounds gate coordinates per axis.
//   - Init/InitFromSlice re-shape the buffer in place without giving back
//     capacity; ShrinkToFit trims it explicitly.
//   - Walker[T] tracks one flat offset and moves it by step vectors (Step,
//     AxisStep), by one (Next, Prev) or to the next match of a predicate (Seek).
//
// Rank:
//
//   - Rank is the length of the size vector given to New/NewFromSlice and never
//     changes. Coordinates and steps of any other length fail with ErrRankMismatch.
//
// Errors:
//
//   - ErrOutOfRange: coordinate, offset or move target outside bounds.
//   - ErrBadShape: empty size vector or a non-positive extent (also ErrOutOfRange).
//   - ErrOverflow: an index product or sum does not fit an int.
//   - ErrShapeMismatch: flat sequence length differs from the total size.
//   - ErrRankMismatch: vector length differs from the rank.
//   - ErrNotFound: Seek reached the end (also ErrOutOfRange).
//
// Read accessors (Get, Ptr) report absence with a bool or nil; Set, SetAt and
// every Walker move return errors.
//
// Concurrency:
//
//   - None. Callers serialize mutation of a Buffer against any other access.
//
// Complexity:
//
//   - New/Init: O(N). Offset, Coord, Validate, Step, AxisStep: O(D).
//     Get/Set/Next/Prev: O(1). Seek: O(N).
//
// See step2d and step3d for named direction vectors.
package ndarray
