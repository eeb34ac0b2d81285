// SPDX-License-Identifier: MIT

// Package ndarray - Buffer storage (column-major, fixed rank) & safe accessors.
//
// Purpose:
//   - Own a flat []T of length Π size[i] together with extents and derived strides.
//   - Convert between coordinate vectors and flat offsets with overflow checking.
//   - Allow in-place re-initialization that keeps (never shrinks) backing capacity.
//
// AI-Hints:
//   - Reuse one Buffer with Init/InitFromSlice to avoid re-allocating per frame.
//   - Gate Offset with InBounds/Validate when per-axis bounds matter; Offset alone
//     only guards against overflow and negative coordinates.
//   - Get/Ptr probe without errors; Set/SetAt fail hard on bad input.
//
// Complexity quicksheet:
//   - New/Init: O(N) fill; Offset/Coord/Validate: O(D); Get/Set/Ptr: O(1);
//     ShrinkToFit/Clone: O(N).

package ndarray

import (
	"fmt"
	"slices"
)

// Buffer is an N-dimensional dense array with fixed rank.
//   - data is the flat storage, len(data) == Π size[i].
//   - size holds the extent of each axis (all > 0).
//   - stride is column-major: stride[0] = 1, stride[i] = stride[i-1]*size[i-1].
//
// Buffer is not safe for concurrent mutation; concurrent reads are fine while
// no Set/Init/InitFromSlice/ShrinkToFit is running.
type Buffer[T any] struct {
	data   []T
	size   []int
	stride []int
}

var _ fmt.Stringer = (*Buffer[int])(nil)

// New allocates a buffer of the given extents with every element set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation and optional capacity reservation.
//
// Implementation:
//   - Stage 1: resolve options (ErrOptionViolation on invalid values).
//   - Stage 2: derive total size and strides (ErrBadShape / ErrOverflow).
//   - Stage 3: allocate max(total, capacity) and fill.
//
// Complexity:
//   - Time O(N), Space O(max(N, capacity)).
func New[T any](size []int, fill T, opts ...Option) (*Buffer[T], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, bufferErrorf(ctxNew, size, err)
	}
	total, stride, err := layout(size)
	if err != nil {
		return nil, bufferErrorf(ctxNew, size, err)
	}

	data := make([]T, total, max(total, o.capacity))
	for i := range data {
		data[i] = fill
	}

	return &Buffer[T]{
		data:   data,
		size:   slices.Clone(size),
		stride: stride,
	}, nil
}

// NewFromSlice builds a buffer over a pre-flattened, column-major sequence.
// The buffer takes ownership of elems; callers must not keep using the slice.
//
// Errors:
//   - ErrBadShape / ErrOverflow from the extents.
//   - ErrShapeMismatch when len(elems) != TotalSize(size).
//   - ErrOptionViolation for invalid options.
//
// Complexity:
//   - Time O(D) (O(N) only when WithCapacity forces a grow), Space O(D).
func NewFromSlice[T any](size []int, elems []T, opts ...Option) (*Buffer[T], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, bufferErrorf(ctxNewFromSlice, size, err)
	}
	total, stride, err := layout(size)
	if err != nil {
		return nil, bufferErrorf(ctxNewFromSlice, size, err)
	}
	if len(elems) != total {
		return nil, bufferErrorf(ctxNewFromSlice, size,
			fmt.Errorf("len %d, want %d: %w", len(elems), total, ErrShapeMismatch))
	}
	if o.capacity > cap(elems) {
		elems = slices.Grow(elems, o.capacity-len(elems))
	}

	return &Buffer[T]{
		data:   elems,
		size:   slices.Clone(size),
		stride: stride,
	}, nil
}

// checkRank reports ErrRankMismatch when n differs from the buffer rank.
// A zero Buffer has no elements to address and fails with ErrBadShape.
func (b *Buffer[T]) checkRank(n int) error {
	if len(b.size) == 0 {
		return fmt.Errorf("uninitialized buffer: %w", rangeError(ErrBadShape))
	}
	if n != len(b.size) {
		return fmt.Errorf("got %d axes, want %d: %w", n, len(b.size), ErrRankMismatch)
	}

	return nil
}

// checkInitRank is checkRank for Init: a zero Buffer adopts the first rank it sees.
func (b *Buffer[T]) checkInitRank(n int) error {
	if len(b.size) == 0 {
		return nil
	}

	return b.checkRank(n)
}

// Init re-initializes the buffer in place with new extents and fill value.
// The rank must match; backing capacity is reused and never reduced.
// On error the buffer is left unchanged.
//
// Complexity:
//   - Time O(N), Space O(N) only when the new size exceeds Cap().
func (b *Buffer[T]) Init(size []int, fill T) error {
	if err := b.checkInitRank(len(size)); err != nil {
		return bufferErrorf(ctxInit, size, err)
	}
	total, stride, err := layout(size)
	if err != nil {
		return bufferErrorf(ctxInit, size, err)
	}

	b.data = slices.Grow(b.data[:0], total)[:total]
	for i := range b.data {
		b.data[i] = fill
	}
	b.setLayout(size, stride)

	return nil
}

// InitFromSlice re-initializes the buffer in place from a flat sequence.
// elems is copied into the existing storage, so capacity is never reduced and
// the caller keeps ownership of elems.
//
// Errors:
//   - ErrRankMismatch, ErrBadShape, ErrOverflow, ErrShapeMismatch.
func (b *Buffer[T]) InitFromSlice(size []int, elems []T) error {
	if err := b.checkInitRank(len(size)); err != nil {
		return bufferErrorf(ctxInitSlice, size, err)
	}
	total, stride, err := layout(size)
	if err != nil {
		return bufferErrorf(ctxInitSlice, size, err)
	}
	if len(elems) != total {
		return bufferErrorf(ctxInitSlice, size,
			fmt.Errorf("len %d, want %d: %w", len(elems), total, ErrShapeMismatch))
	}

	b.data = append(b.data[:0], elems...)
	b.setLayout(size, stride)

	return nil
}

func (b *Buffer[T]) setLayout(size, stride []int) {
	if len(b.size) != len(size) {
		b.size = make([]int, len(size))
	}
	copy(b.size, size)
	b.stride = stride
}

// ShrinkToFit trims backing capacity down to Len().
func (b *Buffer[T]) ShrinkToFit() {
	if cap(b.data) > len(b.data) {
		b.data = exactCopy(b.data)
	}
}

// Clone returns a deep copy. Capacity of the copy equals Len().
func (b *Buffer[T]) Clone() *Buffer[T] {
	return &Buffer[T]{
		data:   exactCopy(b.data),
		size:   slices.Clone(b.size),
		stride: slices.Clone(b.stride),
	}
}

// exactCopy copies src into a fresh slice with cap == len.
func exactCopy[T any](src []T) []T {
	dst := make([]T, len(src))
	copy(dst, src)

	return dst
}

// Rank returns the number of axes. Complexity: O(1).
func (b *Buffer[T]) Rank() int { return len(b.size) }

// Len returns the number of elements. Complexity: O(1).
func (b *Buffer[T]) Len() int { return len(b.data) }

// Cap returns the reserved element capacity. Complexity: O(1).
func (b *Buffer[T]) Cap() int { return cap(b.data) }

// Range returns the half-open range of valid offsets, [0, Len()).
func (b *Buffer[T]) Range() (lo, hi int) { return 0, len(b.data) }

// Size returns a copy of the per-axis extents.
func (b *Buffer[T]) Size() []int { return slices.Clone(b.size) }

// Stride returns a copy of the per-axis strides.
func (b *Buffer[T]) Stride() []int { return slices.Clone(b.stride) }

// Data returns the flat storage in column-major order. The slice aliases the
// buffer; it is invalidated by Init, InitFromSlice and ShrinkToFit.
func (b *Buffer[T]) Data() []T { return b.data[:len(b.data):len(b.data)] }

// Offset converts a coordinate vector to a flat offset: Σ coord[i]*stride[i].
// MAIN DESCRIPTION:
//   - Checked dot product of coord and stride.
//
// Behavior highlights:
//   - Does NOT check coord[i] < size[i]; gate with InBounds/Validate when
//     per-axis bounds matter. Negative coordinates are always rejected.
//
// Errors:
//   - ErrRankMismatch for a wrong-length coord.
//   - ErrOutOfRange for a negative coordinate.
//   - ErrBadShape (also matches ErrOutOfRange) on a zero Buffer.
//   - ErrOverflow when a product or the running sum exceeds the int range.
//
// Complexity:
//   - Time O(D), Space O(1).
func (b *Buffer[T]) Offset(coord []int) (int, error) {
	off, err := b.offset(coord)
	if err != nil {
		return 0, bufferErrorf(ctxOffset, coord, err)
	}

	return off, nil
}

func (b *Buffer[T]) offset(coord []int) (int, error) {
	if err := b.checkRank(len(coord)); err != nil {
		return 0, err
	}

	off := 0
	for i, c := range coord {
		if c < 0 {
			return 0, fmt.Errorf("axis %d: %w", i, ErrOutOfRange)
		}
		p, ok := mulInt(c, b.stride[i])
		if !ok {
			return 0, fmt.Errorf("axis %d: %w", i, ErrOverflow)
		}
		if off, ok = addInt(off, p); !ok {
			return 0, fmt.Errorf("axis %d: %w", i, ErrOverflow)
		}
	}

	return off, nil
}

// Coord decomposes a valid flat offset into a freshly allocated coordinate vector.
// Returns ErrOutOfRange when offset is outside [0, Len()).
func (b *Buffer[T]) Coord(offset int) ([]int, error) {
	coord := make([]int, len(b.size))
	if err := b.CoordInto(offset, coord); err != nil {
		return nil, err
	}

	return coord, nil
}

// CoordInto is Coord without allocation: the result is written into dst,
// which must have length Rank().
//
// Implementation:
//   - iterate axes from the highest stride to the lowest:
//     dst[i] = rem / stride[i]; rem %= stride[i].
func (b *Buffer[T]) CoordInto(offset int, dst []int) error {
	if err := b.checkRank(len(dst)); err != nil {
		return bufferErrorf(ctxCoord, offset, err)
	}
	if offset < 0 || offset >= len(b.data) {
		return bufferErrorf(ctxCoord, offset, ErrOutOfRange)
	}
	b.decompose(offset, dst)

	return nil
}

// decompose assumes offset is valid and len(dst) == Rank().
func (b *Buffer[T]) decompose(offset int, dst []int) {
	for i := len(b.stride) - 1; i >= 0; i-- {
		dst[i] = offset / b.stride[i]
		offset %= b.stride[i]
	}
}

// Get returns the element at offset, or the zero value and false when the
// offset is out of range.
func (b *Buffer[T]) Get(offset int) (T, bool) {
	if offset < 0 || offset >= len(b.data) {
		var zero T
		return zero, false
	}

	return b.data[offset], true
}

// Ptr returns a pointer to the element at offset, or nil when out of range.
// The pointer is invalidated by Init, InitFromSlice and ShrinkToFit.
func (b *Buffer[T]) Ptr(offset int) *T {
	if offset < 0 || offset >= len(b.data) {
		return nil
	}

	return &b.data[offset]
}

// Set stores v at offset or returns ErrOutOfRange.
func (b *Buffer[T]) Set(offset int, v T) error {
	if offset < 0 || offset >= len(b.data) {
		return bufferErrorf(ctxSet, offset, ErrOutOfRange)
	}
	b.data[offset] = v

	return nil
}

// At returns the element at coord after full per-axis validation.
func (b *Buffer[T]) At(coord []int) (T, error) {
	off, err := b.validOffset(coord)
	if err != nil {
		var zero T
		return zero, bufferErrorf(ctxAt, coord, err)
	}

	return b.data[off], nil
}

// SetAt stores v at coord after full per-axis validation.
func (b *Buffer[T]) SetAt(coord []int, v T) error {
	off, err := b.validOffset(coord)
	if err != nil {
		return bufferErrorf(ctxSetAt, coord, err)
	}
	b.data[off] = v

	return nil
}

// validOffset is Validate followed by offset; the result indexes data safely.
func (b *Buffer[T]) validOffset(coord []int) (int, error) {
	if err := b.validate(coord); err != nil {
		return 0, err
	}

	return b.offset(coord)
}

// String implements fmt.Stringer, e.g. "Buffer[size=[3 3]][1 2 3 4 5 6 7 8 9]".
func (b *Buffer[T]) String() string {
	return fmt.Sprintf("Buffer[size=%v]%v", b.size, b.data)
}
