// SPDX-License-Identifier: MIT

// Package ndarray - Walker, a bounds-checked cursor over a Buffer.
//
// Purpose:
//   - Track one flat offset into a Buffer and move it by step vectors,
//     adjacent increments or predicate scans without re-deriving coordinates.
//   - Every move exists as a pure query (…Offset / …Target) and a mutating form;
//     the mutating form calls the query and commits only on success.
//
// Behavior highlights:
//   - A failed move leaves the position untouched and does not fire OnMove.
//   - The Walker never mutates the Buffer.
//   - The Buffer must outlive the Walker. If the Buffer is re-initialized to a
//     shorter length, operations on a now-invalid position fail with ErrOutOfRange.
//
// Complexity quicksheet:
//   - Target/Step: O(D); AxisTarget/AxisStep: O(D); Next/Prev: O(1);
//     Seek: O(N) worst case.

package ndarray

import "fmt"

// Walker is a cursor bound to a Buffer. Copy it with Clone; the zero value
// is not usable.
type Walker[T any] struct {
	buf  *Buffer[T]
	pos  int
	opts WalkerOptions
}

// Walker returns a cursor positioned at coord.
//
// Errors:
//   - ErrRankMismatch, ErrOutOfRange (coord outside the extents), ErrOverflow.
func (b *Buffer[T]) Walker(coord []int, opts ...WalkerOption) (*Walker[T], error) {
	off, err := b.validOffset(coord)
	if err != nil {
		return nil, bufferErrorf(ctxWalker, coord, err)
	}

	return &Walker[T]{buf: b, pos: off, opts: gatherWalkerOptions(opts...)}, nil
}

// WalkerAt returns a cursor positioned at a flat offset in [0, Len()).
func (b *Buffer[T]) WalkerAt(offset int, opts ...WalkerOption) (*Walker[T], error) {
	if offset < 0 || offset >= len(b.data) {
		return nil, bufferErrorf(ctxWalkerAt, offset, ErrOutOfRange)
	}

	return &Walker[T]{buf: b, pos: offset, opts: gatherWalkerOptions(opts...)}, nil
}

// NewWalker is the function form of Buffer.Walker; it rejects a nil buffer
// with ErrNilArgument.
func NewWalker[T any](b *Buffer[T], coord []int, opts ...WalkerOption) (*Walker[T], error) {
	if b == nil {
		return nil, fmt.Errorf("NewWalker: %w", ErrNilArgument)
	}

	return b.Walker(coord, opts...)
}

// Offset returns the current flat offset.
func (w *Walker[T]) Offset() int { return w.pos }

// Buffer returns the buffer the walker is bound to.
func (w *Walker[T]) Buffer() *Buffer[T] { return w.buf }

// Coord returns the coordinate vector of the current position, or nil when
// the position is no longer valid for the buffer.
func (w *Walker[T]) Coord() []int {
	c, err := w.buf.Coord(w.pos)
	if err != nil {
		return nil
	}

	return c
}

// Value returns the element under the cursor. The second result is false
// when the position is no longer valid for the buffer.
func (w *Walker[T]) Value() (T, bool) {
	return w.buf.Get(w.pos)
}

// Clone returns an independent walker at the same position with the same hooks.
func (w *Walker[T]) Clone() *Walker[T] {
	c := *w
	return &c
}

// MoveTo jumps to an absolute flat offset in [0, Len()). On error the
// position is unchanged.
func (w *Walker[T]) MoveTo(offset int) error {
	if offset < 0 || offset >= len(w.buf.data) {
		return walkerErrorf(ctxMoveTo, w.pos, fmt.Errorf("target %d: %w", offset, ErrOutOfRange))
	}
	w.commit(offset)

	return nil
}

// current reports ErrOutOfRange when the buffer shrank under the walker.
func (w *Walker[T]) current() error {
	if w.pos >= len(w.buf.data) {
		return fmt.Errorf("stale position: %w", ErrOutOfRange)
	}

	return nil
}

// commit moves to target and fires the hook.
func (w *Walker[T]) commit(target int) {
	from := w.pos
	w.pos = target
	w.opts.OnMove(from, target)
}

// Target computes pos + Σ step[i]*stride[i] without moving.
// MAIN DESCRIPTION:
//   - Relative move in flat offset space; rows are not respected, so a step
//     past the end of one axis lands in the next row (see AxisTarget).
//
// Implementation:
//   - Stage 1: rank check and stale-position check.
//   - Stage 2: checked signed products step[i]*stride[i] and checked sum.
//   - Stage 3: bounds check of the result against [0, Len()).
//
// Errors:
//   - ErrRankMismatch, ErrOverflow (any product or the sum), ErrOutOfRange.
//
// Complexity:
//   - Time O(D), Space O(1).
func (w *Walker[T]) Target(step []int) (int, error) {
	if err := w.buf.checkRank(len(step)); err != nil {
		return 0, walkerErrorf(ctxTarget, w.pos, err)
	}
	if err := w.current(); err != nil {
		return 0, walkerErrorf(ctxTarget, w.pos, err)
	}

	target := w.pos
	for i, s := range step {
		d, ok := mulInt(s, w.buf.stride[i])
		if !ok {
			return 0, walkerErrorf(ctxTarget, w.pos, fmt.Errorf("axis %d: %w", i, ErrOverflow))
		}
		if target, ok = addInt(target, d); !ok {
			return 0, walkerErrorf(ctxTarget, w.pos, fmt.Errorf("axis %d: %w", i, ErrOverflow))
		}
	}
	if target < 0 || target >= len(w.buf.data) {
		return 0, walkerErrorf(ctxTarget, w.pos, fmt.Errorf("target %d: %w", target, ErrOutOfRange))
	}

	return target, nil
}

// Step moves to Target(step). On error the position is unchanged.
func (w *Walker[T]) Step(step []int) error {
	target, err := w.Target(step)
	if err != nil {
		return err
	}
	w.commit(target)

	return nil
}

// AxisTarget computes the offset reached by adding step to the current
// coordinate axis by axis. Unlike Target, every axis must stay inside
// [0, size[i]), so moving right off the last column fails instead of
// wrapping into the next row.
//
// Errors:
//   - ErrRankMismatch, ErrOverflow, ErrOutOfRange.
//
// Complexity:
//   - Time O(D), Space O(1).
func (w *Walker[T]) AxisTarget(step []int) (int, error) {
	if err := w.buf.checkRank(len(step)); err != nil {
		return 0, walkerErrorf(ctxAxisTarget, w.pos, err)
	}
	if err := w.current(); err != nil {
		return 0, walkerErrorf(ctxAxisTarget, w.pos, err)
	}

	// Walk the axes from the highest stride down, peeling the coordinate off
	// the offset as in decompose, so no coordinate slice is allocated.
	rem, target := w.pos, 0
	for i := len(step) - 1; i >= 0; i-- {
		stride := w.buf.stride[i]
		c := rem / stride
		rem %= stride

		moved, ok := addInt(c, step[i])
		if !ok {
			return 0, walkerErrorf(ctxAxisTarget, w.pos, fmt.Errorf("axis %d: %w", i, ErrOverflow))
		}
		if moved < 0 || moved >= w.buf.size[i] {
			return 0, walkerErrorf(ctxAxisTarget, w.pos,
				fmt.Errorf("axis %d: %d not in [0,%d): %w", i, moved, w.buf.size[i], ErrOutOfRange))
		}
		// moved < size[i] keeps the sum below Len(), so no further checks are needed.
		target += moved * stride
	}

	return target, nil
}

// AxisStep moves to AxisTarget(step). On error the position is unchanged.
func (w *Walker[T]) AxisStep(step []int) error {
	target, err := w.AxisTarget(step)
	if err != nil {
		return err
	}
	w.commit(target)

	return nil
}

// NextOffset returns pos+1, or ErrOutOfRange at the last offset.
func (w *Walker[T]) NextOffset() (int, error) {
	if err := w.current(); err != nil {
		return 0, walkerErrorf(ctxNext, w.pos, err)
	}
	if w.pos+1 >= len(w.buf.data) {
		return 0, walkerErrorf(ctxNext, w.pos, ErrOutOfRange)
	}

	return w.pos + 1, nil
}

// Next moves one offset forward.
func (w *Walker[T]) Next() error {
	target, err := w.NextOffset()
	if err != nil {
		return err
	}
	w.commit(target)

	return nil
}

// PrevOffset returns pos-1, or ErrOutOfRange at offset 0.
func (w *Walker[T]) PrevOffset() (int, error) {
	if err := w.current(); err != nil {
		return 0, walkerErrorf(ctxPrev, w.pos, err)
	}
	if w.pos == 0 {
		return 0, walkerErrorf(ctxPrev, w.pos, ErrOutOfRange)
	}

	return w.pos - 1, nil
}

// Prev moves one offset backward.
func (w *Walker[T]) Prev() error {
	target, err := w.PrevOffset()
	if err != nil {
		return err
	}
	w.commit(target)

	return nil
}

// SeekOffset scans forward from the current offset (inclusive) and returns the
// first offset whose element satisfies pred. pred only ever sees valid offsets.
//
// Errors:
//   - ErrNilArgument for a nil pred.
//   - ErrNotFound (also matches ErrOutOfRange) when the end is reached.
//
// Complexity:
//   - Time O(N) worst case, Space O(1).
func (w *Walker[T]) SeekOffset(pred func(v T, offset int) bool) (int, error) {
	if pred == nil {
		return 0, walkerErrorf(ctxSeek, w.pos, ErrNilArgument)
	}
	if err := w.current(); err != nil {
		return 0, walkerErrorf(ctxSeek, w.pos, err)
	}

	data := w.buf.data
	for i := w.pos; i < len(data); i++ {
		if pred(data[i], i) {
			return i, nil
		}
	}

	return 0, walkerErrorf(ctxSeek, w.pos, rangeError(ErrNotFound))
}

// Seek moves to SeekOffset(pred). On error the position is unchanged.
func (w *Walker[T]) Seek(pred func(v T, offset int) bool) error {
	target, err := w.SeekOffset(pred)
	if err != nil {
		return err
	}
	w.commit(target)

	return nil
}
