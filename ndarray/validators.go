// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//  - Single source of truth for per-axis coordinate checks.
//  - Return plain sentinel errors (no method context) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - Pure, O(D), no allocations on the success path.

package ndarray

import "fmt"

// validate checks rank and 0 <= coord[i] < size[i] for every axis.
func (b *Buffer[T]) validate(coord []int) error {
	if err := b.checkRank(len(coord)); err != nil {
		return err
	}
	for i, c := range coord {
		if c < 0 || c >= b.size[i] {
			return fmt.Errorf("axis %d: %d not in [0,%d): %w", i, c, b.size[i], ErrOutOfRange)
		}
	}

	return nil
}

// Validate reports whether coord addresses an element of the buffer.
//
// Errors:
//   - ErrRankMismatch when len(coord) != Rank().
//   - ErrOutOfRange when any coord[i] is outside [0, size[i]).
//   - ErrBadShape (also matches ErrOutOfRange) on a zero Buffer.
//
// Complexity: O(D).
func (b *Buffer[T]) Validate(coord []int) error {
	return b.validate(coord)
}

// InBounds is the boolean form of Validate. It never allocates.
// Complexity: O(D).
func (b *Buffer[T]) InBounds(coord []int) bool {
	if len(b.size) == 0 || len(coord) != len(b.size) {
		return false
	}
	for i, c := range coord {
		if c < 0 || c >= b.size[i] {
			return false
		}
	}

	return true
}
