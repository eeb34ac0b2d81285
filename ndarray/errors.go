// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public method
// returns one of these (possibly wrapped with method context) and tests MUST
// match them via errors.Is. Nothing panics on user-triggered conditions.

package ndarray

import (
	"errors"
	"fmt"
)

// NOTE ON CATEGORIES
// ------------------
// Three categories are reported to callers:
//   - range:    ErrOutOfRange (ErrBadShape and ErrNotFound also match it),
//   - overflow: ErrOverflow (per-axis products and final sums alike),
//   - shape:    ErrShapeMismatch / ErrRankMismatch.

var (
	// ErrOutOfRange indicates a coordinate, offset or computed target outside
	// valid bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrBadShape is returned for an empty size vector or a non-positive extent.
	// It is reported together with ErrOutOfRange.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOverflow indicates that an intermediate or final index computation
	// would exceed the int range.
	ErrOverflow = errors.New("ndarray: arithmetic overflow")

	// ErrShapeMismatch indicates that a flat sequence length disagrees with the
	// total size of the requested extents.
	ErrShapeMismatch = errors.New("ndarray: sequence length does not match shape")

	// ErrRankMismatch indicates a coordinate, step or size vector whose length
	// differs from the buffer rank.
	ErrRankMismatch = errors.New("ndarray: rank mismatch")

	// ErrNotFound is returned by Seek when the end of the buffer is reached
	// with no element satisfying the predicate. It also matches ErrOutOfRange.
	ErrNotFound = errors.New("ndarray: no element satisfies predicate")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ndarray: invalid option supplied")

	// ErrNilArgument indicates a nil buffer or nil predicate argument.
	ErrNilArgument = errors.New("ndarray: nil argument")
)

// ---------- error context tags ----------

const (
	ctxNew          = "New"
	ctxNewFromSlice = "NewFromSlice"
	ctxInit         = "Init"
	ctxInitSlice    = "InitFromSlice"
	ctxOffset       = "Offset"
	ctxCoord        = "Coord"
	ctxSet          = "Set"
	ctxAt           = "At"
	ctxSetAt        = "SetAt"
	ctxWalker       = "Walker"
	ctxWalkerAt     = "WalkerAt"
	ctxTarget       = "Target"
	ctxAxisTarget   = "AxisTarget"
	ctxNext         = "NextOffset"
	ctxPrev         = "PrevOffset"
	ctxSeek         = "SeekOffset"
	ctxMoveTo       = "MoveTo"
)

// rangeError joins ErrOutOfRange with a more specific sentinel so that
// both errors.Is(err, ErrOutOfRange) and errors.Is(err, specific) hold.
func rangeError(specific error) error {
	return fmt.Errorf("%w: %w", ErrOutOfRange, specific)
}

// bufferErrorf wraps err with a uniform Buffer method context.
func bufferErrorf(method string, arg any, err error) error {
	return fmt.Errorf("Buffer.%s(%v): %w", method, arg, err)
}

// walkerErrorf wraps err with a uniform Walker method context and the
// position the walker held when the call failed.
func walkerErrorf(method string, pos int, err error) error {
	return fmt.Errorf("Walker.%s@%d: %w", method, pos, err)
}
