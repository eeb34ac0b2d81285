// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for buffers and walkers.
// This file defines:
//   - Option / WalkerOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that record invalid values instead of panicking,
//   - gather helpers that surface recorded violations as ErrOptionViolation.
//
// Design goals:
//   - No global state; each constructor call resolves its own options.
//   - No dead switches: each option impacts behavior and is covered by tests.

package ndarray

import "fmt"

// DefaultCapacity is the reserved element capacity when WithCapacity is not
// given. Zero means "exactly the total size".
const DefaultCapacity = 0

// Option configures Buffer construction.
type Option func(*Options)

// Options holds the effective buffer configuration.
type Options struct {
	// capacity is the minimum backing capacity to reserve (>= 0).
	capacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultCapacity and no recorded error.
func DefaultOptions() Options {
	return Options{capacity: DefaultCapacity}
}

// WithCapacity reserves at least n elements of backing storage, so that later
// Init calls up to n elements reuse the same allocation.
//
//	n > Len: reserve n
//	n <= Len: no effect (capacity is at least Len anyway)
//	n < 0: invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.capacity = n
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first
// recorded violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// WalkerOption configures a Walker.
type WalkerOption func(*WalkerOptions)

// WalkerOptions holds walker callbacks.
type WalkerOptions struct {
	// OnMove is called after every successful mutating move with the previous
	// and the new offset. It is never called for failed moves or pure queries.
	OnMove func(from, to int)
}

// DefaultWalkerOptions returns WalkerOptions with a no-op OnMove hook.
func DefaultWalkerOptions() WalkerOptions {
	return WalkerOptions{
		OnMove: func(int, int) {},
	}
}

// WithOnMove registers a callback to run after each successful move.
func WithOnMove(fn func(from, to int)) WalkerOption {
	return func(o *WalkerOptions) {
		if fn != nil {
			o.OnMove = fn
		}
	}
}

func gatherWalkerOptions(opts ...WalkerOption) WalkerOptions {
	o := DefaultWalkerOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
