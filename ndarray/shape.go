// SPDX-License-Identifier: MIT

// Package ndarray - shape arithmetic (total size & column-major strides).
//
// Purpose:
//   - Single source of truth for deriving element counts and strides from extents.
//   - Report zero extents and int overflow as errors; never truncate.
//
// Layout:
//   - Column-major (first axis fastest): stride[0] = 1, stride[i] = stride[i-1]*size[i-1].
//
// Complexity quicksheet:
//   - TotalSize: O(D); Strides: O(D) time, O(D) space.

package ndarray

import "fmt"

// validateShape checks that size is non-empty and every extent is positive.
// Returns ErrBadShape (joined with ErrOutOfRange) otherwise.
func validateShape(size []int) error {
	if len(size) == 0 {
		return rangeError(ErrBadShape)
	}
	for i, s := range size {
		if s <= 0 {
			return fmt.Errorf("axis %d extent %d: %w", i, s, rangeError(ErrBadShape))
		}
	}

	return nil
}

// TotalSize computes the number of elements addressed by size.
// MAIN DESCRIPTION:
//   - Multiply all extents with overflow checking.
//
// Implementation:
//   - Stage 1: validate the shape (non-empty, every extent > 0).
//   - Stage 2: fold the product, failing on the first overflow.
//
// Errors:
//   - ErrBadShape (also matches ErrOutOfRange) for an empty size or extent <= 0.
//   - ErrOverflow when the product exceeds math.MaxInt.
//
// Complexity:
//   - Time O(D), Space O(1).
func TotalSize(size []int) (int, error) {
	if err := validateShape(size); err != nil {
		return 0, err
	}

	total := 1
	var ok bool
	for i, s := range size {
		if total, ok = mulInt(total, s); !ok {
			return 0, fmt.Errorf("axis %d: %w", i, ErrOverflow)
		}
	}

	return total, nil
}

// Strides derives column-major strides for size.
// stride[0] is always 1; stride[i] is the product of all extents before axis i.
//
// Errors:
//   - ErrBadShape for an empty size or extent <= 0.
//   - ErrOverflow on multiplicative overflow.
//
// Complexity:
//   - Time O(D), Space O(D).
func Strides(size []int) ([]int, error) {
	if err := validateShape(size); err != nil {
		return nil, err
	}

	stride := make([]int, len(size))
	stride[0] = 1
	var ok bool
	for i := 1; i < len(size); i++ {
		if stride[i], ok = mulInt(stride[i-1], size[i-1]); !ok {
			return nil, fmt.Errorf("axis %d: %w", i, ErrOverflow)
		}
	}

	return stride, nil
}

// layout bundles TotalSize and Strides for constructors and Init.
func layout(size []int) (total int, stride []int, err error) {
	if total, err = TotalSize(size); err != nil {
		return 0, nil, err
	}
	if stride, err = Strides(size); err != nil {
		return 0, nil, err
	}

	return total, stride, nil
}
