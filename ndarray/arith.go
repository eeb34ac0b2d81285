// SPDX-License-Identifier: MIT

package ndarray

import "math"

// Checked int arithmetic. Every index computation in the package goes through
// these helpers so that overflow is reported instead of wrapping silently.

// mulInt returns a*b and false when the product does not fit an int.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	// Division undoes the multiply only when nothing was lost; MinInt*-1 is
	// the one case the division itself cannot detect.
	if p/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}

	return p, true
}

// addInt returns a+b and false when the sum does not fit an int.
func addInt(a, b int) (int, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}
