// SPDX-License-Identifier: MIT

package ndarray

// Test bridge: exposes unexported checked arithmetic to ndarray_test only.
var (
	ExportedMulInt = mulInt
	ExportedAddInt = addInt
)
