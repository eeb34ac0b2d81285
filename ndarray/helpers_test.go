// Package ndarray_test contains shared test fixtures.
package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/xdbuf/ndarray"
	"github.com/stretchr/testify/require"
)

// seq returns the integers lo..hi inclusive.
func seq(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}

	return out
}

// mustGrid3x3 returns a 3×3 buffer holding 1..9 in flat order:
//
//	y=2 │ 7 8 9
//	y=1 │ 4 5 6
//	y=0 │ 1 2 3
func mustGrid3x3(t testing.TB) *ndarray.Buffer[int] {
	t.Helper()
	b, err := ndarray.NewFromSlice([]int{3, 3}, seq(1, 9))
	require.NoError(t, err)

	return b
}

// mustWalker binds a walker at coord or fails the test.
func mustWalker(t testing.TB, b *ndarray.Buffer[int], coord []int, opts ...ndarray.WalkerOption) *ndarray.Walker[int] {
	t.Helper()
	w, err := b.Walker(coord, opts...)
	require.NoError(t, err)

	return w
}
