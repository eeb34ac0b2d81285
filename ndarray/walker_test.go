// Package ndarray_test contains unit tests for Walker moves.
package ndarray_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/xdbuf/ndarray"
	"github.com/stretchr/testify/require"
)

// TestWalker_Create verifies binding at a coordinate and at a flat offset.
func TestWalker_Create(t *testing.T) {
	b := mustGrid3x3(t)

	w := mustWalker(t, b, []int{1, 1})
	require.Equal(t, 4, w.Offset())
	require.Equal(t, []int{1, 1}, w.Coord())
	v, ok := w.Value()
	require.True(t, ok)
	require.Equal(t, 5, v)
	require.Same(t, b, w.Buffer())

	w, err := b.WalkerAt(8)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, w.Coord())

	_, err = b.Walker([]int{3, 0})
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = b.Walker([]int{0})
	require.ErrorIs(t, err, ndarray.ErrRankMismatch)
	_, err = b.WalkerAt(9)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = b.WalkerAt(-1)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	_, err = ndarray.NewWalker[int](nil, []int{0, 0})
	require.ErrorIs(t, err, ndarray.ErrNilArgument)

	w, err = ndarray.NewWalker(b, []int{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2, w.Offset())
}

// TestWalker_Target verifies the pure flat-step computation.
func TestWalker_Target(t *testing.T) {
	b := mustGrid3x3(t)
	w := mustWalker(t, b, []int{1, 1}) // offset 4

	off, err := w.Target([]int{1, 0})
	require.NoError(t, err)
	require.Equal(t, 5, off)

	off, err = w.Target([]int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 7, off)

	off, err = w.Target([]int{-1, -1})
	require.NoError(t, err)
	require.Equal(t, 0, off)

	require.Equal(t, 4, w.Offset()) // pure: position unchanged
}

// TestWalker_Step verifies in-place moves and their chaining.
func TestWalker_Step(t *testing.T) {
	b := mustGrid3x3(t)
	w := mustWalker(t, b, []int{1, 1})

	require.NoError(t, w.Step([]int{1, 1}))
	require.Equal(t, 8, w.Offset())

	require.NoError(t, w.Step([]int{-1, 0}))
	require.Equal(t, 7, w.Offset())

	require.NoError(t, w.Step([]int{-1, -2}))
	require.Equal(t, 0, w.Offset())
}

// TestWalker_StepErrors covers range, rank and overflow failures; every
// failure leaves the position unchanged.
func TestWalker_StepErrors(t *testing.T) {
	b := mustGrid3x3(t)

	cases := []struct {
		name string
		step []int
		want error
	}{
		{"BelowZero", []int{-1, -2}, ndarray.ErrOutOfRange},
		{"PastEnd", []int{0, 2}, ndarray.ErrOutOfRange},
		{"Rank", []int{1}, ndarray.ErrRankMismatch},
		{"SumOverflow", []int{math.MaxInt, 0}, ndarray.ErrOverflow},
		{"ProductOverflow", []int{0, math.MaxInt}, ndarray.ErrOverflow},
		{"NegativeProductOverflow", []int{0, math.MinInt}, ndarray.ErrOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := mustWalker(t, b, []int{1, 1})

			_, err := w.Target(tc.step)
			require.ErrorIs(t, err, tc.want)

			err = w.Step(tc.step)
			require.ErrorIs(t, err, tc.want) // same validation path
			require.Equal(t, 4, w.Offset())
		})
	}
}

// TestWalker_OverflowIsNotRange ensures overflow is reported distinctly.
func TestWalker_OverflowIsNotRange(t *testing.T) {
	w := mustWalker(t, mustGrid3x3(t), []int{1, 1})

	_, err := w.Target([]int{0, math.MaxInt})
	require.ErrorIs(t, err, ndarray.ErrOverflow)
	require.NotErrorIs(t, err, ndarray.ErrOutOfRange)
}

// TestWalker_AxisStep verifies per-axis bounds: no wrap-around between rows.
func TestWalker_AxisStep(t *testing.T) {
	b := mustGrid3x3(t)
	w := mustWalker(t, b, []int{2, 1}) // offset 5, right edge

	off, err := w.Target([]int{1, 0}) // flat step wraps to the next row
	require.NoError(t, err)
	require.Equal(t, 6, off)

	_, err = w.AxisTarget([]int{1, 0}) // axis step refuses
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	require.ErrorIs(t, w.AxisStep([]int{1, 0}), ndarray.ErrOutOfRange)
	require.Equal(t, 5, w.Offset())

	require.NoError(t, w.AxisStep([]int{-1, 1}))
	require.Equal(t, 7, w.Offset())
	require.Equal(t, []int{1, 2}, w.Coord())

	_, err = w.AxisTarget([]int{0, 1})
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	_, err = w.AxisTarget([]int{math.MaxInt, 0})
	require.ErrorIs(t, err, ndarray.ErrOverflow)

	_, err = w.AxisTarget([]int{0, 0, 0})
	require.ErrorIs(t, err, ndarray.ErrRankMismatch)
}

// TestWalker_AxisStep3D walks the corners of a 3×4×5 buffer.
func TestWalker_AxisStep3D(t *testing.T) {
	b, err := ndarray.New([]int{3, 4, 5}, 0)
	require.NoError(t, err)
	w := mustWalker(t, b, []int{0, 0, 0})

	require.NoError(t, w.AxisStep([]int{2, 3, 4}))
	require.Equal(t, 59, w.Offset())

	require.NoError(t, w.AxisStep([]int{-2, 0, -4}))
	require.Equal(t, []int{0, 3, 0}, w.Coord())
	require.Equal(t, 9, w.Offset())
}

// TestWalker_NextPrev covers adjacent moves and both ends.
func TestWalker_NextPrev(t *testing.T) {
	b := mustGrid3x3(t)
	w := mustWalker(t, b, []int{2, 1}) // offset 5

	off, err := w.NextOffset()
	require.NoError(t, err)
	require.Equal(t, 6, off)

	off, err = w.PrevOffset()
	require.NoError(t, err)
	require.Equal(t, 4, off)
	require.Equal(t, 5, w.Offset())

	require.NoError(t, w.Next())
	require.Equal(t, 6, w.Offset())
	require.NoError(t, w.Prev())
	require.NoError(t, w.Prev())
	require.Equal(t, 4, w.Offset())

	first := mustWalker(t, b, []int{0, 0})
	require.ErrorIs(t, first.Prev(), ndarray.ErrOutOfRange)
	_, err = first.PrevOffset()
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	require.Equal(t, 0, first.Offset())

	last := mustWalker(t, b, []int{2, 2})
	require.ErrorIs(t, last.Next(), ndarray.ErrOutOfRange)
	_, err = last.NextOffset()
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	require.Equal(t, 8, last.Offset())
}

// TestWalker_Seek verifies forward predicate scans.
func TestWalker_Seek(t *testing.T) {
	b := mustGrid3x3(t)
	w := mustWalker(t, b, []int{0, 0})

	off, err := w.SeekOffset(func(v, _ int) bool { return v == 5 })
	require.NoError(t, err)
	require.Equal(t, 4, off)
	require.Equal(t, 0, w.Offset())

	require.NoError(t, w.Seek(func(v, _ int) bool { return v == 5 }))
	require.Equal(t, 4, w.Offset())

	// inclusive: the current element matches first
	require.NoError(t, w.Seek(func(v, _ int) bool { return v%5 == 0 }))
	require.Equal(t, 4, w.Offset())

	// the offset argument is usable too
	require.NoError(t, w.Seek(func(_, off int) bool { return off == 8 }))
	require.Equal(t, 8, w.Offset())
}

// TestWalker_SeekNotFound ensures exhaustion is an error and the predicate
// only ever sees valid offsets.
func TestWalker_SeekNotFound(t *testing.T) {
	b := mustGrid3x3(t)
	w := mustWalker(t, b, []int{0, 1}) // offset 3

	var seen []int
	pred := func(v, off int) bool {
		seen = append(seen, off)
		return v < 0
	}
	_, err := w.SeekOffset(pred)
	require.ErrorIs(t, err, ndarray.ErrNotFound)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	require.Equal(t, []int{3, 4, 5, 6, 7, 8}, seen)

	require.ErrorIs(t, w.Seek(func(v, _ int) bool { return v < 0 }), ndarray.ErrNotFound)
	require.Equal(t, 3, w.Offset())

	require.ErrorIs(t, w.Seek(nil), ndarray.ErrNilArgument)
}

// TestWalker_OnMove verifies the hook fires only for successful moves.
func TestWalker_OnMove(t *testing.T) {
	b := mustGrid3x3(t)

	var moves [][2]int
	w := mustWalker(t, b, []int{1, 1}, ndarray.WithOnMove(func(from, to int) {
		moves = append(moves, [2]int{from, to})
	}))

	require.NoError(t, w.Step([]int{1, 0}))   // 4 → 5
	require.Error(t, w.AxisStep([]int{1, 0})) // fails, no hook
	_, _ = w.Target([]int{-1, 0})             // query, no hook
	require.NoError(t, w.Next())              // 5 → 6

	// 6 → 8
	require.NoError(t, w.Seek(func(v, _ int) bool { return v == 9 }))

	require.Equal(t, [][2]int{{4, 5}, {5, 6}, {6, 8}}, moves)

	_, err := b.Walker([]int{0, 0}, ndarray.WithOnMove(nil)) // nil keeps the no-op default
	require.NoError(t, err)
}

// TestWalker_Clone verifies independent positions after Clone.
func TestWalker_Clone(t *testing.T) {
	b := mustGrid3x3(t)
	w := mustWalker(t, b, []int{0, 0})

	c := w.Clone()
	require.NoError(t, c.Step([]int{2, 2}))
	require.Equal(t, 8, c.Offset())
	require.Equal(t, 0, w.Offset())
}

// TestWalker_NeverMutatesBuffer runs every move and checks the data.
func TestWalker_NeverMutatesBuffer(t *testing.T) {
	b := mustGrid3x3(t)
	w := mustWalker(t, b, []int{0, 0})

	require.NoError(t, w.Step([]int{1, 1}))
	require.NoError(t, w.AxisStep([]int{1, 0}))
	require.NoError(t, w.Next())
	require.NoError(t, w.Prev())
	require.NoError(t, w.Seek(func(v, _ int) bool { return v == 9 }))
	require.Error(t, w.Next())

	require.Equal(t, seq(1, 9), b.Data())
}

// TestWalker_StaleAfterInit ensures a walker past the end of a re-initialized
// buffer reports ErrOutOfRange instead of reading out of bounds.
func TestWalker_StaleAfterInit(t *testing.T) {
	b := mustGrid3x3(t)
	w := mustWalker(t, b, []int{2, 2}) // offset 8

	require.NoError(t, b.Init([]int{2, 2}, 0))

	_, ok := w.Value()
	require.False(t, ok)
	require.Nil(t, w.Coord())

	require.ErrorIs(t, w.Step([]int{-1, 0}), ndarray.ErrOutOfRange)
	require.ErrorIs(t, w.AxisStep([]int{-1, 0}), ndarray.ErrOutOfRange)
	require.ErrorIs(t, w.Prev(), ndarray.ErrOutOfRange)
	require.ErrorIs(t, w.Next(), ndarray.ErrOutOfRange)
	require.ErrorIs(t, w.Seek(func(int, int) bool { return true }), ndarray.ErrOutOfRange)
	require.Equal(t, 8, w.Offset())

	// a walker still inside the new length keeps working with the new strides
	w2 := mustWalker(t, b, []int{1, 1})
	require.Equal(t, 3, w2.Offset())
	require.NoError(t, w2.Step([]int{-1, -1}))
	require.Equal(t, 0, w2.Offset())
}

// TestWalker_MoveTo covers absolute jumps.
func TestWalker_MoveTo(t *testing.T) {
	b := mustGrid3x3(t)

	var hits int
	w := mustWalker(t, b, []int{0, 0}, ndarray.WithOnMove(func(int, int) { hits++ }))

	require.NoError(t, w.MoveTo(7))
	require.Equal(t, []int{1, 2}, w.Coord())

	require.ErrorIs(t, w.MoveTo(9), ndarray.ErrOutOfRange)
	require.ErrorIs(t, w.MoveTo(-1), ndarray.ErrOutOfRange)
	require.Equal(t, 7, w.Offset())
	require.Equal(t, 1, hits)
}
