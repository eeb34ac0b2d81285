package region

import (
	"fmt"

	"github.com/katalvlaran/xdbuf/ndarray"
)

// Fill replaces every cell of the region containing seed with value and
// returns the number of cells written. The region is computed before any
// write, so value may itself satisfy member.
//
// Errors:
//   - ErrNilBuffer, ErrNilMember.
//   - ndarray.ErrOutOfRange / ndarray.ErrRankMismatch for a bad seed.
//   - ErrSeedNotMember when the seed value fails member.
//
// Time:   O(N·k). Memory: O(N).
func Fill[T any](b *ndarray.Buffer[T], seed []int, member func(T) bool, value T, opts Options) (int, error) {
	if err := checkArgs(b, member); err != nil {
		return 0, err
	}
	w, err := b.Walker(seed)
	if err != nil {
		return 0, fmt.Errorf("region: Fill: %w", err)
	}
	if v, _ := w.Value(); !member(v) {
		return 0, fmt.Errorf("region: Fill(%v): %w", seed, ErrSeedNotMember)
	}

	data := b.Data()
	dirs, err := Neighbours(b.Rank(), opts.Conn)
	if err != nil {
		return 0, fmt.Errorf("region: Fill: %w", err)
	}
	seen := make([]bool, len(data))
	seen[w.Offset()] = true
	queue := []int{w.Offset()}
	for qi := 0; qi < len(queue); qi++ {
		if err = w.MoveTo(queue[qi]); err != nil {
			return 0, fmt.Errorf("region: Fill: %w", err)
		}
		for _, d := range dirs {
			vi, stepErr := w.AxisTarget(d)
			if stepErr != nil {
				continue
			}
			if !seen[vi] && member(data[vi]) {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	for _, off := range queue {
		if err = b.Set(off, value); err != nil {
			return 0, fmt.Errorf("region: Fill: %w", err)
		}
	}

	return len(queue), nil
}
