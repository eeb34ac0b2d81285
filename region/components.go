package region

import (
	"fmt"

	"github.com/katalvlaran/xdbuf/ndarray"
)

// checkArgs rejects nil buffers and predicates.
func checkArgs[T any](b *ndarray.Buffer[T], member func(T) bool) error {
	if b == nil {
		return ErrNilBuffer
	}
	if member == nil {
		return ErrNilMember
	}

	return nil
}

// Components finds all contiguous regions of cells whose value satisfies
// member, according to opts.Conn. Each component is a slice of flat offsets
// in discovery order; components are ordered by their lowest offset.
//
// Neighbours are reached with Walker.AxisTarget, so regions never wrap
// across the edge of an axis.
//
// Time:   O(N·k), where k = number of neighbour directions.
// Memory: O(N) for visited flags and output.
func Components[T any](b *ndarray.Buffer[T], member func(T) bool, opts Options) ([][]int, error) {
	if err := checkArgs(b, member); err != nil {
		return nil, err
	}
	if b.Len() == 0 {
		return nil, nil
	}

	data := b.Data()
	dirs, err := Neighbours(b.Rank(), opts.Conn)
	if err != nil {
		return nil, fmt.Errorf("region: Components: %w", err)
	}
	seen := make([]bool, len(data))
	w, err := b.WalkerAt(0)
	if err != nil {
		return nil, fmt.Errorf("region: Components: %w", err)
	}

	var comps [][]int
	for i0, v := range data {
		if seen[i0] || !member(v) {
			continue
		}
		// BFS to collect component
		seen[i0] = true
		queue := []int{i0}
		for qi := 0; qi < len(queue); qi++ {
			if err = w.MoveTo(queue[qi]); err != nil {
				return nil, fmt.Errorf("region: Components: %w", err)
			}
			for _, d := range dirs {
				vi, stepErr := w.AxisTarget(d)
				if stepErr != nil {
					continue // edge of the buffer
				}
				if !seen[vi] && member(data[vi]) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}
