package region

import "fmt"

// MaxFullRank is the highest rank accepted with Full connectivity. Full
// yields 3^D-1 step vectors, so the neighbour table grows too large beyond it.
const MaxFullRank = 10

// Neighbours returns the unit step vectors of a rank-D buffer under conn,
// in a fixed order. Faces yields 2·D vectors, Full yields 3^D-1.
// rank < 1 yields nil.
//
// Errors:
//   - ErrRankTooHigh for Full connectivity above MaxFullRank.
//
// Complexity: O(D·3^D) for Full, O(D²) for Faces.
func Neighbours(rank int, conn Connectivity) ([][]int, error) {
	if rank < 1 {
		return nil, nil
	}
	if conn == Faces {
		out := make([][]int, 0, 2*rank)
		for axis := 0; axis < rank; axis++ {
			for _, d := range [2]int{1, -1} {
				v := make([]int, rank)
				v[axis] = d
				out = append(out, v)
			}
		}

		return out, nil
	}
	if rank > MaxFullRank {
		return nil, fmt.Errorf("rank %d > %d: %w", rank, MaxFullRank, ErrRankTooHigh)
	}

	// Full: enumerate {-1,0,1}^rank like an odometer, skipping the origin.
	total := 1
	for i := 0; i < rank; i++ {
		total *= 3
	}
	out := make([][]int, 0, total-1)
	for n := 0; n < total; n++ {
		v := make([]int, rank)
		zero := true
		for i, r := 0, n; i < rank; i, r = i+1, r/3 {
			v[i] = r%3 - 1
			if v[i] != 0 {
				zero = false
			}
		}
		if !zero {
			out = append(out, v)
		}
	}

	return out, nil
}
