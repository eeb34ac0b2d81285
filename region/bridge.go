package region

import (
	"container/list"
	"fmt"
	"math"

	"github.com/katalvlaran/xdbuf/ndarray"
)

// Bridge finds a minimum-conversion path of non-member cells connecting any
// cell of component src to any cell of component dst, where components are
// numbered as returned by Components(b, member, opts). Entering a member cell
// costs 0 and entering a non-member cell costs 1.
// Returns the flat offsets of the path (both end cells included) and its cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from every src cell (cost-0 moves at the front of
//     the deque, cost-1 moves at the back).
//  3. Stop at the first dst cell taken off the deque.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(N·k) time, O(N) memory.
func Bridge[T any](b *ndarray.Buffer[T], member func(T) bool, src, dst int, opts Options) (path []int, cost int, err error) {
	comps, err := Components(b, member, opts)
	if err != nil {
		return nil, 0, err
	}
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dst]))
	for _, i := range comps[dst] {
		dstSet[i] = struct{}{}
	}

	data := b.Data()
	n := len(data)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}

	dq := list.New()
	for _, i := range comps[src] {
		dist[i] = 0
		dq.PushFront(i)
	}

	dirs, err := Neighbours(b.Rank(), opts.Conn)
	if err != nil {
		return nil, 0, fmt.Errorf("region: Bridge: %w", err)
	}
	w, err := b.WalkerAt(comps[src][0])
	if err != nil {
		return nil, 0, fmt.Errorf("region: Bridge: %w", err)
	}
	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		if err = w.MoveTo(u); err != nil {
			return nil, 0, fmt.Errorf("region: Bridge: %w", err)
		}
		for _, d := range dirs {
			v, stepErr := w.AxisTarget(d)
			if stepErr != nil {
				continue
			}
			step := 0
			if !member(data[v]) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if target < 0 {
		return nil, 0, ErrNoPath
	}

	for v := target; v != -1; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
