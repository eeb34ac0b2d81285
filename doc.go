// Package xdbuf is an in-memory, fixed-rank N-dimensional array with
// stride-based addressing and a bounds-checked cursor.
//
// Under the hood, everything is organized under four subpackages:
//
//	ndarray/ — Buffer[T] (storage, offset↔coordinate math, re-initialization)
//	           and Walker[T] (relative, adjacent and predicate moves)
//	step2d/  — named step vectors for 2-axis buffers (Right, LeftUp, ...)
//	step3d/  — named step vectors for 3-axis buffers (Front, RightBackTop, ...)
//	region/  — connected components, flood fill and 0-1 BFS bridging built on Walker
//
// Quick ASCII example (3×3, column-major, values 1..9):
//
//	y=2 │ 7 8 9
//	y=1 │ 4 5 6     walker at [1,1] (offset 4, value 5)
//	y=0 │ 1 2 3     Step(step2d.Right.Vec()) → offset 5
//	    └──────
//	      x=0 1 2
//
//	go get github.com/katalvlaran/xdbuf/ndarray
package xdbuf
