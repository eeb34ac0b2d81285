// SPDX-License-Identifier: MIT

// Package step3d names the unit step vectors of a 3-axis buffer, for use with
// ndarray.Walker.Step and AxisStep. Axis 0 runs left→right, axis 1 back→front
// and axis 2 bottom→top. The presets are constants; their vectors cannot be
// reassigned.
package step3d

// Dir identifies one of the named 3-axis step vectors.
type Dir uint8

// Faces.
const (
	Right Dir = iota
	Left
	Front
	Back
	Top
	Bottom
)

// Edges.
const (
	RightFront Dir = iota + 6
	RightBack
	RightTop
	RightBottom
	LeftFront
	LeftBack
	LeftTop
	LeftBottom
	FrontTop
	FrontBottom
	BackTop
	BackBottom
)

// Corners.
const (
	RightFrontTop Dir = iota + 18
	RightFrontBottom
	RightBackTop
	RightBackBottom
	LeftFrontTop
	LeftFrontBottom
	LeftBackTop
	LeftBackBottom
)

// Flat neighbours (axis 0).
const (
	Next = Right
	Prev = Left
)

var vectors = [...][3]int{
	Right:  {1, 0, 0},
	Left:   {-1, 0, 0},
	Front:  {0, 1, 0},
	Back:   {0, -1, 0},
	Top:    {0, 0, 1},
	Bottom: {0, 0, -1},

	RightFront:  {1, 1, 0},
	RightBack:   {1, -1, 0},
	RightTop:    {1, 0, 1},
	RightBottom: {1, 0, -1},
	LeftFront:   {-1, 1, 0},
	LeftBack:    {-1, -1, 0},
	LeftTop:     {-1, 0, 1},
	LeftBottom:  {-1, 0, -1},
	FrontTop:    {0, 1, 1},
	FrontBottom: {0, 1, -1},
	BackTop:     {0, -1, 1},
	BackBottom:  {0, -1, -1},

	RightFrontTop:    {1, 1, 1},
	RightFrontBottom: {1, 1, -1},
	RightBackTop:     {1, -1, 1},
	RightBackBottom:  {1, -1, -1},
	LeftFrontTop:     {-1, 1, 1},
	LeftFrontBottom:  {-1, 1, -1},
	LeftBackTop:      {-1, -1, 1},
	LeftBackBottom:   {-1, -1, -1},
}

// Vec returns the step as a fresh slice, ready for Walker.Step.
// An unknown Dir yields nil.
func (d Dir) Vec() []int {
	if int(d) >= len(vectors) {
		return nil
	}
	v := vectors[d]

	return []int{v[0], v[1], v[2]}
}

// Opposite returns the direction pointing the other way.
func (d Dir) Opposite() Dir {
	if int(d) >= len(vectors) {
		return d
	}
	v := vectors[d]
	for i, o := range vectors {
		if o == [3]int{-v[0], -v[1], -v[2]} {
			return Dir(i)
		}
	}

	return d
}

// Faces returns the six face directions.
func Faces() []Dir {
	return []Dir{Right, Left, Front, Back, Top, Bottom}
}

// All returns the 26 neighbour directions: 6 faces, 12 edges, 8 corners.
func All() []Dir {
	all := make([]Dir, len(vectors))
	for i := range all {
		all[i] = Dir(i)
	}

	return all
}
