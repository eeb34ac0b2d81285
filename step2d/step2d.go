// SPDX-License-Identifier: MIT

// Package step2d names the unit step vectors of a 2-axis buffer, for use with
// ndarray.Walker.Step and AxisStep. Axis 0 is x (right is +1), axis 1 is y
// (up is +1). The presets are constants; their vectors cannot be reassigned.
package step2d

// Dir identifies one of the named 2-axis step vectors.
type Dir uint8

// Orthogonal directions.
const (
	Right Dir = iota
	Left
	Up
	Down
)

// Diagonal directions.
const (
	RightUp Dir = iota + 4
	RightDown
	LeftUp
	LeftDown
)

// Flat neighbours (axis 0).
const (
	Next = Right
	Prev = Left
)

var vectors = [...][2]int{
	Right:     {1, 0},
	Left:      {-1, 0},
	Up:        {0, 1},
	Down:      {0, -1},
	RightUp:   {1, 1},
	RightDown: {1, -1},
	LeftUp:    {-1, 1},
	LeftDown:  {-1, -1},
}

// Vec returns the step as a fresh slice, ready for Walker.Step.
// An unknown Dir yields nil.
func (d Dir) Vec() []int {
	if int(d) >= len(vectors) {
		return nil
	}
	v := vectors[d]

	return []int{v[0], v[1]}
}

// Opposite returns the direction pointing the other way.
func (d Dir) Opposite() Dir {
	if int(d) >= len(vectors) {
		return d
	}
	v := vectors[d]
	for i, o := range vectors {
		if o[0] == -v[0] && o[1] == -v[1] {
			return Dir(i)
		}
	}

	return d
}

// All lists the eight neighbour directions clockwise from Up.
// Next and Prev are aliases of Right and Left and are not repeated.
func All() []Dir {
	return []Dir{Up, RightUp, Right, RightDown, Down, LeftDown, Left, LeftUp}
}

// Orthogonal lists the four axis-aligned directions clockwise from Up.
func Orthogonal() []Dir {
	return []Dir{Up, Right, Down, Left}
}
