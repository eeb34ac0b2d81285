// Package region defines core types, options, and sentinel errors
// for the region subpackage of github.com/katalvlaran/xdbuf.
package region

import "errors"

// Sentinel errors for region operations.
var (
	// ErrNilBuffer indicates a nil *ndarray.Buffer argument.
	ErrNilBuffer = errors.New("region: buffer is nil")
	// ErrNilMember indicates a nil membership predicate.
	ErrNilMember = errors.New("region: member predicate is nil")
	// ErrSeedNotMember indicates the flood-fill seed cell fails the predicate.
	ErrSeedNotMember = errors.New("region: seed cell is not a member")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("region: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("region: no path between specified components")
	// ErrRankTooHigh indicates a rank whose Full neighbourhood is too large
	// to enumerate (see MaxFullRank).
	ErrRankTooHigh = errors.New("region: rank too high for full connectivity")
)

// Connectivity selects which neighbours count as adjacent.
type Connectivity int

const (
	// Faces connects cells that differ by ±1 on exactly one axis
	// (4 neighbours in 2D, 6 in 3D).
	Faces Connectivity = iota
	// Full connects cells that differ by at most 1 on every axis
	// (8 neighbours in 2D, 26 in 3D).
	Full
)

// Options contains tunable parameters for region analysis.
type Options struct {
	// Conn chooses face-only or full connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn=Faces.
func DefaultOptions() Options {
	return Options{Conn: Faces}
}
