// Package citynet core types, options and sentinel errors.
package citynet

import "errors"

// Sentinel errors for instance construction. Callers MUST branch with
// errors.Is; construction wraps these with positional context via %w.
var (
	// ErrNegativeCities indicates a negative declared city count.
	ErrNegativeCities = errors.New("citynet: number of cities must be non-negative")
	// ErrCityRange indicates a port or highway referencing an id outside 1..n.
	ErrCityRange = errors.New("citynet: city id out of range")
	// ErrBadPortCost indicates a declared port with a non-positive cost.
	ErrBadPortCost = errors.New("citynet: port cost must be positive")
	// ErrDuplicatePort indicates the same city declared as a port twice.
	ErrDuplicatePort = errors.New("citynet: duplicate port declaration")
	// ErrBadHighwayCost indicates a candidate highway with a negative cost.
	ErrBadHighwayCost = errors.New("citynet: highway cost must be non-negative")
	// ErrSelfLoop indicates a candidate highway from a city to itself.
	ErrSelfLoop = errors.New("citynet: highway endpoints must differ")
	// ErrTooLarge indicates declared sizes exceeding the configured limits.
	ErrTooLarge = errors.New("citynet: instance exceeds configured limits")
)

// Port declares that a port may be built in City for Cost. Cost must be
// positive: a zero cost would mean "no port may be built here", which
// contradicts declaring one.
type Port struct {
	City int   // city id, 1..n
	Cost int64 // construction cost, > 0
}

// Highway is a candidate road between two distinct cities. Immutable after
// instance construction.
type Highway struct {
	A, B int   // endpoint city ids, 1..n, A != B
	Cost int64 // construction cost, ≥ 0
}

// Options contains capacity ceilings for instance construction. Declared
// sizes beyond a ceiling are rejected up front (ErrTooLarge) so that no
// allocation is attempted for an oversized instance. A non-positive value
// disables that ceiling.
type Options struct {
	// MaxCities bounds the declared city count.
	MaxCities int
	// MaxHighways bounds the declared candidate highway count.
	MaxHighways int
}

// DefaultOptions returns the default capacity ceilings:
// MaxCities=1_000_000, MaxHighways=5_000_000.
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		MaxCities:   1_000_000,
		MaxHighways: 5_000_000,
	}
}
