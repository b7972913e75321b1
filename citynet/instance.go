// Package citynet instance construction and accessors.
package citynet

import "fmt"

// Instance is a validated, immutable planning problem: n cities numbered
// 1..n, a port cost per city (0 = no port), and a flat candidate highway
// list. Construct only through NewInstance; the zero value is unusable.
type Instance struct {
	numCities int
	portCost  []int64 // indexed by city id; slot 0 unused
	highways  []Highway

	// Aggregates cached at construction.
	numPorts    int
	portCostSum int64
	firstPort   int // lowest ported city id; 0 when no ports
}

// NewInstance validates the declared problem and returns an immutable
// Instance the planner can trust blindly.
//
// Error Conditions:
//   - ErrNegativeCities  : numCities < 0.
//   - ErrTooLarge        : numCities or len(highways) exceeds opts ceilings.
//   - ErrCityRange       : a port or highway id outside 1..numCities.
//   - ErrBadPortCost     : a port declared with cost ≤ 0.
//   - ErrDuplicatePort   : a city declared as a port more than once.
//   - ErrSelfLoop        : a highway with equal endpoints.
//   - ErrBadHighwayCost  : a highway with negative cost.
//
// Steps:
//  1. Check the declared sizes against opts before any allocation.
//  2. Record every port declaration, rejecting bad ids, bad costs and
//     duplicates; accumulate the port count, cost sum and lowest port id.
//  3. Copy the highway list, rejecting bad ids, self-loops and negative
//     costs. The copy keeps the Instance immune to later caller mutation.
//
// Complexity: O(n + h) time and space.
func NewInstance(numCities int, ports []Port, highways []Highway, opts Options) (*Instance, error) {
	// 1. Size checks come first: an oversized instance must be rejected
	//    before we size anything to it.
	if numCities < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCities, numCities)
	}
	if opts.MaxCities > 0 && numCities > opts.MaxCities {
		return nil, fmt.Errorf("%w: %d cities > max %d", ErrTooLarge, numCities, opts.MaxCities)
	}
	if opts.MaxHighways > 0 && len(highways) > opts.MaxHighways {
		return nil, fmt.Errorf("%w: %d highways > max %d", ErrTooLarge, len(highways), opts.MaxHighways)
	}

	in := &Instance{
		numCities: numCities,
		portCost:  make([]int64, numCities+1),
		highways:  make([]Highway, 0, len(highways)),
	}

	// 2. Validate and record port declarations.
	for _, p := range ports {
		if p.City < 1 || p.City > numCities {
			return nil, fmt.Errorf("%w: port city %d not in 1..%d", ErrCityRange, p.City, numCities)
		}
		if p.Cost <= 0 {
			return nil, fmt.Errorf("%w: city %d declared cost %d", ErrBadPortCost, p.City, p.Cost)
		}
		if in.portCost[p.City] != 0 {
			return nil, fmt.Errorf("%w: city %d", ErrDuplicatePort, p.City)
		}
		in.portCost[p.City] = p.Cost
		in.numPorts++
		in.portCostSum += p.Cost
		if in.firstPort == 0 || p.City < in.firstPort {
			in.firstPort = p.City
		}
	}

	// 3. Validate and copy candidate highways.
	for _, h := range highways {
		if h.A < 1 || h.A > numCities || h.B < 1 || h.B > numCities {
			return nil, fmt.Errorf("%w: highway %d-%d not in 1..%d", ErrCityRange, h.A, h.B, numCities)
		}
		if h.A == h.B {
			return nil, fmt.Errorf("%w: city %d", ErrSelfLoop, h.A)
		}
		if h.Cost < 0 {
			return nil, fmt.Errorf("%w: highway %d-%d cost %d", ErrBadHighwayCost, h.A, h.B, h.Cost)
		}
		in.highways = append(in.highways, h)
	}

	return in, nil
}

// NumCities returns the number of cities (ids run 1..NumCities()).
func (in *Instance) NumCities() int { return in.numCities }

// NumHighways returns the number of candidate highways.
func (in *Instance) NumHighways() int { return len(in.highways) }

// Ports returns the number of cities with a declared port.
func (in *Instance) Ports() int { return in.numPorts }

// PortCostTotal returns the sum of all declared port costs. Declared ports
// are always paid for, whether or not they end up reducing the highway bill.
func (in *Instance) PortCostTotal() int64 { return in.portCostSum }

// FirstPort returns the lowest ported city id, or 0 when no city has a
// port. The planner uses it as the merge target for the port hub.
func (in *Instance) FirstPort() int { return in.firstPort }

// PortCost returns the port construction cost of city id (0 = no port).
// id must lie in 1..NumCities(); range checking happened at construction.
func (in *Instance) PortCost(id int) int64 { return in.portCost[id] }

// HasPort reports whether a port is declared for city id.
func (in *Instance) HasPort(id int) bool { return in.portCost[id] > 0 }

// Highways returns a copy of the candidate highway list in declaration
// order. Callers may sort or filter the copy freely.
func (in *Instance) Highways() []Highway {
	out := make([]Highway, len(in.highways))
	copy(out, in.highways)

	return out
}
