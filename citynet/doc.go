// Package citynet defines the problem instance for minimum-cost city
// connectivity planning: cities identified by 1..n, optional per-city port
// construction costs, and a flat list of candidate highways.
//
// What:
//
//   - Instance wraps a validated, immutable problem: city count, port
//     declarations, candidate highways, with cached port aggregates.
//   - NewInstance is the single trust boundary: everything the planner
//     assumes (ids in range, costs sane, no self-loops, no duplicate
//     ports, sizes within configured limits) is enforced here, never
//     mid-algorithm.
//   - DOT renders the instance — and optionally a selected plan — as a
//     Graphviz document for inspection.
//
// Why:
//
//   - Planning inputs arrive from untrusted streams; rejecting malformed
//     data once, at construction, keeps every downstream loop check-free.
//   - Explicit integer identity (arena + index) replaces any notion of
//     deriving a city from its memory location.
//
// Options:
//
//   - Options.MaxCities / Options.MaxHighways: capacity ceilings checked at
//     construction; non-positive values disable the corresponding ceiling.
//     Structures are always sized exactly to the instance, never to a
//     fixed ceiling.
//
// Errors:
//
//   - ErrNegativeCities: the declared city count is negative.
//   - ErrCityRange: a port or highway references an id outside 1..n.
//   - ErrBadPortCost: a declared port has a non-positive cost (cost 0
//     means "no port may be built here", so declaring it contradicts itself).
//   - ErrDuplicatePort: the same city is declared as a port twice.
//   - ErrBadHighwayCost: a candidate highway has a negative cost.
//   - ErrSelfLoop: a candidate highway connects a city to itself.
//   - ErrTooLarge: declared sizes exceed the configured limits.
//
// Complexity: NewInstance is O(n + h) time and space for n cities and
// h highways; all accessors are O(1) except Highways, which copies.
package citynet
