// Package planio reads planning instances from, and writes plan results
// to, whitespace-separated integer streams.
//
// What:
//
//   - ReadInstance consumes the canonical instance layout:
//     n_cities, then n_ports followed by n_ports (city_id, port_cost)
//     pairs, then n_highways followed by n_highways
//     (city_a, city_b, cost) triples. Tokens may be separated by any
//     whitespace, including newlines.
//   - WriteResult emits the matching output contract: the single line
//     "Impossible" when no plan exists, otherwise the total cost on the
//     first line and "ports_count highways_used" on the second.
//
// Why:
//
//   - The codec is the only place raw text meets the planner; it resolves
//     syntax, and citynet.NewInstance resolves semantics, so the
//     algorithms themselves never see an unvalidated number.
//   - Declared counts are checked against the capacity ceilings before
//     any slice is sized to them.
//
// Errors:
//
//   - ErrSyntax: a token is missing or is not an integer; wrapped with the
//     field being read when it failed.
//   - citynet sentinels (ErrCityRange, ErrBadPortCost, ...) pass through
//     ReadInstance unchanged from instance construction.
//
// Complexity: ReadInstance is O(n + h) time; WriteResult is O(1).
package planio
