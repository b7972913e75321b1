// Package dsu implements a disjoint-set forest (union-find) over a fixed
// universe of integer elements, used by the planner to track which cities
// already belong to the same connected component.
//
// What:
//
//   - Forest partitions elements 0..n-1 into disjoint components.
//   - Find returns the component representative, compressing the walked
//     path so repeated lookups are amortized near O(1).
//   - Union merges two components by size, reporting whether a merge
//     actually happened; the component count is maintained incrementally.
//
// Why:
//
//   - Connectivity queries: two elements share a component iff their
//     representatives are equal — the only predicate the MST selector needs.
//   - Deterministic representatives: on a size tie the first argument's
//     root survives, so callers can keep a designated element (the port
//     hub) as the long-lived representative of its component.
//
// Complexity:
//
//   - Find / Union: O(α(n)) amortized (inverse Ackermann), O(1) extra space.
//   - New: O(n) time and space; no allocation after construction.
//
// Contract:
//
//   - Element ids must lie in [0, n). Out-of-range ids are a programming
//     error to be rejected at the caller's boundary, not inside the forest;
//     the forest performs no range checks of its own.
//   - A Forest is not safe for concurrent mutation; each planning run owns
//     its forest exclusively.
//
// See: docs in kruskal_boruvka for how the planner drives the forest.
package dsu
