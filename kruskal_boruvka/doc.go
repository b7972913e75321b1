// Package kruskal_boruvka selects the minimum-cost subset of candidate
// highways that connects every city of a citynet.Instance into a single
// component, treating all ported cities as already interconnected through
// open water. It offers two interchangeable strategies: Kruskal's sorted
// greedy scan and Borůvka's round-based contraction.
//
// What & Why
//
//   - The problem: each city may build a port (flat per-city cost; any two
//     ported cities are then connected for free) and each candidate highway
//     has its own cost. The cheapest plan that reaches single-component
//     connectivity is a minimum spanning tree over the components left
//     after all ported cities are pre-merged into one "port hub".
//
//   - Port pre-merge: before any highway is considered, every ported city
//     is unioned into the first ported city's component. This turns the
//     semantic rule "ports interconnect for free" into a plain union-find
//     fact, so selection needs only the standard representative-equality
//     check. The pre-merge is idempotent. Declared ports are always paid
//     for: the total cost starts pre-loaded with the full port bill.
//
// Algorithms Provided
//
//   - Kruskal(inst) (Result, []citynet.Highway, error)
//
//   - Strategy: sort all candidate highways ascending by
//     (cost, lower endpoint id, higher endpoint id), then scan once,
//     selecting every highway whose endpoints lie in different components
//     and stopping as soon as one component remains.
//
//   - Complexity: O(h log h + α(n)·h) time, O(n + h) space.
//
//   - Boruvka(inst) (Result, []citynet.Highway, error)
//
//   - Strategy: repeated rounds; each round scans the unsorted highway
//     list once and records, per component, its cheapest outgoing highway
//     under the same (cost, lower id, higher id) order, then merges every
//     component with its recorded highway, skipping pairs another merge of
//     the same round already joined. A round with no merges while more
//     than one component remains means no plan exists.
//
//   - Complexity: O(h log n) time (O(log n) rounds), O(n + h) space.
//
//   - Both strategies share one tie-break order and therefore produce
//     identical (TotalCost, Ports, HighwaysUsed, Feasible) on any instance.
//
// When to Choose Which Strategy
//
//   - Kruskal: the default; one global sort, then a single cheap pass.
//   - Borůvka: avoids sorting the highway list entirely; attractive when
//     highways arrive unsorted and h is large relative to n.
//
// Results and Errors
//
//   - Result carries TotalCost (port bill + selected highway costs),
//     Ports (the static declared port count), HighwaysUsed and Feasible.
//     Infeasibility — the highways cannot connect all components even
//     after the port pre-merge — is a first-class result
//     (Feasible == false, nil error), not an error.
//
//   - ErrNilInstance: Compute/Kruskal/Boruvka received a nil instance.
//
//   - ErrUnknownMethod: Compute received an unrecognized method name.
//
// Determinism: the (cost, lower endpoint, higher endpoint) order is a fixed
// total preorder on highways; Kruskal sorts stably under it and Borůvka
// compares candidates with it, so selection order is reproducible run to run.
//
// For examples of usage, see the example_test.go file in this package.
package kruskal_boruvka
