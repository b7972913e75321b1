// Package portway computes the minimum-cost plan to connect a set of
// cities into a single network, mixing two kinds of construction:
// highways between pairs of cities, and ports that link every ported
// city through open water at no extra cost.
//
// 🚀 What is portway?
//
//	A small, deterministic planning library built from three pieces:
//		• dsu/             — disjoint-set forest (union-find) over city ids
//		• citynet/         — the problem instance: cities, ports, candidate highways
//		• kruskal_boruvka/ — the MST selector with two interchangeable strategies
//	plus a thin stream codec (planio/) and a CLI driver (cmd/portway).
//
// ✨ Why choose portway?
//
//   - Deterministic – a fixed tie-break order makes every plan reproducible
//   - Strict boundaries – malformed instances never reach the algorithms
//   - Two strategies – sorted greedy (Kruskal) and round contraction (Borůvka),
//     guaranteed to agree on cost and highway count
//   - Infeasibility is an answer – "Impossible" is a result, not a panic
//
// Quick ASCII example:
//
//	⚓1        3⚓        two ports (free sea link 1↔3),
//	 │                   one highway candidate 1—2,
//	 2                   city 2 joins by road or not at all.
//
// The planner pre-merges all ported cities into one component, then runs a
// minimum spanning tree selection over the candidate highways until a single
// component remains, or reports that full connectivity is impossible.
//
// Dive into each subpackage's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/portway
package portway
