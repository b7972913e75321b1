// Package kruskal_boruvka round-based contraction strategy (Borůvka).
package kruskal_boruvka

import (
	"github.com/katalvlaran/portway/citynet"
)

// noCandidate marks a component with no outgoing highway found this round.
const noCandidate = -1

// Boruvka computes the minimum-cost connectivity plan by repeated
// contraction rounds, without ever sorting the candidate highway list.
//
// Error Conditions:
//   - ErrNilInstance : inst is nil.
//
// Infeasibility (a round completes without a single merge while more than
// one component remains) is a first-class result: Feasible == false, nil
// error — the same report Kruskal produces when it exhausts its list.
//
// Steps:
//  1. Initialize the component forest and pre-merge all ported cities into
//     the port hub; pre-load the bill with the full port cost sum.
//  2. If at most one component remains, the plan is trivially complete.
//  3. Round scan: walk the highway list once; for each highway crossing
//     two components, record it as a candidate for both component roots
//     unless a cheaper candidate (under the shared
//     cost/lower-id/higher-id order) is already recorded.
//  4. Merge phase: for every recorded candidate, re-check that its
//     endpoints still lie in different components — the opposite
//     component's candidate may have been the same highway, or an earlier
//     merge this round may have joined them — then select it exactly once.
//  5. Repeat rounds until one component remains (success) or a round
//     performs no merges (infeasible).
//
// Complexity: O(h log n) time — each round halves the component count at
// worst — and O(n + h) memory.
func Boruvka(inst *citynet.Instance) (Result, []citynet.Highway, error) {
	// 1. Validate the only programmer-error input.
	if inst == nil {
		return Result{}, nil, ErrNilInstance
	}

	// 1a. Forest + port pre-merge + pre-loaded port bill.
	st := newPlanState(inst)

	// 2. Trivially connected: nothing to select.
	if st.remaining <= 1 {
		res, picked := st.result(inst)
		return res, picked, nil
	}

	highways := inst.Highways()
	// cheapest[root] holds the index into highways of the best outgoing
	// candidate found for that component this round.
	cheapest := make([]int, inst.NumCities()+1)

	for st.remaining > 1 {
		// 3. Reset and scan for per-component cheapest outgoing highways.
		for i := range cheapest {
			cheapest[i] = noCandidate
		}
		for idx, h := range highways {
			rootA := st.forest.Find(h.A)
			rootB := st.forest.Find(h.B)
			if rootA == rootB {
				// Internal to one component; useless from here on.
				continue
			}
			if cheapest[rootA] == noCandidate || lessHighway(h, highways[cheapest[rootA]]) {
				cheapest[rootA] = idx
			}
			if cheapest[rootB] == noCandidate || lessHighway(h, highways[cheapest[rootB]]) {
				cheapest[rootB] = idx
			}
		}

		// 4. Merge every component with its recorded candidate, skipping
		//    pairs an earlier merge of this round already joined.
		merges := 0
		for root := 1; root < len(cheapest); root++ {
			idx := cheapest[root]
			if idx == noCandidate {
				continue
			}
			h := highways[idx]
			if st.forest.Find(h.A) == st.forest.Find(h.B) {
				// Both sides recorded the same highway, or the components
				// met through another merge this round.
				continue
			}
			st.take(h)
			merges++
		}

		// 5. A fruitless round means the remaining components have no
		//    crossing highways at all: no plan exists.
		if merges == 0 {
			return infeasible()
		}
	}

	res, picked := st.result(inst)

	return res, picked, nil
}
