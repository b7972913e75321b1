// Package kruskal_boruvka sorted greedy strategy (Kruskal).
package kruskal_boruvka

import (
	"sort"

	"github.com/katalvlaran/portway/citynet"
)

// Kruskal computes the minimum-cost connectivity plan with a sorted greedy
// scan over the candidate highways.
//
// Error Conditions:
//   - ErrNilInstance : inst is nil.
//
// Infeasibility (candidate highways exhausted while more than one
// component remains) is a first-class result: Feasible == false, nil error.
//
// Steps:
//  1. Initialize the component forest and pre-merge all ported cities into
//     the port hub; pre-load the bill with the full port cost sum.
//  2. If at most one component remains (n ≤ 1, or the ports already cover
//     every city), the plan is trivially complete with zero highways.
//  3. Copy and stably sort the candidate highways ascending by
//     (cost, lower endpoint id, higher endpoint id).
//  4. Scan in order: a highway whose endpoints share a component is
//     skipped (rejection is implicit, never double counted); otherwise it
//     is selected — union, add cost, count — and the remaining component
//     count drops. Stop early once one component remains.
//  5. If the list is exhausted with more than one component left, report
//     infeasibility with no cost figures.
//
// Complexity: O(h log h + α(n)·h) time, O(n + h) memory.
func Kruskal(inst *citynet.Instance) (Result, []citynet.Highway, error) {
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

	// 3. Sort a private copy of the candidates; the stable sort preserves
	//    declaration order for highways equal under the full key.
	highways := inst.Highways()
	sort.SliceStable(highways, func(i, j int) bool {
		return lessHighway(highways[i], highways[j])
	})

	// 4. Greedy scan.
	for _, h := range highways {
		if st.forest.Find(h.A) == st.forest.Find(h.B) {
			// Endpoints already connected; selecting h would close a cycle.
			continue
		}
		st.take(h)
		if st.remaining == 1 {
			// Early exit: the network is fully connected.
			break
		}
	}

	// 5. Exhausted candidates with components left over: no plan exists.
	if st.remaining > 1 {
		return infeasible()
	}

	res, picked := st.result(inst)

	return res, picked, nil
}
