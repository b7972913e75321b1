// Package kruskal_boruvka shared planning state and the port pre-merge.
package kruskal_boruvka

import (
	"github.com/katalvlaran/portway/citynet"
	"github.com/katalvlaran/portway/dsu"
)

// planState is the mutable state both strategies drive: the component
// forest, the running bill, and the number of components left to merge.
// All of it is owned exclusively by a single planning pass.
type planState struct {
	forest *dsu.Forest
	// total starts pre-loaded with the full port bill; ports are always
	// paid for once declared.
	total int64
	// remaining counts components still to be merged; the run succeeds
	// when it reaches 1 (or 0 for an empty instance).
	remaining int
	picked    []citynet.Highway
}

// newPlanState builds a forest sized exactly to the instance (element 0 is
// an unused slot so city ids index directly) and applies the port
// pre-merge, leaving remaining = n - (ports-1) when any port exists.
func newPlanState(inst *citynet.Instance) *planState {
	n := inst.NumCities()
	st := &planState{
		forest:    dsu.New(n + 1),
		total:     inst.PortCostTotal(),
		remaining: n,
	}
	mergePorts(st, inst)

	return st
}

// mergePorts unions every ported city into the first ported city's
// component, converting "any two ports are connected for free" into a
// plain forest fact. The hub is always the first Union argument, so on a
// size tie the hub side stays the component representative.
//
// Running mergePorts again on the same state is a no-op: every Union
// re-finds an already shared root. Returns the number of merges performed.
//
// Complexity: O(n·α(n)).
func mergePorts(st *planState, inst *citynet.Instance) int {
	hub := inst.FirstPort()
	if hub == 0 {
		// No ports declared; nothing to merge.
		return 0
	}

	merged := 0
	for id := hub + 1; id <= inst.NumCities(); id++ {
		if !inst.HasPort(id) {
			continue
		}
		if st.forest.Union(hub, id) {
			st.remaining--
			merged++
		}
	}

	return merged
}

// take selects highway h: merges its endpoints, adds its cost to the bill
// and appends it to the picked list. Callers must have checked that the
// endpoints lie in different components.
func (st *planState) take(h citynet.Highway) {
	st.forest.Union(h.A, h.B)
	st.total += h.Cost
	st.picked = append(st.picked, h)
	st.remaining--
}

// result assembles the final Result for a completed run.
func (st *planState) result(inst *citynet.Instance) (Result, []citynet.Highway) {
	return Result{
		TotalCost:    st.total,
		Ports:        inst.Ports(),
		HighwaysUsed: len(st.picked),
		Feasible:     true,
	}, st.picked
}

// infeasible is the shared infeasibility report: no cost figures, no plan.
// Both detection conditions — "highway list exhausted" in Kruskal and "no
// merges this round" in Borůvka — funnel through here so they report
// identically.
func infeasible() (Result, []citynet.Highway, error) {
	return Result{Feasible: false}, nil, nil
}

// lessHighway is the single tie-break order both strategies share:
// ascending cost, then lower endpoint id, then higher endpoint id.
// A fixed order makes selection reproducible and keeps the two strategies
// in exact agreement.
func lessHighway(a, b citynet.Highway) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	aLo, aHi := orient(a)
	bLo, bHi := orient(b)
	if aLo != bLo {
		return aLo < bLo
	}

	return aHi < bHi
}

// orient returns a highway's endpoints as (lower, higher) id.
func orient(h citynet.Highway) (int, int) {
	if h.A <= h.B {
		return h.A, h.B
	}

	return h.B, h.A
}
