// Package kruskal_boruvka defines configuration options, sentinel errors
// and the plan result for highway selection. It supports choosing between
// the Kruskal and Borůvka strategies via PlanOptions.
package kruskal_boruvka

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/portway/citynet"
)

// ErrNilInstance indicates that a nil *citynet.Instance was passed to a
// planning entry point.
var ErrNilInstance = errors.New("kruskal_boruvka: nil instance")

// ErrUnknownMethod indicates that Compute received a method name other
// than MethodKruskal or MethodBoruvka.
var ErrUnknownMethod = errors.New("kruskal_boruvka: unknown method")

// MethodKruskal selects the sorted greedy strategy (global edge sort and
// a single union-find scan).
const MethodKruskal = "kruskal"

// MethodBoruvka selects the round-based contraction strategy (per-round
// cheapest outgoing highway per component).
const MethodBoruvka = "boruvka"

// PlanOptions configures which selection strategy to run.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodKruskal or MethodBoruvka.
//
// See: kruskal_boruvka.Kruskal, kruskal_boruvka.Boruvka
// Complexity: O(h log h) for Kruskal, O(h log n) for Borůvka.
type PlanOptions struct {
	// Method to use: MethodKruskal or MethodBoruvka.
	Method string
}

// Option configures PlanOptions. All Option functions modify the pointed
// PlanOptions.
type Option func(*PlanOptions)

// WithMethod returns an Option that sets the selection strategy.
// Allowed values: MethodKruskal, MethodBoruvka.
func WithMethod(m string) Option {
	return func(opts *PlanOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns PlanOptions initialized for Kruskal by default.
//
// Complexity: O(1) to construct.
func DefaultOptions() PlanOptions {
	return PlanOptions{
		Method: MethodKruskal,
	}
}

// Result is the outcome of a planning run.
//
// When Feasible, TotalCost is the full construction bill (every declared
// port plus every selected highway), Ports is the static declared port
// count — a port is paid for whether or not it ends up load-bearing — and
// HighwaysUsed counts the highways the selector picked (never more than
// NumCities-1).
//
// When not Feasible, the candidate highways cannot connect all components
// even after the port pre-merge; no cost figures are reported in that case.
type Result struct {
	TotalCost    int64
	Ports        int
	HighwaysUsed int
	Feasible     bool
}

// String renders the canonical output contract: the single line
// "Impossible" when infeasible, otherwise the total cost on one line and
// "ports highways" on the next.
func (r Result) String() string {
	if !r.Feasible {
		return "Impossible"
	}

	return fmt.Sprintf("%d\n%d %d", r.TotalCost, r.Ports, r.HighwaysUsed)
}

// Compute selects and runs the planning strategy based on opts.Method.
//
//   - If opts.Method == MethodKruskal: calls Kruskal(inst).
//   - If opts.Method == MethodBoruvka: calls Boruvka(inst).
//   - Otherwise:                       returns ErrUnknownMethod.
//
// Returns:
//
//	Result            — the plan (or an infeasibility report).
//	[]citynet.Highway — the selected highways (nil when infeasible).
//	error             — non-nil only for a nil instance or unknown method.
//
// Note: this is optional scaffolding — Kruskal and Boruvka can still be
// called directly.
func Compute(inst *citynet.Instance, opts PlanOptions) (Result, []citynet.Highway, error) {
	// Dispatch by method name.
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(inst)
	case MethodBoruvka:
		return Boruvka(inst)
	default:
		// Unknown method name.
		return Result{}, nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
