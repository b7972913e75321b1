// Package citynet DOT rendering of an instance and an optional plan.
package citynet

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// DOT renders the instance as a Graphviz document: every city is a node
// (ported cities filled), every candidate highway an edge labeled with its
// cost. When plan is non-nil, the highways it contains are highlighted as
// selected; pass the highway slice returned by the planner to visualize a
// computed plan, or nil to dump the raw instance.
//
// The rendering is diagnostic only and plays no part in planning.
//
// Complexity: O(n + h) time and space.
func (in *Instance) DOT(plan []Highway) string {
	graph := gographviz.NewGraph()
	_ = graph.SetName("portway")
	_ = graph.SetDir(false)
	_ = graph.AddAttr("portway", "rankdir", "LR")
	_ = graph.AddAttr("portway", "nodesep", "0.5")

	// Index the selected highways so candidate edges can be told apart.
	selected := make(map[Highway]bool, len(plan))
	for _, h := range plan {
		selected[h] = true
	}

	// Nodes: one per city, ported cities filled to stand out.
	for id := 1; id <= in.numCities; id++ {
		attrs := map[string]string{
			"shape": "circle",
		}
		if in.portCost[id] > 0 {
			attrs["style"] = "filled"
			attrs["fillcolor"] = "lightskyblue"
			attrs["tooltip"] = fmt.Sprintf("%d", in.portCost[id])
		}
		_ = graph.AddNode("portway", nodeName(id), attrs)
	}

	// Edges: every candidate highway, selected ones drawn bold.
	for _, h := range in.highways {
		attrs := map[string]string{
			"label": fmt.Sprintf("%d", h.Cost),
		}
		if selected[h] {
			attrs["penwidth"] = "3"
			attrs["color"] = "forestgreen"
		}
		_ = graph.AddEdge(nodeName(h.A), nodeName(h.B), false, attrs)
	}

	return graph.String()
}

// nodeName maps a city id onto a DOT-safe node identifier.
func nodeName(id int) string {
	return fmt.Sprintf("c%d", id)
}
