package kruskal_boruvka

import (
	"testing"

	"github.com/katalvlaran/portway/citynet"
	"github.com/stretchr/testify/assert"
)

// TestMergePorts_Idempotent verifies that re-running the port pre-merge on
// the same state performs no merges the second time and leaves the
// component count untouched.
func TestMergePorts_Idempotent(t *testing.T) {
	inst, err := citynet.NewInstance(5,
		[]citynet.Port{{City: 1, Cost: 3}, {City: 4, Cost: 7}, {City: 5, Cost: 2}},
		nil,
		citynet.DefaultOptions(),
	)
	assert.NoError(t, err)

	st := newPlanState(inst) // runs the pre-merge once
	assert.Equal(t, 3, st.remaining, "3 ports collapse 5 cities into 3 components")

	// Second pass: nothing left to merge.
	assert.Zero(t, mergePorts(st, inst))
	assert.Equal(t, 3, st.remaining)

	// All ported cities share the hub's representative; city 2 does not.
	hub := st.forest.Find(1)
	assert.Equal(t, hub, st.forest.Find(4))
	assert.Equal(t, hub, st.forest.Find(5))
	assert.NotEqual(t, hub, st.forest.Find(2))
}

// TestMergePorts_HubSurvivesTie verifies that the first ported city stays
// the representative of the port hub even through size-tied unions.
func TestMergePorts_HubSurvivesTie(t *testing.T) {
	inst, err := citynet.NewInstance(2,
		[]citynet.Port{{City: 1, Cost: 1}, {City: 2, Cost: 1}},
		nil,
		citynet.DefaultOptions(),
	)
	assert.NoError(t, err)

	st := newPlanState(inst)
	assert.Equal(t, 1, st.forest.Find(2), "hub root must survive the tie")
}

// TestLessHighway_Order pins the shared tie-break order: cost first, then
// lower endpoint id, then higher endpoint id, endpoint orientation ignored.
func TestLessHighway_Order(t *testing.T) {
	cheap := citynet.Highway{A: 9, B: 8, Cost: 1}
	dear := citynet.Highway{A: 1, B: 2, Cost: 5}
	assert.True(t, lessHighway(cheap, dear))
	assert.False(t, lessHighway(dear, cheap))

	// Equal cost: lower endpoint wins; orientation must not matter.
	left := citynet.Highway{A: 4, B: 1, Cost: 3}
	right := citynet.Highway{A: 2, B: 5, Cost: 3}
	assert.True(t, lessHighway(left, right), "1-4 sorts before 2-5")

	// Equal cost and lower endpoint: higher endpoint decides.
	short := citynet.Highway{A: 1, B: 3, Cost: 3}
	long := citynet.Highway{A: 1, B: 7, Cost: 3}
	assert.True(t, lessHighway(short, long))
	assert.False(t, lessHighway(short, short), "strict order: no self-precedence")
}
