package dsu_test

import (
	"testing"

	"github.com/katalvlaran/portway/dsu" // package under test
	"github.com/stretchr/testify/assert" // assertion library
)

// TestNew_Singletons verifies that a fresh forest starts as n singleton
// components, each element its own representative of size 1.
func TestNew_Singletons(t *testing.T) {
	f := dsu.New(5)

	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.Components())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, f.Find(i), "singleton must be its own root")
		assert.Equal(t, 1, f.Size(i))
	}
}

// TestFind_Idempotent verifies Find(Find(x)) == Find(x) before and after
// a chain of unions.
func TestFind_Idempotent(t *testing.T) {
	f := dsu.New(8)

	// Chain 0-1-2-3 together, leave the rest alone.
	f.Union(0, 1)
	f.Union(1, 2)
	f.Union(2, 3)

	for i := 0; i < 8; i++ {
		root := f.Find(i)
		assert.Equal(t, root, f.Find(root), "Find must be idempotent for %d", i)
	}
}

// TestUnion_MergeSemantics verifies that Union reports merges accurately and
// that merging two elements already in one component never changes the
// component count.
func TestUnion_MergeSemantics(t *testing.T) {
	f := dsu.New(4)

	assert.True(t, f.Union(0, 1)) // first merge succeeds
	assert.Equal(t, 3, f.Components())
	assert.False(t, f.Union(1, 0)) // same pair again is a no-op
	assert.Equal(t, 3, f.Components(), "no-op union must not change count")

	assert.True(t, f.Union(2, 3))
	assert.True(t, f.Union(0, 3)) // bridges the two pairs
	assert.Equal(t, 1, f.Components())
	assert.Equal(t, 4, f.Size(1))
}

// TestUnion_BySize verifies that the larger component's root survives a
// merge, and that on a size tie the first argument's root survives.
func TestUnion_BySize(t *testing.T) {
	f := dsu.New(6)

	// Build a component of size 3 rooted via element 0.
	f.Union(0, 1)
	f.Union(0, 2)
	big := f.Find(0)

	// Merging a singleton into it must keep the big root.
	f.Union(5, 0)
	assert.Equal(t, big, f.Find(5), "smaller side attaches under larger root")

	// Tie case: two fresh singletons; the first argument's root survives.
	g := dsu.New(2)
	g.Union(1, 0)
	assert.Equal(t, 1, g.Find(0), "tie must keep the first argument's root")
}

// TestSingleComponentCollapse merges a larger universe into one component
// and verifies every Find agrees on the surviving root.
func TestSingleComponentCollapse(t *testing.T) {
	const n = 64
	f := dsu.New(n)
	for i := 1; i < n; i++ {
		f.Union(0, i)
	}

	root := f.Find(n - 1)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, f.Find(i))
	}
	assert.Equal(t, n, f.Size(root))
	assert.Equal(t, 1, f.Components())
}
