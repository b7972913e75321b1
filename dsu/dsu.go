// Package dsu provides the array-based disjoint-set forest used to track
// connected components of cities during plan selection.
package dsu

// Forest is a disjoint-set forest over elements 0..n-1 with path
// compression and union by size. The zero value is unusable; construct
// with New.
type Forest struct {
	// parent[i] is the parent of element i; roots satisfy parent[i] == i.
	parent []int
	// size[i] is the component size; valid only while i is a root.
	size []int
	// components is the current number of disjoint components.
	components int
}

// New returns a forest of n singleton components, one per element 0..n-1.
//
// Complexity: O(n) time and space.
func New(n int) *Forest {
	f := &Forest{
		parent:     make([]int, n),
		size:       make([]int, n),
		components: n,
	}
	// Every element starts as its own root with component size 1.
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// Find returns the representative (root) of x's component, compressing the
// walked path so that every visited element points directly at the root.
// Find is idempotent: Find(Find(x)) == Find(x).
//
// Complexity: O(α(n)) amortized.
func (f *Forest) Find(x int) int {
	// 1. Walk up to locate the root without mutating anything.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}

	// 2. Second pass: repoint every element on the path at the root.
	for f.parent[x] != root {
		x, f.parent[x] = f.parent[x], root
	}

	return root
}

// Union merges the components containing x and y and reports whether a
// merge happened (false when both already share a component). The smaller
// component's root is attached under the larger; on a size tie the root of
// x survives as representative, which lets callers pin a designated
// element as the long-lived root of its component.
//
// Complexity: O(α(n)) amortized.
func (f *Forest) Union(x, y int) bool {
	rootX := f.Find(x)
	rootY := f.Find(y)
	if rootX == rootY {
		// Already in the same component; no-op.
		return false
	}

	// Attach the smaller component under the larger. Ties keep rootX.
	if f.size[rootX] < f.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	f.parent[rootY] = rootX
	f.size[rootX] += f.size[rootY]
	f.components--

	return true
}

// Size returns the number of elements in x's component.
func (f *Forest) Size(x int) int {
	return f.size[f.Find(x)]
}

// Components returns the current number of disjoint components.
//
// Complexity: O(1).
func (f *Forest) Components() int {
	return f.components
}

// Len returns the size of the element universe the forest was built over.
func (f *Forest) Len() int {
	return len(f.parent)
}
