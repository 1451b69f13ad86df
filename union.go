package aoc

// Forest is a disjoint-set forest (union-find) over the indices
// [0, n). Merges use union by size with path compression, so Find and
// Union are amortized near-constant time. Sets can only grow; there is
// no removal.
type Forest struct {
	parent []int
	size   []int
}

// NewForest returns a forest of n singleton sets.
func NewForest(n int) *Forest {
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}
	return f
}

// Len returns the number of indices in the forest.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Find returns the root of x's set. Every node visited on the way up is
// re-pointed directly at the root.
func (f *Forest) Find(x int) int {
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[x] != root {
		f.parent[x], x = root, f.parent[x]
	}
	return root
}

// Union merges the sets containing a and b and reports whether a merge
// happened; false means they were already in the same set. The smaller
// set's root is attached under the larger's. On a size tie a's root
// wins, which keeps the merge sequence deterministic for callers that
// surface roots (e.g. component coloring).
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	return true
}

// Size returns the size of the set containing x.
func (f *Forest) Size(x int) int {
	return f.size[f.Find(x)]
}

// Sizes returns the size of every set, keyed by root.
func (f *Forest) Sizes() map[int]int {
	sizes := make(map[int]int)
	for i := range f.parent {
		sizes[f.Find(i)]++
	}
	return sizes
}
