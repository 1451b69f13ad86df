package aoc

import (
	"slices"
	"testing"
)

func TestForestFind(t *testing.T) {
	f := NewForest(6)
	f.Union(0, 1)
	f.Union(1, 2)
	f.Union(3, 4)

	for i := 0; i < f.Len(); i++ {
		r1 := f.Find(i)
		r2 := f.Find(i)
		if r1 != r2 {
			t.Errorf("Find(%d) not idempotent: %d then %d", i, r1, r2)
		}
	}

	// The size recorded at a root must match the number of indices
	// whose Find resolves to it.
	counts := map[int]int{}
	for i := 0; i < f.Len(); i++ {
		counts[f.Find(i)]++
	}
	for root, n := range counts {
		if got := f.Size(root); got != n {
			t.Errorf("Size(%d) = %d, want %d", root, got, n)
		}
	}
}

func TestForestUnion(t *testing.T) {
	f := NewForest(4)
	if !f.Union(0, 1) {
		t.Fatal("Union(0, 1) = false, want true")
	}
	if f.Union(0, 1) {
		t.Error("repeated Union(0, 1) = true, want false")
	}
	if f.Union(1, 0) {
		t.Error("Union(1, 0) after Union(0, 1) = true, want false")
	}
	if f.Find(0) != f.Find(1) {
		t.Error("0 and 1 not in same set after union")
	}
	if f.Find(2) == f.Find(0) || f.Find(3) == f.Find(0) {
		t.Error("union touched unrelated sets")
	}

	before := slices.Clone(f.parent)
	f.Union(0, 1) // no-op
	if !slices.Equal(f.parent, before) {
		t.Errorf("no-op union mutated parents: %v -> %v", before, f.parent)
	}
}

func TestForestUnionBySize(t *testing.T) {
	f := NewForest(5)
	f.Union(0, 1)
	f.Union(0, 2)
	// {0,1,2} is larger than {3,4}; its root must survive the merge.
	f.Union(3, 4)
	big := f.Find(0)
	f.Union(3, 0)
	if got := f.Find(3); got != big {
		t.Errorf("root after merging small into big = %d, want %d", got, big)
	}
	if got := f.Size(4); got != 5 {
		t.Errorf("Size = %d, want 5", got)
	}
}

func TestForestUnionTieBreak(t *testing.T) {
	// Equal-size merge keeps the first argument's root.
	f := NewForest(4)
	f.Union(0, 1)
	f.Union(2, 3)
	ra, rb := f.Find(0), f.Find(2)
	f.Union(0, 2)
	if got := f.Find(3); got != ra {
		t.Errorf("tie-break root = %d, want %d (first arg's root, not %d)", got, ra, rb)
	}
}

func TestForestSizes(t *testing.T) {
	f := NewForest(6)
	f.Union(0, 1)
	f.Union(2, 3)
	f.Union(2, 4)
	sizes := f.Sizes()
	if len(sizes) != 3 {
		t.Fatalf("got %d sets, want 3: %v", len(sizes), sizes)
	}
	var got []int
	for _, n := range sizes {
		got = append(got, n)
	}
	slices.Sort(got)
	if want := []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("set sizes = %v, want %v", got, want)
	}
}
