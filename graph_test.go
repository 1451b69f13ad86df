package aoc

import (
	"slices"
	"testing"
)

// twoCamps builds two fully connected four-node camps joined by exactly
// two links, so the minimum cut is known by construction.
func twoCamps() *Graph[string] {
	var g Graph[string]
	for _, camp := range [][]string{{"a", "b", "c", "d"}, {"e", "f", "g", "h"}} {
		for i, v := range camp {
			for _, w := range camp[i+1:] {
				g.AddEdge(v, w, 1)
			}
		}
	}
	g.AddEdge("a", "e", 1)
	g.AddEdge("b", "f", 1)
	return &g
}

func TestGraphMinCut(t *testing.T) {
	cuts := twoCamps().MinCut()
	if len(cuts) != 2 {
		t.Fatalf("got %d cut edges, want 2: %v", len(cuts), cuts)
	}
	var got []string
	for _, e := range cuts {
		a, b := e.A, e.B
		if a > b {
			a, b = b, a
		}
		got = append(got, a+"-"+b)
	}
	slices.Sort(got)
	if want := []string{"a-e", "b-f"}; !slices.Equal(got, want) {
		t.Errorf("cut = %v, want %v", got, want)
	}
}

func TestGraphAllShortestPaths(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("a", "c", 5)
	dist := g.AllShortestPaths()
	tests := []struct {
		from, to string
		want     int
	}{
		{"a", "a", 0},
		{"a", "b", 1},
		{"b", "c", 2},
		{"a", "c", 3}, // via b, shorter than the direct edge
		{"c", "a", 3},
	}
	for _, tt := range tests {
		if got := dist[Edge[string]{tt.from, tt.to}]; got != tt.want {
			t.Errorf("dist[%s->%s] = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestGraphNumPaths(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 1)
	g.AddEdge("b", "d", 1)
	g.AddEdge("c", "d", 1)
	if got := g.NumPaths("a", "d"); got != 2 {
		t.Errorf("NumPaths(a, d) = %d, want 2", got)
	}
}

func TestGraphReachableNodes(t *testing.T) {
	g := twoCamps()
	g.RemoveEdge("a", "e")
	g.RemoveEdge("b", "f")
	reach := g.ReachableNodes("a")
	if len(reach) != 4 {
		t.Fatalf("got %d reachable nodes, want 4: %v", len(reach), reach)
	}
	if reach["e"] {
		t.Error("e reachable from a after severing both links")
	}
}

func TestGridToGraph(t *testing.T) {
	g := Grid[byte]{[]byte("....")}
	graph := g.ToGraph(Pt{0, 0}, false, func(b byte) bool { return b == '#' })
	if len(graph.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2 after collapsing the corridor: %v", len(graph.Nodes), graph.Nodes)
	}
	if got := graph.Edges[Pt{0, 0}][Pt{3, 0}]; got != 3 {
		t.Errorf("collapsed corridor length = %d, want 3", got)
	}
}
