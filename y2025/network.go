package main

import (
	"strings"

	aoc "github.com/GerwinT03/advent-of-code"
)

// Day 12: relay stations are listed as "name: neighbor neighbor ...".
// Two redundant links hold the network together; severing them splits
// it into two camps.

func buildNetwork(lines []string) *aoc.Graph[string] {
	var g aoc.Graph[string]
	for _, line := range lines {
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		for _, n := range strings.Fields(rest) {
			g.AddEdge(name, n, 1)
		}
	}
	return &g
}

// severedProduct removes the network's minimum cut and returns the
// product of the two remaining camp sizes.
func severedProduct(g *aoc.Graph[string]) int {
	cuts := g.MinCut()
	g2 := g.Clone()
	for _, e := range cuts {
		g2.RemoveEdge(e.A, e.B)
	}
	side := len(g2.ReachableNodes(cuts[0].A))
	return side * (len(g.Nodes) - side)
}
