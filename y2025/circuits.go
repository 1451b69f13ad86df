package main

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	aoc "github.com/GerwinT03/advent-of-code"
	"github.com/GerwinT03/advent-of-code/viz"
)

// Day 8: junction boxes floating in 3D space get wired together
// closest pair first. Both parts and the replay recording share the
// same traversal over the same sorted pair list, so the merge order is
// identical everywhere.

type boxPair struct {
	i, j   int
	distSq int
}

func parseBoxes(p *aoc.Puzzle) []aoc.Pt3Int {
	var boxes []aoc.Pt3Int
	p.ForLines(func(line string) {
		f := strings.Split(line, ",")
		boxes = append(boxes, aoc.Pt3Int{X: aoc.Int(f[0]), Y: aoc.Int(f[1]), Z: aoc.Int(f[2])})
	})
	return boxes
}

// closestPairs returns every unordered pair of boxes sorted by squared
// distance, closest first. Pairs at equal distance keep enumeration
// order (i ascending, then j), which pins down the whole merge
// sequence for a given input.
func closestPairs(boxes []aoc.Pt3Int) []boxPair {
	pairs := make([]boxPair, 0, len(boxes)*(len(boxes)-1)/2)
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			pairs = append(pairs, boxPair{i, j, boxes[i].DistSq(boxes[j])})
		}
	}
	slices.SortStableFunc(pairs, func(a, b boxPair) int {
		return cmp.Compare(a.distSq, b.distSq)
	})
	return pairs
}

// connectBudget is how many of the cheapest pairs part 1 may attempt,
// whether or not a pair actually merges two circuits.
func connectBudget(n int) int {
	return min(1000, n/2)
}

// largestCircuits wires the budget's worth of closest pairs and returns
// the product of the three largest circuit sizes.
func largestCircuits(boxes []aoc.Pt3Int) int {
	f := aoc.NewForest(len(boxes))
	pairs := closestPairs(boxes)
	for _, p := range pairs[:connectBudget(len(boxes))] {
		f.Union(p.i, p.j)
	}
	sizes := maps.Values(f.Sizes())
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes[0] * sizes[1] * sizes[2]
}

// bridgeProduct keeps wiring closest pairs until everything is one
// circuit and returns the product of the x coordinates of the pair that
// closed it. 0 means the input never fully connected.
func bridgeProduct(boxes []aoc.Pt3Int) int {
	f := aoc.NewForest(len(boxes))
	live := len(boxes)
	for _, p := range closestPairs(boxes) {
		if !f.Union(p.i, p.j) {
			continue
		}
		live--
		if live == 1 {
			return boxes[p.i].X * boxes[p.j].X
		}
	}
	return 0
}

// circuitFrames replays the merge sequence and records one frame per
// successful union, plus the initial frame. Numeric answers come from
// largestCircuits/bridgeProduct; this path only feeds the player.
func circuitFrames(boxes []aoc.Pt3Int) *viz.Recorder {
	pts := make([][3]float64, len(boxes))
	comps := make([]int, len(boxes))
	for i, b := range boxes {
		pts[i] = [3]float64{float64(b.X), float64(b.Y), float64(b.Z)}
		comps[i] = i
	}
	r := viz.NewRecorder(pts, comps)

	f := aoc.NewForest(len(boxes))
	live := len(boxes)
	for _, p := range closestPairs(boxes) {
		if !f.Union(p.i, p.j) {
			continue
		}
		live--
		for i := range comps {
			comps[i] = f.Find(i)
		}
		r.Merge(p.i, p.j, math.Sqrt(float64(p.distSq)), comps, live)
		if live == 1 {
			break
		}
	}
	return r
}
