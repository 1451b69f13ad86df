package main

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/GerwinT03/advent-of-code"
	"github.com/GerwinT03/advent-of-code/viz"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed main.go
var source []byte

// vizDir is where recorded replays land; vizserve serves them from the
// same layout.
const vizDir = "vizdata"

type solver struct {
	*aoc.Puzzle
}

/*
want=2

L50
R60
L70
R10
*/
func (s solver) D1p1() any {
	pos, zeros := 50, 0
	s.ForLines(func(line string) {
		d := aoc.Int(line[1:])
		if line[0] == 'L' {
			d = -d
		}
		pos = ((pos+d)%100 + 100) % 100
		if pos == 0 {
			zeros++
		}
	})
	return zeros
}

// want=3
func (s solver) D1p2() any {
	pos, zeros := 50, 0
	s.ForLines(func(line string) {
		step := 1
		if line[0] == 'L' {
			step = -1
		}
		for i := aoc.Int(line[1:]); i > 0; i-- {
			pos = ((pos+step)%100 + 100) % 100
			if pos == 0 {
				zeros++
			}
		}
	})
	return zeros
}

/*
want=110

10-14,95-115
*/
func (s solver) D2p1() any {
	return sumInvalidIDs(s.Puzzle, doubled)
}

// want=221
func (s solver) D2p2() any {
	return sumInvalidIDs(s.Puzzle, repeated)
}

func sumInvalidIDs(p *aoc.Puzzle, invalid func(string) bool) int {
	sum := 0
	p.ForLines(func(line string) {
		for _, rng := range strings.Split(line, ",") {
			lo, hi, ok := strings.Cut(rng, "-")
			if !ok {
				continue
			}
			for id := aoc.Int(lo); id <= aoc.Int(hi); id++ {
				if invalid(strconv.Itoa(id)) {
					sum += id
				}
			}
		}
	})
	return sum
}

// doubled reports whether s is some digit block repeated exactly twice.
func doubled(s string) bool {
	return len(s)%2 == 0 && s[:len(s)/2] == s[len(s)/2:]
}

// repeated reports whether s is some digit block repeated two or more times.
func repeated(s string) bool {
	for b := 1; b <= len(s)/2; b++ {
		if len(s)%b == 0 && strings.Repeat(s[:b], len(s)/b) == s {
			return true
		}
	}
	return false
}

/*
want=8

S..#.
.#.#.
...#.
*/
func (s solver) D7p1() any {
	g, start := parseCave(s.Puzzle)
	return aoc.FloodFill(g, start, '.', 'o', nil)
}

// want=2
func (s solver) D7p2() any {
	g, _ := parseCave(s.Puzzle)
	regions := 0
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if aoc.FloodFill(g, aoc.Pt{X: x, Y: y}, '.', 'o', nil) > 0 {
				regions++
			}
		}
	}
	return regions
}

// want=9
func (s solver) D7p1v() any {
	g, start := parseCave(s.Puzzle)
	r := viz.NewGridRecorder()
	w := g.Size().X
	r.GridFrame(gridRows(g), "start", nil)
	aoc.FloodFill(g, start, '.', 'o', func(p aoc.Pt) {
		r.GridFrame(gridRows(g), fmt.Sprintf("fill %d,%d", p.X, p.Y), []int{p.Y*w + p.X})
	})
	if !s.SampleMode {
		aoc.MustDo(r.Document().WriteFile(viz.Path(vizDir, s.Year(), s.Day(), "cave")))
	}
	return r.Len()
}

func parseCave(p *aoc.Puzzle) (aoc.Grid[byte], aoc.Pt) {
	var g aoc.Grid[byte]
	var start aoc.Pt
	p.ForLinesY(func(y int, line string) {
		if x := strings.IndexByte(line, 'S'); x != -1 {
			start = aoc.Pt{X: x, Y: y}
			line = strings.ReplaceAll(line, "S", ".")
		}
		g = append(g, []byte(line))
	})
	return g, start
}

func gridRows(g aoc.Grid[byte]) []string {
	rows := make([]string, len(g))
	for i, row := range g {
		rows[i] = string(row)
	}
	return rows
}

/*
want=16

1,0,0
2,0,0
3,0,0
4,0,0
101,0,0
102,0,0
103,0,0
104,0,0
5,100,0
5,101,0
5,102,0
5,103,0
*/
func (s solver) D8p1() any {
	return largestCircuits(parseBoxes(s.Puzzle))
}

// want=20
func (s solver) D8p2() any {
	return bridgeProduct(parseBoxes(s.Puzzle))
}

// want=12
func (s solver) D8p2v() any {
	r := circuitFrames(parseBoxes(s.Puzzle))
	if !s.SampleMode {
		aoc.MustDo(r.Document().WriteFile(viz.Path(vizDir, s.Year(), s.Day(), "circuits")))
	}
	return r.Len()
}

/*
want=16

a: b c d e
b: c d f
c: d
e: f g h
f: g h
g: h
*/
func (s solver) D12p1() any {
	var lines []string
	s.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return severedProduct(buildNetwork(lines))
}
