package aoc

import "testing"

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts  []Pt
		want int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			want: 25,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.want {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.want)
		}
	}
}

func TestPt3DistSq(t *testing.T) {
	tests := []struct {
		a, b Pt3Int
		want int
	}{
		{Pt3Int{0, 0, 0}, Pt3Int{0, 0, 0}, 0},
		{Pt3Int{0, 0, 0}, Pt3Int{1, 0, 0}, 1},
		{Pt3Int{1, 2, 3}, Pt3Int{4, 6, 3}, 25},
		{Pt3Int{-1, -1, -1}, Pt3Int{1, 1, 1}, 12},
	}
	for _, tt := range tests {
		if got := tt.a.DistSq(tt.b); got != tt.want {
			t.Errorf("%v.DistSq(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.DistSq(tt.a); got != tt.want {
			t.Errorf("%v.DistSq(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample("foo", tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestFloodFill(t *testing.T) {
	g := Grid[byte]{
		[]byte("..#."),
		[]byte(".##."),
		[]byte("..#."),
	}
	if got := FloodFill(g, Pt{0, 0}, '.', 'o', nil); got != 5 {
		t.Errorf("FloodFill = %d, want 5", got)
	}
	if g.At(Pt{3, 1}) != '.' {
		t.Error("flood fill leaked through the wall")
	}
	if g.At(Pt{0, 2}) != 'o' {
		t.Error("reachable cell not filled")
	}
}
