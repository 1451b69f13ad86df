// Package viz records algorithm snapshots as replayable animation
// frames and writes them as JSON documents for the web player.
package viz

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
)

// Format is the document format tag understood by the player.
const Format = "viz/v1"

// Document is a finite, ordered frame sequence plus a color palette
// keyed by component id. Replays always start from frame 0.
type Document struct {
	Format  string         `json:"format"`
	Frames  []Frame        `json:"frames"`
	Palette map[int]string `json:"palette,omitempty"`
}

// Node is one rendered point: a stable id, a 2D layout position and the
// id of the component it currently belongs to.
type Node struct {
	ID        int        `json:"id"`
	Pos       [2]float64 `json:"pos"`
	Component int        `json:"component"`
}

// Edge connects two node ids. Dist is the human-readable edge length,
// not the squared distance the algorithms sort by.
type Edge struct {
	A    int     `json:"a"`
	B    int     `json:"b"`
	Dist float64 `json:"dist"`
}

// Frame is one snapshot. Graph frames carry Nodes and Edges; grid
// frames carry Grid rows. Action and the highlight fields are optional
// annotations for the player.
type Frame struct {
	Nodes          []Node   `json:"nodes,omitempty"`
	Edges          []Edge   `json:"edges,omitempty"`
	Grid           []string `json:"grid,omitempty"`
	Action         string   `json:"action,omitempty"`
	Highlight      *Edge    `json:"highlight,omitempty"`
	HighlightNodes []int    `json:"highlightNodes,omitempty"`
}

// Recorder accumulates frames for one algorithm run.
type Recorder struct {
	frames     []Frame
	pos        [][2]float64
	edges      []Edge
	components map[int]bool
}

// NewGridRecorder returns a recorder for grid snapshots.
func NewGridRecorder() *Recorder {
	return &Recorder{components: make(map[int]bool)}
}

// NewRecorder returns a recorder for graph snapshots of the given 3D
// points. Layout positions are computed once up front; components[i] is
// the initial component id of point i. The initial frame (no edges) is
// recorded immediately.
func NewRecorder(points [][3]float64, components []int) *Recorder {
	r := &Recorder{
		pos:        Layout(points),
		components: make(map[int]bool),
	}
	r.frames = append(r.frames, Frame{
		Nodes:  r.nodes(components),
		Action: fmt.Sprintf("%d points, no connections", len(points)),
	})
	return r
}

func (r *Recorder) nodes(components []int) []Node {
	if r.components == nil {
		r.components = make(map[int]bool)
	}
	nodes := make([]Node, len(components))
	for i, c := range components {
		nodes[i] = Node{ID: i, Pos: r.pos[i], Component: c}
		r.components[c] = true
	}
	return nodes
}

// Merge records a frame after points a and b were connected. dist is
// the edge length to report, components the per-point component ids
// after the merge, and live the number of components remaining.
func (r *Recorder) Merge(a, b int, dist float64, components []int, live int) {
	e := Edge{A: a, B: b, Dist: dist}
	r.edges = append(r.edges, e)
	r.frames = append(r.frames, Frame{
		Nodes:     r.nodes(components),
		Edges:     slices.Clone(r.edges),
		Action:    fmt.Sprintf("connect %d-%d (d=%.1f), %d left", a, b, dist, live),
		Highlight: &e,
	})
}

// GridFrame records a grid snapshot. highlight, if non-nil, marks cells
// by row-major index.
func (r *Recorder) GridFrame(rows []string, action string, highlight []int) {
	r.frames = append(r.frames, Frame{
		Grid:           slices.Clone(rows),
		Action:         action,
		HighlightNodes: slices.Clone(highlight),
	})
}

// Len returns the number of frames recorded so far.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Document finalizes the recording. The palette covers every component
// id seen in any frame.
func (r *Recorder) Document() *Document {
	doc := &Document{
		Format: Format,
		Frames: r.frames,
	}
	if len(r.components) > 0 {
		doc.Palette = make(map[int]string, len(r.components))
		for c := range r.components {
			doc.Palette[c] = componentColor(c)
		}
	}
	return doc
}

// componentColor returns a stable hex color for a component id. Hues
// step by the golden angle so neighboring ids stay distinguishable.
func componentColor(id int) string {
	h := float64((id * 137) % 360)
	r, g, b := hslToRGB(h, 0.65, 0.55)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// WriteFile writes the document as indented JSON, creating parent
// directories as needed.
func (d *Document) WriteFile(path string) error {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// Path returns the artifact location for a puzzle's recording under
// dir, as served by vizserve.
func Path(dir string, year, day int, id string) string {
	return filepath.Join(dir, fmt.Sprint(year), fmt.Sprint(day), id+".json")
}
