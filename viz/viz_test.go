package viz

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"
)

func recordSample() *Document {
	pts := [][3]float64{{0, 0, 0}, {1, 0, 0}, {10, 10, 10}, {11, 10, 10}}
	r := NewRecorder(pts, []int{0, 1, 2, 3})
	r.Merge(0, 1, 1, []int{0, 0, 2, 3}, 3)
	r.Merge(2, 3, 1, []int{0, 0, 2, 2}, 2)
	return r.Document()
}

func TestRecorder(t *testing.T) {
	doc := recordSample()
	require.Equal(t, Format, doc.Format)
	require.Len(t, doc.Frames, 3, "initial frame plus one per merge")

	assert.Empty(t, doc.Frames[0].Edges)
	assert.Len(t, doc.Frames[1].Edges, 1)
	assert.Len(t, doc.Frames[2].Edges, 2)

	require.NotNil(t, doc.Frames[2].Highlight)
	assert.Equal(t, Edge{A: 2, B: 3, Dist: 1}, *doc.Frames[2].Highlight)

	// Every node keeps its id and picks up the merged component.
	last := doc.Frames[2].Nodes
	require.Len(t, last, 4)
	assert.Equal(t, last[0].Component, last[1].Component)
	assert.Equal(t, last[2].Component, last[3].Component)
	assert.NotEqual(t, last[0].Component, last[2].Component)

	// Palette covers every component id seen in any frame.
	for _, f := range doc.Frames {
		for _, n := range f.Nodes {
			assert.Contains(t, doc.Palette, n.Component)
		}
	}
}

func TestRecorderReproducible(t *testing.T) {
	a, b := recordSample(), recordSample()
	assert.Equal(t, deephash.Hash(a), deephash.Hash(b))
}

func TestGridRecorder(t *testing.T) {
	r := NewGridRecorder()
	r.GridFrame([]string{"..", ".."}, "start", nil)
	r.GridFrame([]string{"o.", ".."}, "fill 0", []int{0})
	doc := r.Document()
	require.Len(t, doc.Frames, 2)
	assert.Nil(t, doc.Palette)
	assert.Equal(t, []string{"o.", ".."}, doc.Frames[1].Grid)
	assert.Equal(t, []int{0}, doc.Frames[1].HighlightNodes)
}

func TestGridRecorderMerge(t *testing.T) {
	// A grid recorder must accept graph-style frames too, e.g. when a
	// solution mixes grid snapshots with merge annotations.
	r := NewGridRecorder()
	r.GridFrame([]string{".."}, "start", nil)
	assert.NotPanics(t, func() { r.Merge(0, 1, 1, nil, 1) })
	assert.Equal(t, 2, r.Len())
}

func TestRecorderZeroValue(t *testing.T) {
	// The zero Recorder still tracks component ids for the palette.
	r := &Recorder{pos: [][2]float64{{0, 0}, {1, 1}}}
	assert.NotPanics(t, func() { r.Merge(0, 1, 1, []int{0, 0}, 1) })
	assert.Contains(t, r.Document().Palette, 0)
}

func TestComponentColor(t *testing.T) {
	assert.Equal(t, componentColor(3), componentColor(3))
	assert.NotEqual(t, componentColor(0), componentColor(1))
	assert.Regexp(t, `^#[0-9a-f]{6}$`, componentColor(42))
}

func TestDocumentWriteFile(t *testing.T) {
	doc := recordSample()
	path := Path(t.TempDir(), 2025, 8, "circuits")
	require.NoError(t, doc.WriteFile(path))
	assert.Equal(t, filepath.Join("2025", "8", "circuits.json"), mustRel(t, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Document
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, Format, got.Format)
	assert.Len(t, got.Frames, 3)
	assert.Equal(t, doc.Palette, got.Palette)
}

func mustRel(t *testing.T, path string) string {
	t.Helper()
	// The artifact lives under <tmp>/<year>/<day>/<id>.json; strip the
	// temp dir prefix (first path element group) for the assertion.
	dir := filepath.Dir(filepath.Dir(filepath.Dir(path)))
	rel, err := filepath.Rel(dir, path)
	require.NoError(t, err)
	return rel
}
