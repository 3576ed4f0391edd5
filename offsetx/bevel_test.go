package offsetx

import (
	"testing"

	"github.com/patharc/offsetkit/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBevelPathAroundFallbackInsertsBridgeTriangle exercises the LineAround
// branch of BevelPath's non-arc walk on spikePath's sharp apex, mirroring
// TestOffsetPathAroundFallbackEmitsPostExtended's ground truth: the segment
// whose incoming junction falls back to LineAround gets an extra
// BevelPolygon triangle spanning AnteExtended/PostExtended ahead of its
// regular quad, instead of folding straight into one quad.
func TestBevelPathAroundFallbackInsertsBridgeTriangle(t *testing.T) {
	p := spikePath()
	d := kernel.IntRat(100)

	segs, _, isCCW, err := originalSegments(p, nil)
	require.NoError(t, err)

	offsets := make([]Segment, len(segs))
	for i, s := range segs {
		offsets[i] = s.Offset(d, isCCW, nil)
	}
	ground, err := Intersect(offsets[2], offsets[3], d, nil)
	require.NoError(t, err)
	require.Equal(t, LineAround, ground.Kind)

	faces, err := BevelPath(p, d, Options{})
	require.NoError(t, err)
	require.Len(t, faces, 7) // 4 plain quads + 1 bridge triangle + 1 quad (spike segment) + 1 closing

	bridge := faces[3]
	assert.Equal(t, BevelPolygon, bridge.Kind)
	require.Len(t, bridge.Vertices, 3)
	assert.True(t, vec2Close(bridge.Vertices[1].X, bridge.Vertices[1].Y, ground.AnteExtended))
	assert.True(t, vec2Close(bridge.Vertices[2].X, bridge.Vertices[2].Y, ground.PostExtended))
}

// TestBevelPathPureLineSquareProducesFourQuadsAndAClosingTriangle exercises
// C6 on a path with no arcs: every straight edge contributes one
// BevelPolygon quadrilateral (its clean miter corners need no Around
// triangles), and the walk closes with one more BevelPolygon triangle, per
// spec.md §4.6.
func TestBevelPathPureLineSquareProducesFourQuadsAndAClosingTriangle(t *testing.T) {
	faces, err := BevelPath(unitSquarePath(), kernel.IntRat(1), Options{})
	require.NoError(t, err)
	require.Len(t, faces, 5)

	for _, f := range faces[:4] {
		assert.Equal(t, BevelPolygon, f.Kind)
		assert.Len(t, f.Vertices, 4)
	}
	assert.Equal(t, BevelPolygon, faces[4].Kind)
	assert.Len(t, faces[4].Vertices, 3)
}

func TestPolygonFaceComputesUnitNormal(t *testing.T) {
	f, err := BevelPath(unitSquarePath(), kernel.IntRat(1), Options{})
	require.NoError(t, err)
	for _, face := range f {
		l := face.OutwardNormal.Length().Float64()
		assert.InDelta(t, 1.0, l, 1e-9)
	}
}
