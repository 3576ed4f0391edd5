package offsetx

import (
	"testing"

	"github.com/patharc/offsetkit/geom"
	"github.com/patharc/offsetkit/kernel"
	"github.com/patharc/offsetkit/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquarePath() path.Path {
	return path.New(
		path.MoveTo{X: kernel.ZeroRat, Y: kernel.ZeroRat},
		path.LineTo{X: kernel.IntRat(4), Y: kernel.ZeroRat},
		path.LineTo{X: kernel.IntRat(4), Y: kernel.IntRat(4)},
		path.LineTo{X: kernel.ZeroRat, Y: kernel.IntRat(4)},
		path.ClosePath{},
	)
}

// TestOffsetPathInsetSquare offsets a 4x4 square inward by 1 along every
// edge; every corner is a clean line-line miter and every coordinate is a
// small integer, so the evaluated results print exactly, per spec.md §4.5.
func TestOffsetPathInsetSquare(t *testing.T) {
	result, err := OffsetPath(unitSquarePath(), kernel.IntRat(1), Options{})
	require.NoError(t, err)

	require.Len(t, result.Items, 6) // MoveTo + 4 LineTo + ClosePath

	mv, ok := result.Items[0].(path.MoveTo)
	require.True(t, ok)
	assert.Equal(t, "1", mv.X.String())
	assert.Equal(t, "1", mv.Y.String())

	want := [][2]string{{"3", "1"}, {"3", "3"}, {"1", "3"}, {"1", "1"}}
	for i, w := range want {
		lt, ok := result.Items[i+1].(path.LineTo)
		require.True(t, ok)
		assert.Equal(t, w[0], lt.X.String())
		assert.Equal(t, w[1], lt.Y.String())
	}

	_, ok = result.Items[5].(path.ClosePath)
	assert.True(t, ok)
}

func TestOffsetPathRejectsPathWithoutMoveTo(t *testing.T) {
	p := path.New(path.LineTo{X: kernel.ZeroRat, Y: kernel.ZeroRat}, path.ClosePath{})
	_, err := OffsetPath(p, kernel.IntRat(1), Options{})
	require.Error(t, err)
	var invalid *InvalidPathError
	assert.ErrorAs(t, err, &invalid)
}

func TestOffsetPathRejectsPathWithoutClosePath(t *testing.T) {
	p := path.New(path.MoveTo{X: kernel.ZeroRat, Y: kernel.ZeroRat}, path.LineTo{X: kernel.IntRat(1), Y: kernel.ZeroRat})
	_, err := OffsetPath(p, kernel.IntRat(1), Options{})
	require.Error(t, err)
	var invalid *InvalidPathError
	assert.ErrorAs(t, err, &invalid)
}

// spikePath is a square with one edge replaced by a tall, narrow convex
// spike (the apex at (50,1000) is far sharper than the square's other
// corners). Offsetting inward by a distance comparable to the spike's
// half-width pulls the two offset lines bordering the apex so far apart
// that their line-line intersection falls behind both segments' own
// endpoints, forcing the LineAround bridge.
func spikePath() path.Path {
	return path.New(
		path.MoveTo{X: kernel.ZeroRat, Y: kernel.ZeroRat},
		path.LineTo{X: kernel.IntRat(100), Y: kernel.ZeroRat},
		path.LineTo{X: kernel.IntRat(100), Y: kernel.IntRat(100)},
		path.LineTo{X: kernel.IntRat(50), Y: kernel.IntRat(1000)},
		path.LineTo{X: kernel.ZeroRat, Y: kernel.IntRat(100)},
		path.ClosePath{},
	)
}

// TestOffsetPathAroundFallbackEmitsPostExtended exercises the LineAround
// branch of OffsetPath's assembly loop at the spike's apex. Intersect on
// the same pair of offset segments is used as ground truth for the
// bridge's AnteExtended/PostExtended points. The incoming line's exit
// emits AnteExtended; the outgoing line's ante side must then emit
// PostExtended (a point on the outgoing offset line), so AnteExtended
// appears exactly once rather than being repeated in place of
// PostExtended.
func TestOffsetPathAroundFallbackEmitsPostExtended(t *testing.T) {
	p := spikePath()
	d := kernel.IntRat(100)

	segs, _, isCCW, err := originalSegments(p, nil)
	require.NoError(t, err)
	require.False(t, isCCW)

	offsets := make([]Segment, len(segs))
	for i, s := range segs {
		offsets[i] = s.Offset(d, isCCW, nil)
	}

	ground, err := Intersect(offsets[2], offsets[3], d, nil)
	require.NoError(t, err)
	require.Equal(t, LineAround, ground.Kind)

	result, err := OffsetPath(p, d, Options{})
	require.NoError(t, err)

	foundPost := false
	anteCount := 0
	for _, item := range result.Items {
		lt, ok := item.(path.LineTo)
		if !ok {
			continue
		}
		if vec2Close(lt.X, lt.Y, ground.PostExtended) {
			foundPost = true
		}
		if vec2Close(lt.X, lt.Y, ground.AnteExtended) {
			anteCount++
		}
	}
	assert.Equal(t, 1, anteCount,
		"assembled path emitted AnteExtended again instead of PostExtended at the around bridge")
	assert.True(t, foundPost, "expected the around bridge's PostExtended point in the assembled path")
}

func vec2Close(x, y kernel.Expr, v geom.Vec2) bool {
	const eps = 1e-6
	dx := x.Float64() - v.X.Float64()
	dy := y.Float64() - v.Y.Float64()
	return dx > -eps && dx < eps && dy > -eps && dy < eps
}

func TestOptionsResolveModes(t *testing.T) {
	explicit := Options{Mode: ModeExplicit, Precision: kernel.NewPrecision(5, 5)}
	op, ip := explicit.resolve()
	require.NotNil(t, op)
	require.NotNil(t, ip)
	assert.Equal(t, uint(5), op.Baseline)

	auto := Options{Mode: ModeAuto, AmbientDigits: 12}
	op, ip = auto.resolve()
	require.NotNil(t, op)
	require.NotNil(t, ip)
	assert.Equal(t, uint(8), op.Additional) // DefaultAdditionalDigits

	autoInter := Options{Mode: ModeAutoIntersections, AmbientDigits: 12}
	op, ip = autoInter.resolve()
	assert.Nil(t, op)
	require.NotNil(t, ip)

	exact := Options{}
	op, ip = exact.resolve()
	assert.Nil(t, op)
	assert.Nil(t, ip)
}
