package offsetx

import (
	"testing"

	"github.com/patharc/offsetkit/kernel"
	"github.com/patharc/offsetkit/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOffsetPathTriangleScenario ports the literal triangle end-to-end
// scenario (prec=None, d=0.1): M 0 0 L 1 1 H 0 Z offsets to
// M 0.1 0.2414213562373095048801688724
// L 0.7585786437626904951198311276 0.9 L 0.1 0.9 Z. OffsetPath emits one
// LineTo per segment, so its item list also holds the closing LineTo back
// to the start point, which the textual form above leaves to Z. Every
// junction here is a clean line-line miter, none fall back to Around,
// giving independent coverage of the non-fallback path alongside the
// Around regressions above.
func TestOffsetPathTriangleScenario(t *testing.T) {
	p := path.New(
		path.MoveTo{X: kernel.ZeroRat, Y: kernel.ZeroRat},
		path.LineTo{X: kernel.IntRat(1), Y: kernel.IntRat(1)},
		path.HorizontalLineTo{X: kernel.ZeroRat},
		path.ClosePath{},
	)
	d, err := kernel.DecToRat("0.1")
	require.NoError(t, err)

	result, err := OffsetPath(p, d, Options{})
	require.NoError(t, err)
	require.Len(t, result.Items, 5) // MoveTo + 3 LineTo + ClosePath

	mv, ok := result.Items[0].(path.MoveTo)
	require.True(t, ok)
	assert.InDelta(t, 0.1, mv.X.Float64(), 1e-9)
	assert.InDelta(t, 0.2414213562373095, mv.Y.Float64(), 1e-9)

	want := [][2]float64{
		{0.7585786437626905, 0.9},
		{0.1, 0.9},
		{0.1, 0.2414213562373095},
	}
	for i, w := range want {
		lt, ok := result.Items[i+1].(path.LineTo)
		require.True(t, ok)
		assert.InDelta(t, w[0], lt.X.Float64(), 1e-9)
		assert.InDelta(t, w[1], lt.Y.Float64(), 1e-9)
	}

	_, ok = result.Items[4].(path.ClosePath)
	assert.True(t, ok)
}
