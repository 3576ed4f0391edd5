package offsetx

import (
	"testing"

	"github.com/patharc/offsetkit/geom"
	"github.com/patharc/offsetkit/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectCrossingLinesWithinBothSegments(t *testing.T) {
	l0 := geom.NewLine(geom.V2(kernel.ZeroRat, kernel.ZeroRat), geom.V2(kernel.IntRat(2), kernel.ZeroRat))
	l1 := geom.NewLine(geom.V2(kernel.IntRat(1), kernel.IntRat(-1)), geom.V2(kernel.IntRat(1), kernel.IntRat(1)))

	r, err := Intersect(LineSegment(l0), LineSegment(l1), nil, nil)
	require.NoError(t, err)
	require.Equal(t, LineLine, r.Kind)
	assert.InDelta(t, 1.0, r.Intersection.X.Float64(), 1e-9)
	assert.InDelta(t, 0.0, r.Intersection.Y.Float64(), 1e-9)
}

func TestIntersectParallelLinesFallBackToAround(t *testing.T) {
	l0 := geom.NewLine(geom.V2(kernel.ZeroRat, kernel.ZeroRat), geom.V2(kernel.IntRat(1), kernel.ZeroRat))
	l1 := geom.NewLine(geom.V2(kernel.ZeroRat, kernel.IntRat(1)), geom.V2(kernel.IntRat(1), kernel.IntRat(1)))

	r, err := Intersect(LineSegment(l0), LineSegment(l1), kernel.IntRat(1), nil)
	require.NoError(t, err)
	require.Equal(t, LineAround, r.Kind)
	assert.InDelta(t, 2.0, r.AnteExtended.X.Float64(), 1e-9)
	assert.InDelta(t, 0.0, r.AnteExtended.Y.Float64(), 1e-9)
	assert.InDelta(t, -1.0, r.PostExtended.X.Float64(), 1e-9)
	assert.InDelta(t, 1.0, r.PostExtended.Y.Float64(), 1e-9)
	assert.InDelta(t, 0.5, r.Intersection.X.Float64(), 1e-9)
	assert.InDelta(t, 0.5, r.Intersection.Y.Float64(), 1e-9)
}

func TestIntersectParallelLinesWithoutFallbackDistanceFails(t *testing.T) {
	l0 := geom.NewLine(geom.V2(kernel.ZeroRat, kernel.ZeroRat), geom.V2(kernel.IntRat(1), kernel.ZeroRat))
	l1 := geom.NewLine(geom.V2(kernel.ZeroRat, kernel.IntRat(1)), geom.V2(kernel.IntRat(1), kernel.IntRat(1)))

	_, err := Intersect(LineSegment(l0), LineSegment(l1), nil, nil)
	require.Error(t, err)
	var unavailable *IntersectionUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestIntersectCoincidentLinesReportLineCoincident(t *testing.T) {
	l0 := geom.NewLine(geom.V2(kernel.ZeroRat, kernel.ZeroRat), geom.V2(kernel.IntRat(1), kernel.ZeroRat))
	l1 := geom.NewLine(geom.V2(kernel.IntRat(2), kernel.ZeroRat), geom.V2(kernel.IntRat(3), kernel.ZeroRat))

	r, err := Intersect(LineSegment(l0), LineSegment(l1), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, LineCoincident, r.Kind)
}
