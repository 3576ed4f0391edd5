package offsetx

import (
	"testing"

	"github.com/patharc/offsetkit/geom"
	"github.com/patharc/offsetkit/kernel"
	"github.com/stretchr/testify/assert"
)

func TestSegmentEndpointsDelegateByKind(t *testing.T) {
	l := LineSegment(geom.NewLine(geom.V2(kernel.ZeroRat, kernel.ZeroRat), geom.V2(kernel.IntRat(1), kernel.ZeroRat)))
	assert.InDelta(t, 0.0, l.StartPoint().X.Float64(), 1e-9)
	assert.InDelta(t, 1.0, l.EndPoint().X.Float64(), 1e-9)

	arc := geom.ParametricArc{
		C: geom.V2(kernel.ZeroRat, kernel.ZeroRat), R: geom.V2(kernel.IntRat(1), kernel.IntRat(1)),
		Theta0: kernel.ZeroRat, DeltaTheta: kernel.IntRat(90), Phi: kernel.ZeroRat,
	}
	s := ArcSegment(arc)
	assert.InDelta(t, 1.0, s.StartPoint().X.Float64(), 1e-9)
	assert.InDelta(t, 0.0, s.EndPoint().X.Float64(), 1e-9)
}

func TestSegmentOffsetDispatchesToUnderlyingShape(t *testing.T) {
	l := LineSegment(geom.NewLine(geom.V2(kernel.ZeroRat, kernel.ZeroRat), geom.V2(kernel.IntRat(1), kernel.ZeroRat)))
	off := l.Offset(kernel.NewRat(1, 4), true, nil)
	assert.False(t, off.IsArc)
	assert.NotEqual(t, 0.0, off.Line.P.Sub(l.Line.P).Length().Float64())

	arc := geom.ParametricArc{
		C: geom.V2(kernel.ZeroRat, kernel.ZeroRat), R: geom.V2(kernel.IntRat(1), kernel.IntRat(1)),
		Theta0: kernel.ZeroRat, DeltaTheta: kernel.IntRat(-90), Phi: kernel.ZeroRat,
	}
	s := ArcSegment(arc)
	offArc := s.Offset(kernel.NewRat(1, 4), true, nil)
	assert.True(t, offArc.IsArc)
	assert.InDelta(t, 0.75, offArc.Arc.R.X.Float64(), 1e-9)
}
