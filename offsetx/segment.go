package offsetx

import (
	"github.com/patharc/offsetkit/geom"
	"github.com/patharc/offsetkit/kernel"
)

// Segment is the normal form of an original or offset path piece: either a
// Line or an Arc, never both, matching the "Line or Arc" closed family of
// spec.md §4.3. Grounded on original_source/geometry.py, where the
// equivalent union is expressed via isinstance checks; Go encodes the
// same closed family as tagged fields rather than an interface so the
// intersection engine (C4) can switch on IsArc directly per spec.md
// §4.4's "dispatches by the pair (typeOf(A), typeOf(B))".
type Segment struct {
	IsArc bool
	Line  geom.Line
	Arc   geom.ParametricArc
}

// LineSegment wraps a Line as a Segment.
func LineSegment(l geom.Line) Segment { return Segment{IsArc: false, Line: l} }

// ArcSegment wraps a ParametricArc as a Segment.
func ArcSegment(a geom.ParametricArc) Segment { return Segment{IsArc: true, Arc: a} }

// StartPoint returns the segment's starting endpoint.
func (s Segment) StartPoint() geom.Vec2 {
	if s.IsArc {
		return s.Arc.StartPoint()
	}
	return s.Line.P
}

// EndPoint returns the segment's ending endpoint.
func (s Segment) EndPoint() geom.Vec2 {
	if s.IsArc {
		return s.Arc.EndPoint()
	}
	return s.Line.Q
}

// Offset builds the offset segment per C3 (spec.md §4.3): an inward-normal
// translation for a line, a radius-shrink for an arc.
func (s Segment) Offset(d kernel.Expr, isCCW bool, n *kernel.Precision) Segment {
	if s.IsArc {
		return ArcSegment(s.Arc.Offset(d, isCCW, n))
	}
	return LineSegment(s.Line.Offset(d, isCCW, n))
}
