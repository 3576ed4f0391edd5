package geom

import (
	"fmt"

	"github.com/patharc/offsetkit/kernel"
)

// Line is a straight segment from P to Q, parametrized L(t) = P + (Q-P)*t.
// As a segment, only t in [0,1] lies on it; the intersection engine also
// uses the infinite line it supports. Grounded on
// original_source/geometry.py's Line dataclass; figuring/line.go's
// implicit ax+by=c Line contributes the ABC() bridge used by the
// line-line solver.
type Line struct {
	P, Q Vec2
}

// NewLine builds a Line between two exact points.
func NewLine(p, q Vec2) Line { return Line{P: p, Q: q} }

// Direction returns Q - P.
func (l Line) Direction() Vec2 { return l.Q.Sub(l.P) }

// At evaluates L(t) = P + (Q-P)*t.
func (l Line) At(t kernel.Expr) Vec2 {
	return l.P.Add(l.Direction().Scale(t))
}

// Swapped returns the line with both endpoints' coordinates exchanged,
// used by the line-line solver's vertical-line fallback (spec.md §4.4.1).
func (l Line) Swapped() Line {
	return Line{P: l.P.Swapped(), Q: l.Q.Swapped()}
}

// ABC returns the implicit coefficients (a, b, c) of a*x + b*y = c for the
// infinite line through P and Q, matching figuring/line.go's
// representation: a = dy, b = -dx, c = a*P.x + b*P.y.
func (l Line) ABC() (a, b, c kernel.Expr) {
	d := l.Direction()
	a = d.Y
	b = d.X.Neg()
	c = a.Mul(l.P.X).Add(b.Mul(l.P.Y))
	return
}

// IsVertical reports whether the line has no x-coefficient variation, i.e.
// is parallel to the Y axis (x = const). Grounded on
// original_source/intersect.py's `is_zero(l1.delta.x)` guard against
// dividing by a zero x-delta in intersect_non_vertical.
func (l Line) IsVertical(n *kernel.Precision) bool {
	return kernel.IsZero(l.Direction().X, n)
}

// InwardNormal returns the unit normal pointing into the polygon's
// interior given orientation isCCW, per spec.md §4.2: (dy, -dx) if CCW,
// else (-dy, dx), normalized.
func (l Line) InwardNormal(isCCW bool) Vec2 {
	d := l.Direction()
	var n Vec2
	if isCCW {
		n = V2(d.Y, d.X.Neg())
	} else {
		n = V2(d.Y.Neg(), d.X)
	}
	return n.Normalize()
}

// Offset translates both endpoints by d * inward-normal(isCCW), returning
// a new Line. When n is non-nil, the result is evaluated at that
// precision; otherwise the displacement stays symbolic. Grounded on
// original_source/geometry.py's Line.offset.
func (l Line) Offset(d kernel.Expr, isCCW bool, n *kernel.Precision) Line {
	disp := l.InwardNormal(isCCW).Scale(d)
	if n != nil {
		disp = Vec2{X: kernel.EvalTo(disp.X, *n), Y: kernel.EvalTo(disp.Y, *n)}
	}
	return Line{P: l.P.Add(disp), Q: l.Q.Add(disp)}
}

func (l Line) String() string {
	return fmt.Sprintf("Line[%s -> %s]", l.P, l.Q)
}
