// Package path implements the shared SVG path item model the offset engine
// consumes and produces: a sequence of drawing commands with absolute
// target points, and the elliptical-arc endpoint-to-center conversion the
// engine needs to build ParametricArc geometry from an EllipticalArcTo
// command.
package path

import (
	"fmt"

	"github.com/patharc/offsetkit/geom"
	"github.com/patharc/offsetkit/kernel"
)

// Item is a single drawing command. Every item knows its own absolute
// target point; PrevPoint is supplied by the Path when walking the
// sequence, mirroring original_source/svg.py's SvgItem.target_location.
// Grounded on figuring/curve.go's value-type-per-command family.
type Item interface {
	fmt.Stringer
	// TargetPoint returns the absolute endpoint of this command given the
	// absolute point preceding it.
	TargetPoint(prev geom.Point) geom.Point
}

// MoveTo begins a new subpath at an absolute point.
type MoveTo struct{ X, Y kernel.Expr }

func (m MoveTo) TargetPoint(geom.Point) geom.Point { return geom.Pt(m.X, m.Y) }
func (m MoveTo) String() string                    { return fmt.Sprintf("M %s", geom.Pt(m.X, m.Y)) }

// LineTo draws a straight segment to an absolute point.
type LineTo struct{ X, Y kernel.Expr }

func (l LineTo) TargetPoint(geom.Point) geom.Point { return geom.Pt(l.X, l.Y) }
func (l LineTo) String() string                    { return fmt.Sprintf("L %s", geom.Pt(l.X, l.Y)) }

// HorizontalLineTo draws a straight horizontal segment, treated by the
// offset engine as an ordinary Line per spec.md §4.5.
type HorizontalLineTo struct{ X kernel.Expr }

func (h HorizontalLineTo) TargetPoint(prev geom.Point) geom.Point { return geom.Pt(h.X, prev.Y) }
func (h HorizontalLineTo) String() string                         { return fmt.Sprintf("H %s", h.X) }

// VerticalLineTo draws a straight vertical segment.
type VerticalLineTo struct{ Y kernel.Expr }

func (v VerticalLineTo) TargetPoint(prev geom.Point) geom.Point { return geom.Pt(prev.X, v.Y) }
func (v VerticalLineTo) String() string                         { return fmt.Sprintf("V %s", v.Y) }

// ClosePath closes the current subpath back to its starting MoveTo. Its
// TargetPoint is the point it is drawn from: the item does not know the
// subpath's starting point.
type ClosePath struct{}

func (ClosePath) TargetPoint(prev geom.Point) geom.Point { return prev }
func (ClosePath) String() string                         { return "Z" }

// CubicBezierTo, SmoothCubicBezierTo, QuadraticBezierTo and
// SmoothQuadraticBezierTo exist only so the assembler and bevel enumerator
// can type-switch on, and reject, unsupported command types per spec.md
// §6.1/§7's InvalidPath. Field layout is adapted from
// figuring/curve.go's Bezier control-point pairs (CubicBezier/QuadBezier).
type CubicBezierTo struct{ X1, Y1, X2, Y2, X, Y kernel.Expr }

func (c CubicBezierTo) TargetPoint(geom.Point) geom.Point { return geom.Pt(c.X, c.Y) }
func (c CubicBezierTo) String() string                    { return fmt.Sprintf("C -> %s", geom.Pt(c.X, c.Y)) }

type SmoothCubicBezierTo struct{ X2, Y2, X, Y kernel.Expr }

func (c SmoothCubicBezierTo) TargetPoint(geom.Point) geom.Point { return geom.Pt(c.X, c.Y) }
func (c SmoothCubicBezierTo) String() string                    { return fmt.Sprintf("S -> %s", geom.Pt(c.X, c.Y)) }

type QuadraticBezierTo struct{ X1, Y1, X, Y kernel.Expr }

func (q QuadraticBezierTo) TargetPoint(geom.Point) geom.Point { return geom.Pt(q.X, q.Y) }
func (q QuadraticBezierTo) String() string                    { return fmt.Sprintf("Q -> %s", geom.Pt(q.X, q.Y)) }

type SmoothQuadraticBezierTo struct{ X, Y kernel.Expr }

func (q SmoothQuadraticBezierTo) TargetPoint(geom.Point) geom.Point { return geom.Pt(q.X, q.Y) }
func (q SmoothQuadraticBezierTo) String() string                    { return fmt.Sprintf("T -> %s", geom.Pt(q.X, q.Y)) }

// EllipticalArcTo draws an elliptical arc to an absolute point, per SVG's
// "A" command. Grounded on original_source/svg.py's EllipticalArcTo;
// only the geometric field layout is ported (its translate/rotate/scale
// mutation methods belong to the excluded path-editing surface).
type EllipticalArcTo struct {
	Rx, Ry, RotationDeg kernel.Expr
	LargeArcFlag, SweepFlag bool
	X, Y kernel.Expr
}

func (a EllipticalArcTo) TargetPoint(geom.Point) geom.Point { return geom.Pt(a.X, a.Y) }

func (a EllipticalArcTo) String() string {
	return fmt.Sprintf("A %s %s %s %v %v %s", a.Rx, a.Ry, a.RotationDeg, a.LargeArcFlag, a.SweepFlag, geom.Pt(a.X, a.Y))
}

// Geometry converts this command into the ParametricArc data of spec.md
// §3, solving center/theta0/deltaTheta from the SVG endpoint
// parametrization via the W3C SVG Implementation Notes F.6.5 algorithm. n
// optionally controls evaluation precision; with n absent the conversion
// still evaluates (the endpoint-to-center map is inherently transcendental
// once a rotation or non-unit aspect ratio is involved). An arc with zero
// radius reduces to the line segment joining its endpoints, signalled by
// ok=false, per spec.md §3/§6.1.
func (a EllipticalArcTo) Geometry(prev geom.Point, n *kernel.Precision) (arc geom.ParametricArc, ok bool) {
	rx := absExpr(a.Rx)
	ry := absExpr(a.Ry)
	if kernel.IsZero(rx, n) || kernel.IsZero(ry, n) {
		return geom.ParametricArc{}, false
	}

	x1, y1 := prev.X.Float64(), prev.Y.Float64()
	x2, y2 := a.X.Float64(), a.Y.Float64()
	phi := a.RotationDeg.Float64() * pi180

	cosPhi, sinPhi := cos(phi), sin(phi)
	dx2, dy2 := (x1-x2)/2, (y1-y2)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	rxF, ryF := rx.Float64(), ry.Float64()
	lambda := (x1p*x1p)/(rxF*rxF) + (y1p*y1p)/(ryF*ryF)
	if lambda > 1 {
		scale := sqrt(lambda)
		rxF *= scale
		ryF *= scale
	}

	sign := 1.0
	if a.LargeArcFlag == a.SweepFlag {
		sign = -1.0
	}
	num := rxF*rxF*ryF*ryF - rxF*rxF*y1p*y1p - ryF*ryF*x1p*x1p
	den := rxF*rxF*y1p*y1p + ryF*ryF*x1p*x1p
	coef := 0.0
	if den != 0 && num > 0 {
		coef = sign * sqrt(num/den)
	}
	cxp := coef * (rxF * y1p / ryF)
	cyp := coef * -(ryF * x1p / rxF)

	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	ux, uy := (x1p-cxp)/rxF, (y1p-cyp)/ryF
	vx, vy := (-x1p-cxp)/rxF, (-y1p-cyp)/ryF

	theta1 := angleBetween(1, 0, ux, uy)
	dtheta := angleBetween(ux, uy, vx, vy)
	if !a.SweepFlag && dtheta > 0 {
		dtheta -= 360
	} else if a.SweepFlag && dtheta < 0 {
		dtheta += 360
	}

	out := geom.ParametricArc{
		C:          geom.V2F(cx, cy),
		R:          geom.V2F(rxF, ryF),
		Theta0:     kernel.NewFloat(theta1),
		DeltaTheta: kernel.NewFloat(dtheta),
		Phi:        a.RotationDeg,
	}
	if n != nil {
		out.C = geom.V2(kernel.EvalTo(out.C.X, *n), kernel.EvalTo(out.C.Y, *n))
	}
	return out, true
}

func absExpr(e kernel.Expr) kernel.Expr {
	if e.Sign() < 0 {
		return e.Neg()
	}
	return e
}
