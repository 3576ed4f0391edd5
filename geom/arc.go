package geom

import (
	"math"

	"github.com/patharc/offsetkit/kernel"
)

// ParametricArc is a rotated ellipse, parameterized by an angle measured
// before rotation, together with an angular range. Grounded on
// original_source/geometry.py's ParametricEllipticalArc; the teacher has
// no ellipse type (only circle.go's single-radius Circle), so the method
// shapes (PtAtTheta-like, OrErr-like error reporting) generalize
// circle.go to the two-radius rotated case.
//
// E(theta) = C + R(Phi) . (Rx*cos(theta), Ry*sin(theta))
//
// The arc covers angles from Theta0 to Theta0+DeltaTheta; sign(DeltaTheta)
// encodes the sweep direction.
type ParametricArc struct {
	C               Vec2
	R               Vec2 // (Rx, Ry), both > 0 on non-degenerate arcs
	Theta0, DeltaTheta, Phi kernel.Expr // degrees
}

// IsDegenerate reports whether the arc's radii are (numerically) zero, in
// which case it should be treated as the line segment joining its
// endpoints, per spec.md §3.
func (a ParametricArc) IsDegenerate(n *kernel.Precision) bool {
	return kernel.IsZero(a.R.X, n) || kernel.IsZero(a.R.Y, n)
}

// Theta1 returns the angle at the arc's far endpoint, Theta0+DeltaTheta.
func (a ParametricArc) Theta1() kernel.Expr {
	return a.Theta0.Add(a.DeltaTheta)
}

// LocallyConvex reports whether the arc curves toward the interior of the
// enclosing polygon of orientation isCCW: sign(DeltaTheta) < 0 iff isCCW,
// per spec.md §4.2.
func (a ParametricArc) LocallyConvex(isCCW bool) bool {
	neg := a.DeltaTheta.Sign() < 0
	return neg == isCCW
}

// Offset applies radius-shrink offset: -d if locally convex, else +d.
// Center and angular extents are unchanged; the result is exact only for
// circular arcs (spec.md §9, open question 1 — an accepted approximation
// for non-circular ellipses).
func (a ParametricArc) Offset(d kernel.Expr, isCCW bool, n *kernel.Precision) ParametricArc {
	dr := d
	if a.LocallyConvex(isCCW) {
		dr = d.Neg()
	}
	rx := a.R.X.Add(dr)
	ry := a.R.Y.Add(dr)
	if n != nil {
		rx = kernel.EvalTo(rx, *n)
		ry = kernel.EvalTo(ry, *n)
	}
	return ParametricArc{C: a.C, R: V2(rx, ry), Theta0: a.Theta0, DeltaTheta: a.DeltaTheta, Phi: a.Phi}
}

// mod360 reduces a degree value to [0, 360).
func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// AngleCondition tests whether theta (mod 360) lies on the arc's angular
// range [Theta0, Theta0+DeltaTheta] (mod 360), correctly handling
// wrap-around and the sign of DeltaTheta, per spec.md §4.2 / P7.
func (a ParametricArc) AngleCondition(theta kernel.Expr) bool {
	t0 := a.Theta0.Float64()
	dt := a.DeltaTheta.Float64()
	th := theta.Float64()

	if dt == 0 {
		return mod360(th) == mod360(t0)
	}
	if math.Abs(dt) >= 360 {
		return true
	}

	rel := mod360(th - t0)
	if dt > 0 {
		return rel <= dt+1e-9
	}
	// dt < 0: range spans backwards from t0.
	relBack := mod360(t0 - th)
	return relBack <= -dt+1e-9
}

// PointTangent returns (p(theta), p'(theta)). The tangent's sign is
// flipped when DeltaTheta < 0, so the tangent at Theta0 points into the
// arc and the tangent at Theta1 points out of it, per spec.md §4.2.
func (a ParametricArc) PointTangent(theta kernel.Expr) (Vec2, Vec2) {
	th := theta.Float64()
	rad := th * math.Pi / 180
	u := math.Cos(rad)
	v := math.Sin(rad)
	local := V2F(a.R.X.Float64()*u, a.R.Y.Float64()*v)
	p := a.C.Add(Rotation(a.Phi).Apply(local))

	du := -math.Sin(rad)
	dv := math.Cos(rad)
	dlocal := V2F(a.R.X.Float64()*du, a.R.Y.Float64()*dv)
	tan := Rotation(a.Phi).Apply(dlocal)
	if a.DeltaTheta.Sign() < 0 {
		tan = tan.Neg()
	}
	return p, tan
}

// Transform maps a point between unit-circle and ellipse coordinates. When
// inverse is false: (u,v) -> C + R(Phi)*diag(Rx,Ry)*(u,v). When true, the
// inverse map: subtract C, apply R(-Phi), divide componentwise by
// (Rx,Ry). Grounded on original_source/geometry.py's transform; P8 tests
// the round trip.
func (a ParametricArc) Transform(p Vec2, inverse bool) Vec2 {
	if !inverse {
		scaled := V2(a.R.X.Mul(p.X), a.R.Y.Mul(p.Y))
		return a.C.Add(Rotation(a.Phi).Apply(scaled))
	}
	shifted := p.Sub(a.C)
	unrot := Rotation(a.Phi).Transpose().Apply(shifted)
	return V2(unrot.X.Quo(a.R.X), unrot.Y.Quo(a.R.Y))
}

// Implicit evaluates F(x,y) = u^2 + v^2 - 1 where (u,v) is the
// inverse-transformed point, per spec.md §4.2.
func (a ParametricArc) Implicit(p Vec2) kernel.Expr {
	uv := a.Transform(p, true)
	return uv.X.Mul(uv.X).Add(uv.Y.Mul(uv.Y)).Sub(kernel.IntRat(1))
}

// StartPoint returns the point at the arc's near (start) endpoint.
func (a ParametricArc) StartPoint() Vec2 {
	p, _ := a.PointTangent(a.Theta0)
	return p
}

// EndPoint returns the point at the arc's far endpoint.
func (a ParametricArc) EndPoint() Vec2 {
	p, _ := a.PointTangent(a.Theta1())
	return p
}

// AnteTangentLine returns the half-line tangent to the arc at Theta0,
// extending backwards (opposite the into-arc tangent direction), used by
// the intersection engine's "ante" extension tests (spec.md §4.4.2).
func (a ParametricArc) AnteTangentLine() Line {
	p, tan := a.PointTangent(a.Theta0)
	return Line{P: p, Q: p.Sub(tan)}
}

// PostTangentLine returns the half-line tangent to the arc at Theta1,
// extending forwards, used by the intersection engine's "post" extension
// tests.
func (a ParametricArc) PostTangentLine() Line {
	p, tan := a.PointTangent(a.Theta1())
	return Line{P: p, Q: p.Add(tan)}
}
