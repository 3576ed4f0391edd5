package offsetx

import (
	"github.com/patharc/offsetkit/geom"
	"github.com/patharc/offsetkit/kernel"
)

// Kind tags which of the nine intersection-record variants a Result holds,
// per spec.md §4.4. Grounded on original_source/intersect.py's nine
// dataclasses; Go encodes the closed family as an enum plus a single
// struct carrying every variant's fields (DESIGN.md explains the choice)
// rather than nine separate interface implementations.
type Kind int

const (
	LineLine Kind = iota
	LineCoincident
	LineAround
	LineArc
	LineArcExt
	LineArcAround
	ArcArc
	ArcArcExt
	ArcArcAround
)

// ExtSide identifies which arc endpoint tangent a LineArcExt result used.
type ExtSide int

const (
	ExtNone ExtSide = iota
	ExtAnte
	ExtPost
)

// Result is the tagged intersection record produced when joining two
// consecutive offset segments, per spec.md §4.4. Not every field is
// meaningful for every Kind; see the field comments for which Kind
// populates which.
type Result struct {
	Kind Kind

	// Common to every variant.
	Intersection geom.Vec2

	// LineLine / LineCoincident / LineArcExt / ArcArcExt; T alone for LineArc.
	T, U kernel.Expr

	// LineArc.
	Theta kernel.Expr

	// PostIntersection: LineArcExt, ArcArcExt and the *Around variants.
	// ExtTheta, Ext: LineArcExt.
	PostIntersection geom.Vec2
	ExtTheta         kernel.Expr
	Ext              ExtSide

	// ArcArc.
	Theta0, Theta1 kernel.Expr

	// ArcArcExt and the *Around variants.
	AnteIntersection geom.Vec2

	// *Around variants.
	AnteExtended geom.Vec2
	PostExtended geom.Vec2
}

// Intersect dispatches on (a.IsArc, b.IsArc), matching
// original_source/intersect.py's intersect() structural pattern match, per
// spec.md §4.4.
func Intersect(a, b Segment, d kernel.Expr, n *kernel.Precision) (*Result, error) {
	switch {
	case !a.IsArc && !b.IsArc:
		return intersectLines(a.Line, b.Line, d, n)
	case !a.IsArc && b.IsArc:
		return intersectLineArc(a.Line, b.Arc, true, d, n)
	case a.IsArc && !b.IsArc:
		return intersectLineArc(b.Line, a.Arc, false, d, n)
	default:
		return intersectArcArc(a.Arc, b.Arc, d, n)
	}
}

// intersectLinesRaw solves the infinite-line intersection, swapping
// coordinates when l1 is vertical to avoid division by zero, per spec.md
// §4.4.1 / P9.
func intersectLinesRaw(l0, l1 geom.Line, n *kernel.Precision) *Result {
	if !l1.IsVertical(n) {
		return intersectLinesRawNonVertical(l0, l1, n)
	}
	r := intersectLinesRawNonVertical(l0.Swapped(), l1.Swapped(), n)
	if r == nil {
		return nil
	}
	r.Intersection = r.Intersection.Swapped()
	return r
}

func intersectLinesRawNonVertical(l0, l1 geom.Line, n *kernel.Precision) *Result {
	// u(t) = ((l0.p.x - l1.p.x) + l0.delta.x * t) / l1.delta.x
	d0, d1 := l0.Direction(), l1.Direction()
	uOfT := func(t kernel.Expr) kernel.Expr {
		return l0.P.X.Sub(l1.P.X).Add(d0.X.Mul(t)).Quo(d1.X)
	}
	polyAt := func(t kernel.Expr) kernel.Expr {
		return l0.At(t).Y.Sub(l1.At(uOfT(t)).Y)
	}
	poly0 := polyAt(kernel.ZeroRat)
	poly1 := polyAt(kernel.IntRat(1))
	slope := poly1.Sub(poly0)

	if kernel.IsZero(slope, n) {
		if kernel.IsZero(poly0, n) {
			tv := kernel.IntRat(1)
			uv := uOfT(tv)
			return &Result{Kind: LineCoincident, T: tv, U: uv, Intersection: l0.Q}
		}
		return nil
	}

	tv := poly0.Neg().Quo(slope)
	uv := uOfT(tv)
	return &Result{Kind: LineLine, T: tv, U: uv, Intersection: l0.At(tv)}
}

func intersectLines(l0, l1 geom.Line, d kernel.Expr, n *kernel.Precision) (*Result, error) {
	i := intersectLinesRaw(l0, l1, n)
	if i != nil && kernel.Ge(i.T, kernel.ZeroRat, n) && kernel.Le(i.U, kernel.IntRat(1), n) {
		return i, nil
	}

	if d == nil {
		return nil, &IntersectionUnavailableError{}
	}

	d0n, d1n := l0.Direction().Normalize(), l1.Direction().Normalize()
	anteExtended := l0.Q.Add(d0n.Scale(d))
	postExtended := l1.P.Sub(d1n.Scale(d))

	return &Result{
		Kind:             LineAround,
		Intersection:     anteExtended.Add(postExtended).Scale(kernel.NewRat(1, 2)),
		AnteIntersection: l0.Q,
		PostIntersection: l1.P,
		AnteExtended:     anteExtended,
		PostExtended:     postExtended,
	}, nil
}

func intersectLineArc(lin geom.Line, arc geom.ParametricArc, lineBeforeArc bool, d kernel.Expr, n *kernel.Precision) (*Result, error) {
	if lineBeforeArc {
		p0, t0 := arc.PointTangent(arc.Theta0)
		anteLine := geom.Line{P: p0, Q: p0.Sub(t0)}
		if r := intersectLinesRaw(lin, anteLine, n); r != nil && r.Kind == LineLine &&
			kernel.Ge(r.T, kernel.ZeroRat, n) && kernel.Gt(r.U, kernel.ZeroRat, n) {
			return &Result{
				Kind: LineArcExt, T: r.T, U: r.U, Intersection: r.Intersection,
				PostIntersection: p0, ExtTheta: arc.Theta0, Ext: ExtAnte,
			}, nil
		}
	} else {
		p1, t1 := arc.PointTangent(arc.Theta1())
		postLine := geom.Line{P: p1, Q: p1.Add(t1)}
		if r := intersectLinesRaw(lin, postLine, n); r != nil && r.Kind == LineLine &&
			kernel.Le(r.T, kernel.IntRat(1), n) && kernel.Gt(r.U, kernel.ZeroRat, n) {
			return &Result{
				Kind: LineArcExt, T: r.T, U: r.U, Intersection: r.Intersection,
				PostIntersection: p1, ExtTheta: arc.Theta1(), Ext: ExtPost,
			}, nil
		}
	}

	// Transform the line into unit-circle coordinates and solve u(t)^2+v(t)^2=1.
	coeffs := lineArcQuadraticCoeffs(lin, arc)
	roots, err := kernel.PolynomialRoots(coeffs, true, n)
	if err != nil {
		return nil, err
	}

	accept := func(t kernel.Expr) bool {
		if lineBeforeArc {
			return kernel.Ge(t, kernel.ZeroRat, n)
		}
		return kernel.Le(t, kernel.IntRat(1), n)
	}

	for _, root := range roots {
		tv := root.Value
		p := lin.At(tv)
		lu := arc.Transform(p, true)
		theta := kernel.Atan2(lu.Y, lu.X)
		if accept(tv) && arc.AngleCondition(theta) {
			return &Result{Kind: LineArc, T: tv, Theta: theta, Intersection: p}, nil
		}
	}

	if d == nil {
		return nil, &IntersectionUnavailableError{}
	}

	var anteIntersection, postIntersection, dLine, dArcNorm geom.Vec2
	if lineBeforeArc {
		anteIntersection = lin.Q
		p0, dArc := arc.PointTangent(arc.Theta0)
		postIntersection = p0
		dLine = lin.Direction().Normalize()
		dArcNorm = dArc.Normalize()
	} else {
		p1, dArc := arc.PointTangent(arc.Theta1())
		anteIntersection = p1
		postIntersection = lin.P
		dLine = lin.Direction().Normalize().Neg()
		dArcNorm = dArc.Normalize().Neg()
	}

	anteExtended := anteIntersection.Add(dLine.Scale(d))
	postExtended := postIntersection.Sub(dArcNorm.Scale(d))

	return &Result{
		Kind:             LineArcAround,
		Intersection:     anteExtended.Add(postExtended).Scale(kernel.NewRat(1, 2)),
		AnteIntersection: anteIntersection,
		PostIntersection: postIntersection,
		AnteExtended:     anteExtended,
		PostExtended:     postExtended,
	}, nil
}

// lineArcQuadraticCoeffs builds the ascending-degree coefficients of
// u(t)^2 + v(t)^2 - 1 = 0 where (u(t), v(t)) is the line, evaluated at
// parameter t, transformed into the arc's unit-circle coordinates.
func lineArcQuadraticCoeffs(lin geom.Line, arc geom.ParametricArc) []kernel.Expr {
	// Sample the (generically quadratic) scalar function at t=0,1,2 and
	// interpolate, since Transform's rotation/scale is evaluated rather
	// than carried symbolically.
	f := func(t kernel.Expr) kernel.Expr {
		uv := arc.Transform(lin.At(t), true)
		return uv.X.Mul(uv.X).Add(uv.Y.Mul(uv.Y)).Sub(kernel.IntRat(1))
	}
	f0 := f(kernel.ZeroRat)
	f1 := f(kernel.IntRat(1))
	f2 := f(kernel.IntRat(2))
	// Newton forward-difference interpolation for a degree-2 polynomial:
	// a0=f0, a1=(4f1-3f0-f2)/2, a2=(f2-2f1+f0)/2
	a0 := f0
	a1 := kernel.IntRat(4).Mul(f1).Sub(kernel.IntRat(3).Mul(f0)).Sub(f2).Quo(kernel.IntRat(2))
	a2 := f2.Sub(kernel.IntRat(2).Mul(f1)).Add(f0).Quo(kernel.IntRat(2))
	return []kernel.Expr{a0, a1, a2}
}

func intersectArcArc(arc0, arc1 geom.ParametricArc, d kernel.Expr, n *kernel.Precision) (*Result, error) {
	res := arcArcResultant(arc0, arc1, n)
	res = kernel.SnapZeroCoeffs(res, n)

	if isConstantPoly(res) {
		if kernel.IsZero(res[0], n) {
			intersection := arc0.EndPoint()
			return &Result{Kind: ArcArc, Theta0: arc0.Theta1(), Theta1: arc1.Theta0, Intersection: intersection}, nil
		}
		return nil, &IntersectionUnavailableError{}
	}

	xRoots, err := kernel.PolynomialRoots(res, true, n)
	if err != nil {
		return nil, err
	}
	for _, xr := range xRoots {
		xv := xr.Value
		yCoeffs0 := substituteX(arc0.Implicit, xv)
		yRoots, err := kernel.PolynomialRoots(yCoeffs0, true, n)
		if err != nil {
			continue
		}
		for _, yr := range yRoots {
			yv := yr.Value
			p := geom.V2(xv, yv)
			if !kernel.IsZero(arc1.Implicit(p), n) {
				continue
			}
			u0 := arc0.Transform(p, true)
			u1 := arc1.Transform(p, true)
			theta0 := kernel.Atan2(u0.Y, u0.X)
			theta1 := kernel.Atan2(u1.Y, u1.X)
			if arc0.AngleCondition(theta0) && arc1.AngleCondition(theta1) {
				return &Result{Kind: ArcArc, Theta0: theta0, Theta1: theta1, Intersection: p}, nil
			}
		}
	}

	p0, d0 := arc0.PointTangent(arc0.Theta1())
	p1, d1 := arc1.PointTangent(arc1.Theta0)
	tan0 := geom.Line{P: p0, Q: p0.Add(d0)}
	tan1 := geom.Line{P: p1, Q: p1.Sub(d1)}
	ext := intersectLinesRaw(tan0, tan1, n)
	if ext != nil && ext.Kind == LineLine && kernel.Gt(ext.T, kernel.ZeroRat, n) && kernel.Gt(ext.U, kernel.ZeroRat, n) {
		return &Result{
			Kind: ArcArcExt, T: ext.T, U: ext.U, Intersection: ext.Intersection,
			AnteIntersection: p0, PostIntersection: p1,
		}, nil
	}

	if d == nil {
		return nil, &IntersectionUnavailableError{}
	}

	ext0 := p0.Add(d0.Normalize().Scale(d))
	ext1 := p1.Sub(d1.Normalize().Scale(d))
	return &Result{
		Kind:             ArcArcAround,
		Intersection:     ext0.Add(ext1).Scale(kernel.NewRat(1, 2)),
		AnteIntersection: p0,
		PostIntersection: p1,
		AnteExtended:     ext0,
		PostExtended:     ext1,
	}, nil
}

// arcArcResultant builds res_y(implicit0, implicit1) as a single-variable
// polynomial in x, sampling each implicit form's (x,y)-dependence at
// enough points to interpolate its polynomial coefficients (both implicit
// forms are degree <= 2 in each variable after Transform's evaluated
// rotation/scale), then eliminating y via kernel.Resultant.
func arcArcResultant(arc0, arc1 geom.ParametricArc, n *kernel.Precision) []kernel.Expr {
	p0 := implicitAsPoly2(arc0)
	p1 := implicitAsPoly2(arc1)
	return kernel.Resultant(p0, p1)
}

// implicitAsPoly2 samples arc.Implicit on a 3x3 grid to recover its
// bivariate quadratic coefficients (in x and y), matching the resultant's
// expectation of polynomial-in-x coefficients for each power of y.
func implicitAsPoly2(arc geom.ParametricArc) kernel.Poly2 {
	sample := func(xv, yv kernel.Expr) kernel.Expr {
		return arc.Implicit(geom.V2(xv, yv))
	}
	// F(x,y) = A*x^2 + B*y^2 + C*x*y + D*x + E*y + G, recovered via 9 samples.
	xs := []kernel.Expr{kernel.IntRat(0), kernel.IntRat(1), kernel.IntRat(2)}
	ys := []kernel.Expr{kernel.IntRat(0), kernel.IntRat(1), kernel.IntRat(2)}
	var grid [3][3]kernel.Expr
	for i, xv := range xs {
		for j, yv := range ys {
			grid[i][j] = sample(xv, yv)
		}
	}
	// For each fixed y-sample row, interpolate the quadratic-in-x
	// coefficients (a0,a1,a2) via the same forward-difference formula used
	// for the line-arc quadratic.
	rowCoeffs := func(row [3]kernel.Expr) [3]kernel.Expr {
		f0, f1, f2 := row[0], row[1], row[2]
		a0 := f0
		a1 := kernel.IntRat(4).Mul(f1).Sub(kernel.IntRat(3).Mul(f0)).Sub(f2).Quo(kernel.IntRat(2))
		a2 := f2.Sub(kernel.IntRat(2).Mul(f1)).Add(f0).Quo(kernel.IntRat(2))
		return [3]kernel.Expr{a0, a1, a2}
	}
	var byY [3][3]kernel.Expr
	for j := range ys {
		var col [3]kernel.Expr
		for i := range xs {
			col[i] = grid[i][j]
		}
		byY[j] = rowCoeffs(col)
	}
	// byY[j][k] is the coefficient of x^k when y = ys[j]; interpolate across
	// j to recover the coefficient of x^k as a polynomial in y (degree <= 2).
	// Re-pack: CoeffsY[i] (coefficient of y^i) is itself a polynomial in x
	// given as an ascending Expr slice [coeff of x^0, x^1, x^2].
	out := make([][]kernel.Expr, 3)
	for i := 0; i < 3; i++ {
		out[i] = make([]kernel.Expr, 3)
	}
	for k := 0; k < 3; k++ {
		var col [3]kernel.Expr
		for j := 0; j < 3; j++ {
			col[j] = byY[j][k]
		}
		f0, f1, f2 := col[0], col[1], col[2]
		b0 := f0
		b1 := kernel.IntRat(4).Mul(f1).Sub(kernel.IntRat(3).Mul(f0)).Sub(f2).Quo(kernel.IntRat(2))
		b2 := f2.Sub(kernel.IntRat(2).Mul(f1)).Add(f0).Quo(kernel.IntRat(2))
		out[0][k] = b0
		out[1][k] = b1
		out[2][k] = b2
	}
	return kernel.Poly2{CoeffsY: out}
}

func substituteX(implicit func(geom.Vec2) kernel.Expr, xv kernel.Expr) []kernel.Expr {
	f := func(yv kernel.Expr) kernel.Expr { return implicit(geom.V2(xv, yv)) }
	f0, f1, f2 := f(kernel.ZeroRat), f(kernel.IntRat(1)), f(kernel.IntRat(2))
	a0 := f0
	a1 := kernel.IntRat(4).Mul(f1).Sub(kernel.IntRat(3).Mul(f0)).Sub(f2).Quo(kernel.IntRat(2))
	a2 := f2.Sub(kernel.IntRat(2).Mul(f1)).Add(f0).Quo(kernel.IntRat(2))
	return []kernel.Expr{a0, a1, a2}
}

func isConstantPoly(p []kernel.Expr) bool {
	for i := 1; i < len(p); i++ {
		if p[i] != nil && p[i].Sign() != 0 {
			return false
		}
	}
	return len(p) > 0
}
