package kernel

import "math"

// Root pairs a polynomial root with its multiplicity and a flag marking
// whether it is real (as opposed to a complex root discarded by a
// real_only request upstream, or carried for bookkeeping).
type Root struct {
	Value    Expr
	Mult     int
	Real     bool
	Complex  bool
	ImagPart float64
}

// Linear solves a1*x + a0 = 0 (coefficient of x^1 is implicitly 1 after
// normalization upstream; here a1 is the literal coefficient of x and a0
// the constant term, matching the monic-after-division convention of
// original_source/math.py's linear solve inside polynomial_roots).
func Linear(a0, a1 Expr) []Root {
	if a1.Sign() == 0 {
		return nil
	}
	return []Root{{Value: a0.Neg().Quo(a1), Mult: 1, Real: true}}
}

// Quadratic solves x^2 + a1*x + a0 = 0 via the discriminant, snapping a
// tiny discriminant to exact zero via CutoffTiny before the sign test, per
// spec.md §4.1.
func Quadratic(a0, a1 Expr, n *Precision) []Root {
	disc := a1.Mul(a1).Sub(IntRat(4).Mul(a0))
	disc = CutoffTiny(disc, n)
	switch {
	case disc.Sign() == 0:
		r := a1.Neg().Quo(IntRat(2))
		return []Root{{Value: r, Mult: 2, Real: true}}
	case disc.Sign() > 0:
		sq := disc.Sqrt()
		r1 := a1.Neg().Add(sq).Quo(IntRat(2))
		r2 := a1.Neg().Sub(sq).Quo(IntRat(2))
		return []Root{{Value: r1, Mult: 1, Real: true}, {Value: r2, Mult: 1, Real: true}}
	default:
		sq := disc.Neg().Sqrt()
		re := a1.Neg().Quo(IntRat(2)).Float64()
		im := sq.Float64() / 2
		return []Root{
			{Value: NewFloat(re), Mult: 1, Real: false, Complex: true, ImagPart: im},
			{Value: NewFloat(re), Mult: 1, Real: false, Complex: true, ImagPart: -im},
		}
	}
}

// Cubic solves x^3 + a2*x^2 + a1*x + a0 = 0 in depressed form using
// Cardano/Viète, per spec.md §4.1. realOnly suppresses the complex
// conjugate pair when the discriminant is positive.
func Cubic(a0, a1, a2 Expr, realOnly bool, n *Precision) []Root {
	q := a1.Quo(IntRat(3)).Sub(a2.Mul(a2).Quo(IntRat(9)))
	r := a1.Mul(a2).Sub(IntRat(3).Mul(a0)).Quo(IntRat(6)).Sub(a2.Mul(a2).Mul(a2).Quo(IntRat(27)))
	disc := CutoffTiny(r.Mul(r).Add(q.Mul(q).Mul(q)), n)
	shift := a2.Quo(IntRat(3)).Neg()

	if disc.Sign() > 0 {
		absR := NewFloat(math.Abs(r.Float64()))
		bigA := NewFloat(math.Cbrt(absR.Float64() + math.Sqrt(disc.Float64())))
		var A Expr = bigA
		if r.Sign() < 0 {
			A = A.Neg()
		}
		var B Expr = ZeroRat
		if A.Sign() != 0 {
			B = q.Neg().Quo(A)
		}
		root1 := A.Add(B).Add(shift)
		roots := []Root{{Value: root1, Mult: 1, Real: true}}
		if !realOnly {
			re := A.Add(B).Neg().Quo(IntRat(2)).Add(shift).Float64()
			im := math.Sqrt(3) / 2 * (A.Sub(B)).Float64()
			roots = append(roots,
				Root{Value: NewFloat(re), Mult: 1, Complex: true, ImagPart: im},
				Root{Value: NewFloat(re), Mult: 1, Complex: true, ImagPart: -im},
			)
		}
		return roots
	}

	if q.Sign() == 0 {
		return []Root{{Value: shift, Mult: 3, Real: true}}
	}

	negQ := q.Neg().Float64()
	denom := math.Pow(negQ, 1.5)
	arg := r.Float64() / denom
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	theta := math.Acos(arg)
	roots := make([]Root, 0, 3)
	for k := 0; k < 3; k++ {
		angle := (theta + 2*math.Pi*float64(k)) / 3
		val := 2*math.Sqrt(negQ)*math.Cos(angle) + shift.Float64()
		roots = append(roots, Root{Value: NewFloat(val), Mult: 1, Real: true})
	}
	return roots
}

// Quartic solves x^4 + a3*x^3 + a2*x^2 + a1*x + a0 = 0 via Wolters'
// modified Euler method (resolvent cubic), per spec.md §4.1. This mirrors
// original_source/math.py's quartic_roots; the teacher (figuring/equations.go)
// has no quartic solver to generalize from, so the algorithm is ported
// directly from the specification and evaluated in float64 throughout
// (the resolvent's real/imaginary split has no exact rational counterpart).
func Quartic(a0, a1, a2, a3 Expr, realOnly bool, n *Precision) []Root {
	c := a3.Float64() / 4
	A2, A1, A0 := a2.Float64(), a1.Float64(), a0.Float64()

	b2 := A2 - 6*c*c
	b1 := A1 - 2*A2*c + 8*c*c*c
	b0 := A0 - A1*c + A2*c*c - 3*c*c*c*c

	// Resolvent cubic: r^3 + (b2/2) r^2 + ((b2^2 - 4 b0)/16) r - b1^2/64 = 0
	p2 := b2 / 2
	p1 := (b2*b2 - 4*b0) / 16
	p0 := -(b1 * b1) / 64
	resolvent := Cubic(NewFloat(p0), NewFloat(p1), NewFloat(p2), false, n)

	// Select the greatest real root r1 >= 0.
	var r1 float64 = math.Inf(-1)
	haveR1 := false
	var others []Root
	for _, rt := range resolvent {
		if !rt.Complex && rt.Value.Float64() > r1 {
			if haveR1 {
				others = append(others, Root{Value: NewFloat(r1)})
			}
			r1 = rt.Value.Float64()
			haveR1 = true
		} else {
			others = append(others, rt)
		}
	}
	if !haveR1 || r1 < 0 {
		r1 = math.Max(r1, 0)
	}

	var re2, re3, im2 float64
	if len(others) >= 2 {
		re2, im2 = others[0].Value.Float64(), others[0].ImagPart
		re3 = others[1].Value.Float64()
	}

	sigma := 1.0
	if b1 < 0 {
		sigma = -1.0
	} else if b1 == 0 {
		sigma = 0.0
	}

	sqrtR1 := math.Sqrt(math.Max(r1, 0))
	cross := re2*re3 + im2*im2
	base := re2 + re3
	rad1 := base - 2*sigma*math.Sqrt(math.Max(cross, 0))
	rad2 := base + 2*sigma*math.Sqrt(math.Max(cross, 0))

	type branch struct {
		t   float64
		ok  bool
		im  float64
		isI bool
	}
	mk := func(s1 float64, rad float64) (branch, branch) {
		if rad >= 0 {
			sq := math.Sqrt(rad)
			return branch{t: s1*sqrtR1 + sq, ok: true}, branch{t: s1*sqrtR1 - sq, ok: true}
		}
		sq := math.Sqrt(-rad)
		return branch{t: s1 * sqrtR1, ok: true, im: sq, isI: true},
			branch{t: s1 * sqrtR1, ok: true, im: -sq, isI: true}
	}

	t1, t2 := mk(1, rad1)
	t3, t4 := mk(-1, rad2)

	var roots []Root
	for _, t := range []branch{t1, t2, t3, t4} {
		if t.isI {
			if realOnly {
				continue
			}
			roots = append(roots, Root{Value: NewFloat(t.t - c), Complex: true, ImagPart: t.im, Mult: 1})
			continue
		}
		roots = append(roots, Root{Value: NewFloat(t.t - c), Real: true, Mult: 1})
	}
	return roots
}

// PolynomialRoots dispatches a normalized (monic, ascending-degree
// coefficient slice, coeffs[0] is the constant term) polynomial of degree
// <= 4 to the matching solver, grouping equal roots into a single entry
// with its multiplicity summed. Degree 0 yields no roots for a non-zero
// constant, or InfiniteSolutionsError for an identically-zero polynomial.
// Degree > 4 yields DegreeError. Grounded on
// original_source/math.py's polynomial_roots.
func PolynomialRoots(coeffs []Expr, realOnly bool, n *Precision) ([]Root, error) {
	deg := len(coeffs) - 1
	for deg > 0 && coeffs[deg].Sign() == 0 {
		deg--
	}
	if deg > 4 {
		return nil, &DegreeError{Degree: deg}
	}
	if deg == 0 {
		if coeffs[0].Sign() == 0 {
			return nil, &InfiniteSolutionsError{}
		}
		return nil, nil
	}

	lead := coeffs[deg]
	norm := make([]Expr, deg)
	for i := 0; i < deg; i++ {
		norm[i] = coeffs[i].Quo(lead)
	}

	var roots []Root
	switch deg {
	case 1:
		roots = Linear(norm[0], IntRat(1))
	case 2:
		roots = Quadratic(norm[0], norm[1], n)
	case 3:
		roots = Cubic(norm[0], norm[1], norm[2], realOnly, n)
	case 4:
		roots = Quartic(norm[0], norm[1], norm[2], norm[3], realOnly, n)
	}

	if realOnly {
		filtered := roots[:0]
		for _, r := range roots {
			if !r.Complex {
				filtered = append(filtered, r)
			}
		}
		roots = filtered
	}

	return mergeMultiplicities(roots, n), nil
}

func mergeMultiplicities(roots []Root, n *Precision) []Root {
	var merged []Root
outer:
	for _, r := range roots {
		for i := range merged {
			if merged[i].Complex == r.Complex &&
				Eq(merged[i].Value, r.Value, n) &&
				math.Abs(merged[i].ImagPart-r.ImagPart) < 1e-9 {
				merged[i].Mult += r.Mult
				continue outer
			}
		}
		merged = append(merged, r)
	}
	return merged
}
