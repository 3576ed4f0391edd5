package kernel

// Poly2 is a bivariate polynomial in y with coefficients that are
// themselves Expr polynomials in x, represented as coefficient slices
// ascending in y (coeffs[0] is the y^0 term). It is the bivariate input
// shape res_y expects, matching original_source/math.py's sympy
// Poly(f, y) construction.
type Poly2 struct {
	// CoeffsY[i] is the coefficient of y^i, itself a polynomial in x given
	// as an ascending-degree Expr slice (CoeffsY[i][j] is the coefficient
	// of x^j).
	CoeffsY [][]Expr
}

// degreeY is the polynomial's degree in y.
func (p Poly2) degreeY() int { return len(p.CoeffsY) - 1 }

func polyAdd(a, b []Expr) []Expr {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]Expr, n)
	for i := 0; i < n; i++ {
		var av, bv Expr = ZeroRat, ZeroRat
		if i < len(a) && a[i] != nil {
			av = a[i]
		}
		if i < len(b) && b[i] != nil {
			bv = b[i]
		}
		out[i] = av.Add(bv)
	}
	return out
}

func polyScale(a []Expr, k Expr) []Expr {
	out := make([]Expr, len(a))
	for i, v := range a {
		out[i] = v.Mul(k)
	}
	return out
}

// Resultant computes res_y(f, g): the resultant of f and g as bivariate
// polynomials in y, eliminating y and returning a single-variable
// polynomial in x (an ascending-degree Expr slice), via the determinant of
// their Sylvester matrix expanded by the Laplace method, per spec.md
// §4.1's res_y. The determinant is computed over polynomials-in-x as the
// matrix entries, following original_source/math.py's use of exact
// symbolic matrix entries; there is no third-party exact-determinant
// routine anywhere in the retrieval pack (go-gl/mathgl is float64-only),
// so the Laplace expansion is implemented directly against []Expr
// polynomials, justified in DESIGN.md.
func Resultant(f, g Poly2) []Expr {
	m, k := f.degreeY(), g.degreeY()
	if m < 0 || k < 0 {
		return []Expr{ZeroRat}
	}
	size := m + k
	if size <= 0 {
		// Degenerate: both constants in y; resultant is simply their
		// product reduced to degree-0-in-y terms.
		if m == 0 {
			return f.CoeffsY[0]
		}
		return g.CoeffsY[0]
	}

	matrix := make([][][]Expr, size)
	for row := range matrix {
		matrix[row] = make([][]Expr, size)
		for col := range matrix[row] {
			matrix[row][col] = []Expr{ZeroRat}
		}
	}

	// f's coefficients (descending degree in y) occupy k shifted rows.
	fDesc := make([][]Expr, m+1)
	for i := 0; i <= m; i++ {
		fDesc[i] = f.CoeffsY[m-i]
	}
	gDesc := make([][]Expr, k+1)
	for i := 0; i <= k; i++ {
		gDesc[i] = g.CoeffsY[k-i]
	}

	for row := 0; row < k; row++ {
		for j := 0; j <= m; j++ {
			matrix[row][row+j] = fDesc[j]
		}
	}
	for row := 0; row < m; row++ {
		for j := 0; j <= k; j++ {
			matrix[k+row][row+j] = gDesc[j]
		}
	}

	return laplaceDet(matrix)
}

// laplaceDet computes the determinant of a square matrix of polynomials in
// x (each entry an ascending-degree Expr slice) via cofactor (Laplace)
// expansion along the first row. 1x1 and 2x2 matrices terminate the
// recursion directly; this is adequate for the line/arc degrees the
// offset engine's implicit forms produce (degree <= 4 in each variable).
func laplaceDet(m [][][]Expr) []Expr {
	n := len(m)
	if n == 0 {
		return []Expr{ZeroRat}
	}
	if n == 1 {
		return m[0][0]
	}
	if n == 2 {
		return polySub(polyMul(m[0][0], m[1][1]), polyMul(m[0][1], m[1][0]))
	}
	var total []Expr = []Expr{ZeroRat}
	for col := 0; col < n; col++ {
		if isZeroPoly(m[0][col]) {
			continue
		}
		minor := make([][][]Expr, n-1)
		for r := 1; r < n; r++ {
			row := make([][]Expr, 0, n-1)
			for c := 0; c < n; c++ {
				if c == col {
					continue
				}
				row = append(row, m[r][c])
			}
			minor[r-1] = row
		}
		term := polyMul(m[0][col], laplaceDet(minor))
		if col%2 == 1 {
			term = polyNeg(term)
		}
		total = polyAdd(total, term)
	}
	return total
}

func isZeroPoly(p []Expr) bool {
	for _, c := range p {
		if c != nil && c.Sign() != 0 {
			return false
		}
	}
	return true
}

func polyNeg(a []Expr) []Expr {
	out := make([]Expr, len(a))
	for i, v := range a {
		out[i] = v.Neg()
	}
	return out
}

func polySub(a, b []Expr) []Expr {
	return polyAdd(a, polyNeg(b))
}

func polyMul(a, b []Expr) []Expr {
	if len(a) == 0 || len(b) == 0 {
		return []Expr{ZeroRat}
	}
	out := make([]Expr, len(a)+len(b)-1)
	for i := range out {
		out[i] = ZeroRat
	}
	for i, av := range a {
		if av == nil || av.Sign() == 0 {
			continue
		}
		for j, bv := range b {
			if bv == nil {
				continue
			}
			out[i+j] = out[i+j].Add(av.Mul(bv))
		}
	}
	return out
}

// SnapZeroCoeffs applies IsZero(·, n) to every coefficient of p, replacing
// any that test as zero with exact zero, per spec.md §4.1's evaluation of
// the resultant at precision n.
func SnapZeroCoeffs(p []Expr, n *Precision) []Expr {
	out := make([]Expr, len(p))
	for i, c := range p {
		if IsZero(c, n) {
			out[i] = ZeroRat
		} else {
			out[i] = c
		}
	}
	return out
}
