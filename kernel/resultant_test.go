package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linPoly2 builds a Poly2 for f(x,y) = y - (mx + c): CoeffsY[0] = [-c,-m],
// CoeffsY[1] = [1].
func linPoly2(m, c Expr) Poly2 {
	return Poly2{CoeffsY: [][]Expr{
		{c.Neg(), m.Neg()},
		{IntRat(1)},
	}}
}

func TestResultantEliminatesYForTwoLines(t *testing.T) {
	// y = x (m=1,c=0) and y = -x + 4 (m=-1,c=4) meet where x - (-x+4) = 0,
	// i.e. 2x - 4 = 0 -> x = 2. The resultant in x should vanish there.
	f := linPoly2(IntRat(1), ZeroRat)
	g := linPoly2(IntRat(-1), IntRat(4))

	res := Resultant(f, g)
	require.NotEmpty(t, res)

	// Evaluate the resultant polynomial (ascending powers of x) at x=2.
	var v Expr = ZeroRat
	xp := IntRat(1)
	for _, c := range res {
		if c == nil {
			continue
		}
		v = v.Add(c.Mul(xp))
		xp = xp.Mul(IntRat(2))
	}
	assert.True(t, IsZero(v, nil))
}

func TestSnapZeroCoeffsSnapsInexactNearZero(t *testing.T) {
	p := NewPrecision(6, 8)
	coeffs := []Expr{NewFloat(1e-9), IntRat(1)}
	snapped := SnapZeroCoeffs(coeffs, &p)
	assert.Equal(t, 0, snapped[0].Sign())
	assert.True(t, snapped[0].IsExact())
}
