package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqExactVsRelaxed(t *testing.T) {
	a := NewRat(1, 3)
	b := NewFloat(1.0 / 3.0)

	assert.False(t, Eq(a, b, nil), "exact comparison of Rat vs inexact Float should fail bit-for-bit")

	p := NewPrecision(9, 8)
	assert.True(t, Eq(a, b, &p))
}

func TestOrderingPredicates(t *testing.T) {
	p := NewPrecision(9, 8)
	assert.True(t, Le(IntRat(1), IntRat(2), &p))
	assert.True(t, Ge(IntRat(2), IntRat(1), &p))
	assert.True(t, Lt(IntRat(1), IntRat(2), &p))
	assert.True(t, Gt(IntRat(2), IntRat(1), &p))
	assert.False(t, Lt(IntRat(1), IntRat(1), &p))
	assert.True(t, Le(IntRat(1), IntRat(1), &p))
}

func TestIsZero(t *testing.T) {
	p := NewPrecision(9, 8)
	assert.True(t, IsZero(ZeroRat, &p))
	assert.True(t, IsZero(NewFloat(1e-12), &p))
	assert.False(t, IsZero(NewFloat(0.5), &p))
}

func TestAsBoolIndeterminateOnNaN(t *testing.T) {
	neg := NewFloat(-1).Sqrt() // NaN: Float.Sqrt of a negative value
	_, err := AsBool(neg, true)
	require.Error(t, err)
	var indet *IndeterminateError
	assert.ErrorAs(t, err, &indet)
}

func TestAsBoolPropagatesCallerFalse(t *testing.T) {
	_, err := AsBool(IntRat(1), false)
	require.Error(t, err)
}

func TestCutoffTinySnapsOnlyInexactValues(t *testing.T) {
	p := NewPrecision(6, 8)
	tiny := NewFloat(1e-9)
	snapped := CutoffTiny(tiny, &p)
	assert.True(t, snapped.IsExact())
	assert.Equal(t, 0, snapped.Sign())

	exactTiny := NewRat(1, 1000000000)
	unchanged := CutoffTiny(exactTiny, &p)
	assert.True(t, unchanged.IsExact())
	assert.NotEqual(t, 0, unchanged.Sign())
}

func TestDecToRatRoundTrip(t *testing.T) {
	r, err := DecToRat("0.125")
	require.NoError(t, err)
	assert.Equal(t, "1/8", r.String())

	_, err = DecToRat("not-a-number")
	require.Error(t, err)
	var invalid *InvalidDecimalError
	assert.ErrorAs(t, err, &invalid)
}

func TestRatToDecTrimsTrailingZeros(t *testing.T) {
	r, err := DecToRat("2.5")
	require.NoError(t, err)
	assert.Equal(t, "2.5", RatToDec(r, 10))
	assert.Equal(t, "0", RatToDec(ZeroRat, 10))
}

func TestFormatDecimalIntegerFastPath(t *testing.T) {
	assert.Equal(t, "4", FormatDecimal(IntRat(4), 5))
	assert.Equal(t, "1.5", FormatDecimal(NewRat(3, 2), 5))
}
