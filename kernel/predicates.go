package kernel

import (
	"math/big"
	"strconv"
	"strings"
)

// Eq reports whether a and b are equal. With n absent, equality is exact
// (Rat comparison, or bit-exact Float comparison); with n present, it is
// the relaxed |a-b| < 10^-baseline test. Grounded on
// original_source/math.py's eq().
func Eq(a, b Expr, n *Precision) bool {
	if n == nil {
		if ra, ok := a.(Rat); ok {
			if rb, ok := b.(Rat); ok {
				return ra.v.Cmp(rb.v) == 0
			}
			if fb, ok := b.(Float); ok && !fb.v.IsInf() {
				xb, _ := fb.v.Rat(nil)
				return ra.v.Cmp(xb) == 0
			}
		} else if rb, ok := b.(Rat); ok {
			if fa, ok := a.(Float); ok && !fa.v.IsInf() {
				xa, _ := fa.v.Rat(nil)
				return xa.Cmp(rb.v) == 0
			}
		}
		return a.Float64() == b.Float64()
	}
	diff := EvalTo(a.Sub(b), *n)
	return diff.v.Abs(diff.v).Cmp(n.cutoff()) < 0
}

// Le reports a <= b under the same exact/relaxed duality as Eq.
func Le(a, b Expr, n *Precision) bool {
	if Eq(a, b, n) {
		return true
	}
	return a.Float64() < b.Float64()
}

// Ge reports a >= b.
func Ge(a, b Expr, n *Precision) bool {
	if Eq(a, b, n) {
		return true
	}
	return a.Float64() > b.Float64()
}

// Lt reports a < b.
func Lt(a, b Expr, n *Precision) bool {
	return !Ge(a, b, n)
}

// Gt reports a > b.
func Gt(a, b Expr, n *Precision) bool {
	return !Le(a, b, n)
}

// IsZero reports whether v is (relaxed-)equal to zero.
func IsZero(v Expr, n *Precision) bool {
	return Eq(v, ZeroRat, n)
}

// AsBool coerces a simplified boolean predicate's three-valued outcome
// (true / false / indeterminate) to a native bool, returning
// IndeterminateError when neither true nor false could be established.
// Grounded on original_source/math.py's as_bool; here the "symbolic truth
// value" is represented directly as a Go bool produced by a caller-supplied
// comparison, so AsBool's only remaining job is the indeterminate path used
// when a caller could not decide (e.g. a NaN leaked into a predicate).
func AsBool(v Expr, ok bool) (bool, error) {
	if !ok {
		return false, &IndeterminateError{}
	}
	f := v.Float64()
	if f != f { // NaN
		return false, &IndeterminateError{}
	}
	return v.Sign() != 0, nil
}

// CutoffTiny replaces v with exact zero if v is an (inexact) Float leaf and
// IsZero(v, n) holds; exact Rat values pass through unchanged, matching
// original_source/math.py's cutoff_tiny (only float leaves are snapped).
func CutoffTiny(v Expr, n *Precision) Expr {
	if v.IsExact() {
		return v
	}
	if n != nil && IsZero(v, n) {
		return ZeroRat
	}
	return v
}

// DecToRat losslessly converts a decimal literal (e.g. "0.125" or "-3") to
// an exact Rat via its textual form, matching original_source/math.py's
// dec_to_rat.
func DecToRat(dec string) (Rat, error) {
	dec = strings.TrimSpace(dec)
	r, ok := new(big.Rat).SetString(dec)
	if !ok {
		return Rat{}, &InvalidDecimalError{Text: dec}
	}
	return Rat{v: r}, nil
}

// RatToDec evaluates v and renders it with the given number of digits
// after the decimal point, canonicalized by trimming trailing zeros ("0"
// for an exact zero), matching original_source/math.py's rat_to_dec.
func RatToDec(v Expr, digits uint) string {
	if digits == 0 {
		digits = 20
	}
	f := EvalTo(v, Precision{Baseline: digits, Additional: 0})
	text := f.v.Text('f', int(digits))
	if strings.Contains(text, ".") {
		text = strings.TrimRight(text, "0")
		text = strings.TrimRight(text, ".")
	}
	if text == "" || text == "-0" {
		text = "0"
	}
	return text
}

// FormatDecimal renders v with at most digits digits after the decimal
// point, trimming trailing zeros. Integer Rats are printed exactly; every
// other value is formatted from its float64 value.
func FormatDecimal(v Expr, digits int) string {
	if r, ok := v.(Rat); ok {
		if r.v.IsInt() {
			return r.v.Num().String()
		}
	}
	f := v.Float64()
	s := strconv.FormatFloat(f, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" || s == "-0" {
		s = "0"
	}
	return s
}
