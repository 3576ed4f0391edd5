package kernel

import (
	"fmt"
	"math"
	"math/big"
)

// Expr is a value in the exact/evaluated duality of the geometric kernel.
// Every arithmetic result is exact (a Rat) when all of its inputs are
// exact; introducing a Float leaf, or calling a transcendental operation
// such as Sqrt, Sin or Cos, makes the result (and everything downstream of
// it) inexact.
type Expr interface {
	fmt.Stringer

	Add(Expr) Expr
	Sub(Expr) Expr
	Mul(Expr) Expr
	Quo(Expr) Expr
	Neg() Expr
	Sqrt() Expr
	Sin() Expr
	Cos() Expr

	// Float64 evaluates the expression to a float64, losing exactness.
	Float64() float64
	// IsExact reports whether this value is a Rat (as opposed to a Float).
	IsExact() bool
	// Sign returns -1, 0 or 1.
	Sign() int
}

// Atan2 evaluates atan2(y, x) in degrees, always producing a Float: the
// kernel has no symbolic representation for inverse trigonometric results.
func Atan2(y, x Expr) Expr {
	return NewFloat(math.Atan2(y.Float64(), x.Float64()) * 180 / math.Pi)
}

// DegToRad converts a degree-valued Expr to radians, always as a Float.
func DegToRad(deg Expr) Expr {
	return NewFloat(deg.Float64() * math.Pi / 180)
}

// RadToDeg converts a radian-valued float64 to a degree-valued Expr.
func RadToDeg(rad float64) Expr {
	return NewFloat(rad * 180 / math.Pi)
}

// Rat is an exact rational value backed by math/big.Rat. It is the sole
// exact leaf of the kernel; no third-party arbitrary-precision rational
// type exists anywhere in the retrieval pack (see DESIGN.md), so Rat wraps
// the standard library directly, following the teacher's convention of
// small value types wrapping a single underlying representation.
type Rat struct {
	v *big.Rat
}

// NewRat builds an exact Rat from a numerator and denominator.
func NewRat(num, den int64) Rat {
	return Rat{v: big.NewRat(num, den)}
}

// NewRatFromBig wraps an existing *big.Rat.
func NewRatFromBig(r *big.Rat) Rat {
	return Rat{v: new(big.Rat).Set(r)}
}

// IntRat builds an exact integer-valued Rat.
func IntRat(n int64) Rat { return NewRat(n, 1) }

// ZeroRat is the exact zero value.
var ZeroRat = IntRat(0)

func (r Rat) Add(o Expr) Expr {
	if b, ok := o.(Rat); ok {
		return Rat{v: new(big.Rat).Add(r.v, b.v)}
	}
	return NewFloat(r.Float64() + o.Float64())
}

func (r Rat) Sub(o Expr) Expr {
	if b, ok := o.(Rat); ok {
		return Rat{v: new(big.Rat).Sub(r.v, b.v)}
	}
	return NewFloat(r.Float64() - o.Float64())
}

func (r Rat) Mul(o Expr) Expr {
	if b, ok := o.(Rat); ok {
		return Rat{v: new(big.Rat).Mul(r.v, b.v)}
	}
	return NewFloat(r.Float64() * o.Float64())
}

func (r Rat) Quo(o Expr) Expr {
	if b, ok := o.(Rat); ok && b.v.Sign() != 0 {
		return Rat{v: new(big.Rat).Quo(r.v, b.v)}
	}
	return NewFloat(r.Float64() / o.Float64())
}

func (r Rat) Neg() Expr { return Rat{v: new(big.Rat).Neg(r.v)} }

func (r Rat) Sqrt() Expr { return NewFloat(r.Float64()).Sqrt() }
func (r Rat) Sin() Expr  { return NewFloat(r.Float64()).Sin() }
func (r Rat) Cos() Expr  { return NewFloat(r.Float64()).Cos() }

func (r Rat) Float64() float64 {
	f, _ := r.v.Float64()
	return f
}

func (r Rat) IsExact() bool { return true }
func (r Rat) Sign() int     { return r.v.Sign() }

func (r Rat) String() string {
	if r.v.IsInt() {
		return r.v.Num().String()
	}
	return r.v.RatString()
}

// Big returns the underlying *big.Rat.
func (r Rat) Big() *big.Rat { return r.v }

// Float is an evaluated expression backed by math/big.Float, used for any
// value that has passed through a transcendental operation or an explicit
// Precision evaluation.
type Float struct {
	v *big.Float
}

// NewFloat builds an evaluated Float from a float64.
func NewFloat(f float64) Float {
	return Float{v: big.NewFloat(f).SetPrec(200)}
}

// NewFloatFromBig wraps an existing *big.Float.
func NewFloatFromBig(f *big.Float) Float {
	return Float{v: new(big.Float).SetPrec(200).Set(f)}
}

func (f Float) Add(o Expr) Expr { return NewFloat(f.Float64() + o.Float64()) }
func (f Float) Sub(o Expr) Expr { return NewFloat(f.Float64() - o.Float64()) }
func (f Float) Mul(o Expr) Expr { return NewFloat(f.Float64() * o.Float64()) }
func (f Float) Quo(o Expr) Expr { return NewFloat(f.Float64() / o.Float64()) }
func (f Float) Neg() Expr       { return NewFloat(-f.Float64()) }
func (f Float) Sqrt() Expr {
	x := f.Float64()
	if x < 0 {
		return NewFloat(math.NaN())
	}
	return NewFloat(math.Sqrt(x))
}
func (f Float) Sin() Expr { return NewFloat(math.Sin(f.Float64() * math.Pi / 180)) }
func (f Float) Cos() Expr { return NewFloat(math.Cos(f.Float64() * math.Pi / 180)) }

func (f Float) Float64() float64 {
	v, _ := f.v.Float64()
	return v
}

func (f Float) IsExact() bool { return false }

func (f Float) Sign() int { return f.v.Sign() }

func (f Float) String() string { return f.v.Text('g', 16) }

// Big returns the underlying *big.Float.
func (f Float) Big() *big.Float { return f.v }

// EvalTo evaluates any Expr to a Float with a mantissa precision of
// 4*(prec.Full()+8) bits. The value is taken from e.Float64(), so it
// carries no more accuracy than a float64.
func EvalTo(e Expr, prec Precision) Float {
	v := new(big.Float).SetPrec(4 * (prec.Full() + 8)).SetFloat64(e.Float64())
	return Float{v: v}
}
