// Package geom implements the exact-arithmetic geometry primitives the
// offset engine operates on: decimal points, exact vectors and matrices,
// line segments, and parametric elliptical arcs.
package geom

import (
	"fmt"

	"github.com/patharc/offsetkit/kernel"
)

// Point is a decimal-coordinate 2D point, used at system boundaries (SVG
// path coordinates) and for point-like outputs. Grounded on
// figuring/pt.go's Pt, re-typed from float64 Length fields to
// kernel.Expr-backed coordinates since the offset engine threads exact
// rationals through arbitrary precision.
type Point struct {
	X, Y kernel.Expr
}

// Pt builds a Point from two Expr coordinates.
func Pt(x, y kernel.Expr) Point { return Point{X: x, Y: y} }

// PtFromFloat64 builds a Point from evaluated float64 coordinates.
func PtFromFloat64(x, y float64) Point {
	return Point{X: kernel.NewFloat(x), Y: kernel.NewFloat(y)}
}

// PtFromDecimal builds a Point by losslessly parsing two decimal literals
// into exact rationals, per DecToRat.
func PtFromDecimal(x, y string) (Point, error) {
	rx, err := kernel.DecToRat(x)
	if err != nil {
		return Point{}, err
	}
	ry, err := kernel.DecToRat(y)
	if err != nil {
		return Point{}, err
	}
	return Point{X: rx, Y: ry}, nil
}

// XY returns the coordinates as a pair, mirroring figuring/pt.go's Pair
// interface.
func (p Point) XY() (kernel.Expr, kernel.Expr) { return p.X, p.Y }

// Vec2 returns p reinterpreted as an exact Vec2 (the same underlying
// coordinates; Point and Vec2 share a representation and differ only in
// role, per spec.md §3).
func (p Point) Vec2() Vec2 { return Vec2{X: p.X, Y: p.Y} }

// Equal reports coordinate-wise equality under the given optional
// precision.
func (p Point) Equal(o Point, n *kernel.Precision) bool {
	return kernel.Eq(p.X, o.X, n) && kernel.Eq(p.Y, o.Y, n)
}

// String renders the point with at most 28 digits after the decimal point
// per coordinate, trimmed of trailing zeros (see kernel.FormatDecimal).
func (p Point) String() string {
	return fmt.Sprintf("%s %s", kernel.FormatDecimal(p.X, 28), kernel.FormatDecimal(p.Y, 28))
}

// Vec2 is an exact ordered pair of kernel expressions: the kernel's native
// working representation for arithmetic, as opposed to Point's boundary
// role. Grounded on figuring/pt.go's Vector.
type Vec2 struct {
	X, Y kernel.Expr
}

// V2 builds a Vec2 from two Expr components.
func V2(x, y kernel.Expr) Vec2 { return Vec2{X: x, Y: y} }

// V2F builds a Vec2 from float64 components (always inexact).
func V2F(x, y float64) Vec2 { return Vec2{X: kernel.NewFloat(x), Y: kernel.NewFloat(y)} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X.Add(o.X), Y: v.Y.Add(o.Y)} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y)} }
func (v Vec2) Neg() Vec2       { return Vec2{X: v.X.Neg(), Y: v.Y.Neg()} }
func (v Vec2) Scale(k kernel.Expr) Vec2 {
	return Vec2{X: v.X.Mul(k), Y: v.Y.Mul(k)}
}

// Dot returns the dot product v . o.
func (v Vec2) Dot(o Vec2) kernel.Expr {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y))
}

// Cross returns the 2D scalar cross product v x o.
func (v Vec2) Cross(o Vec2) kernel.Expr {
	return v.X.Mul(o.Y).Sub(v.Y.Mul(o.X))
}

// Length returns |v| (always an evaluated Float: exact square roots of sums
// of squares of rationals are generically irrational).
func (v Vec2) Length() kernel.Expr {
	return v.Dot(v).Sqrt()
}

// Normalize returns v scaled to unit length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	return Vec2{X: v.X.Quo(l), Y: v.Y.Quo(l)}
}

// Swapped returns v with its coordinates exchanged, used by the line-line
// solver's vertical-line fallback (spec.md §4.4.1, P9).
func (v Vec2) Swapped() Vec2 { return Vec2{X: v.Y, Y: v.X} }

// Point converts an exact Vec2 back to a boundary Point.
func (v Vec2) Point() Point { return Point{X: v.X, Y: v.Y} }

func (v Vec2) Float64() (float64, float64) { return v.X.Float64(), v.Y.Float64() }

func (v Vec2) String() string {
	return fmt.Sprintf("(%s, %s)", v.X.String(), v.Y.String())
}
