package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/patharc/offsetkit/kernel"
)

// Mat2 is a 2x2 matrix over exact expressions, used for the rotation
// R(phi) of a parametric elliptical arc's supporting ellipse. Grounded on
// go-gl/mathgl's Mat2 (wired in Float64 for the evaluated path) and
// figuring/linear.go's small-matrix idiom.
type Mat2 struct {
	A, B, C, D kernel.Expr // [[A B] [C D]]
}

// Rotation builds the rotation matrix for phiDeg degrees, always
// evaluated: sine and cosine are transcendental. Grounded on
// figuring/pt.go's Vector.Rotate, which builds the same column-major
// mgl64.Mat2 from math.Sin/math.Cos directly.
func Rotation(phiDeg kernel.Expr) Mat2 {
	rad := phiDeg.Float64() * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	m := mgl64.Mat2{c, s, -s, c}
	return Mat2{
		A: kernel.NewFloat(m[0]), B: kernel.NewFloat(m[2]),
		C: kernel.NewFloat(m[1]), D: kernel.NewFloat(m[3]),
	}
}

// Apply returns M * v, routed through go-gl/mathgl's own Mat2.Mul2x1 exactly
// as figuring/pt.go's Vector.Rotate calls a.Mul2x1(v.ij) on its rotation
// matrix, rather than hand-rolling the dot products.
func (m Mat2) Apply(v Vec2) Vec2 {
	r := m.Mgl64().Mul2x1(mgl64.Vec2{v.X.Float64(), v.Y.Float64()})
	return Vec2{X: kernel.NewFloat(r[0]), Y: kernel.NewFloat(r[1])}
}

// Transpose returns the transpose of m, which for a rotation matrix is
// also its inverse R(-phi).
func (m Mat2) Transpose() Mat2 {
	return Mat2{A: m.A, B: m.C, C: m.B, D: m.D}
}

// Mgl64 converts m to an evaluated mgl64.Mat2, which Apply multiplies
// through directly.
func (m Mat2) Mgl64() mgl64.Mat2 {
	return mgl64.Mat2{m.A.Float64(), m.C.Float64(), m.B.Float64(), m.D.Float64()}
}
