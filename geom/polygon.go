package geom

import "github.com/patharc/offsetkit/kernel"

// PolygonSignedArea computes the shoelace signed area of the cyclic vertex
// sequence pts: ½·Σ(x_i*y_{i+1} - x_{i+1}*y_i). A negative area indicates
// a counter-clockwise polygon, per spec.md §3/§4.2. Grounded on
// original_source/geometry.py's polygon_signed_area.
func PolygonSignedArea(pts []Vec2) kernel.Expr {
	n := len(pts)
	var sum kernel.Expr = kernel.ZeroRat
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum = sum.Add(pts[i].X.Mul(pts[j].Y)).Sub(pts[j].X.Mul(pts[i].Y))
	}
	return sum.Quo(kernel.IntRat(2))
}
