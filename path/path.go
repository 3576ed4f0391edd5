package path

import "github.com/patharc/offsetkit/geom"

// Path is an ordered sequence of drawing commands forming (at most) one
// subpath, matching the offset engine's restricted view of spec.md §6.1's
// shared path model (parsing/serialization of the full multi-subpath SVG
// grammar is out of scope; see SPEC_FULL.md).
type Path struct {
	Items []Item
}

// New builds a Path from a sequence of items.
func New(items ...Item) Path { return Path{Items: items} }

// AbsolutePoints walks the path and returns the absolute target point of
// every item, following figuring's "walk and accumulate" idiom.
func (p Path) AbsolutePoints() []geom.Point {
	pts := make([]geom.Point, len(p.Items))
	var prev geom.Point
	for i, it := range p.Items {
		prev = it.TargetPoint(prev)
		pts[i] = prev
	}
	return pts
}

// PointAt returns the absolute point preceding p.Items[i] (the point
// p.Items[i] is drawn *from*), i.e. the target of item i-1, or the zero
// point if i==0.
func (p Path) PointAt(i int) geom.Point {
	if i <= 0 {
		return geom.Point{}
	}
	return p.Items[i-1].TargetPoint(p.PointAt(i - 1))
}
