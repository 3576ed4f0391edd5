package offsetx

import (
	"github.com/patharc/offsetkit/geom"
	"github.com/patharc/offsetkit/kernel"
	"github.com/patharc/offsetkit/path"
)

// FaceKind tags which of the two bevel face shapes a BevelFace holds, per
// spec.md §4.6. No original_source counterpart survives the retrieval
// filter (path_shade.py imports bevel_path/BevelArced/BevelPolygon but
// their definitions were not captured); built directly from spec.md's
// prose, sharing assemble.go's walk structure.
type FaceKind int

const (
	// BevelPolygon is a closed triangle or quadrilateral with an outward
	// unit normal.
	BevelPolygon FaceKind = iota
	// BevelArced is a closed face with two straight sides and two
	// elliptical-arc sides (original and offset).
	BevelArced
)

// BevelFace is one face tiling the strip between an input path and its
// offset.
type BevelFace struct {
	Kind FaceKind

	// BevelPolygon.
	Vertices      []geom.Vec2
	OutwardNormal geom.Vec2

	// BevelArced.
	Center        geom.Vec2
	Radii         geom.Vec2
	RotationDeg   kernel.Expr
	LocallyConvex bool
	OrigTheta0, OrigTheta1 kernel.Expr
	OffTheta0, OffTheta1   kernel.Expr
}

func polygonFace(isCCW bool, vs ...geom.Vec2) BevelFace {
	n := outwardNormal(isCCW, vs)
	return BevelFace{Kind: BevelPolygon, Vertices: vs, OutwardNormal: n}
}

// outwardNormal computes the normal of the "off0->off1" edge (the last two
// vertices), oriented away from the filled interior per isCCW, per spec.md
// §4.6's BevelPolygon description.
func outwardNormal(isCCW bool, vs []geom.Vec2) geom.Vec2 {
	if len(vs) < 2 {
		return geom.Vec2{}
	}
	a, b := vs[len(vs)-2], vs[len(vs)-1]
	d := b.Sub(a)
	var n geom.Vec2
	if isCCW {
		n = geom.V2(d.Y.Neg(), d.X)
	} else {
		n = geom.V2(d.Y, d.X.Neg())
	}
	return n.Normalize()
}

// BevelPath enumerates the bevel faces tiling the strip between p and its
// offset at distance d, per spec.md §4.6 / §6.2.
func BevelPath(p path.Path, d kernel.Expr, opts Options) ([]BevelFace, error) {
	oprec, iprec := opts.resolve()

	origSegs, items, isCCW, err := originalSegments(p, oprec)
	if err != nil {
		return nil, err
	}
	n := len(origSegs)

	offsets := make([]Segment, n)
	for i, s := range origSegs {
		offsets[i] = s.Offset(d, isCCW, oprec)
	}

	inters := make([]*Result, n)
	for i := 0; i < n; i++ {
		r, err := Intersect(offsets[(i-1+n)%n], offsets[i], d, iprec)
		if err != nil {
			return nil, &OffsetFailureError{PairIndex: i}
		}
		inters[i] = r
	}

	var faces []BevelFace

	for i := 0; i < n; i++ {
		orig := origSegs[i]
		offset := offsets[i]
		inter0 := inters[i]
		inter1 := inters[(i+1)%n]
		origStart := orig.StartPoint()
		origEnd := orig.EndPoint()

		if orig.IsArc {
			switch inter0.Kind {
			case LineArcExt, ArcArcExt:
				faces = append(faces, polygonFace(isCCW, origStart, inter0.Intersection, inter0.PostIntersection))
			case ArcArcAround:
				faces = append(faces,
					polygonFace(isCCW, origStart, inter0.AnteIntersection, inter0.AnteExtended),
					polygonFace(isCCW, origStart, inter0.AnteExtended, inter0.PostExtended),
					polygonFace(isCCW, origStart, inter0.PostExtended, inter0.PostIntersection),
				)
			case LineArcAround:
				faces = append(faces,
					polygonFace(isCCW, origStart, inter0.AnteExtended, inter0.PostExtended),
					polygonFace(isCCW, origStart, inter0.PostExtended, inter0.PostIntersection),
				)
			}

			opposite := geom.ParametricArc{
				C: offset.Arc.C, R: offset.Arc.R, Phi: offset.Arc.Phi,
				Theta0: orig.Arc.Theta0, DeltaTheta: orig.Arc.DeltaTheta.Neg(),
			}
			faces = append(faces, BevelFace{
				Kind: BevelArced, Center: offset.Arc.C, Radii: offset.Arc.R, RotationDeg: offset.Arc.Phi,
				LocallyConvex: orig.Arc.LocallyConvex(isCCW),
				OrigTheta0:    orig.Arc.Theta0, OrigTheta1: orig.Arc.Theta1(),
				OffTheta0: opposite.Theta0, OffTheta1: opposite.Theta1(),
			})

			switch inter1.Kind {
			case LineArcExt, ArcArcExt:
				faces = append(faces, polygonFace(isCCW, origEnd, inter1.PostIntersection, inter1.Intersection))
			}
		} else {
			switch inter0.Kind {
			case LineAround:
				faces = append(faces, polygonFace(isCCW, origStart, inter0.AnteExtended, inter0.PostExtended))
			case LineArcAround:
				faces = append(faces,
					polygonFace(isCCW, origStart, inter0.AnteIntersection, inter0.AnteExtended),
					polygonFace(isCCW, origStart, inter0.AnteExtended, inter0.PostExtended),
				)
			}

			faces = append(faces, polygonFace(isCCW, origStart, origEnd, lineOutgoing(inter1), lineIncoming(inter0)))
		}
	}

	// Closing triangle joining the last original endpoint to the first
	// offset intersection via the last offset intersection, per spec.md
	// §4.6.
	lastOrigEnd := origSegs[n-1].EndPoint()
	faces = append(faces, polygonFace(isCCW, lastOrigEnd, inters[n-1].Intersection, inters[0].Intersection))

	return faces, nil
}

func lineOutgoing(inter1 *Result) geom.Vec2 {
	switch inter1.Kind {
	case LineAround, LineArcAround, ArcArcAround:
		return inter1.AnteExtended
	default:
		return inter1.Intersection
	}
}

// lineIncoming returns the point this segment's offset line effectively
// starts from given its incoming intersection record, mirroring the
// around-vs-direct choice assemble.go's outgoing-point rules make for the
// opposite end (spec.md §4.5's outgoing-point rules, §4.6's ante_pt).
func lineIncoming(inter0 *Result) geom.Vec2 {
	switch inter0.Kind {
	case LineAround:
		return inter0.PostExtended
	case LineArcAround, ArcArcAround:
		return inter0.PostExtended
	default:
		return inter0.Intersection
	}
}
