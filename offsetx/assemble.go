package offsetx

import (
	"github.com/patharc/offsetkit/geom"
	"github.com/patharc/offsetkit/kernel"
	"github.com/patharc/offsetkit/path"
)

// Mode selects how a Precision is derived for OffsetPath/BevelPath, per
// spec.md §6.2.
type Mode int

const (
	// ModeExact performs pure symbolic offsets and intersections.
	ModeExact Mode = iota
	// ModeExplicit uses a caller-supplied Precision everywhere.
	ModeExplicit
	// ModeAuto uses Precision(ambientDigits, additionalDigits) for both
	// offset geometry and intersections.
	ModeAuto
	// ModeAutoIntersections uses the automatic precision for
	// intersections only; offset geometry stays symbolic.
	ModeAutoIntersections
)

// Options configures OffsetPath/BevelPath's precision handling, per spec.md
// §6.2.
type Options struct {
	Mode             Mode
	Precision        kernel.Precision
	AmbientDigits    uint
	AdditionalDigits uint
}

func (o Options) resolve() (offsetPrec, interPrec *kernel.Precision) {
	switch o.Mode {
	case ModeExplicit:
		p := o.Precision
		return &p, &p
	case ModeAuto:
		add := o.AdditionalDigits
		if add == 0 {
			add = kernel.DefaultAdditionalDigits
		}
		p := kernel.Precision{Baseline: o.AmbientDigits, Additional: add}
		return &p, &p
	case ModeAutoIntersections:
		add := o.AdditionalDigits
		if add == 0 {
			add = kernel.DefaultAdditionalDigits
		}
		p := kernel.Precision{Baseline: o.AmbientDigits, Additional: add}
		return nil, &p
	default:
		return nil, nil
	}
}

// originalSegments validates p as a single closed M...Z subpath of lines
// and arcs only, and extracts its cyclic segment list, per spec.md §4.5
// step 1/pre-validation.
func originalSegments(p path.Path, oprec *kernel.Precision) ([]Segment, []path.Item, bool, error) {
	items := p.Items
	if len(items) == 0 {
		return nil, nil, false, &InvalidPathError{Reason: "empty path"}
	}
	if _, ok := items[0].(path.MoveTo); !ok {
		return nil, nil, false, &InvalidPathError{Reason: "path must start with MoveTo"}
	}
	if _, ok := items[len(items)-1].(path.ClosePath); !ok {
		return nil, nil, false, &InvalidPathError{Reason: "path must end with ClosePath"}
	}

	abs := p.AbsolutePoints()
	pts := make([]geom.Vec2, len(items)-1)
	for i := 0; i < len(items)-1; i++ {
		pts[i] = abs[i].Vec2()
	}
	n := len(pts)
	if n < 2 {
		return nil, nil, false, &InvalidPathError{Reason: "path must contain at least one segment"}
	}

	isCCW := geom.PolygonSignedArea(pts).Sign() < 0

	segs := make([]Segment, n)
	for i := 0; i < n; i++ {
		item := items[i+1]
		switch it := item.(type) {
		case path.LineTo, path.HorizontalLineTo, path.VerticalLineTo, path.ClosePath:
			segs[i] = LineSegment(geom.NewLine(pts[i], pts[(i+1)%n]))
		case path.EllipticalArcTo:
			// abs[i] is the absolute point of items[i], i.e. the point
			// item i+1 (this arc) is drawn from.
			prev := abs[i]
			arc, ok := it.Geometry(prev, oprec)
			if !ok {
				segs[i] = LineSegment(geom.NewLine(pts[i], pts[(i+1)%n]))
			} else {
				segs[i] = ArcSegment(arc)
			}
		default:
			return nil, nil, false, &InvalidPathError{Reason: "unsupported command type in offset path"}
		}
	}
	return segs, items, isCCW, nil
}

// OffsetPath offsets a simple closed SVG path by distance d, per spec.md
// §4.5 / §6.2. Positive d moves edges inward. Grounded directly on
// original_source/path_offset.py's offset_path.
func OffsetPath(p path.Path, d kernel.Expr, opts Options) (path.Path, error) {
	oprec, iprec := opts.resolve()

	origSegs, items, isCCW, err := originalSegments(p, oprec)
	if err != nil {
		return path.Path{}, err
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
			return path.Path{}, &OffsetFailureError{PairIndex: i}
		}
		inters[i] = r
	}

	var out []path.Item
	out = append(out, path.MoveTo{X: inters[0].Intersection.X, Y: inters[0].Intersection.Y})

	for i := 0; i < n; i++ {
		offset := offsets[i]
		inter0 := inters[i]
		inter1 := inters[(i+1)%n]

		if offset.IsArc {
			orig, _ := items[i+1].(path.EllipticalArcTo)

			switch inter0.Kind {
			case LineArcExt, ArcArcExt:
				out = append(out, lineTo(inter0.PostIntersection))
			case ArcArcAround:
				out = append(out, lineTo(inter0.AnteExtended), lineTo(inter0.PostExtended), lineTo(inter0.PostIntersection))
			case LineArcAround:
				out = append(out, lineTo(inter0.PostExtended), lineTo(inter0.PostIntersection))
			}

			var post geom.Vec2
			switch inter1.Kind {
			case LineArcExt:
				post = inter1.PostIntersection
			case ArcArcExt:
				post = inter1.AnteIntersection
			case LineArcAround, ArcArcAround:
				post = inter1.AnteIntersection
			default:
				post = inter1.Intersection
			}

			out = append(out, path.EllipticalArcTo{
				Rx: offset.Arc.R.X, Ry: offset.Arc.R.Y,
				RotationDeg: orig.RotationDeg, LargeArcFlag: orig.LargeArcFlag, SweepFlag: orig.SweepFlag,
				X: post.X, Y: post.Y,
			})

			if inter1.Kind == LineArcExt || inter1.Kind == ArcArcExt {
				out = append(out, lineTo(inter1.Intersection))
			}
		} else {
			switch inter0.Kind {
			case LineAround:
				out = append(out, lineTo(inter0.PostExtended))
			case LineArcAround:
				out = append(out, lineTo(inter0.AnteExtended), lineTo(inter0.PostExtended))
			}

			var post geom.Vec2
			switch inter1.Kind {
			case LineAround, LineArcAround, ArcArcAround:
				post = inter1.AnteExtended
			default:
				post = inter1.Intersection
			}
			out = append(out, lineTo(post))
		}
	}

	out = append(out, path.ClosePath{})
	return path.Path{Items: out}, nil
}

func lineTo(v geom.Vec2) path.Item {
	return path.LineTo{X: v.X, Y: v.Y}
}
