// Package offsetx implements the exact-arithmetic offset engine: the C3
// offset operator, C4 intersection engine, C5 path offset assembler and C6
// bevel enumerator of spec.md §4.3-§4.6.
package offsetx

import "fmt"

// InvalidPathError reports an input path that is not a single closed
// subpath of the expected M...Z shape, per spec.md §7's InvalidPath.
type InvalidPathError struct {
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("offsetx: invalid path: %s", e.Reason)
}

// OffsetFailureError reports that one of the n consecutive-offset
// intersections could not be computed even with the "around" fallback,
// per spec.md §7's OffsetFailure. PairIndex i identifies the failing
// intersection between offset segments (i-1, i) for debugging.
type OffsetFailureError struct {
	PairIndex int
}

func (e *OffsetFailureError) Error() string {
	return fmt.Sprintf("offsetx: offset intersection failed at pair (%d, %d)", e.PairIndex-1, e.PairIndex)
}

// IntersectionUnavailableError reports that no intersection variant
// applies and no "around" fallback distance was supplied, per spec.md
// §4.4's failure modes.
type IntersectionUnavailableError struct{}

func (e *IntersectionUnavailableError) Error() string {
	return "offsetx: no intersection variant applies (IntersectionUnavailable)"
}
