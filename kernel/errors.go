package kernel

import "fmt"

// DegreeError reports a polynomial submitted to the root solver whose
// degree is unsupported (> 4), per spec.md §7's DegreeUnsupported.
type DegreeError struct {
	Degree int
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("kernel: unsupported polynomial degree %d (max 4)", e.Degree)
}

// InfiniteSolutionsError reports an identically-zero polynomial submitted
// to the root solver, per spec.md §7's InfinitelyManySolutions.
type InfiniteSolutionsError struct{}

func (e *InfiniteSolutionsError) Error() string {
	return "kernel: polynomial is identically zero, infinitely many roots"
}

// IndeterminateError reports a relaxed symbolic predicate that could not be
// coerced to a definite boolean, per spec.md §7's IndeterminatePredicate.
type IndeterminateError struct {
	Context string
}

func (e *IndeterminateError) Error() string {
	if e.Context == "" {
		return "kernel: indeterminate predicate; increase Precision.Additional"
	}
	return fmt.Sprintf("kernel: indeterminate predicate (%s); increase Precision.Additional", e.Context)
}

// InvalidDecimalError reports a decimal literal that DecToRat could not
// parse.
type InvalidDecimalError struct {
	Text string
}

func (e *InvalidDecimalError) Error() string {
	return fmt.Sprintf("kernel: invalid decimal literal %q", e.Text)
}
