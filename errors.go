package transform

import "fmt"

// UnsupportedSupportError indicates that no default transformation is
// registered for a support kind and none was supplied by the caller.
type UnsupportedSupportError struct {
	Support Support
}

func (e *UnsupportedSupportError) Error() string {
	return fmt.Sprintf("no default transformation for support %v", e.Support)
}

// UnsupportedTransformError indicates an attempt to transform a
// variable whose support admits no density, such as a discrete or
// point-mass variable.
type UnsupportedTransformError struct {
	Support Support
}

func (e *UnsupportedTransformError) Error() string {
	return fmt.Sprintf("cannot transform variable with support %v: no "+
		"density to correct", e.Support)
}

// DimensionMismatchError indicates that a transformation's domain does
// not agree with the support it was applied to.
type DimensionMismatchError struct {
	Transformation string
	Domain         Support
	Got            Support
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%v has domain %v but was applied to support %v",
		e.Transformation, e.Domain, e.Got)
}

// IncompatibleApproximationError indicates that, after a target was
// transformed to unconstrained space, its approximation's support is
// still incompatible with the transformed target. This signals a
// malformed user-supplied approximation.
type IncompatibleApproximationError struct {
	Target   string
	Expected Support
	Got      Support
}

func (e *IncompatibleApproximationError) Error() string {
	return fmt.Sprintf("approximation for %v has support %v but the "+
		"transformed target requires %v", e.Target, e.Got, e.Expected)
}
