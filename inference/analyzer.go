package inference

import (
	"github.com/samuelfneumann/transform"
	"github.com/samuelfneumann/transform/distribution"
)

// NeedsTransform reports whether a (target, approximation) pair must
// be reconciled by transforming the target to unconstrained space.
//
// A pair needs transforming exactly when the two supports differ and
// the target is continuous. Discrete and point-mass targets carry no
// density for the change of variables to correct, so they are never
// transformed. A point-mass approximation never triggers a transform
// either: it is a single concrete point, not a density, and
// optimizing it on the original support is the caller's stated
// intent. An empirical approximation does trigger one, since its
// atoms are unconstrained sampler draws that are recovered pointwise
// after inference.
func NeedsTransform(target, approx distribution.RandomVariable) bool {
	ts := target.Support()
	if !ts.Continuous() {
		return false
	}

	as := approx.Support()
	if as.Kind == transform.PointMass {
		return false
	}

	return !ts.Eq(as)
}
