package inference

import (
	"fmt"

	"github.com/samuelfneumann/transform"
	"github.com/samuelfneumann/transform/distribution"
)

// Recover constructs an approximation on a target's original support
// by pushing approx through the inverse of the transformation stored
// in rec. The result's density carries the matching Jacobian
// correction, so it approximates the constrained posterior directly.
//
// Recover handles continuous approximations only; sample collections
// such as Empirical fail with UnsupportedTransformError and should be
// recovered pointwise with RecoverSamples instead.
func Recover(approx distribution.RandomVariable, rec Record) (
	distribution.RandomVariable, error) {
	if _, ok := approx.(distribution.SampleCollection); ok {
		return nil, &transform.UnsupportedTransformError{
			Support: approx.Support(),
		}
	}

	return distribution.Transform(approx,
		transform.Invert(rec.Transformation))
}

// RecoverSamples applies the inverse of the transformation stored in
// rec pointwise to every sample, returning a new collection with the
// same cardinality and ordering. This is the recovery path for
// approximations that are collections of point samples, which have no
// density to transform.
func RecoverSamples(samples [][]float64, rec Record) ([][]float64,
	error) {
	out := make([][]float64, len(samples))
	for i, s := range samples {
		x, err := rec.Transformation.Inverse(s)
		if err != nil {
			return nil, fmt.Errorf("recoverSamples: sample %d: %v", i, err)
		}
		out[i] = x
	}

	return out, nil
}

// RecoverEmpirical recovers an empirical approximation by mapping
// each of its atoms back onto the original support.
func RecoverEmpirical(emp *distribution.Empirical, rec Record) (
	*distribution.Empirical, error) {
	atoms, err := RecoverSamples(emp.Atoms(), rec)
	if err != nil {
		return nil, fmt.Errorf("recoverEmpirical: %v", err)
	}

	recovered, err := distribution.NewEmpirical(atoms, nil)
	if err != nil {
		return nil, fmt.Errorf("recoverEmpirical: %v", err)
	}

	return recovered, nil
}
