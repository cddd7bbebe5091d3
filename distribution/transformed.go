package distribution

import (
	"fmt"

	"github.com/samuelfneumann/transform"
)

// Transformed is a RandomVariable whose support is the image of a
// base variable's support under a bijection T. Its density follows
// the change-of-variables formula
//
//	log p(y) = log p_base(T⁻¹(y)) + log|det J_{T⁻¹}(y)|
//
// and its draws are base draws pushed through T. A Transformed
// references its base variable and transformation without mutating
// either.
type Transformed struct {
	base RandomVariable
	t    transform.Transformation
}

// Transform returns a new variable representing rv pushed forward
// onto unconstrained space. If no transformation is given, the
// default for rv's support is looked up; at most one transformation
// may be supplied.
//
// Transform fails with UnsupportedTransformError when rv is discrete
// or a sample collection, with UnsupportedSupportError when no
// default transformation exists for rv's support, and with
// DimensionMismatchError when a supplied transformation's domain is
// not exactly rv's support. All checks run here, eagerly, so that a
// malformed problem fails at construction rather than mid-inference.
func Transform(rv RandomVariable,
	t ...transform.Transformation) (*Transformed, error) {
	if len(t) > 1 {
		return nil, fmt.Errorf("transform: expected at most 1 "+
			"transformation but got %d", len(t))
	}

	if _, ok := rv.(SampleCollection); ok {
		return nil, &transform.UnsupportedTransformError{
			Support: rv.Support(),
		}
	}
	if !rv.Support().Continuous() {
		return nil, &transform.UnsupportedTransformError{
			Support: rv.Support(),
		}
	}

	var tr transform.Transformation
	if len(t) == 1 {
		tr = t[0]
	} else {
		var err error
		tr, err = transform.DefaultTransform(rv.Support())
		if err != nil {
			return nil, err
		}
	}

	if !tr.Domain().Eq(rv.Support()) {
		return nil, &transform.DimensionMismatchError{
			Transformation: tr.String(),
			Domain:         tr.Domain(),
			Got:            rv.Support(),
		}
	}

	return &Transformed{base: rv, t: tr}, nil
}

// Support returns the image of the base support under the
// transformation
func (t *Transformed) Support() transform.Support {
	return t.t.Codomain()
}

// Dim returns the length of vectors drawn from the variable
func (t *Transformed) Dim() int { return t.t.Codomain().Dim }

// LogProb returns the log probability density at y, adjusted by the
// change-of-variables correction.
func (t *Transformed) LogProb(y []float64) float64 {
	x, err := t.t.Inverse(y)
	if err != nil {
		panic(fmt.Sprintf("logProb: %v", err))
	}

	ld, err := t.t.LogDetJacInv(y)
	if err != nil {
		panic(fmt.Sprintf("logProb: %v", err))
	}

	return t.base.LogProb(x) + ld
}

// Rand draws from the base variable and pushes the draw through the
// transformation, storing the result in y.
func (t *Transformed) Rand(y []float64) []float64 {
	x := t.base.Rand(nil)

	fwd, err := t.t.Forward(x)
	if err != nil {
		panic(fmt.Sprintf("rand: %v", err))
	}

	y = reuseAs(y, len(fwd))
	copy(y, fwd)

	return y
}

// Base returns the variable the receiver was transformed from
func (t *Transformed) Base() RandomVariable { return t.base }

// Transformation returns the bijection the receiver applies to its
// base variable
func (t *Transformed) Transformation() transform.Transformation {
	return t.t
}
