// Package transform provides invertible transformations between
// constrained and unconstrained supports, together with the Jacobian
// corrections needed to push probability densities through them.
//
// Inference algorithms such as Hamiltonian Monte Carlo and stochastic
// gradient variational inference operate most naturally on all of real
// space. Many model variables do not: scales are non-negative,
// probabilities live on an interval, mixture weights on a simplex.
// This package supplies, for each such support, a canonical bijection
// onto real space and its inverse, so that inference can run
// unconstrained and the results can be mapped back afterwards.
package transform

// A Transformation is a bijective map T between two supports. Inverse
// undoes Forward up to numerical tolerance, and LogDetJacInv evaluates
// log|det J_{T⁻¹}(y)|, the change-of-variables correction for a
// density pushed forward through T.
//
// Forward and Inverse return an error only when the input length
// disagrees with the transformation's domain or codomain; the values
// themselves are assumed to lie in the stated supports.
type Transformation interface {
	// Forward applies T, mapping a point in Domain to Codomain
	Forward(x []float64) ([]float64, error)

	// Inverse applies T⁻¹, mapping a point in Codomain to Domain
	Inverse(y []float64) ([]float64, error)

	// LogDetJacInv returns log|det J_{T⁻¹}(y)| for y in Codomain
	LogDetJacInv(y []float64) (float64, error)

	// Domain and Codomain describe the supports T maps between
	Domain() Support
	Codomain() Support

	String() string
}

// inverted is a Transformation run backwards. Its inverse log
// Jacobian determinant is computed from the wrapped transformation:
// log|det J_T(z)| = -log|det J_{T⁻¹}(T(z))|.
type inverted struct {
	t Transformation
}

// Invert returns the inverse of t as a Transformation in its own
// right: Forward applies t⁻¹ and Inverse applies t. Inverting an
// already-inverted transformation returns the original value.
func Invert(t Transformation) Transformation {
	if inv, ok := t.(*inverted); ok {
		return inv.t
	}
	return &inverted{t: t}
}

func (i *inverted) Forward(x []float64) ([]float64, error) {
	return i.t.Inverse(x)
}

func (i *inverted) Inverse(y []float64) ([]float64, error) {
	return i.t.Forward(y)
}

func (i *inverted) LogDetJacInv(y []float64) (float64, error) {
	fwd, err := i.t.Forward(y)
	if err != nil {
		return 0, err
	}

	ld, err := i.t.LogDetJacInv(fwd)
	if err != nil {
		return 0, err
	}

	return -ld, nil
}

func (i *inverted) Domain() Support { return i.t.Codomain() }

func (i *inverted) Codomain() Support { return i.t.Domain() }

func (i *inverted) String() string {
	return "Invert(" + i.t.String() + ")"
}

// checkDim returns a DimensionMismatchError if a slice of length got
// was passed where t expects support want.
func checkDim(t Transformation, want Support, got int) error {
	if got != want.Dim {
		return &DimensionMismatchError{
			Transformation: t.String(),
			Domain:         want,
			Got:            RealSupport(got),
		}
	}
	return nil
}
