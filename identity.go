package transform

// identity is the no-op transformation on unconstrained space.
type identity struct {
	dim int
}

// Identity returns the identity transformation on dim-dimensional
// real space. It is the registered default for variables that are
// already unconstrained, so that transforming such a variable is a
// no-op rather than an error.
func Identity(dim int) Transformation {
	return &identity{dim: dim}
}

func (id *identity) Forward(x []float64) ([]float64, error) {
	if err := checkDim(id, id.Domain(), len(x)); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	copy(out, x)

	return out, nil
}

func (id *identity) Inverse(y []float64) ([]float64, error) {
	return id.Forward(y)
}

func (id *identity) LogDetJacInv(y []float64) (float64, error) {
	if err := checkDim(id, id.Codomain(), len(y)); err != nil {
		return 0, err
	}
	return 0, nil
}

func (id *identity) Domain() Support { return RealSupport(id.dim) }

func (id *identity) Codomain() Support { return RealSupport(id.dim) }

func (id *identity) String() string { return "Identity" }
