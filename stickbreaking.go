package transform

import (
	"fmt"
	"math"
)

// stickBreaking maps the probability simplex to real space by
// breaking the unit stick one logistic fraction at a time.
type stickBreaking struct {
	dim int // number of simplex entries; codomain has dim-1 entries
}

// StickBreaking returns the transformation from the dim-entry
// probability simplex onto (dim-1)-dimensional real space. Each
// unconstrained coordinate yₖ determines, through a shifted logistic
// function, the fraction of the remaining stick assigned to entry k;
// the final entry takes whatever remains. The shift log(dim-1-k)
// centres the transformation so that y = 0 maps to the uniform
// probability vector.
//
// Note the dimension change: a point on the simplex has one redundant
// coordinate, so the codomain has one fewer dimension than the domain.
func StickBreaking(dim int) Transformation {
	if dim < 2 {
		panic(fmt.Sprintf("stickBreaking: simplex must have at least 2 "+
			"entries but got %d", dim))
	}

	return &stickBreaking{dim: dim}
}

func (s *stickBreaking) Forward(x []float64) ([]float64, error) {
	if err := checkDim(s, s.Domain(), len(x)); err != nil {
		return nil, err
	}

	out := make([]float64, s.dim-1)
	rem := 1.0
	for k := 0; k < s.dim-1; k++ {
		z := x[k] / rem
		out[k] = logitF64(z) + math.Log(float64(s.dim-1-k))
		rem -= x[k]
	}

	return out, nil
}

func (s *stickBreaking) Inverse(y []float64) ([]float64, error) {
	if err := checkDim(s, s.Codomain(), len(y)); err != nil {
		return nil, err
	}

	out := make([]float64, s.dim)
	rem := 1.0
	for k := 0; k < s.dim-1; k++ {
		z := sigmoidF64(y[k] - math.Log(float64(s.dim-1-k)))
		out[k] = rem * z
		rem -= out[k]
	}
	out[s.dim-1] = rem

	return out, nil
}

// LogDetJacInv computes Σₖ [log zₖ + log(1 - zₖ) + log remₖ], where
// zₖ is the logistic stick fraction at step k and remₖ the stick
// remaining before it is broken.
func (s *stickBreaking) LogDetJacInv(y []float64) (float64, error) {
	if err := checkDim(s, s.Codomain(), len(y)); err != nil {
		return 0, err
	}

	var ld float64
	rem := 1.0
	for k := 0; k < s.dim-1; k++ {
		shifted := y[k] - math.Log(float64(s.dim-1-k))
		ld += -softplusF64(-shifted) - softplusF64(shifted) + math.Log(rem)

		z := sigmoidF64(shifted)
		rem -= rem * z
	}

	return ld, nil
}

func (s *stickBreaking) Domain() Support { return SimplexSupport(s.dim) }

func (s *stickBreaking) Codomain() Support { return RealSupport(s.dim - 1) }

func (s *stickBreaking) String() string {
	return fmt.Sprintf("StickBreaking(%d)", s.dim)
}
