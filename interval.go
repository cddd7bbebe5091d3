package transform

import (
	"fmt"
	"math"
)

// logit maps a bounded interval to real space through the scaled
// logistic function.
type logit struct {
	lower, upper float64
	dim          int
}

// Logit returns the transformation y = logit((x - lower) / (upper -
// lower)) from (lower, upper)^dim onto real space, applied
// elementwise. Its inverse is x = lower + (upper - lower)·σ(y).
func Logit(lower, upper float64, dim int) Transformation {
	if upper <= lower {
		panic(fmt.Sprintf("logit: upper bound %v not greater than lower "+
			"bound %v", upper, lower))
	}

	return &logit{lower: lower, upper: upper, dim: dim}
}

func (l *logit) Forward(x []float64) ([]float64, error) {
	if err := checkDim(l, l.Domain(), len(x)); err != nil {
		return nil, err
	}

	width := l.upper - l.lower
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = logitF64((v - l.lower) / width)
	}

	return out, nil
}

func (l *logit) Inverse(y []float64) ([]float64, error) {
	if err := checkDim(l, l.Codomain(), len(y)); err != nil {
		return nil, err
	}

	width := l.upper - l.lower
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = l.lower + width*sigmoidF64(v)
	}

	return out, nil
}

// LogDetJacInv computes Σᵢ [log(upper - lower) + log σ(yᵢ) +
// log(1 - σ(yᵢ))], using log σ(y) = -softplus(-y).
func (l *logit) LogDetJacInv(y []float64) (float64, error) {
	if err := checkDim(l, l.Codomain(), len(y)); err != nil {
		return 0, err
	}

	logWidth := math.Log(l.upper - l.lower)
	var ld float64
	for _, v := range y {
		ld += logWidth - softplusF64(-v) - softplusF64(v)
	}

	return ld, nil
}

func (l *logit) Domain() Support {
	return IntervalSupport(l.lower, l.upper, l.dim)
}

func (l *logit) Codomain() Support { return RealSupport(l.dim) }

func (l *logit) String() string {
	return fmt.Sprintf("Logit(%v, %v)", l.lower, l.upper)
}
