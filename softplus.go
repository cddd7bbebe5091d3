package transform

import "math"

// softplusF64 computes log(1 + eˣ) without overflowing for large x.
func softplusF64(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

// softplusInvF64 computes the inverse of softplus, log(eˣ - 1). For
// large x the direct form overflows, so the algebraically equivalent
// x + log(1 - e⁻ˣ) is used instead.
func softplusInvF64(x float64) float64 {
	if x > 20 {
		return x + math.Log1p(-math.Exp(-x))
	}
	return math.Log(math.Expm1(x))
}

// sigmoidF64 computes the logistic function 1 / (1 + e⁻ˣ).
func sigmoidF64(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// logitF64 computes the inverse of the logistic function,
// log(p / (1 - p)).
func logitF64(p float64) float64 {
	return math.Log(p) - math.Log1p(-p)
}

// softplusInv maps the non-negative half-line to real space through
// the inverse of the softplus function.
type softplusInv struct {
	dim int
}

// SoftplusInv returns the transformation y = softplus⁻¹(x) from
// [0, ∞)^dim onto real space, applied elementwise. Its inverse is the
// softplus function x = log(1 + eʸ).
//
// Softplus⁻¹ is used rather than the more common log because the
// gradient of softplus is bounded: near zero, log's inverse exp
// shrinks gradients toward nothing while log itself blows up, whereas
// softplus is well conditioned on the whole real line.
func SoftplusInv(dim int) Transformation {
	return &softplusInv{dim: dim}
}

func (s *softplusInv) Forward(x []float64) ([]float64, error) {
	if err := checkDim(s, s.Domain(), len(x)); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = softplusInvF64(v)
	}

	return out, nil
}

func (s *softplusInv) Inverse(y []float64) ([]float64, error) {
	if err := checkDim(s, s.Codomain(), len(y)); err != nil {
		return nil, err
	}

	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = softplusF64(v)
	}

	return out, nil
}

// LogDetJacInv computes Σᵢ log σ(yᵢ), since d softplus(y)/dy = σ(y).
func (s *softplusInv) LogDetJacInv(y []float64) (float64, error) {
	if err := checkDim(s, s.Codomain(), len(y)); err != nil {
		return 0, err
	}

	var ld float64
	for _, v := range y {
		ld -= softplusF64(-v)
	}

	return ld, nil
}

func (s *softplusInv) Domain() Support { return NonNegativeSupport(s.dim) }

func (s *softplusInv) Codomain() Support { return RealSupport(s.dim) }

func (s *softplusInv) String() string { return "SoftplusInv" }
