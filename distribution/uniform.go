package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/transform"
)

// Uniform is a vector of independent uniform distributions over a
// shared interval (min, max).
type Uniform struct {
	dists []distuv.Uniform
}

// NewUniform returns a new dim-dimensional Uniform over (min, max).
func NewUniform(min, max float64, dim int, src rand.Source) (*Uniform,
	error) {
	if dim < 1 {
		return nil, fmt.Errorf("newUniform: dimension must be positive "+
			"but got %d", dim)
	}
	if max <= min {
		return nil, fmt.Errorf("newUniform: max %v not greater than min %v",
			max, min)
	}

	dists := make([]distuv.Uniform, dim)
	for i := range dists {
		dists[i] = distuv.Uniform{Min: min, Max: max, Src: src}
	}

	return &Uniform{dists: dists}, nil
}

// Support returns the interval support of the variable
func (u *Uniform) Support() transform.Support {
	return transform.IntervalSupport(u.dists[0].Min, u.dists[0].Max,
		len(u.dists))
}

// Dim returns the length of vectors drawn from the variable
func (u *Uniform) Dim() int { return len(u.dists) }

// LogProb returns the log probability density at x
func (u *Uniform) LogProb(x []float64) float64 {
	if len(x) != len(u.dists) {
		panic(badInputLength)
	}

	var lp float64
	for i, d := range u.dists {
		lp += d.LogProb(x[i])
	}

	return lp
}

// Rand stores a draw from the variable in x and returns it
func (u *Uniform) Rand(x []float64) []float64 {
	x = reuseAs(x, len(u.dists))
	for i, d := range u.dists {
		x[i] = d.Rand()
	}

	return x
}
