package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/transform"
)

// Exponential is a vector of independent exponential distributions
// with rate rate[i]. Its support is the non-negative half-line in
// each coordinate.
type Exponential struct {
	dists []distuv.Exponential
}

// NewExponential returns a new Exponential with the given rate vector.
func NewExponential(rate []float64, src rand.Source) (*Exponential, error) {
	if len(rate) == 0 {
		return nil, fmt.Errorf("newExponential: empty rate")
	}

	dists := make([]distuv.Exponential, len(rate))
	for i := range rate {
		if rate[i] <= 0 {
			return nil, fmt.Errorf("newExponential: rate must be positive "+
				"but got %v at index %d", rate[i], i)
		}
		dists[i] = distuv.Exponential{Rate: rate[i], Src: src}
	}

	return &Exponential{dists: dists}, nil
}

// Support returns the non-negative support of the variable
func (e *Exponential) Support() transform.Support {
	return transform.NonNegativeSupport(len(e.dists))
}

// Dim returns the length of vectors drawn from the variable
func (e *Exponential) Dim() int { return len(e.dists) }

// LogProb returns the log probability density at x
func (e *Exponential) LogProb(x []float64) float64 {
	if len(x) != len(e.dists) {
		panic(badInputLength)
	}

	var lp float64
	for i, d := range e.dists {
		lp += d.LogProb(x[i])
	}

	return lp
}

// Rand stores a draw from the variable in x and returns it
func (e *Exponential) Rand(x []float64) []float64 {
	x = reuseAs(x, len(e.dists))
	for i, d := range e.dists {
		x[i] = d.Rand()
	}

	return x
}
