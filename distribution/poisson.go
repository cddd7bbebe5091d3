package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/transform"
)

// Poisson is a vector of independent Poisson distributions with rate
// lambda[i]. Its support is discrete, so it can never be transformed
// to unconstrained space; it exists so that models mixing discrete
// and continuous latent variables can still be described.
type Poisson struct {
	dists []distuv.Poisson
}

// NewPoisson returns a new Poisson with the given rate vector.
func NewPoisson(lambda []float64, src rand.Source) (*Poisson, error) {
	if len(lambda) == 0 {
		return nil, fmt.Errorf("newPoisson: empty lambda")
	}

	dists := make([]distuv.Poisson, len(lambda))
	for i := range lambda {
		if lambda[i] <= 0 {
			return nil, fmt.Errorf("newPoisson: rate must be positive "+
				"but got %v at index %d", lambda[i], i)
		}
		dists[i] = distuv.Poisson{Lambda: lambda[i], Src: src}
	}

	return &Poisson{dists: dists}, nil
}

// Support returns the discrete support of the variable
func (p *Poisson) Support() transform.Support {
	return transform.DiscreteSupport(len(p.dists))
}

// Dim returns the length of vectors drawn from the variable
func (p *Poisson) Dim() int { return len(p.dists) }

// LogProb returns the log probability mass at x
func (p *Poisson) LogProb(x []float64) float64 {
	if len(x) != len(p.dists) {
		panic(badInputLength)
	}

	var lp float64
	for i, d := range p.dists {
		lp += d.LogProb(x[i])
	}

	return lp
}

// Rand stores a draw from the variable in x and returns it
func (p *Poisson) Rand(x []float64) []float64 {
	x = reuseAs(x, len(p.dists))
	for i, d := range p.dists {
		x[i] = d.Rand()
	}

	return x
}
