package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/transform"
)

// Gamma is a vector of independent gamma distributions with shape
// alpha[i] and rate beta[i]. Its support is the non-negative
// half-line in each coordinate.
type Gamma struct {
	dists []distuv.Gamma
}

// NewGamma returns a new Gamma with the given shape and rate vectors.
func NewGamma(alpha, beta []float64, src rand.Source) (*Gamma, error) {
	if len(alpha) == 0 {
		return nil, fmt.Errorf("newGamma: empty alpha")
	}
	if len(alpha) != len(beta) {
		return nil, fmt.Errorf("newGamma: expected alpha and beta to have "+
			"the same length but got %d and %d", len(alpha), len(beta))
	}

	dists := make([]distuv.Gamma, len(alpha))
	for i := range alpha {
		if alpha[i] <= 0 || beta[i] <= 0 {
			return nil, fmt.Errorf("newGamma: parameters must be positive "+
				"but got alpha=%v, beta=%v at index %d", alpha[i], beta[i], i)
		}
		dists[i] = distuv.Gamma{Alpha: alpha[i], Beta: beta[i], Src: src}
	}

	return &Gamma{dists: dists}, nil
}

// Support returns the non-negative support of the variable
func (g *Gamma) Support() transform.Support {
	return transform.NonNegativeSupport(len(g.dists))
}

// Dim returns the length of vectors drawn from the variable
func (g *Gamma) Dim() int { return len(g.dists) }

// LogProb returns the log probability density at x
func (g *Gamma) LogProb(x []float64) float64 {
	if len(x) != len(g.dists) {
		panic(badInputLength)
	}

	var lp float64
	for i, d := range g.dists {
		lp += d.LogProb(x[i])
	}

	return lp
}

// Rand stores a draw from the variable in x and returns it
func (g *Gamma) Rand(x []float64) []float64 {
	x = reuseAs(x, len(g.dists))
	for i, d := range g.dists {
		x[i] = d.Rand()
	}

	return x
}
