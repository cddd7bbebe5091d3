package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/transform"
)

// Beta is a vector of independent beta distributions with parameters
// alpha[i] and beta[i]. Its support is the unit interval in each
// coordinate.
type Beta struct {
	dists []distuv.Beta
}

// NewBeta returns a new Beta with the given parameter vectors.
func NewBeta(alpha, beta []float64, src rand.Source) (*Beta, error) {
	if len(alpha) == 0 {
		return nil, fmt.Errorf("newBeta: empty alpha")
	}
	if len(alpha) != len(beta) {
		return nil, fmt.Errorf("newBeta: expected alpha and beta to have "+
			"the same length but got %d and %d", len(alpha), len(beta))
	}

	dists := make([]distuv.Beta, len(alpha))
	for i := range alpha {
		if alpha[i] <= 0 || beta[i] <= 0 {
			return nil, fmt.Errorf("newBeta: parameters must be positive "+
				"but got alpha=%v, beta=%v at index %d", alpha[i], beta[i], i)
		}
		dists[i] = distuv.Beta{Alpha: alpha[i], Beta: beta[i], Src: src}
	}

	return &Beta{dists: dists}, nil
}

// Support returns the unit-interval support of the variable
func (b *Beta) Support() transform.Support {
	return transform.IntervalSupport(0, 1, len(b.dists))
}

// Dim returns the length of vectors drawn from the variable
func (b *Beta) Dim() int { return len(b.dists) }

// LogProb returns the log probability density at x
func (b *Beta) LogProb(x []float64) float64 {
	if len(x) != len(b.dists) {
		panic(badInputLength)
	}

	var lp float64
	for i, d := range b.dists {
		lp += d.LogProb(x[i])
	}

	return lp
}

// Rand stores a draw from the variable in x and returns it
func (b *Beta) Rand(x []float64) []float64 {
	x = reuseAs(x, len(b.dists))
	for i, d := range b.dists {
		x[i] = d.Rand()
	}

	return x
}
