package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/transform"
)

// Normal is a vector of independent univariate normal distributions.
// Element i is distributed as 𝒩(mean[i], stddev[i]). Its support is
// unconstrained real space, so it is the usual approximating family
// for transformed inference.
type Normal struct {
	dists []distuv.Normal
}

// NewNormal returns a new Normal with the given mean and standard
// deviation vectors. The source may be nil, in which case the global
// source is used.
func NewNormal(mean, stddev []float64, src rand.Source) (*Normal, error) {
	if len(mean) == 0 {
		return nil, fmt.Errorf("newNormal: empty mean")
	}
	if len(mean) != len(stddev) {
		return nil, fmt.Errorf("newNormal: expected mean and stddev to "+
			"have the same length but got %d and %d", len(mean), len(stddev))
	}

	dists := make([]distuv.Normal, len(mean))
	for i := range mean {
		if stddev[i] <= 0 {
			return nil, fmt.Errorf("newNormal: stddev must be positive "+
				"but got %v at index %d", stddev[i], i)
		}
		dists[i] = distuv.Normal{Mu: mean[i], Sigma: stddev[i], Src: src}
	}

	return &Normal{dists: dists}, nil
}

// Support returns the unconstrained real support of the variable
func (n *Normal) Support() transform.Support {
	return transform.RealSupport(len(n.dists))
}

// Dim returns the length of vectors drawn from the variable
func (n *Normal) Dim() int { return len(n.dists) }

// LogProb returns the log probability density at x
func (n *Normal) LogProb(x []float64) float64 {
	if len(x) != len(n.dists) {
		panic(badInputLength)
	}

	var lp float64
	for i, d := range n.dists {
		lp += d.LogProb(x[i])
	}

	return lp
}

// Rand stores a draw from the variable in x and returns it
func (n *Normal) Rand(x []float64) []float64 {
	x = reuseAs(x, len(n.dists))
	for i, d := range n.dists {
		x[i] = d.Rand()
	}

	return x
}

// Mean returns the mean vector of the variable
func (n *Normal) Mean() []float64 {
	mean := make([]float64, len(n.dists))
	for i, d := range n.dists {
		mean[i] = d.Mu
	}

	return mean
}

// StdDev returns the standard deviation vector of the variable
func (n *Normal) StdDev() []float64 {
	stddev := make([]float64, len(n.dists))
	for i, d := range n.dists {
		stddev[i] = d.Sigma
	}

	return stddev
}
