// Package distribution provides probability distributions over
// float64 vectors, together with the support metadata needed to
// transform them between constrained and unconstrained spaces.
package distribution

import (
	"github.com/samuelfneumann/transform"
)

// A RandomVariable is a probability distribution over a support
// domain. It can evaluate its log-density and draw samples.
//
// Rand follows the gonum convention: it stores a draw in x and
// returns it, allocating a new slice when x is nil. LogProb and Rand
// panic when given a slice of the wrong length; dimension errors that
// can be detected ahead of time are instead surfaced eagerly by the
// constructors and by Transform.
//
// Concrete RandomVariables are pointer types. The inference layer
// keys its bookkeeping by variable identity, so two variables with
// identical parameters remain distinct entries.
type RandomVariable interface {
	// Support describes the domain over which the density or mass
	// is nonzero
	Support() transform.Support

	// Dim returns the length of vectors drawn from the variable
	Dim() int

	// LogProb returns the log of the density or mass at x
	LogProb(x []float64) float64

	// Rand stores a draw from the variable in x and returns it
	Rand(x []float64) []float64
}

// A SampleCollection is a variable represented by a finite collection
// of concrete points rather than by a density: an empirical
// distribution of sampler draws, or a point mass. Such variables
// cannot be pushed through a change of variables, since there is no
// density for the Jacobian correction to act on; their atoms are
// instead transformed pointwise.
type SampleCollection interface {
	RandomVariable

	// Atoms returns a copy of the collection's points
	Atoms() [][]float64
}

// reuseAs returns x if it has length dim, allocates a new slice if x
// is nil, and panics otherwise.
func reuseAs(x []float64, dim int) []float64 {
	if x == nil {
		return make([]float64, dim)
	}
	if len(x) != dim {
		panic(badInputLength)
	}
	return x
}

const badInputLength = "distribution: input slice length mismatch"
