package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/samuelfneumann/transform"
)

// Dirichlet is a Dirichlet distribution over the probability simplex.
type Dirichlet struct {
	dist *distmv.Dirichlet
	dim  int
}

// NewDirichlet returns a new Dirichlet with the given concentration
// vector, which must have at least two entries.
func NewDirichlet(alpha []float64, src rand.Source) (*Dirichlet, error) {
	if len(alpha) < 2 {
		return nil, fmt.Errorf("newDirichlet: need at least 2 "+
			"concentration parameters but got %d", len(alpha))
	}
	for i, a := range alpha {
		if a <= 0 {
			return nil, fmt.Errorf("newDirichlet: concentration must be "+
				"positive but got %v at index %d", a, i)
		}
	}

	return &Dirichlet{
		dist: distmv.NewDirichlet(alpha, src),
		dim:  len(alpha),
	}, nil
}

// Support returns the simplex support of the variable
func (d *Dirichlet) Support() transform.Support {
	return transform.SimplexSupport(d.dim)
}

// Dim returns the length of vectors drawn from the variable
func (d *Dirichlet) Dim() int { return d.dim }

// LogProb returns the log probability density at x
func (d *Dirichlet) LogProb(x []float64) float64 {
	if len(x) != d.dim {
		panic(badInputLength)
	}

	return d.dist.LogProb(x)
}

// Rand stores a draw from the variable in x and returns it
func (d *Dirichlet) Rand(x []float64) []float64 {
	x = reuseAs(x, d.dim)

	return d.dist.Rand(x)
}
