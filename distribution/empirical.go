package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/transform"
)

// Empirical is a distribution represented by a finite collection of
// sample points, such as the draws of a Monte Carlo sampler. Its
// atoms are plain real vectors living wherever the sampler put them,
// so its support descriptor is unconstrained real space; it carries
// no density, only atoms.
type Empirical struct {
	atoms [][]float64
	dim   int
	rng   *rand.Rand
}

// NewEmpirical returns a new Empirical over a copy of the given
// atoms, which must be non-empty and of equal length.
func NewEmpirical(atoms [][]float64, src rand.Source) (*Empirical, error) {
	if len(atoms) == 0 {
		return nil, fmt.Errorf("newEmpirical: no atoms")
	}

	dim := len(atoms[0])
	if dim == 0 {
		return nil, fmt.Errorf("newEmpirical: empty atom")
	}

	copied := make([][]float64, len(atoms))
	for i, a := range atoms {
		if len(a) != dim {
			return nil, fmt.Errorf("newEmpirical: expected all atoms to "+
				"have length %d but atom %d has length %d", dim, i, len(a))
		}
		copied[i] = make([]float64, dim)
		copy(copied[i], a)
	}

	return &Empirical{
		atoms: copied,
		dim:   dim,
		rng:   rand.New(orDefault(src)),
	}, nil
}

// Support returns the unconstrained real support of the variable
func (e *Empirical) Support() transform.Support {
	return transform.RealSupport(e.dim)
}

// Dim returns the length of the variable's atoms
func (e *Empirical) Dim() int { return e.dim }

// LogProb returns negative infinity: an empirical distribution has
// no density with respect to Lebesgue measure.
func (e *Empirical) LogProb(x []float64) float64 {
	if len(x) != e.dim {
		panic(badInputLength)
	}

	return math.Inf(-1)
}

// Rand stores a uniformly chosen atom in x and returns it
func (e *Empirical) Rand(x []float64) []float64 {
	x = reuseAs(x, e.dim)
	copy(x, e.atoms[e.rng.Intn(len(e.atoms))])

	return x
}

// Atoms returns a copy of the collection's points
func (e *Empirical) Atoms() [][]float64 {
	out := make([][]float64, len(e.atoms))
	for i, a := range e.atoms {
		out[i] = make([]float64, len(a))
		copy(out[i], a)
	}

	return out
}

// Len returns the number of atoms in the collection
func (e *Empirical) Len() int { return len(e.atoms) }

// PointMass is a delta distribution concentrated on a single point.
// It is the approximating family of maximum a posteriori estimation
// and is never transformed.
type PointMass struct {
	value []float64
}

// NewPointMass returns a new PointMass at a copy of value.
func NewPointMass(value []float64) (*PointMass, error) {
	if len(value) == 0 {
		return nil, fmt.Errorf("newPointMass: empty value")
	}

	v := make([]float64, len(value))
	copy(v, value)

	return &PointMass{value: v}, nil
}

// Support returns the point-mass support of the variable
func (p *PointMass) Support() transform.Support {
	return transform.PointMassSupport(len(p.value))
}

// Dim returns the length of the variable's point
func (p *PointMass) Dim() int { return len(p.value) }

// LogProb returns 0 at the mass point and negative infinity
// elsewhere.
func (p *PointMass) LogProb(x []float64) float64 {
	if len(x) != len(p.value) {
		panic(badInputLength)
	}

	if floats.Equal(x, p.value) {
		return 0
	}

	return math.Inf(-1)
}

// Rand stores the mass point in x and returns it
func (p *PointMass) Rand(x []float64) []float64 {
	x = reuseAs(x, len(p.value))
	copy(x, p.value)

	return x
}

// Atoms returns the mass point as a single-element collection
func (p *PointMass) Atoms() [][]float64 {
	v := make([]float64, len(p.value))
	copy(v, p.value)

	return [][]float64{v}
}

// orDefault returns src, or a freshly seeded source if src is nil
func orDefault(src rand.Source) rand.Source {
	if src == nil {
		return rand.NewSource(rand.Uint64())
	}
	return src
}
