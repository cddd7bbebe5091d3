// Package inference manages the bookkeeping that lets inference
// algorithms run on unconstrained space: it detects support
// mismatches between target latent variables and their
// approximations, transforms mismatched targets, and recovers
// constrained-space results afterwards.
package inference

import (
	"fmt"

	"github.com/samuelfneumann/transform"
	"github.com/samuelfneumann/transform/distribution"
)

// A Pair associates a target latent variable with its approximating
// variable. Transformation, when non-nil, overrides the registry
// default used if the pair needs transforming.
type Pair struct {
	Target         distribution.RandomVariable
	Approx         distribution.RandomVariable
	Transformation transform.Transformation
}

// A Mapping is an association from target latent variables to their
// approximating variables. Targets are unique, compared by identity,
// and iteration follows insertion order so that transformation is
// deterministic.
type Mapping struct {
	pairs []Pair
	index map[distribution.RandomVariable]int
}

// NewMapping returns a new empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{
		index: make(map[distribution.RandomVariable]int),
	}
}

// Add associates approx with target using the registry's default
// transformation. Duplicate targets are rejected.
func (m *Mapping) Add(target, approx distribution.RandomVariable) error {
	return m.add(Pair{Target: target, Approx: approx})
}

// AddWithTransform associates approx with target, overriding the
// registry default with t if the pair needs transforming.
func (m *Mapping) AddWithTransform(target,
	approx distribution.RandomVariable, t transform.Transformation) error {
	return m.add(Pair{Target: target, Approx: approx, Transformation: t})
}

func (m *Mapping) add(p Pair) error {
	if p.Target == nil || p.Approx == nil {
		return fmt.Errorf("add: nil variable")
	}
	if _, ok := m.index[p.Target]; ok {
		return fmt.Errorf("add: target %T already present", p.Target)
	}

	m.index[p.Target] = len(m.pairs)
	m.pairs = append(m.pairs, p)

	return nil
}

// Get returns the approximation associated with target.
func (m *Mapping) Get(target distribution.RandomVariable) (
	distribution.RandomVariable, bool) {
	i, ok := m.index[target]
	if !ok {
		return nil, false
	}

	return m.pairs[i].Approx, true
}

// Pairs returns the mapping's pairs in insertion order.
func (m *Mapping) Pairs() []Pair {
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)

	return out
}

// Len returns the number of pairs in the mapping
func (m *Mapping) Len() int { return len(m.pairs) }
