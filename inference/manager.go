package inference

import (
	"fmt"

	"github.com/samuelfneumann/transform"
	"github.com/samuelfneumann/transform/distribution"
)

// A Record stores the outcome of reconciling one mismatched
// (target, approximation) pair: the transformed target and the
// transformation that produced it.
type Record struct {
	Transformed    *distribution.Transformed
	Transformation transform.Transformation
}

// A Manager holds the transformed latent-variable mapping for one
// inference session, together with a record per transformed target
// for recovering constrained-space results afterwards.
//
// A Manager is built once by Initialize and read-only thereafter, so
// it may be shared across parallel chains; each chain should still
// operate on its own copy of the mapping's pairs.
type Manager struct {
	latent  *Mapping
	records map[distribution.RandomVariable]Record
	order   []distribution.RandomVariable
}

// Initialize reconciles every pair of latent and returns a Manager
// whose mapping supersedes latent for algorithm execution.
//
// When autoTransform is false the input mapping is kept unchanged and
// no records are created. Otherwise each pair is visited in insertion
// order: pairs whose supports already agree (or whose approximation
// is a point mass) are copied through untouched, and each mismatched
// pair has its target transformed to unconstrained space, using the
// pair's transformation override when one was supplied and the
// registry default otherwise. The approximation is never modified.
//
// Errors are surfaced immediately and no partially transformed
// mapping is returned: a failure on any pair abandons the whole
// build. After a target is transformed, its approximation must be an
// unconstrained real variable of the transformed dimension, or
// Initialize fails with IncompatibleApproximationError.
func Initialize(latent *Mapping, autoTransform bool) (*Manager, error) {
	if latent == nil {
		return nil, fmt.Errorf("initialize: nil mapping")
	}

	if !autoTransform {
		return &Manager{
			latent:  latent,
			records: make(map[distribution.RandomVariable]Record),
		}, nil
	}

	out := NewMapping()
	records := make(map[distribution.RandomVariable]Record)
	var order []distribution.RandomVariable

	for i, p := range latent.Pairs() {
		if !NeedsTransform(p.Target, p.Approx) {
			if err := out.add(p); err != nil {
				return nil, fmt.Errorf("initialize: %v", err)
			}
			continue
		}

		var transformed *distribution.Transformed
		var err error
		if p.Transformation != nil {
			transformed, err = distribution.Transform(p.Target,
				p.Transformation)
		} else {
			transformed, err = distribution.Transform(p.Target)
		}
		if err != nil {
			return nil, err
		}

		if err := checkApprox(i, p.Approx, transformed); err != nil {
			return nil, err
		}

		records[p.Target] = Record{
			Transformed:    transformed,
			Transformation: transformed.Transformation(),
		}
		order = append(order, p.Target)

		if err := out.Add(transformed, p.Approx); err != nil {
			return nil, fmt.Errorf("initialize: %v", err)
		}
	}

	return &Manager{latent: out, records: records, order: order}, nil
}

// checkApprox verifies that an approximation can stand in for a
// transformed target: it must live on unconstrained reals of the
// transformed dimension. This is a defensive check; failing it means
// the user-supplied approximation was malformed.
func checkApprox(i int, approx distribution.RandomVariable,
	transformed *distribution.Transformed) error {
	want := transformed.Support()
	got := approx.Support()

	if got.Kind != transform.Reals || got.Dim != want.Dim {
		return &transform.IncompatibleApproximationError{
			Target:   fmt.Sprintf("latent variable %d (%T)", i, transformed.Base()),
			Expected: want,
			Got:      got,
		}
	}

	return nil
}

// Latent returns the mapping that supersedes the one passed to
// Initialize. Downstream algorithms must iterate over this mapping,
// not the original.
func (m *Manager) Latent() *Mapping { return m.latent }

// Transformed returns the unconstrained counterpart of an original
// target, if the target was transformed during Initialize.
func (m *Manager) Transformed(target distribution.RandomVariable) (
	distribution.RandomVariable, bool) {
	rec, ok := m.records[target]
	if !ok {
		return nil, false
	}

	return rec.Transformed, true
}

// Record returns the transformation record of an original target, if
// the target was transformed during Initialize.
func (m *Manager) Record(target distribution.RandomVariable) (Record,
	bool) {
	rec, ok := m.records[target]

	return rec, ok
}

// Targets returns the original targets that were transformed, in
// insertion order of the input mapping.
func (m *Manager) Targets() []distribution.RandomVariable {
	out := make([]distribution.RandomVariable, len(m.order))
	copy(out, m.order)

	return out
}

// RecoverApproximation maps the approximation of a transformed target
// back onto the target's original support. See Recover.
func (m *Manager) RecoverApproximation(
	target distribution.RandomVariable) (distribution.RandomVariable,
	error) {
	rec, ok := m.records[target]
	if !ok {
		return nil, fmt.Errorf("recoverApproximation: no record for "+
			"target %T", target)
	}

	approx, ok := m.latent.Get(rec.Transformed)
	if !ok {
		return nil, fmt.Errorf("recoverApproximation: no approximation "+
			"for target %T", target)
	}

	return Recover(approx, rec)
}

// RecoverTargetSamples maps samples drawn in a transformed target's
// unconstrained space back onto the target's original support. See
// RecoverSamples.
func (m *Manager) RecoverTargetSamples(
	target distribution.RandomVariable,
	samples [][]float64) ([][]float64, error) {
	rec, ok := m.records[target]
	if !ok {
		return nil, fmt.Errorf("recoverTargetSamples: no record for "+
			"target %T", target)
	}

	return RecoverSamples(samples, rec)
}
