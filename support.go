package transform

import "fmt"

// A SupportKind labels the domain over which a random variable's
// density or mass is nonzero.
type SupportKind int

const (
	// Reals is unconstrained real-valued space
	Reals SupportKind = iota

	// NonNegative is the non-negative half-line [0, ∞)
	NonNegative

	// Interval is a bounded interval (lower, upper)
	Interval

	// Simplex is the probability simplex: non-negative entries
	// summing to one
	Simplex

	// Discrete is an integer-valued support (counts, categories)
	Discrete

	// PointMass is a delta distribution concentrated on a single
	// point, with no density at all
	PointMass
)

// String returns the string representation of a support kind
func (k SupportKind) String() string {
	switch k {
	case Reals:
		return "Reals"
	case NonNegative:
		return "NonNegative"
	case Interval:
		return "Interval"
	case Simplex:
		return "Simplex"
	case Discrete:
		return "Discrete"
	case PointMass:
		return "PointMass"
	}
	return fmt.Sprintf("SupportKind(%d)", int(k))
}

// Support describes the support of a random variable: its kind, its
// dimensionality, and, for bounded intervals, its endpoints. Supports
// are plain values and are compared with Eq.
type Support struct {
	Kind  SupportKind
	Dim   int
	Lower float64 // Interval kind only
	Upper float64 // Interval kind only
}

// RealSupport returns the unconstrained support over dim-dimensional
// real space.
func RealSupport(dim int) Support {
	return Support{Kind: Reals, Dim: dim}
}

// NonNegativeSupport returns the support [0, ∞)^dim.
func NonNegativeSupport(dim int) Support {
	return Support{Kind: NonNegative, Dim: dim}
}

// IntervalSupport returns the support (lower, upper)^dim.
func IntervalSupport(lower, upper float64, dim int) Support {
	return Support{Kind: Interval, Dim: dim, Lower: lower, Upper: upper}
}

// SimplexSupport returns the support of a probability vector with dim
// entries.
func SimplexSupport(dim int) Support {
	return Support{Kind: Simplex, Dim: dim}
}

// DiscreteSupport returns an integer-valued support of dimension dim.
func DiscreteSupport(dim int) Support {
	return Support{Kind: Discrete, Dim: dim}
}

// PointMassSupport returns the support of a delta distribution of
// dimension dim.
func PointMassSupport(dim int) Support {
	return Support{Kind: PointMass, Dim: dim}
}

// Continuous returns whether the support admits a density with respect
// to Lebesgue measure. Discrete and point-mass supports do not.
func (s Support) Continuous() bool {
	switch s.Kind {
	case Reals, NonNegative, Interval, Simplex:
		return true
	}
	return false
}

// Eq returns whether two supports are identical. Interval endpoints
// are compared only for the Interval kind.
func (s Support) Eq(other Support) bool {
	if s.Kind != other.Kind || s.Dim != other.Dim {
		return false
	}
	if s.Kind == Interval {
		return s.Lower == other.Lower && s.Upper == other.Upper
	}
	return true
}

// String returns the string representation of the support
func (s Support) String() string {
	if s.Kind == Interval {
		return fmt.Sprintf("Interval(%v, %v)^%d", s.Lower, s.Upper, s.Dim)
	}
	return fmt.Sprintf("%v^%d", s.Kind, s.Dim)
}
