package transform

// DefaultTransform returns the canonical transformation from the
// given support onto unconstrained real space:
//
//	Reals        → Identity
//	NonNegative  → SoftplusInv
//	Interval     → Logit over the support's endpoints
//	Simplex      → StickBreaking
//
// Discrete and point-mass supports have no default: they carry no
// density for the change-of-variables formula to correct, so an
// UnsupportedSupportError is returned.
func DefaultTransform(s Support) (Transformation, error) {
	switch s.Kind {
	case Reals:
		return Identity(s.Dim), nil

	case NonNegative:
		return SoftplusInv(s.Dim), nil

	case Interval:
		return Logit(s.Lower, s.Upper, s.Dim), nil

	case Simplex:
		return StickBreaking(s.Dim), nil
	}

	return nil, &UnsupportedSupportError{Support: s}
}
