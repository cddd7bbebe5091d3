package transform

import (
	"math"
	"math/rand"
	"testing"
)

// TestLogitRoundTrip ensures the interval transformation and its
// inverse undo each other for random bounds and points.
func TestLogitRoundTrip(t *testing.T) {
	const tolerance float64 = 1e-9
	const tests int = 30
	const maxDim int = 10

	for i := 0; i < tests; i++ {
		lower := (rand.Float64() - 0.5) * 10
		upper := lower + 1e-2 + rand.Float64()*10
		dim := 1 + rand.Intn(maxDim)
		tr := Logit(lower, upper, dim)

		x := make([]float64, dim)
		for j := range x {
			// Stay away from the endpoints, where logit saturates
			x[j] = lower + (upper-lower)*(0.01+0.98*rand.Float64())
		}

		y, err := tr.Forward(x)
		if err != nil {
			t.Error(err)
		}

		back, err := tr.Inverse(y)
		if err != nil {
			t.Error(err)
		}

		for j := range x {
			if math.Abs(x[j]-back[j]) > tolerance {
				t.Errorf("T⁻¹(T(x)) != x: expected %v received %v", x[j],
					back[j])
			}
		}

		y = randF64(dim, -10, 10)
		x, err = tr.Inverse(y)
		if err != nil {
			t.Error(err)
		}

		fwd, err := tr.Forward(x)
		if err != nil {
			t.Error(err)
		}

		for j := range y {
			if math.Abs(y[j]-fwd[j]) > 1e-7 {
				t.Errorf("T(T⁻¹(y)) != y: expected %v received %v", y[j],
					fwd[j])
			}
		}
	}
}

// TestLogitLogDetJacInv checks the analytic inverse log Jacobian
// determinant against a finite-difference estimate.
func TestLogitLogDetJacInv(t *testing.T) {
	const tolerance float64 = 1e-5
	const tests int = 30
	const maxDim int = 6
	const eps float64 = 1e-6

	for i := 0; i < tests; i++ {
		lower := (rand.Float64() - 0.5) * 4
		upper := lower + 0.5 + rand.Float64()*4
		dim := 1 + rand.Intn(maxDim)
		tr := Logit(lower, upper, dim)
		width := upper - lower

		y := randF64(dim, -4, 4)
		ld, err := tr.LogDetJacInv(y)
		if err != nil {
			t.Error(err)
		}

		var expected float64
		for _, v := range y {
			inv := func(z float64) float64 {
				return lower + width*sigmoidF64(z)
			}
			deriv := (inv(v+eps) - inv(v-eps)) / (2 * eps)
			expected += math.Log(deriv)
		}

		if math.Abs(ld-expected) > tolerance {
			t.Errorf("expected %v received %v", expected, ld)
		}
	}
}

func TestLogitBadBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for upper <= lower")
		}
	}()

	Logit(1, 1, 3)
}
