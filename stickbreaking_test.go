package transform

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// randSimplex returns a random point on the dim-entry probability
// simplex
func randSimplex(dim int) []float64 {
	x := make([]float64, dim)
	var sum float64
	for i := range x {
		// Exponential draws normalized to sum to one are uniform on
		// the simplex
		x[i] = -math.Log(rand.Float64())
		sum += x[i]
	}
	for i := range x {
		x[i] /= sum
	}

	return x
}

// TestStickBreakingRoundTrip ensures the simplex transformation and
// its inverse undo each other on random simplex points.
func TestStickBreakingRoundTrip(t *testing.T) {
	const tolerance float64 = 1e-9
	const tests int = 30
	const maxDim int = 8

	for i := 0; i < tests; i++ {
		dim := 2 + rand.Intn(maxDim)
		tr := StickBreaking(dim)

		x := randSimplex(dim)
		y, err := tr.Forward(x)
		if err != nil {
			t.Error(err)
		}
		if len(y) != dim-1 {
			t.Errorf("expected codomain dimension %d but got %d", dim-1,
				len(y))
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
	}
}

// TestStickBreakingInverseOnSimplex ensures that inverse-transforming
// arbitrary unconstrained points always lands on the simplex.
func TestStickBreakingInverseOnSimplex(t *testing.T) {
	const tolerance float64 = 1e-9
	const tests int = 30
	const maxDim int = 8

	for i := 0; i < tests; i++ {
		dim := 2 + rand.Intn(maxDim)
		tr := StickBreaking(dim)

		y := randF64(dim-1, -8, 8)
		x, err := tr.Inverse(y)
		if err != nil {
			t.Error(err)
		}

		var sum float64
		for _, v := range x {
			if v < 0 {
				t.Errorf("simplex entry negative: %v", v)
			}
			sum += v
		}

		if math.Abs(sum-1) > tolerance {
			t.Errorf("simplex entries sum to %v, expected 1", sum)
		}
	}
}

// TestStickBreakingCenter ensures y = 0 maps to the uniform
// probability vector, which is what the log(dim-1-k) shift is for.
func TestStickBreakingCenter(t *testing.T) {
	const tolerance float64 = 1e-12
	const dim int = 5

	tr := StickBreaking(dim)
	x, err := tr.Inverse(make([]float64, dim-1))
	if err != nil {
		t.Error(err)
	}

	for _, v := range x {
		if math.Abs(v-1.0/float64(dim)) > tolerance {
			t.Errorf("expected uniform entry %v received %v",
				1.0/float64(dim), v)
		}
	}
}

// TestStickBreakingLogDetJacInv checks the analytic inverse log
// Jacobian determinant against a finite-difference Jacobian of the
// map from unconstrained points to the first dim-1 simplex entries.
func TestStickBreakingLogDetJacInv(t *testing.T) {
	const tolerance float64 = 1e-4
	const tests int = 20
	const maxDim int = 6
	const eps float64 = 1e-6

	for i := 0; i < tests; i++ {
		dim := 2 + rand.Intn(maxDim)
		tr := StickBreaking(dim)

		y := randF64(dim-1, -2, 2)
		ld, err := tr.LogDetJacInv(y)
		if err != nil {
			t.Error(err)
		}

		jac := mat.NewDense(dim-1, dim-1, nil)
		for col := 0; col < dim-1; col++ {
			up := make([]float64, dim-1)
			down := make([]float64, dim-1)
			copy(up, y)
			copy(down, y)
			up[col] += eps
			down[col] -= eps

			xUp, err := tr.Inverse(up)
			if err != nil {
				t.Error(err)
			}
			xDown, err := tr.Inverse(down)
			if err != nil {
				t.Error(err)
			}

			for row := 0; row < dim-1; row++ {
				jac.Set(row, col, (xUp[row]-xDown[row])/(2*eps))
			}
		}

		expected := math.Log(math.Abs(mat.Det(jac)))
		if math.Abs(ld-expected) > tolerance {
			t.Errorf("expected %v received %v (dim %d)", expected, ld, dim)
		}
	}
}
