package distribution

import (
	"math"
	"math/rand"
	"testing"
	"time"

	expRand "golang.org/x/exp/rand"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/transform"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

func newSrc() expRand.Source {
	return expRand.NewSource(uint64(time.Now().UnixNano()))
}

// TestTransformedGammaDensityConservation checks that the density of
// a gamma variable pushed onto real space still integrates to one:
// the Jacobian correction conserves probability mass.
func TestTransformedGammaDensityConservation(t *testing.T) {
	const tolerance float64 = 1e-4

	g, err := NewGamma([]float64{1.0}, []float64{2.0}, newSrc())
	if err != nil {
		t.Fatal(err)
	}

	tg, err := Transform(g)
	if err != nil {
		t.Fatal(err)
	}

	if !tg.Support().Eq(transform.RealSupport(1)) {
		t.Errorf("expected transformed support %v but got %v",
			transform.RealSupport(1), tg.Support())
	}

	integral := quad.Fixed(func(y float64) float64 {
		return math.Exp(tg.LogProb([]float64{y}))
	}, -40, 25, 500, nil, 0)

	if math.Abs(integral-1) > tolerance {
		t.Errorf("transformed density integrates to %v, expected 1",
			integral)
	}
}

// TestTransformedBetaDensityConservation is the interval-support
// analogue of the gamma conservation test.
func TestTransformedBetaDensityConservation(t *testing.T) {
	const tolerance float64 = 1e-4

	b, err := NewBeta([]float64{2.0}, []float64{3.0}, newSrc())
	if err != nil {
		t.Fatal(err)
	}

	tb, err := Transform(b)
	if err != nil {
		t.Fatal(err)
	}

	integral := quad.Fixed(func(y float64) float64 {
		return math.Exp(tb.LogProb([]float64{y}))
	}, -30, 30, 500, nil, 0)

	if math.Abs(integral-1) > tolerance {
		t.Errorf("transformed density integrates to %v, expected 1",
			integral)
	}
}

// TestTransformedLogProbMatchesFormula verifies the
// change-of-variables formula directly against the base density and
// the transformation's Jacobian term.
func TestTransformedLogProbMatchesFormula(t *testing.T) {
	const tolerance float64 = 1e-10
	const tests int = 30

	g, err := NewGamma([]float64{2.0, 0.5}, []float64{1.0, 3.0}, newSrc())
	if err != nil {
		t.Fatal(err)
	}

	tg, err := Transform(g)
	if err != nil {
		t.Fatal(err)
	}
	tr := tg.Transformation()

	for i := 0; i < tests; i++ {
		y := []float64{(rand.Float64() - 0.5) * 8, (rand.Float64() - 0.5) * 8}

		x, err := tr.Inverse(y)
		if err != nil {
			t.Error(err)
		}
		ld, err := tr.LogDetJacInv(y)
		if err != nil {
			t.Error(err)
		}

		expected := g.LogProb(x) + ld
		got := tg.LogProb(y)
		if math.Abs(expected-got) > tolerance {
			t.Errorf("expected %v received %v", expected, got)
		}
	}
}

// TestTransformedSamplesLandInBase ensures draws from a transformed
// variable map back into the base variable's support.
func TestTransformedSamplesLandInBase(t *testing.T) {
	const samples int = 100

	g, err := NewGamma([]float64{1.5}, []float64{2.0}, newSrc())
	if err != nil {
		t.Fatal(err)
	}
	tg, err := Transform(g)
	if err != nil {
		t.Fatal(err)
	}
	tr := tg.Transformation()

	for i := 0; i < samples; i++ {
		y := tg.Rand(nil)
		if math.IsNaN(y[0]) || math.IsInf(y[0], 0) {
			t.Errorf("draw %v not finite", y[0])
		}

		x, err := tr.Inverse(y)
		if err != nil {
			t.Error(err)
		}
		if x[0] < 0 {
			t.Errorf("inverse-transformed draw %v outside base support",
				x[0])
		}
	}
}

// TestTransformIdentityNoOp ensures transforming an already
// unconstrained variable applies the identity: densities agree
// everywhere and sample moments are indistinguishable.
func TestTransformIdentityNoOp(t *testing.T) {
	const tolerance float64 = 1e-12
	const tests int = 30
	const samples int = 10000
	const momentTolerance float64 = 0.1

	mean := []float64{1.0}
	stddev := []float64{2.0}
	n, err := NewNormal(mean, stddev, newSrc())
	if err != nil {
		t.Fatal(err)
	}

	tn, err := Transform(n)
	if err != nil {
		t.Fatal(err)
	}

	if tn.Transformation().String() != "Identity" {
		t.Errorf("expected Identity transformation but got %v",
			tn.Transformation())
	}

	for i := 0; i < tests; i++ {
		x := []float64{(rand.Float64() - 0.5) * 10}
		if math.Abs(n.LogProb(x)-tn.LogProb(x)) > tolerance {
			t.Errorf("expected %v received %v", n.LogProb(x), tn.LogProb(x))
		}
	}

	draws := make([]float64, samples)
	for i := range draws {
		draws[i] = tn.Rand(nil)[0]
	}

	target := distuv.Normal{Mu: mean[0], Sigma: stddev[0]}
	if math.Abs(stat.Mean(draws, nil)-target.Mean()) > momentTolerance {
		t.Errorf("sample mean %v far from %v", stat.Mean(draws, nil),
			target.Mean())
	}
	if math.Abs(stat.StdDev(draws, nil)-target.StdDev()) > momentTolerance {
		t.Errorf("sample stddev %v far from %v", stat.StdDev(draws, nil),
			target.StdDev())
	}
}

// TestTransformedDirichlet exercises a dimension-changing
// transformation end to end.
func TestTransformedDirichlet(t *testing.T) {
	const tolerance float64 = 1e-9
	const samples int = 50

	d, err := NewDirichlet([]float64{2.0, 3.0, 4.0}, newSrc())
	if err != nil {
		t.Fatal(err)
	}

	td, err := Transform(d)
	if err != nil {
		t.Fatal(err)
	}

	if td.Dim() != d.Dim()-1 {
		t.Errorf("expected transformed dimension %d but got %d", d.Dim()-1,
			td.Dim())
	}

	tr := td.Transformation()
	for i := 0; i < samples; i++ {
		y := td.Rand(nil)

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

// TestTransformErrors exercises the eager error checks of the
// Transform primitive.
func TestTransformErrors(t *testing.T) {
	// Discrete variables have no density to transform
	p, err := NewPoisson([]float64{3.0}, newSrc())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Transform(p); err == nil {
		t.Error("expected error transforming a discrete variable")
	} else if _, ok := err.(*transform.UnsupportedTransformError); !ok {
		t.Errorf("expected UnsupportedTransformError but got %T", err)
	}

	// Sample collections have no density to transform
	e, err := NewEmpirical([][]float64{{1}, {2}}, newSrc())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Transform(e); err == nil {
		t.Error("expected error transforming an empirical variable")
	} else if _, ok := err.(*transform.UnsupportedTransformError); !ok {
		t.Errorf("expected UnsupportedTransformError but got %T", err)
	}

	pm, err := NewPointMass([]float64{1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Transform(pm); err == nil {
		t.Error("expected error transforming a point mass")
	} else if _, ok := err.(*transform.UnsupportedTransformError); !ok {
		t.Errorf("expected UnsupportedTransformError but got %T", err)
	}

	// A user transformation whose domain does not match the
	// variable's support is rejected outright
	b, err := NewBeta([]float64{2.0}, []float64{2.0}, newSrc())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Transform(b, transform.Logit(0, 0.5, 1)); err == nil {
		t.Error("expected error for mismatched transformation domain")
	} else if _, ok := err.(*transform.DimensionMismatchError); !ok {
		t.Errorf("expected DimensionMismatchError but got %T", err)
	}

	// Wrong dimensionality is the same failure
	g, err := NewGamma([]float64{1.0, 1.0}, []float64{1.0, 1.0}, newSrc())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Transform(g, transform.SoftplusInv(3)); err == nil {
		t.Error("expected error for mismatched transformation dimension")
	} else if _, ok := err.(*transform.DimensionMismatchError); !ok {
		t.Errorf("expected DimensionMismatchError but got %T", err)
	}
}
