package transform

import (
	"fmt"
	"math"

	G "gorgonia.org/gorgonia"
)

// A NodeTransformer is a Transformation that can additionally build
// its forward map, inverse map, and inverse log Jacobian determinant
// as Gorgonia graph nodes, so that gradient-based inference can
// differentiate a transformed log-density with respect to
// unconstrained parameters.
//
// All three methods take and return vector nodes; LogDetJacInvNode
// reduces to a scalar node. Transformations that change
// dimensionality, such as stick-breaking, need not implement this
// interface.
type NodeTransformer interface {
	Transformation

	// ForwardNode builds T(x) in x's graph
	ForwardNode(x *G.Node) (*G.Node, error)

	// InverseNode builds T⁻¹(y) in y's graph
	InverseNode(y *G.Node) (*G.Node, error)

	// LogDetJacInvNode builds log|det J_{T⁻¹}(y)| in y's graph
	LogDetJacInvNode(y *G.Node) (*G.Node, error)
}

// ForwardNode returns x unchanged
func (id *identity) ForwardNode(x *G.Node) (*G.Node, error) {
	return x, nil
}

// InverseNode returns y unchanged
func (id *identity) InverseNode(y *G.Node) (*G.Node, error) {
	return y, nil
}

// LogDetJacInvNode returns a constant zero node
func (id *identity) LogDetJacInvNode(y *G.Node) (*G.Node, error) {
	return y.Graph().Constant(G.NewF64(0.0)), nil
}

func (s *softplusInv) ForwardNode(x *G.Node) (*G.Node, error) {
	out, err := InvSoftplus(x)
	if err != nil {
		return nil, fmt.Errorf("forwardNode: %v", err)
	}

	return out, nil
}

func (s *softplusInv) InverseNode(y *G.Node) (*G.Node, error) {
	out, err := Softplus(y)
	if err != nil {
		return nil, fmt.Errorf("inverseNode: %v", err)
	}

	return out, nil
}

// LogDetJacInvNode builds Σᵢ log σ(yᵢ) as -Σᵢ softplus(-yᵢ)
func (s *softplusInv) LogDetJacInvNode(y *G.Node) (*G.Node, error) {
	neg, err := G.Neg(y)
	if err != nil {
		return nil, fmt.Errorf("logDetJacInvNode: %v", err)
	}

	sp, err := Softplus(neg)
	if err != nil {
		return nil, fmt.Errorf("logDetJacInvNode: %v", err)
	}

	sum, err := G.Sum(sp)
	if err != nil {
		return nil, fmt.Errorf("logDetJacInvNode: %v", err)
	}

	return G.Neg(sum)
}

func (l *logit) ForwardNode(x *G.Node) (*G.Node, error) {
	g := x.Graph()
	lower := g.Constant(G.NewF64(l.lower))
	width := g.Constant(G.NewF64(l.upper - l.lower))
	one := g.Constant(G.NewF64(1.0))

	z := G.Must(G.Sub(x, lower))
	z = G.Must(G.HadamardDiv(z, width))

	logZ, err := G.Log(z)
	if err != nil {
		return nil, fmt.Errorf("forwardNode: %v", err)
	}

	log1mZ, err := G.Log(G.Must(G.Sub(one, z)))
	if err != nil {
		return nil, fmt.Errorf("forwardNode: %v", err)
	}

	return G.Sub(logZ, log1mZ)
}

func (l *logit) InverseNode(y *G.Node) (*G.Node, error) {
	g := y.Graph()
	lower := g.Constant(G.NewF64(l.lower))
	width := g.Constant(G.NewF64(l.upper - l.lower))

	sig, err := G.Sigmoid(y)
	if err != nil {
		return nil, fmt.Errorf("inverseNode: %v", err)
	}

	out := G.Must(G.HadamardProd(width, sig))

	return G.Add(lower, out)
}

// LogDetJacInvNode builds Σᵢ [log(upper - lower) - softplus(-yᵢ) -
// softplus(yᵢ)]
func (l *logit) LogDetJacInvNode(y *G.Node) (*G.Node, error) {
	g := y.Graph()
	logWidth := g.Constant(G.NewF64(
		float64(l.dim) * math.Log(l.upper-l.lower)))

	spNeg, err := Softplus(G.Must(G.Neg(y)))
	if err != nil {
		return nil, fmt.Errorf("logDetJacInvNode: %v", err)
	}

	spPos, err := Softplus(y)
	if err != nil {
		return nil, fmt.Errorf("logDetJacInvNode: %v", err)
	}

	sum := G.Must(G.Add(G.Must(G.Sum(spNeg)), G.Must(G.Sum(spPos))))

	return G.Sub(logWidth, sum)
}
