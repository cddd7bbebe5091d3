package transform

import (
	"fmt"
	"hash/fnv"

	G "gorgonia.org/gorgonia"
)

// Softplus computes the element-wise softplus function log(1 + eˣ) on
// a node. Gorgonia has no numerically safe primitive for this, so it
// is implemented as a custom operation with a symbolic gradient.
func Softplus(x *G.Node) (*G.Node, error) {
	op := newSoftplusOp()

	return G.ApplyOp(op, x)
}

// InvSoftplus computes the element-wise inverse softplus function
// log(eˣ - 1) on a node.
func InvSoftplus(x *G.Node) (*G.Node, error) {
	op := newInvSoftplusOp()

	return G.ApplyOp(op, x)
}

// SimpleHash constructs the 32-bit FNV-1a hash of a Gorgonia Op.
// Taken from Gorgonia.
func SimpleHash(op G.Op) uint32 {
	h := fnv.New32a()
	op.WriteHash(h)
	return h.Sum32()
}

// CheckArity returns an error if op was not given inputs arguments
func CheckArity(op G.Op, inputs int) error {
	if inputs != op.Arity() && op.Arity() >= 0 {
		return fmt.Errorf("%v has an arity of %d. Got %d instead", op,
			op.Arity(), inputs)
	}
	return nil
}
