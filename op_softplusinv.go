package transform

import (
	"fmt"
	"hash"
	"math"

	"github.com/chewxy/hm"
	"github.com/chewxy/math32"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// invSoftplusOp computes the element-wise inverse softplus
// log(eˣ - 1)
type invSoftplusOp struct{}

func newInvSoftplusOp() G.Op {
	return &invSoftplusOp{}
}

func (s *invSoftplusOp) Arity() int { return 1 }

func (s *invSoftplusOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a)
}

func (s *invSoftplusOp) Do(values ...G.Value) (G.Value, error) {
	err := s.checkInputs(values...)
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	return computePointwise(values[0], softplusInvF64, f32SoftplusInv)
}

func (s *invSoftplusOp) ReturnsPtr() bool { return false }

func (s *invSoftplusOp) CallsExtern() bool { return false }

func (s *invSoftplusOp) OverwritesInput() int { return -1 }

// String returns the string representation of the struct
func (s *invSoftplusOp) String() string { return "InvSoftplus" }

// InferShape returns the output shape as a function of the inputs
func (s *invSoftplusOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	err := CheckArity(s, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

// WriteHash writes the hash of the receiver to a hash struct
func (s *invSoftplusOp) WriteHash(h hash.Hash) {
	fmt.Fprintf(h, "InvSoftplus()")
}

// Hashcode returns the hash code of the receiver
func (s *invSoftplusOp) Hashcode() uint32 { return SimpleHash(s) }

func (s *invSoftplusOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	err := CheckArity(s, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	diffOp := &invSoftplusDiffOp{}
	nodes := make(G.Nodes, 1)

	nodes[0], err = G.ApplyOp(diffOp, inputs[0], grad)

	return nodes, err
}

func (s *invSoftplusOp) DiffWRT(inputs int) []bool {
	if inputs != 1 {
		panic(fmt.Sprintf("invSoftplus operator only supports one input, "+
			"got %d instead", inputs))
	}
	return []bool{true}
}

// checkInputs returns an error if the input to this Op is invalid
func (s *invSoftplusOp) checkInputs(inputs ...G.Value) error {
	if err := CheckArity(s, len(inputs)); err != nil {
		return err
	}

	_, okF64 := inputs[0].(*G.F64)
	_, okF32 := inputs[0].(*G.F32)
	_, okTensor := inputs[0].(tensor.Tensor)

	if !(okF64 || okF32 || okTensor) {
		return fmt.Errorf("expected input to be a tensor, got %T", inputs[0])
	}
	if inputs[0] == nil {
		return fmt.Errorf("no input")
	}

	return nil
}

// invSoftplusDiffOp is the gradient of invSoftplusOp:
// d log(eˣ - 1)/dx = 1 / (1 - e⁻ˣ).
type invSoftplusDiffOp struct{}

func (s *invSoftplusDiffOp) Arity() int { return 2 }

func (s *invSoftplusDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a, a)
}

func (s *invSoftplusDiffOp) ReturnsPtr() bool { return false }

func (s *invSoftplusDiffOp) CallsExtern() bool { return false }

func (s *invSoftplusDiffOp) OverwritesInput() int { return -1 }

func (s *invSoftplusDiffOp) WriteHash(h hash.Hash) {
	fmt.Fprint(h, s.String())
}

func (s *invSoftplusDiffOp) Hashcode() uint32 { return SimpleHash(s) }

func (s *invSoftplusDiffOp) String() string { return "InvSoftplusDiff()" }

func (s *invSoftplusDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	err := CheckArity(s, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (s *invSoftplusDiffOp) Do(inputs ...G.Value) (G.Value, error) {
	err := s.checkInputs(inputs...)
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	x := inputs[0].(tensor.Tensor)
	grad := inputs[1].(tensor.Tensor)

	var ret *tensor.Dense
	switch x.Dtype() {
	case tensor.Float64:
		ret = s.f64Kernel(x.Shape().Clone(), x, grad)

	case tensor.Float32:
		ret = s.f32Kernel(x.Shape().Clone(), x, grad)
	}

	return ret, nil
}

func (s *invSoftplusDiffOp) f64Kernel(shape tensor.Shape, inputData,
	gradData tensor.Tensor) *tensor.Dense {
	x := inputData.Data().([]float64)
	grad := gradData.Data().([]float64)

	ret := tensor.New(
		tensor.WithShape(shape...),
		tensor.Of(inputData.Dtype()),
	)

	for i, elem := range x {
		ret.Set(i, grad[i]*invSoftplusDeriv(elem))
	}

	return ret
}

func (s *invSoftplusDiffOp) f32Kernel(shape tensor.Shape, inputData,
	gradData tensor.Tensor) *tensor.Dense {
	x := inputData.Data().([]float32)
	grad := gradData.Data().([]float32)

	ret := tensor.New(
		tensor.WithShape(shape...),
		tensor.Of(inputData.Dtype()),
	)

	for i, elem := range x {
		deriv := 1 / (1 - math32.Exp(-elem))
		ret.Set(i, grad[i]*deriv)
	}

	return ret
}

// checkInputs returns an error if the input to this Op is invalid
func (s *invSoftplusDiffOp) checkInputs(inputs ...G.Value) error {
	if err := CheckArity(s, len(inputs)); err != nil {
		return err
	}

	_, okTensor := inputs[0].(tensor.Tensor)
	_, okGrad := inputs[1].(tensor.Tensor)

	if !(okTensor && okGrad) {
		return fmt.Errorf("expected inputs to be tensors, got %T and %T",
			inputs[0], inputs[1])
	}

	return nil
}

// invSoftplusDeriv computes d log(eˣ - 1)/dx = 1 / (1 - e⁻ˣ)
func invSoftplusDeriv(x float64) float64 {
	return -1 / math.Expm1(-x)
}

// f32SoftplusInv computes the inverse softplus on a float32 value
func f32SoftplusInv(val float32) float32 {
	return float32(softplusInvF64(float64(val)))
}
