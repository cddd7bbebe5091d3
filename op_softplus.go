package transform

import (
	"fmt"
	"hash"

	"github.com/chewxy/hm"
	"github.com/chewxy/math32"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// softplusOp computes the element-wise softplus log(1 + eˣ)
type softplusOp struct{}

func newSoftplusOp() G.Op {
	return &softplusOp{}
}

func (s *softplusOp) Arity() int { return 1 }

func (s *softplusOp) Type() hm.Type {
	// All pointwise unary operations have this type:
	// op :: (Arithable a) => a -> a
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a)
}

func (s *softplusOp) Do(values ...G.Value) (G.Value, error) {
	err := s.checkInputs(values...)
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	return computePointwise(values[0], softplusF64, f32Softplus)
}

func (s *softplusOp) ReturnsPtr() bool { return false }

func (s *softplusOp) CallsExtern() bool { return false }

func (s *softplusOp) OverwritesInput() int { return -1 }

// String returns the string representation of the struct
func (s *softplusOp) String() string { return "Softplus" }

// InferShape returns the output shape as a function of the inputs
func (s *softplusOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
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
func (s *softplusOp) WriteHash(h hash.Hash) { fmt.Fprintf(h, "Softplus()") }

// Hashcode returns the hash code of the receiver
func (s *softplusOp) Hashcode() uint32 { return SimpleHash(s) }

func (s *softplusOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	err := CheckArity(s, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	diffOp := &softplusDiffOp{}
	nodes := make(G.Nodes, 1)

	nodes[0], err = G.ApplyOp(diffOp, inputs[0], grad)

	return nodes, err
}

func (s *softplusOp) DiffWRT(inputs int) []bool {
	if inputs != 1 {
		panic(fmt.Sprintf("softplus operator only supports one input, "+
			"got %d instead", inputs))
	}
	return []bool{true}
}

// checkInputs returns an error if the input to this Op is invalid
func (s *softplusOp) checkInputs(inputs ...G.Value) error {
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

// softplusDiffOp is the gradient of softplusOp: d softplus(x)/dx is
// the logistic function σ(x).
type softplusDiffOp struct{}

func (s *softplusDiffOp) Arity() int { return 2 }

func (s *softplusDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a, a)
}

func (s *softplusDiffOp) ReturnsPtr() bool { return false }

func (s *softplusDiffOp) CallsExtern() bool { return false }

func (s *softplusDiffOp) OverwritesInput() int { return -1 }

func (s *softplusDiffOp) WriteHash(h hash.Hash) { fmt.Fprint(h, s.String()) }

func (s *softplusDiffOp) Hashcode() uint32 { return SimpleHash(s) }

func (s *softplusDiffOp) String() string { return "SoftplusDiff()" }

func (s *softplusDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
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

func (s *softplusDiffOp) Do(inputs ...G.Value) (G.Value, error) {
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

func (s *softplusDiffOp) f64Kernel(shape tensor.Shape, inputData,
	gradData tensor.Tensor) *tensor.Dense {
	x := inputData.Data().([]float64)
	grad := gradData.Data().([]float64)

	ret := tensor.New(
		tensor.WithShape(shape...),
		tensor.Of(inputData.Dtype()),
	)

	for i, elem := range x {
		ret.Set(i, grad[i]*sigmoidF64(elem))
	}

	return ret
}

func (s *softplusDiffOp) f32Kernel(shape tensor.Shape, inputData,
	gradData tensor.Tensor) *tensor.Dense {
	x := inputData.Data().([]float32)
	grad := gradData.Data().([]float32)

	ret := tensor.New(
		tensor.WithShape(shape...),
		tensor.Of(inputData.Dtype()),
	)

	for i, elem := range x {
		sigmoid := 1 / (1 + math32.Exp(-elem))
		ret.Set(i, grad[i]*sigmoid)
	}

	return ret
}

// checkInputs returns an error if the input to this Op is invalid
func (s *softplusDiffOp) checkInputs(inputs ...G.Value) error {
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

// f32Softplus computes the softplus on a float32 input value
func f32Softplus(val float32) float32 {
	return float32(softplusF64(float64(val)))
}

// computePointwise applies a unary function element-wise to a value,
// returning a new value of the same shape and dtype.
func computePointwise(value G.Value, f64 func(float64) float64,
	f32 func(float32) float32) (G.Value, error) {
	switch v := value.(type) {
	case *G.F64:
		return G.NewF64(f64(float64(*v))), nil

	case *G.F32:
		return G.NewF32(f32(float32(*v))), nil

	case tensor.Tensor:
		if len(v.Shape()) == 0 {
			return nil, fmt.Errorf("do: cannot compute on empty tensor")
		}

		ret := tensor.New(
			tensor.WithShape(v.Shape().Clone()...),
			tensor.Of(v.Dtype()),
		)

		switch v.Dtype() {
		case tensor.Float64:
			for i, elem := range v.Data().([]float64) {
				ret.Set(i, f64(elem))
			}

		case tensor.Float32:
			for i, elem := range v.Data().([]float32) {
				ret.Set(i, f32(elem))
			}

		default:
			return nil, fmt.Errorf("do: dtype %v unsupported", v.Dtype())
		}

		return ret, nil
	}

	return nil, fmt.Errorf("do: unable to compute on type %T", value)
}
