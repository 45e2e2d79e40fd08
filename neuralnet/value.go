package neuralnet

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Value is one scalar node in the computational graph. Data holds the
// forward result and Grad the accumulated partial derivative of the
// backward root with respect to this node. prev records the nodes this
// one was derived from, and backward pushes Grad onto them using the
// local rule captured at construction; both stay nil for leaves.
type Value struct {
	Data float64
	Grad float64

	prev     []*Value
	op       string
	backward func()
}

// NewValue creates a leaf node: an input, a constant or a learnable
// parameter.
func NewValue(data float64) *Value {
	return &Value{Data: data}
}

// operand normalizes x into a graph node. Raw numbers become fresh leaf
// nodes; anything that is neither a *Value nor a number panics with
// ErrInvalidOperand.
func operand(x any) *Value {
	if v, ok := x.(*Value); ok {
		return v
	}
	f, ok := toFloat(x)
	if !ok {
		panic(errors.Wrapf(ErrInvalidOperand, "got %T", x))
	}
	return NewValue(f)
}

func toFloat(x any) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// parents records the operand set of a binary op. Using the same node on
// both sides (x + x) stores a single edge; the backward closure still
// accumulates both contributions.
func parents(a, b *Value) []*Value {
	if a == b {
		return []*Value{a}
	}
	return []*Value{a, b}
}

// Add builds v + other. other may be a *Value or a raw number.
func (v *Value) Add(other any) *Value {
	o := operand(other)
	out := &Value{Data: v.Data + o.Data, prev: parents(v, o), op: "+"}
	out.backward = func() {
		v.Grad += out.Grad
		o.Grad += out.Grad
	}
	return out
}

// Mul builds v * other. other may be a *Value or a raw number.
func (v *Value) Mul(other any) *Value {
	o := operand(other)
	out := &Value{Data: v.Data * o.Data, prev: parents(v, o), op: "*"}
	out.backward = func() {
		v.Grad += o.Data * out.Grad
		o.Grad += v.Data * out.Grad
	}
	return out
}

// Pow builds v raised to a fixed real exponent. Node-valued exponents
// are not supported: passing a *Value, or anything that is not a raw
// number, panics with ErrInvalidExponent at the call site.
func (v *Value) Pow(exponent any) *Value {
	k, ok := toFloat(exponent)
	if !ok {
		panic(errors.Wrapf(ErrInvalidExponent, "got %T", exponent))
	}
	out := &Value{Data: math.Pow(v.Data, k), prev: []*Value{v}, op: fmt.Sprintf("**%g", k)}
	out.backward = func() {
		v.Grad += k * math.Pow(v.Data, k-1) * out.Grad
	}
	return out
}

// Neg builds -v.
func (v *Value) Neg() *Value {
	return v.Mul(-1.0)
}

// Sub builds v - other.
func (v *Value) Sub(other any) *Value {
	return v.Add(operand(other).Neg())
}

// Div builds v / other as v * other^-1. Division by a zero-valued node
// follows IEEE-754: the result is an infinity or NaN, never an error.
func (v *Value) Div(other any) *Value {
	return v.Mul(operand(other).Pow(-1.0))
}

// Abs negates a negative node and returns a non-negative node unchanged,
// so the sign flip stays part of the graph.
func (v *Value) Abs() *Value {
	if v.Data < 0 {
		return v.Neg()
	}
	return v
}

// Gt compares forward values only; it adds no edge to the graph.
func (v *Value) Gt(other any) bool {
	return v.Data > operand(other).Data
}

func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%q)", v.Data, v.Grad, v.op)
}
