package neuralnet

import "math"

// Exp builds e^v.
func (v *Value) Exp() *Value {
	out := &Value{Data: math.Exp(v.Data), prev: []*Value{v}, op: "exp"}
	out.backward = func() {
		v.Grad += out.Data * out.Grad
	}
	return out
}

// Tanh builds the hyperbolic tangent of v, computed as
// (exp(2x)-1)/(exp(2x)+1). Overflow in exp follows IEEE-754 and is not
// guarded.
func (v *Value) Tanh() *Value {
	t := (math.Exp(2*v.Data) - 1) / (math.Exp(2*v.Data) + 1)
	out := &Value{Data: t, prev: []*Value{v}, op: "tanh"}
	out.backward = func() {
		v.Grad += (1 - t*t) * out.Grad
	}
	return out
}

// ReLU builds max(0, v).
func (v *Value) ReLU() *Value {
	out := &Value{Data: math.Max(0, v.Data), prev: []*Value{v}, op: "relu"}
	out.backward = func() {
		if out.Data > 0 {
			v.Grad += out.Grad
		}
	}
	return out
}

// Sigmoid builds 1/(1+e^-v) out of the primitive ops, so its derivative
// falls out of the chain rule rather than a dedicated rule.
func (v *Value) Sigmoid() *Value {
	return NewValue(1.0).Div(v.Neg().Exp().Add(1.0))
}
