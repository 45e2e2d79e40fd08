package neuralnet

import (
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

var central = &fd.Settings{Formula: fd.Central}

// A node consumed by two downstream branches must sum the gradient
// contributions of both paths, which the finite-difference estimate
// captures by construction.
func TestSharedParameterAccumulatesAllPaths(t *testing.T) {
	build := func(p *Value) *Value {
		a := p.Mul(1.5).Add(0.25).Tanh()
		b := p.Mul(-2.0).Add(0.75).Tanh()
		return a.Add(b)
	}

	const at = 0.37
	p := NewValue(at)
	out := build(p)
	out.Backward()

	want := fd.Derivative(func(x float64) float64 {
		return build(NewValue(x)).Data
	}, at, central)

	if !scalar.EqualWithinAbs(p.Grad, want, 1e-4) {
		t.Errorf("analytic gradient %v, finite difference %v", p.Grad, want)
	}
}

func TestMLPGradientsMatchFiniteDifferences(t *testing.T) {
	model := NewMLP(2, []int{3, 1})
	x := []*Value{NewValue(0.5), NewValue(-1.25)}

	forward := func() *Value {
		out, err := model.Forward(x)
		if err != nil {
			t.Fatal(err)
		}
		return out[0]
	}

	ZeroGrad(model)
	forward().Backward()
	params := model.Parameters()
	grads := make([]float64, len(params))
	for i, p := range params {
		grads[i] = p.Grad
	}

	for i, p := range params {
		saved := p.Data
		want := fd.Derivative(func(v float64) float64 {
			p.Data = v
			defer func() { p.Data = saved }()
			return forward().Data
		}, saved, central)

		if !scalar.EqualWithinAbs(grads[i], want, 1e-4) {
			t.Errorf("parameter %d: analytic gradient %v, finite difference %v", i, grads[i], want)
		}
	}
}
