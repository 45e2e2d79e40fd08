package neuralnet

import (
	"math"
	"testing"
)

func TestTanhAtZero(t *testing.T) {
	x := NewValue(0)
	y := x.Tanh()
	y.Backward()
	if y.Data != 0 {
		t.Errorf("tanh(0) = %v, want 0", y.Data)
	}
	if x.Grad != 1 {
		t.Errorf("d tanh/dx at 0 = %v, want 1", x.Grad)
	}
}

func TestTanhMatchesStdlib(t *testing.T) {
	for _, in := range []float64{-2, -0.5, 0.25, 1.7} {
		y := NewValue(in).Tanh()
		if !floatEquals(y.Data, math.Tanh(in), 1e-12) {
			t.Errorf("Tanh(%v) = %v, want %v", in, y.Data, math.Tanh(in))
		}
	}
}

func TestExpGradient(t *testing.T) {
	x := NewValue(1)
	y := x.Exp()
	y.Backward()
	if !floatEquals(y.Data, math.E, 1e-12) {
		t.Errorf("exp(1) = %v, want e", y.Data)
	}
	if !floatEquals(x.Grad, math.E, 1e-12) {
		t.Errorf("d exp/dx at 1 = %v, want e", x.Grad)
	}
}

func TestReLU(t *testing.T) {
	tests := []struct {
		description string
		in          float64
		wantData    float64
		wantGrad    float64
	}{
		{"negative input clamps to zero and blocks the gradient", -1, 0, 0},
		{"positive input passes through with unit gradient", 2, 2, 1},
		{"zero input blocks the gradient", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			x := NewValue(tt.in)
			y := x.ReLU()
			y.Backward()
			if y.Data != tt.wantData {
				t.Errorf("ReLU(%v) = %v, want %v", tt.in, y.Data, tt.wantData)
			}
			if x.Grad != tt.wantGrad {
				t.Errorf("gradient at %v = %v, want %v", tt.in, x.Grad, tt.wantGrad)
			}
		})
	}
}

func TestSigmoidAtZero(t *testing.T) {
	x := NewValue(0)
	y := x.Sigmoid()
	y.Backward()
	if !floatEquals(y.Data, 0.5, 1e-12) {
		t.Errorf("sigmoid(0) = %v, want 0.5", y.Data)
	}
	if !floatEquals(x.Grad, 0.25, 1e-9) {
		t.Errorf("d sigmoid/dx at 0 = %v, want 0.25", x.Grad)
	}
}
