package neuralnet

import "github.com/pkg/errors"

// LossFunction reduces predictions and targets to a single graph node,
// so that Backward on the result reaches every parameter involved in
// the predictions.
type LossFunction interface {
	Loss(pred, target []*Value) (*Value, error)
}

// MSE implements mean squared error.
type MSE struct{}

// Loss returns mean((pred_i - target_i)^2) as a graph node.
func (MSE) Loss(pred, target []*Value) (*Value, error) {
	if len(pred) != len(target) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d predictions vs %d targets", len(pred), len(target))
	}
	sum := NewValue(0.0)
	for i := range pred {
		d := pred[i].Sub(target[i])
		sum = sum.Add(d.Mul(d))
	}
	return sum.Div(float64(len(pred))), nil
}

// SVMMax implements a max-margin hinge loss for ±1 targets.
type SVMMax struct{}

// Loss returns mean(relu(1 - target_i * pred_i)) as a graph node. The
// term is zero once a prediction clears the margin on the correct side.
func (SVMMax) Loss(pred, target []*Value) (*Value, error) {
	if len(pred) != len(target) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d predictions vs %d targets", len(pred), len(target))
	}
	sum := NewValue(0.0)
	for i := range pred {
		sum = sum.Add(NewValue(1.0).Sub(target[i].Mul(pred[i])).ReLU())
	}
	return sum.Div(float64(len(pred))), nil
}
