package neuralnet

import "github.com/pkg/errors"

// Optimizer updates parameter values in place from their accumulated
// gradients.
type Optimizer interface {
	Step(params []*Value) error
}

// SGD implements stochastic gradient descent with an optional
// multiplicative learning-rate decay applied after every step.
type SGD struct {
	Lr    float64
	Decay float64
}

// Step applies one gradient-descent update. Gradients are left in
// place; zeroing them before the next backward pass is the caller's
// job.
func (o *SGD) Step(params []*Value) error {
	if o.Lr <= 0 {
		return errors.New("invalid learning rate")
	}
	for _, p := range params {
		p.Data -= o.Lr * p.Grad
	}
	if o.Decay > 0 {
		o.Lr *= o.Decay
	}
	return nil
}
