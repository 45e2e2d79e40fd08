package neuralnet

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// Module is anything that owns learnable parameter nodes.
type Module interface {
	Parameters() []*Value
}

// ZeroGrad resets the gradient of every parameter of m. Intermediate
// nodes are untouched; they are discarded and rebuilt on the next
// forward pass.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.Grad = 0.0
	}
}

// Neuron holds one weight node per input plus a bias node.
type Neuron struct {
	weights []*Value
	bias    *Value
}

// NewNeuron creates a neuron with nin inputs. Weights and bias are drawn
// uniformly from [-1, 1).
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	n := &Neuron{
		weights: make([]*Value, nin),
		bias:    NewValue(uniform(rng)),
	}
	for i := range n.weights {
		n.weights[i] = NewValue(uniform(rng))
	}
	return n
}

// Forward builds tanh(sum(w_i * x_i) + b) as a new graph node.
func (n *Neuron) Forward(x []*Value) (*Value, error) {
	if len(x) != len(n.weights) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "neuron expects %d inputs, got %d", len(n.weights), len(x))
	}
	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(x[i]))
	}
	return act.Tanh(), nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Value {
	params := make([]*Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

func (n *Neuron) String() string {
	return fmt.Sprintf("Neuron(%d)", len(n.weights))
}

// Layer is an ordered set of neurons sharing the same input width.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates nout neurons of width nin.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	l := &Layer{neurons: make([]*Neuron, nout)}
	for i := range l.neurons {
		l.neurons[i] = NewNeuron(nin, rng)
	}
	return l
}

// Forward applies every neuron to x. The result is always a slice with
// one element per neuron; a single-neuron layer is not unwrapped to a
// bare node.
func (l *Layer) Forward(x []*Value) ([]*Value, error) {
	out := make([]*Value, len(l.neurons))
	for i, n := range l.neurons {
		o, err := n.Forward(x)
		if err != nil {
			return nil, errors.Wrapf(err, "neuron %d", i)
		}
		out[i] = o
	}
	return out, nil
}

// Parameters concatenates neuron parameter lists in neuron order.
func (l *Layer) Parameters() []*Value {
	var params []*Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

func (l *Layer) String() string {
	names := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		names[i] = n.String()
	}
	return fmt.Sprintf("Layer of [%s]", strings.Join(names, ", "))
}

// MLP is a multilayer perceptron: layers chained so each layer's neuron
// count is the next layer's input width.
type MLP struct {
	layers []*Layer
}

// NewMLP builds a perceptron taking nin inputs through layers of the
// given widths. The seed derives from the network geometry, so identical
// shapes start from identical parameters.
func NewMLP(nin int, nouts []int) *MLP {
	rng := rand.New(rand.NewSource(int64(geometrySeed(nin, nouts))))
	sizes := append([]int{nin}, nouts...)
	m := &MLP{layers: make([]*Layer, len(nouts))}
	for i := range m.layers {
		m.layers[i] = NewLayer(sizes[i], sizes[i+1], rng)
	}
	return m
}

// Forward feeds x through each layer in order. Like Layer.Forward it
// always returns a slice; a model whose final layer has one neuron
// returns a one-element slice.
func (m *MLP) Forward(x []*Value) ([]*Value, error) {
	var err error
	for i, l := range m.layers {
		x, err = l.Forward(x)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
	}
	return x, nil
}

// Parameters lists every parameter in layer order, then neuron order,
// then weights before bias. Optimizers index into this list
// positionally, so the order is part of the contract.
func (m *MLP) Parameters() []*Value {
	var params []*Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

func (m *MLP) String() string {
	names := make([]string, len(m.layers))
	for i, l := range m.layers {
		names[i] = l.String()
	}
	return fmt.Sprintf("MLP of [%s]", strings.Join(names, ", "))
}

func uniform(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}

func geometrySeed(nin int, nouts []int) int {
	seed := nin
	for _, n := range nouts {
		seed += n
	}
	return seed
}
