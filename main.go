package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"scalargrad/neuralnet"
)

// inputs lifts a dataset vector into leaf graph nodes.
func inputs(v mat.Vector) []*neuralnet.Value {
	xs := make([]*neuralnet.Value, v.Len())
	for i := range xs {
		xs[i] = neuralnet.NewValue(v.AtVec(i))
	}
	return xs
}

func main() {
	data, labels := makeMoons(100, 0.1, 42)

	model := neuralnet.NewMLP(FeatureSize, []int{16, 16, 1})
	loss := neuralnet.SVMMax{}
	opt := &neuralnet.SGD{Lr: 0.05, Decay: 0.999}

	for epoch := 0; epoch < 50; epoch++ {
		var total float64
		correct := 0
		for i := range labels {
			x := inputs(sampleVec(data, i))
			out, err := model.Forward(x)
			if err != nil {
				panic(err)
			}
			l, err := loss.Loss(out, []*neuralnet.Value{neuralnet.NewValue(labels[i])})
			if err != nil {
				panic(err)
			}

			neuralnet.ZeroGrad(model)
			l.Backward()
			if err := opt.Step(model.Parameters()); err != nil {
				panic(err)
			}

			total += l.Data
			if (out[0].Data > 0) == (labels[i] > 0) {
				correct++
			}
		}
		fmt.Println(fmt.Sprintf("Loss SGD %d = %.4f, accuracy = %d%%", epoch, total/float64(len(labels)), 100*correct/len(labels)))
	}
}
