package neuralnet

// Backward runs reverse-mode differentiation from v. It topologically
// orders the sub-graph reachable through operand edges, seeds v.Grad
// with 1 and fires each node's captured rule root-first, so every node's
// gradient is complete before the node propagates it further. Gradients
// accumulate across calls; resetting them between passes is the
// caller's job.
func (v *Value) Backward() {
	order := topoSort(v)
	v.Grad = 1.0
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].backward != nil {
			order[i].backward()
		}
	}
}

// topoSort returns the nodes reachable from root ordered operands-first,
// visiting each node exactly once. Node identity is the pointer, never
// the value. The traversal keeps its own stack so graph depth is not
// bounded by the call stack.
func topoSort(root *Value) []*Value {
	type frame struct {
		node     *Value
		expanded bool
	}

	var order []*Value
	visited := make(map[*Value]bool)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			order = append(order, f.node)
			continue
		}
		if visited[f.node] {
			continue
		}
		visited[f.node] = true

		stack = append(stack, frame{node: f.node, expanded: true})
		for _, p := range f.node.prev {
			if !visited[p] {
				stack = append(stack, frame{node: p})
			}
		}
	}
	return order
}

// ZeroGrad clears the accumulated gradient of this node.
func (v *Value) ZeroGrad() {
	v.Grad = 0.0
}
