package export

import "github.com/katalvlaran/lvlqubo/bqm"

// Node carries the attributes attached to a single model variable.
type Node struct {
	// Bias is the variable's linear bias.
	Bias float64
	// Vartype is the domain of the variable (shared by the whole model).
	Vartype bqm.Vartype
}

// Edge carries the attributes attached to a single interaction, in the
// model's canonical orientation.
type Edge[T comparable] struct {
	U, V T
	// Bias is the pair's quadratic bias.
	Bias float64
}

// Graph is an attributed-graph projection of a model: nodes carry biases
// and the vartype, edges carry biases, and the graph carries the offset.
//
// Edge order follows map iteration and is not deterministic; callers that
// need a stable order should sort.
type Graph[T comparable] struct {
	Nodes  map[T]Node
	Edges  []Edge[T]
	Offset float64
}

// ToGraph projects m into an attributed graph. The projection copies all
// attributes; mutating the result never affects the model.
//
// Time Complexity: O(V + E)
func ToGraph[T comparable](m *bqm.BinaryQuadraticModel[T]) (*Graph[T], error) {
	if m == nil {
		return nil, ErrNilModel
	}

	g := &Graph[T]{
		Nodes:  make(map[T]Node, m.VariableCount()),
		Edges:  make([]Edge[T], 0, m.InteractionCount()),
		Offset: m.Offset,
	}
	for v, bias := range m.Linear {
		g.Nodes[v] = Node{Bias: bias, Vartype: m.Vartype}
	}
	for p, bias := range m.Quadratic {
		g.Edges = append(g.Edges, Edge[T]{U: p.U, V: p.V, Bias: bias})
	}

	return g, nil
}

// Neighbors returns the biases of every edge incident to v, keyed by the
// opposite endpoint — the same shape as the model's adjacency view. An
// unknown or isolated v yields an empty map.
//
// Time Complexity: O(E)
func (g *Graph[T]) Neighbors(v T) map[T]float64 {
	out := make(map[T]float64)
	for _, e := range g.Edges {
		if e.U == v {
			out[e.V] = e.Bias
		}
		if e.V == v {
			out[e.U] = e.Bias
		}
	}

	return out
}
