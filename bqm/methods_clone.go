// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copy, value equality and count queries.
// Determinism:
//   - Copy produces disjoint ownership: no map (outer or inner) is shared
//     with the source.

package bqm

import "maps"

// Copy returns a deep copy of the model: fresh Linear, Quadratic and Adj
// maps (including the inner adjacency maps) with the same Offset and
// Vartype. Mutating the copy's maps never affects the original.
//
// Complexity: O(V + E)
func (m *BinaryQuadraticModel[T]) Copy() *BinaryQuadraticModel[T] {
	adj := make(map[T]map[T]float64, len(m.Adj))
	for u, neighbors := range m.Adj {
		adj[u] = maps.Clone(neighbors)
	}

	return &BinaryQuadraticModel[T]{
		Linear:    maps.Clone(m.Linear),
		Quadratic: maps.Clone(m.Quadratic),
		Offset:    m.Offset,
		Vartype:   m.Vartype,
		Adj:       adj,
	}
}

// Equal reports value equality: vartypes must match, then Linear,
// Quadratic and Offset are compared by value. Adj is fully determined by
// Quadratic and is not compared. Models with differing vartypes are never
// equal regardless of numeric content. Two nil models are equal.
//
// Complexity: O(V + E)
func (m *BinaryQuadraticModel[T]) Equal(other *BinaryQuadraticModel[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Vartype != other.Vartype || m.Offset != other.Offset {
		return false
	}

	return maps.Equal(m.Linear, other.Linear) && maps.Equal(m.Quadratic, other.Quadratic)
}

// VariableCount returns the number of variables in the model.
// Complexity: O(1)
func (m *BinaryQuadraticModel[T]) VariableCount() int { return len(m.Linear) }

// InteractionCount returns the number of quadratic terms in the model.
// Complexity: O(1)
func (m *BinaryQuadraticModel[T]) InteractionCount() int { return len(m.Quadratic) }
