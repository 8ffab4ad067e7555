// SPDX-License-Identifier: MIT
// File: relabel.go
// Role: In-place variable relabeling.
// Determinism:
//   - Rebuild-on-write: Linear, Quadratic and Adj are replaced together, so
//     the adjacency view can never drift from the quadratic terms.
//   - On any error the model is left exactly as it was.

package bqm

import "fmt"

// RelabelVariables renames every variable of the model in place according
// to mapping. This is the only mutating operation on the model.
//
// mapping must cover every current variable (a missing entry returns
// ErrIncompleteRelabel naming the variable) and must be injective (a
// mapping that collapses two distinct variables onto one label returns
// ErrNonUniqueRelabel). mapping need not be restricted to the model's
// variables; extra entries are ignored.
//
// On success Linear and Quadratic are replaced under the new labels and
// Adj is rebuilt from the relabeled quadratic terms. On failure the model
// is untouched.
//
// Complexity: O(V + E)
func (m *BinaryQuadraticModel[T]) RelabelVariables(mapping map[T]T) error {
	newLinear := make(map[T]float64, len(m.Linear))
	for v, bias := range m.Linear {
		nv, ok := mapping[v]
		if !ok {
			return fmt.Errorf("no mapping for variable %v: %w", v, ErrIncompleteRelabel)
		}
		newLinear[nv] = bias
	}
	if len(newLinear) != len(m.Linear) {
		return fmt.Errorf("%d variables mapped onto %d labels: %w", len(m.Linear), len(newLinear), ErrNonUniqueRelabel)
	}

	// Quadratic endpoints all appear in Linear, so mapping coverage is
	// already established; an injective rename cannot introduce self-loops
	// or orientation clashes either, but the adjacency is rebuilt through
	// the same validated path as construction regardless.
	newQuadratic := make(map[Pair[T]]float64, len(m.Quadratic))
	for p, bias := range m.Quadratic {
		newQuadratic[Pair[T]{U: mapping[p.U], V: mapping[p.V]}] = bias
	}

	adj, err := buildAdjacency(newLinear, newQuadratic)
	if err != nil {
		return err
	}

	m.Linear = newLinear
	m.Quadratic = newQuadratic
	m.Adj = adj

	return nil
}
