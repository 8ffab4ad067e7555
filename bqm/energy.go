// SPDX-License-Identifier: MIT

package bqm

import "fmt"

// Energy evaluates the objective at sample:
//
//	Offset + Σ_v Linear[v]·sample[v] + Σ_{(u,v)} Quadratic[{u,v}]·sample[u]·sample[v]
//
// sample must assign a value to every variable in Linear; a missing
// variable returns ErrMissingSampleVariable. Domain membership is not
// checked — evaluating a Spin model at {0, 1} values is the caller's
// responsibility.
//
// Complexity: O(V + E)
func (m *BinaryQuadraticModel[T]) Energy(sample map[T]float64) (float64, error) {
	en := m.Offset

	for v, bias := range m.Linear {
		x, ok := sample[v]
		if !ok {
			return 0, fmt.Errorf("variable %v: %w", v, ErrMissingSampleVariable)
		}
		en += bias * x
	}

	// Every quadratic endpoint appears in Linear (construction invariant),
	// so coverage was already established by the loop above.
	for p, bias := range m.Quadratic {
		en += bias * sample[p.U] * sample[p.V]
	}

	return en, nil
}
