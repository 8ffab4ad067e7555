// SPDX-License-Identifier: MIT
// File: conversions.go
// Role: Projections into the Ising (h, J, offset) and QUBO (Q, offset)
//       encodings, the exact closed-form bias transforms between the two
//       variable domains, and ChangeVartype.
// Determinism:
//   - Both transforms preserve energy exactly (up to float64 rounding) for
//     every assignment under the corresponding domain mapping s = 2x - 1.

package bqm

// AsIsing projects the model into the (h, J, offset) Ising triple over the
// {-1, +1} domain.
//
// For a Spin model the returned maps alias the model's own storage (the
// projection is the identity) and must be treated as read-only. For a
// Binary model the biases are transformed into fresh maps; the model is
// never mutated.
//
// Complexity: O(1) for Spin, O(V + E) for Binary.
func (m *BinaryQuadraticModel[T]) AsIsing() (map[T]float64, map[Pair[T]]float64, float64) {
	switch m.Vartype {
	case Spin:
		return m.Linear, m.Quadratic, m.Offset
	case Binary:
		return m.binaryToSpin()
	default:
		panic("bqm: model carries a vartype outside the closed set")
	}
}

// AsQUBO projects the model into the (Q, offset) QUBO form over the {0, 1}
// domain: a single quadratic-style map where each linear bias appears as a
// diagonal self-pair {v, v} alongside the off-diagonal quadratic biases.
//
// A Spin model is transformed to the binary domain first. The returned map
// is always freshly allocated; the model is never mutated.
//
// Complexity: O(V + E)
func (m *BinaryQuadraticModel[T]) AsQUBO() (map[Pair[T]]float64, float64) {
	var (
		linear    map[T]float64
		quadratic map[Pair[T]]float64
		offset    float64
	)

	switch m.Vartype {
	case Binary:
		linear, quadratic, offset = m.Linear, m.Quadratic, m.Offset
	case Spin:
		linear, quadratic, offset = m.spinToBinary()
	default:
		panic("bqm: model carries a vartype outside the closed set")
	}

	qubo := make(map[Pair[T]]float64, len(linear)+len(quadratic))
	for v, bias := range linear {
		qubo[Pair[T]{U: v, V: v}] = bias
	}
	for p, bias := range quadratic {
		qubo[p] = bias
	}

	return qubo, offset
}

// ChangeVartype returns a new model over the target vartype; the receiver
// is never mutated and never aliased.
//
// target accepts any form understood by ResolveVartype and returns
// ErrInvalidVartype when unresolvable. When target equals the current
// vartype the result is an independent Copy — never the same instance.
// Otherwise the appropriate transform runs and the result is rebuilt
// through New, so the usual construction invariants hold on the output.
//
// Complexity: O(V + E)
func (m *BinaryQuadraticModel[T]) ChangeVartype(target any) (*BinaryQuadraticModel[T], error) {
	vt, err := ResolveVartype(target)
	if err != nil {
		return nil, err
	}

	if vt == m.Vartype {
		return m.Copy(), nil
	}

	var (
		linear    map[T]float64
		quadratic map[Pair[T]]float64
		offset    float64
	)

	switch {
	case m.Vartype == Spin && vt == Binary:
		linear, quadratic, offset = m.spinToBinary()
	case m.Vartype == Binary && vt == Spin:
		linear, quadratic, offset = m.binaryToSpin()
	default:
		panic("bqm: model carries a vartype outside the closed set")
	}

	return New(linear, quadratic, offset, vt)
}

// spinToBinary rewrites (Linear, Quadratic, Offset) from the {-1, +1}
// domain to {0, 1} by substituting s = 2x - 1 into the spin energy.
// Quadratic terms with a zero bias contribute no energy and are dropped
// from the result. Always allocates fresh maps.
func (m *BinaryQuadraticModel[T]) spinToBinary() (map[T]float64, map[Pair[T]]float64, float64) {
	newLinear := make(map[T]float64, len(m.Linear))
	offset := m.Offset
	for v, bias := range m.Linear {
		newLinear[v] = 2 * bias
		offset -= bias
	}

	newQuadratic := make(map[Pair[T]]float64, len(m.Quadratic))
	for p, bias := range m.Quadratic {
		offset += bias
		if bias == 0 {
			continue
		}
		newQuadratic[p] = 4 * bias
		newLinear[p.U] -= 2 * bias
		newLinear[p.V] -= 2 * bias
	}

	return newLinear, newQuadratic, offset
}

// binaryToSpin rewrites (Linear, Quadratic, Offset) from the {0, 1} domain
// to {-1, +1} by substituting x = (s + 1) / 2 into the binary energy.
// Zero-bias pairs are dropped from J, while the quadratic offset
// accumulates every bias unconditionally (zero adds nothing either way).
// Always allocates fresh maps.
func (m *BinaryQuadraticModel[T]) binaryToSpin() (map[T]float64, map[Pair[T]]float64, float64) {
	h := make(map[T]float64, len(m.Linear))
	j := make(map[Pair[T]]float64, len(m.Quadratic))

	var linearOffset, quadraticOffset float64
	for v, bias := range m.Linear {
		h[v] = 0.5 * bias
		linearOffset += bias
	}

	for p, bias := range m.Quadratic {
		if bias != 0 {
			j[p] = 0.25 * bias
		}
		h[p.U] += 0.25 * bias
		h[p.V] += 0.25 * bias
		quadraticOffset += bias
	}

	offset := m.Offset + 0.5*linearOffset + 0.25*quadraticOffset

	return h, j, offset
}
