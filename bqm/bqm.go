// SPDX-License-Identifier: MIT
// File: bqm.go
// Role: BinaryQuadraticModel type, Pair key, validated construction and the
//       symmetric adjacency build.
// Determinism:
//   - Construction either fully succeeds or returns an error with no
//     partially-built model escaping.

package bqm

import "fmt"

// Pair is an unordered pair of distinct variables used as a quadratic key.
// A model stores exactly one orientation per pair: if {U: u, V: v} is a
// key, {U: v, V: u} must not be.
type Pair[T comparable] struct {
	U, V T
}

// BinaryQuadraticModel encodes the objective
//
//	E(x) = Offset + Σ_v Linear[v]·x_v + Σ_{(u,v)} Quadratic[{u,v}]·x_u·x_v
//
// over variables of any comparable type T, each restricted to the domain
// selected by Vartype.
//
// Linear defines the variable universe: every variable of the model
// appears as a key, including variables with zero bias and no
// interactions. Quadratic holds one bias per unordered pair of distinct
// variables, stored under a single canonical orientation.
//
// Adj is a derived view, rebuilt whenever Linear/Quadratic are replaced:
// Adj[u][v] == Adj[v][u] == Quadratic[{u,v}] for every stored pair, and
// Adj holds nothing beyond that symmetric closure. Treat Linear,
// Quadratic and Adj as read-only; use Copy for disjoint ownership.
type BinaryQuadraticModel[T comparable] struct {
	// Linear maps each variable to its linear bias.
	Linear map[T]float64

	// Quadratic maps each interacting pair to its quadratic bias.
	Quadratic map[Pair[T]]float64

	// Offset is the constant added to every energy evaluation.
	Offset float64

	// Vartype is the variable domain: Spin or Binary.
	Vartype Vartype

	// Adj is the symmetric adjacency view derived from Quadratic.
	Adj map[T]map[T]float64
}

// New constructs a validated BinaryQuadraticModel.
//
// vartype accepts any form understood by ResolveVartype. Nil linear or
// quadratic maps are treated as empty. The constructor stores the
// caller's maps without copying; callers that keep mutating their inputs
// should pass copies or call Copy on the result.
//
// Validation is a single pass over quadratic which simultaneously builds
// the adjacency view:
//   - a key with equal endpoints returns ErrSelfLoop;
//   - a key referencing a variable absent from linear returns
//     ErrUnknownVariable;
//   - a key whose reverse orientation was already seen returns
//     ErrNotUpperTriangular.
//
// On any error the returned model is nil — no partially-built model is
// ever exposed.
//
// Complexity: O(E) over the quadratic terms.
func New[T comparable](linear map[T]float64, quadratic map[Pair[T]]float64, offset float64, vartype any) (*BinaryQuadraticModel[T], error) {
	vt, err := ResolveVartype(vartype)
	if err != nil {
		return nil, err
	}

	if linear == nil {
		linear = make(map[T]float64)
	}
	if quadratic == nil {
		quadratic = make(map[Pair[T]]float64)
	}

	adj, err := buildAdjacency(linear, quadratic)
	if err != nil {
		return nil, err
	}

	return &BinaryQuadraticModel[T]{
		Linear:    linear,
		Quadratic: quadratic,
		Offset:    offset,
		Vartype:   vt,
		Adj:       adj,
	}, nil
}

// buildAdjacency validates quadratic against linear and returns its
// symmetric closure. The first violation aborts the build.
func buildAdjacency[T comparable](linear map[T]float64, quadratic map[Pair[T]]float64) (map[T]map[T]float64, error) {
	adj := make(map[T]map[T]float64, len(linear))

	for p, bias := range quadratic {
		u, v := p.U, p.V
		if u == v {
			return nil, fmt.Errorf("quadratic key (%v, %v): %w", u, v, ErrSelfLoop)
		}
		if _, ok := linear[u]; !ok {
			return nil, fmt.Errorf("quadratic key (%v, %v): variable %v: %w", u, v, u, ErrUnknownVariable)
		}
		if _, ok := linear[v]; !ok {
			return nil, fmt.Errorf("quadratic key (%v, %v): variable %v: %w", u, v, v, ErrUnknownVariable)
		}
		// An existing adj entry here means (v, u) was already ingested.
		if _, ok := adj[u][v]; ok {
			return nil, fmt.Errorf("quadratic keys (%v, %v) and (%v, %v): %w", u, v, v, u, ErrNotUpperTriangular)
		}

		if adj[u] == nil {
			adj[u] = make(map[T]float64)
		}
		adj[u][v] = bias

		if adj[v] == nil {
			adj[v] = make(map[T]float64)
		}
		adj[v][u] = bias
	}

	return adj, nil
}

// String renders the model in a constructor-like form. Map iteration
// order makes the rendering nondeterministic; intended for debugging.
func (m *BinaryQuadraticModel[T]) String() string {
	return fmt.Sprintf("BinaryQuadraticModel(%v, %v, %v, %s)", m.Linear, m.Quadratic, m.Offset, m.Vartype)
}
