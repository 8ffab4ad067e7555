// Package bqm provides the BinaryQuadraticModel: an in-memory encoding of
// the objective
//
//	E(x) = Offset + Σ_v Linear[v]·x_v + Σ_{(u,v)} Quadratic[{u,v}]·x_u·x_v
//
// over variables each restricted to a two-element domain — {-1,+1} (SPIN,
// the Ising form) or {0,1} (BINARY, the QUBO form).
//
// The model is a plain value type:
//
//   - New validates the quadratic terms in one pass (no self-loops, no
//     unknown variables, one orientation per pair) and builds Adj, the
//     symmetric adjacency view, so that Adj[u][v] == Adj[v][u] ==
//     Quadratic[{u,v}] always holds.
//   - AsIsing / AsQUBO project the model into the standard (h, J, offset)
//     and (Q, offset) encodings, applying the exact closed-form bias
//     transforms between domains when needed. Neither mutates the model.
//   - Energy evaluates the objective at a sample.
//   - RelabelVariables renames every variable in place; Copy,
//     ChangeVartype and the conversion methods always return fresh state.
//
// All construction and mutation is validated eagerly: a failed operation
// returns a sentinel error and leaves no partially-built model behind.
// Tests must match sentinels via errors.Is.
//
// Errors:
//
//	ErrInvalidVartype        - vartype argument not resolvable to Spin/Binary.
//	ErrSelfLoop              - quadratic key with equal endpoints.
//	ErrUnknownVariable       - quadratic key referencing a variable absent from Linear.
//	ErrNotUpperTriangular    - both orientations of a pair present in Quadratic.
//	ErrMissingSampleVariable - Energy sample missing a model variable.
//	ErrIncompleteRelabel     - relabel mapping omitting a model variable.
//	ErrNonUniqueRelabel      - relabel mapping collapsing two variables.
//
// The package is fully synchronous and does no I/O. Instances are not
// goroutine-safe during RelabelVariables; use Copy for disjoint ownership.
package bqm
