// Package export projects a bqm.BinaryQuadraticModel into external
// representations for visualization and analysis tooling:
//
//   - Graph: an attributed-graph view where each node carries its linear
//     bias and the model vartype, each edge carries its quadratic bias,
//     and the graph carries the offset as a side attribute.
//   - QUBOMatrix: a dense upper-triangular matrix view of the QUBO form,
//     with a variable → row/column index and an Energy evaluator.
//
// These adapters are a boundary, not part of the core model: they read
// only the public BinaryQuadraticModel surface and cannot violate its
// invariants.
//
// Errors:
//
//	ErrNilModel       - nil *bqm.BinaryQuadraticModel passed into an adapter.
//	ErrOrderMismatch  - supplied variable order is not a permutation of the model's variables.
//	ErrLengthMismatch - assignment vector length differs from the matrix dimension.
package export
