// Package lvlqubo is an in-memory toolkit for binary quadratic models —
// the objective functions behind QUBO and Ising optimization workflows.
//
// 🚀 What is lvlqubo?
//
//	A small, focused library that brings together:
//		• BinaryQuadraticModel: validated construction over SPIN or BINARY variables
//		• A symmetric adjacency view kept exactly consistent with the quadratic terms
//		• Lossless Ising ↔ QUBO conversion via exact closed-form bias transforms
//		• Energy evaluation, in-place variable relabeling, deep copy & value equality
//		• Export adapters: attributed graph and dense QUBO matrix projections
//
// ✨ Why choose lvlqubo?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – eager validation, sentinel errors, no partial models
//   - Pure Go – no cgo, no hidden deps
//   - Generic – variables are any comparable type, biases are float64
//
// Everything is organized under two subpackages:
//
//	bqm/    — the BinaryQuadraticModel entity, Vartype resolution & conversions
//	export/ — boundary projections (attributed graph, dense QUBO matrix)
//
// Quick ASCII example:
//
//	    h₀───J₀₁───h₁
//	            │
//	           J₁₂
//	            │
//	           h₂
//
//	three spins with two couplings — a BinaryQuadraticModel with
//	three linear biases and two quadratic biases.
//
// Dive into the bqm package docs for the full model contract.
//
//	go get github.com/katalvlaran/lvlqubo/bqm
package lvlqubo
