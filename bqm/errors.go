// SPDX-License-Identifier: MIT
// Package bqm: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels (wrapped with context where useful) and tests MUST
// check them via errors.Is. Panics are reserved for programmer errors — a
// model whose Vartype is outside the closed set cannot be built through the
// public API, so conversion switches panic on that branch instead of
// returning an error.

package bqm

import "errors"

var (
	// ErrInvalidVartype indicates a vartype argument that cannot be resolved
	// to Spin or Binary. Accepted forms: a Vartype value, the name "SPIN" or
	// "BINARY", or the domain slice []int{-1, 1} / []int{0, 1}.
	ErrInvalidVartype = errors.New("bqm: unrecognized vartype (want Spin, \"SPIN\", []int{-1, 1}, Binary, \"BINARY\", or []int{0, 1})")

	// ErrSelfLoop indicates a quadratic key with equal endpoints.
	// Self-interaction belongs in Linear, not Quadratic.
	ErrSelfLoop = errors.New("bqm: quadratic key with equal endpoints is a linear bias")

	// ErrUnknownVariable indicates a quadratic key referencing a variable
	// that does not appear in Linear.
	ErrUnknownVariable = errors.New("bqm: quadratic key references a variable absent from linear")

	// ErrNotUpperTriangular indicates that both orientations (u,v) and (v,u)
	// of the same pair are present in Quadratic. Each pair must be stored
	// under exactly one orientation.
	ErrNotUpperTriangular = errors.New("bqm: quadratic must store a single orientation per pair")

	// ErrMissingSampleVariable indicates an Energy sample that does not
	// assign a value to every model variable.
	ErrMissingSampleVariable = errors.New("bqm: sample does not cover every model variable")

	// ErrIncompleteRelabel indicates a relabel mapping that omits a current
	// model variable.
	ErrIncompleteRelabel = errors.New("bqm: relabel mapping omits a model variable")

	// ErrNonUniqueRelabel indicates a relabel mapping that sends two
	// distinct variables to the same new label.
	ErrNonUniqueRelabel = errors.New("bqm: relabel mapping does not contain unique targets")
)
