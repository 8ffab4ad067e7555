package export

import "errors"

var (
	// ErrNilModel indicates that a nil model was passed into an adapter.
	ErrNilModel = errors.New("export: model is nil")
	// ErrOrderMismatch indicates a variable order that is not a permutation
	// of the model's variables.
	ErrOrderMismatch = errors.New("export: order is not a permutation of the model variables")
	// ErrLengthMismatch indicates an assignment vector whose length differs
	// from the matrix dimension.
	ErrLengthMismatch = errors.New("export: assignment length does not match matrix dimension")
)
