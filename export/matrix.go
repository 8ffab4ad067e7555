package export

import (
	"fmt"

	"github.com/katalvlaran/lvlqubo/bqm"
)

// QUBOMatrix is a dense upper-triangular matrix view of a model's QUBO
// form.
//
// Index maps variable → matrix row/column. Data[i][i] holds the linear
// bias of the i-th variable and Data[i][j] with i < j holds the quadratic
// bias of the pair; the lower triangle is zero. Offset is the constant
// term of the QUBO form.
type QUBOMatrix[T comparable] struct {
	Index  map[T]int
	Data   [][]float64
	Offset float64
}

// ToQUBOMatrix builds the dense QUBO matrix of m. A Spin model is first
// converted to the binary domain, so the matrix always encodes energies
// over {0, 1} assignments. Row order follows map iteration; use
// ToQUBOMatrixOrdered for a deterministic layout.
//
// Time Complexity: O(V² + E)
// Memory: O(V²)
func ToQUBOMatrix[T comparable](m *bqm.BinaryQuadraticModel[T]) (*QUBOMatrix[T], error) {
	if m == nil {
		return nil, ErrNilModel
	}

	order := make([]T, 0, m.VariableCount())
	for v := range m.Linear {
		order = append(order, v)
	}

	return toQUBOMatrix(m, order)
}

// ToQUBOMatrixOrdered is ToQUBOMatrix with a caller-supplied row order.
// order must be a permutation of the model's variables; anything else
// (wrong length, duplicates, unknown variables) returns ErrOrderMismatch.
func ToQUBOMatrixOrdered[T comparable](m *bqm.BinaryQuadraticModel[T], order []T) (*QUBOMatrix[T], error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if len(order) != m.VariableCount() {
		return nil, fmt.Errorf("got %d labels for %d variables: %w", len(order), m.VariableCount(), ErrOrderMismatch)
	}

	seen := make(map[T]struct{}, len(order))
	for _, v := range order {
		if _, ok := m.Linear[v]; !ok {
			return nil, fmt.Errorf("unknown variable %v: %w", v, ErrOrderMismatch)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("duplicate variable %v: %w", v, ErrOrderMismatch)
		}
		seen[v] = struct{}{}
	}

	return toQUBOMatrix(m, order)
}

func toQUBOMatrix[T comparable](m *bqm.BinaryQuadraticModel[T], order []T) (*QUBOMatrix[T], error) {
	bm := m
	if m.Vartype == bqm.Spin {
		var err error
		if bm, err = m.ChangeVartype(bqm.Binary); err != nil {
			return nil, err
		}
	}

	qubo, offset := bm.AsQUBO()

	n := len(order)
	idx := make(map[T]int, n)
	for i, v := range order {
		idx[v] = i
	}

	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}
	// One entry per canonical pair plus one diagonal entry per variable,
	// folded into the upper triangle.
	for p, bias := range qubo {
		i, j := idx[p.U], idx[p.V]
		if i > j {
			i, j = j, i
		}
		data[i][j] = bias
	}

	return &QUBOMatrix[T]{Index: idx, Data: data, Offset: offset}, nil
}

// Energy evaluates xᵀ·Q·x + offset for a {0, 1} assignment vector aligned
// with Index. Domain membership is not checked.
//
// Time Complexity: O(V²)
func (q *QUBOMatrix[T]) Energy(x []float64) (float64, error) {
	n := len(q.Data)
	if len(x) != n {
		return 0, fmt.Errorf("got %d values for dimension %d: %w", len(x), n, ErrLengthMismatch)
	}

	en := q.Offset
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			en += q.Data[i][j] * x[i] * x[j]
		}
	}

	return en, nil
}
