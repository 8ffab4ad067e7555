package export_test

import (
	"fmt"

	"github.com/katalvlaran/lvlqubo/bqm"
	"github.com/katalvlaran/lvlqubo/export"
)

// ExampleToQUBOMatrixOrdered renders a small binary model as a dense
// upper-triangular QUBO matrix.
func ExampleToQUBOMatrixOrdered() {
	m, err := bqm.New(
		map[string]float64{"a": 1, "b": -2},
		map[bqm.Pair[string]]float64{{U: "a", V: "b"}: 4},
		0.5,
		bqm.Binary,
	)
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	q, err := export.ToQUBOMatrixOrdered(m, []string{"a", "b"})
	if err != nil {
		fmt.Println("projection failed:", err)
		return
	}

	for _, row := range q.Data {
		fmt.Println(row)
	}
	fmt.Println("offset:", q.Offset)
	// Output:
	// [1 4]
	// [0 -2]
	// offset: 0.5
}
