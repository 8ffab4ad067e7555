package bqm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlqubo/bqm"
)

func TestNew_TypicalSpin(t *testing.T) {
	linear := map[int]float64{0: 1, 1: -1, 2: 0.5}
	quadratic := map[bqm.Pair[int]]float64{pair(0, 1): 0.5, pair(1, 2): 1.5}

	m, err := bqm.New(linear, quadratic, 1.4, bqm.Spin)
	require.NoError(t, err)

	require.Equal(t, linear, m.Linear)
	require.Equal(t, quadratic, m.Quadratic)
	require.Equal(t, 1.4, m.Offset)
	require.Equal(t, bqm.Spin, m.Vartype)

	// The exact adjacency view for this model.
	want := map[int]map[int]float64{
		0: {1: 0.5},
		1: {0: 0.5, 2: 1.5},
		2: {1: 1.5},
	}
	require.Equal(t, want, m.Adj)
}

func TestNew_AdjacencySymmetricClosure(t *testing.T) {
	linear := map[string]float64{"a": 1, "b": -1, "c": 0.5, "d": 0}
	quadratic := map[bqm.Pair[string]]float64{
		{U: "a", V: "b"}: 0.5,
		{U: "b", V: "c"}: 1.5,
		{U: "c", V: "d"}: -2,
	}

	m, err := bqm.New(linear, quadratic, 0, bqm.Binary)
	require.NoError(t, err)

	// Every stored pair is visible from both endpoints with the same bias.
	for p, bias := range quadratic {
		require.Equal(t, bias, m.Adj[p.U][p.V])
		require.Equal(t, bias, m.Adj[p.V][p.U])
	}

	// And Adj holds nothing beyond the symmetric closure of Quadratic.
	for u, neighbors := range m.Adj {
		for v := range neighbors {
			_, fwd := quadratic[bqm.Pair[string]{U: u, V: v}]
			_, rev := quadratic[bqm.Pair[string]{U: v, V: u}]
			require.True(t, fwd || rev, "adj entry (%s, %s) has no quadratic term", u, v)
		}
	}
}

func TestNew_RejectsUnknownVariable(t *testing.T) {
	linear := map[int]float64{0: 1, 1: -1}

	_, err := bqm.New(linear, map[bqm.Pair[int]]float64{pair(0, 7): 0.5}, 0, bqm.Binary)
	require.ErrorIs(t, err, bqm.ErrUnknownVariable)

	_, err = bqm.New(linear, map[bqm.Pair[int]]float64{pair(7, 1): 0.5}, 0, bqm.Binary)
	require.ErrorIs(t, err, bqm.ErrUnknownVariable)
}

func TestNew_RejectsSelfLoop(t *testing.T) {
	linear := map[int]float64{0: 1, 1: -1}

	_, err := bqm.New(linear, map[bqm.Pair[int]]float64{pair(0, 0): 0.5}, 0, bqm.Spin)
	require.ErrorIs(t, err, bqm.ErrSelfLoop)
}

func TestNew_RejectsBothOrientations(t *testing.T) {
	linear := map[int]float64{0: 1, 1: -1}
	quadratic := map[bqm.Pair[int]]float64{pair(0, 1): 0.5, pair(1, 0): -0.5}

	_, err := bqm.New(linear, quadratic, 0, bqm.Spin)
	require.ErrorIs(t, err, bqm.ErrNotUpperTriangular)
}

func TestNew_RejectsInvalidVartype(t *testing.T) {
	_, err := bqm.New(map[int]float64{0: 1}, nil, 0, "made up")
	require.ErrorIs(t, err, bqm.ErrInvalidVartype)
}

func TestNew_NilMapsAreEmpty(t *testing.T) {
	m, err := bqm.New[int](nil, nil, 0.25, "SPIN")
	require.NoError(t, err)

	require.Equal(t, 0, m.VariableCount())
	require.Equal(t, 0, m.InteractionCount())
	require.NotNil(t, m.Linear)
	require.NotNil(t, m.Quadratic)

	en, err := m.Energy(map[int]float64{})
	require.NoError(t, err)
	require.Equal(t, 0.25, en)
}

func TestCounts(t *testing.T) {
	linear := map[int]float64{0: 1, 1: -1, 2: 0.5}
	quadratic := map[bqm.Pair[int]]float64{pair(0, 1): 0.5, pair(1, 2): 1.5}

	m, err := bqm.New(linear, quadratic, 0, bqm.Binary)
	require.NoError(t, err)

	require.Equal(t, len(linear), m.VariableCount())
	require.Equal(t, len(quadratic), m.InteractionCount())
}
