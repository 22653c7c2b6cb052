package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyabirla/transportcost/flow"
)

func allOpen(int, int) bool { return true }

var algorithms = []flow.Algorithm{flow.AlgorithmDinic, flow.AlgorithmEdmondsKarp}

func TestTransportFeasible(t *testing.T) {
	tests := []struct {
		name    string
		supply  []int
		demand  []int
		allowed func(i, j int) bool
		want    int
	}{
		{"all open", []int{20, 30, 50}, []int{10, 40, 30, 20}, allOpen, 100},
		{"diagonal only", []int{5, 5}, []int{5, 5}, func(i, j int) bool { return i == j }, 10},
		{"anti-diagonal blocked source", []int{5, 5}, []int{8, 2}, func(i, j int) bool { return j == 0 }, 8},
		{"nothing open", []int{1}, []int{1}, func(int, int) bool { return false }, 0},
		{"zero entries", []int{0, 4}, []int{4, 0}, allOpen, 4},
		{"empty", nil, []int{1}, allOpen, 0},
	}
	for _, alg := range algorithms {
		opts := flow.DefaultOptions()
		opts.Algorithm = alg
		for _, tc := range tests {
			t.Run(alg.String()+"/"+tc.name, func(t *testing.T) {
				got, err := flow.TransportFeasible(tc.supply, tc.demand, tc.allowed, opts)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

func TestTransportFeasibleNegative(t *testing.T) {
	_, err := flow.TransportFeasible([]int{-1}, []int{1}, allOpen, flow.DefaultOptions())
	var ee flow.EdgeError
	require.ErrorAs(t, err, &ee)
}

func TestTransportFeasibleUnknownAlgorithm(t *testing.T) {
	opts := flow.DefaultOptions()
	opts.Algorithm = flow.Algorithm(7)
	_, err := flow.TransportFeasible([]int{1}, []int{1}, allOpen, opts)
	require.ErrorIs(t, err, flow.ErrUnknownAlgorithm)
}

func TestTransportFeasibleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, alg := range algorithms {
		opts := flow.FlowOptions{Ctx: ctx, Algorithm: alg}
		_, err := flow.TransportFeasible([]int{3}, []int{3}, allOpen, opts)
		assert.ErrorIs(t, err, context.Canceled, alg.String())
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want flow.Algorithm
	}{
		{"", flow.AlgorithmDinic},
		{"dinic", flow.AlgorithmDinic},
		{"Edmonds-Karp", flow.AlgorithmEdmondsKarp},
		{"edmonds_karp", flow.AlgorithmEdmondsKarp},
		{"ek", flow.AlgorithmEdmondsKarp},
	}
	for _, tc := range tests {
		got, err := flow.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := flow.ParseAlgorithm("push-relabel")
	require.ErrorIs(t, err, flow.ErrUnknownAlgorithm)
	assert.Equal(t, "edmonds-karp", flow.AlgorithmEdmondsKarp.String())
	assert.Equal(t, "Algorithm(7)", flow.Algorithm(7).String())
}
