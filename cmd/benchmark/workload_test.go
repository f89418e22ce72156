package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrenchMajesty/union-find/pkg/testutil"
	"github.com/FrenchMajesty/union-find/utils/disjoint_set"
)

func TestMinimumSpanningForest(t *testing.T) {
	tests := []struct {
		name       string
		elements   int
		edges      []Edge
		wantWeight   int64
		wantEdges    int
		wantSets     int
		wantExamined int
	}{
		{
			name:     "connected graph",
			elements: 4,
			edges: []Edge{
				{From: 1, To: 3, Weight: 5},
				{From: 0, To: 2, Weight: 3},
				{From: 0, To: 1, Weight: 1},
				{From: 2, To: 3, Weight: 4},
				{From: 1, To: 2, Weight: 2},
			},
			wantWeight:   7,
			wantEdges:    3,
			wantSets:     1,
			wantExamined: 4,
		},
		{
			name:     "connected before the edges run out",
			elements: 3,
			edges: []Edge{
				{From: 0, To: 1, Weight: 1},
				{From: 1, To: 2, Weight: 1},
				{From: 0, To: 2, Weight: 2},
				{From: 0, To: 1, Weight: 5},
				{From: 2, To: 1, Weight: 7},
			},
			wantWeight:   2,
			wantEdges:    2,
			wantSets:     1,
			wantExamined: 2,
		},
		{
			name:     "isolated vertex",
			elements: 5,
			edges: []Edge{
				{From: 0, To: 1, Weight: 2},
				{From: 1, To: 2, Weight: 2},
				{From: 0, To: 2, Weight: 1},
				{From: 3, To: 2, Weight: 9},
			},
			wantWeight:   12,
			wantEdges:    3,
			wantSets:     2,
			wantExamined: 4,
		},
		{
			name:     "self loops only",
			elements: 3,
			edges: []Edge{
				{From: 1, To: 1, Weight: 1},
				{From: 2, To: 2, Weight: 1},
			},
			wantWeight:   0,
			wantEdges:    0,
			wantSets:     3,
			wantExamined: 2,
		},
		{
			name:     "empty graph",
			elements: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsu := disjoint_set.NewDSU(tt.elements)
			forest, examined := minimumSpanningForest(dsu, tt.edges)

			var weight int64
			for i, e := range forest {
				weight += e.Weight
				if i > 0 {
					assert.LessOrEqual(t, forest[i-1].Weight, e.Weight)
				}
			}
			assert.Equal(t, tt.wantWeight, weight)
			assert.Len(t, forest, tt.wantEdges)
			assert.Equal(t, tt.wantSets, dsu.CountSets())
			assert.Equal(t, tt.wantExamined, examined)
		})
	}
}

func TestMinimumSpanningForest_DoesNotReorderInput(t *testing.T) {
	edges := []Edge{
		{From: 0, To: 1, Weight: 3},
		{From: 1, To: 2, Weight: 1},
	}
	minimumSpanningForest(disjoint_set.NewDSU(3), edges)

	assert.Equal(t, int64(3), edges[0].Weight)
}

func TestWorkloads(t *testing.T) {
	cfg := Config{Elements: 50, Operations: 400}
	cfg.applyDefaults()

	for name, run := range workloads {
		t.Run(name, func(t *testing.T) {
			res := run(rand.New(rand.NewSource(7)), cfg)

			assert.GreaterOrEqual(t, res.Elements, cfg.Elements)
			assert.GreaterOrEqual(t, res.Sets, 1)
			assert.Equal(t, res.Elements-res.Unions, res.Sets, "each successful union removes one set")

			again := run(rand.New(rand.NewSource(7)), cfg)
			assert.Equal(t, res.Unions, again.Unions, "same seed should reproduce the run")
			assert.Equal(t, res.Sets, again.Sets)
		})
	}
}

func TestRunKruskal_CountsOnlyExaminedEdges(t *testing.T) {
	cfg := Config{Elements: 10, Operations: 5000}
	res := runKruskal(rand.New(rand.NewSource(1)), cfg)

	assert.Equal(t, 9, res.ForestEdges)
	assert.Equal(t, 1, res.Sets)
	assert.GreaterOrEqual(t, res.Finds, res.ForestEdges)
	assert.Less(t, res.Finds, cfg.Operations, "edges after the forest is complete are never examined")
}

func TestRunChain(t *testing.T) {
	res := runChain(nil, Config{Elements: 1000})

	assert.Equal(t, 1000, res.Elements)
	assert.Equal(t, 999, res.Unions)
	assert.Equal(t, 1000, res.Finds)
	assert.Equal(t, 1, res.Sets)
	assert.Equal(t, uint(1), res.MaxRank, "every later union attaches a singleton under the same root")
}

func TestRunRandom_ForestStaysValid(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	dsu := disjoint_set.NewDSU(64)
	for _, p := range testutil.RandomPairs(r, 64, 300) {
		dsu.Union(p[0], p[1])
		if p[0]%16 == 0 {
			dsu.Extend(1)
		}
	}
	require.NoError(t, testutil.CheckForest(dsu))

	res := WorkerResult{}
	summarize(dsu, &res)
	assert.Equal(t, dsu.Len(), res.Elements)
	assert.Equal(t, dsu.CountSets(), res.Sets)
}
