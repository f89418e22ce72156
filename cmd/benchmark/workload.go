package main

import (
	"math/rand"
	"sort"
	"time"

	"github.com/FrenchMajesty/union-find/utils/disjoint_set"
)

const (
	WorkloadRandom  = "random"
	WorkloadChain   = "chain"
	WorkloadKruskal = "kruskal"
)

// maxEdgeWeight bounds the random weights of the kruskal workload
const maxEdgeWeight = 100

// workloadFunc drives one DSU owned by a single worker
type workloadFunc func(r *rand.Rand, cfg Config) WorkerResult

var workloads = map[string]workloadFunc{
	WorkloadRandom:  runRandom,
	WorkloadChain:   runChain,
	WorkloadKruskal: runKruskal,
}

// WorkerResult is what a single worker reports back
type WorkerResult struct {
	Duration time.Duration
	Elements int
	Unions   int
	Finds    int
	Sets     int
	MaxRank  uint

	// Kruskal only
	ForestWeight int64
	ForestEdges  int
}

// runRandom interleaves unions and membership queries on random pairs. One
// operation in 64 grows the structure by a single element.
func runRandom(r *rand.Rand, cfg Config) WorkerResult {
	res := WorkerResult{}
	start := time.Now()

	dsu := disjoint_set.NewDSU(cfg.Elements)
	for i := 0; i < cfg.Operations; i++ {
		n := dsu.Len()
		switch op := r.Intn(64); {
		case op == 0:
			dsu.Extend(1)
		case op%2 == 0:
			if dsu.Union(r.Intn(n), r.Intn(n)) {
				res.Unions++
			}
		default:
			dsu.Connected(r.Intn(n), r.Intn(n))
			res.Finds++
		}
	}

	res.Duration = time.Since(start)
	summarize(dsu, &res)
	return res
}

// runChain links every element to its successor and then finds each one.
// Without the heuristics this is the quadratic worst case. Operations does not
// apply and is reported as 0.
func runChain(_ *rand.Rand, cfg Config) WorkerResult {
	res := WorkerResult{}
	start := time.Now()

	dsu := disjoint_set.NewDSU(0)
	dsu.Extend(cfg.Elements)
	for i := 0; i+1 < dsu.Len(); i++ {
		if dsu.Union(i, i+1) {
			res.Unions++
		}
	}
	for i := 0; i < dsu.Len(); i++ {
		dsu.Find(i)
		res.Finds++
	}

	res.Duration = time.Since(start)
	summarize(dsu, &res)
	return res
}

// Edge is a weighted undirected edge between two element ids
type Edge struct {
	From   int
	To     int
	Weight int64
}

// runKruskal builds a minimum spanning forest over Operations random edges.
// Graph generation is not timed.
func runKruskal(r *rand.Rand, cfg Config) WorkerResult {
	edges := make([]Edge, cfg.Operations)
	for i := range edges {
		edges[i] = Edge{
			From:   r.Intn(cfg.Elements),
			To:     r.Intn(cfg.Elements),
			Weight: int64(r.Intn(maxEdgeWeight) + 1),
		}
	}

	start := time.Now()
	dsu := disjoint_set.NewDSU(cfg.Elements)
	forest, examined := minimumSpanningForest(dsu, edges)
	res := WorkerResult{
		Duration:    time.Since(start),
		Finds:       examined,
		Unions:      len(forest),
		ForestEdges: len(forest),
	}
	for _, e := range forest {
		res.ForestWeight += e.Weight
	}

	summarize(dsu, &res)
	return res
}

// minimumSpanningForest runs Kruskal's algorithm with dsu tracking components.
// The returned edges are in ascending weight order; ties keep input order.
// examined counts the edges passed to Union before the forest was complete.
func minimumSpanningForest(dsu *disjoint_set.DSU, edges []Edge) (forest []Edge, examined int) {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	forest = make([]Edge, 0)
	for _, e := range sorted {
		if len(forest) >= dsu.Len()-1 {
			break
		}
		examined++
		if dsu.Union(e.From, e.To) {
			forest = append(forest, e)
		}
	}
	return forest, examined
}

// summarize fills the shape statistics of the final forest
func summarize(dsu *disjoint_set.DSU, res *WorkerResult) {
	res.Elements = dsu.Len()
	roots := dsu.Roots()
	res.Sets = len(roots)
	for _, root := range roots {
		if rank := dsu.Rank(root); rank > res.MaxRank {
			res.MaxRank = rank
		}
	}
}
