// Package disjoint_set implements a union-find structure over dense integer
// ids with path splitting and union by rank. Together the two heuristics give
// O(m·α(n)) amortized cost for m operations on n elements.
//
// A DSU is not safe for concurrent use. Guard it with a mutex or keep it owned
// by a single goroutine.
package disjoint_set

import "math"

// DSU represents a Disjoint Set Union data structure
type DSU struct {
	parent []int
	rank   []uint
}

// NewDSU creates a new DSU of size singleton elements, each its own root with rank 0.
func NewDSU(size int) *DSU {
	d := &DSU{
		parent: make([]int, size),
		rank:   make([]uint, size),
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// NewDSUWithRanks creates a DSU with one singleton element per entry in ranks,
// seeding each root's rank from the slice. The values are not validated.
func NewDSUWithRanks(ranks []uint) *DSU {
	d := &DSU{
		parent: make([]int, len(ranks)),
		rank:   make([]uint, len(ranks)),
	}
	copy(d.rank, ranks)
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Len returns the number of elements in the DSU
func (d *DSU) Len() int {
	return len(d.parent)
}

// IsEmpty reports whether the DSU has no elements
func (d *DSU) IsEmpty() bool {
	return len(d.parent) == 0
}

// Extend appends k new singleton elements with ids Len() through Len()+k-1.
// Existing trees are untouched.
func (d *DSU) Extend(k int) {
	if k <= 0 {
		return
	}
	n := len(d.parent)
	d.parent = append(d.parent, make([]int, k)...)
	d.rank = append(d.rank, make([]uint, k)...)
	for i := n; i < n+k; i++ {
		d.parent[i] = i
	}
}

// Find returns the root of the set containing x.
//
// Every node visited on the way up is repointed at its grandparent, so the
// path roughly halves on each call. Ranks are not changed.
func (d *DSU) Find(x int) int {
	parent := d.parent[x]
	for x != parent {
		next := d.parent[parent]
		d.parent[x] = next
		x, parent = parent, next
	}
	return x
}

// Union merges the sets containing a and b. It returns false when they were
// already in the same set.
//
// The root with the lower rank is attached under the other. On a tie the root
// of a goes under the root of b and b's root gains one rank.
func (d *DSU) Union(a int, b int) bool {
	rootA := d.Find(a)
	rootB := d.Find(b)
	if rootA == rootB {
		return false
	}

	switch rankA, rankB := d.rank[rootA], d.rank[rootB]; {
	case rankA > rankB:
		d.SetParent(rootB, rootA)
	case rankA < rankB:
		d.SetParent(rootA, rootB)
	default:
		d.SetParent(rootA, rootB)
		d.incrementRank(rootB)
	}
	return true
}

// Connected checks if two elements are in the same set. Like Find, it
// compresses the paths it walks.
func (d *DSU) Connected(a int, b int) bool {
	return d.Find(a) == d.Find(b)
}

// incrementRank bumps the rank of x, clamping at math.MaxUint.
func (d *DSU) incrementRank(x int) {
	if d.rank[x] < math.MaxUint {
		d.rank[x]++
	}
}

// Parent returns the stored parent of x without walking to the root.
func (d *DSU) Parent(x int) int {
	return d.parent[x]
}

// SetParent overwrites the parent pointer of x. Pointing elements at
// arbitrary targets can create cycles; Find and Union are the intended callers.
func (d *DSU) SetParent(x int, parent int) {
	d.parent[x] = parent
}

// Rank returns the stored rank of x. It is only meaningful for roots.
func (d *DSU) Rank(x int) uint {
	return d.rank[x]
}

// Contains reports whether x is a valid element id.
func (d *DSU) Contains(x int) bool {
	return x >= 0 && x < len(d.parent)
}

// Clone returns a deep copy that shares no memory with d.
func (d *DSU) Clone() *DSU {
	return &DSU{
		parent: append([]int(nil), d.parent...),
		rank:   append([]uint(nil), d.rank...),
	}
}
