package disjoint_set

import (
	"fmt"
	"strings"
)

// CountSets returns the number of unique sets in the DSU
func (d *DSU) CountSets() int {
	count := 0
	for i, p := range d.parent {
		if i == p {
			count++
		}
	}
	return count
}

// Roots returns the root of every set in ascending order.
func (d *DSU) Roots() []int {
	roots := make([]int, 0)
	for i, p := range d.parent {
		if i == p {
			roots = append(roots, i)
		}
	}
	return roots
}

// Sets returns the partition. Elements within a set are ascending and sets
// are ordered by their smallest element.
//
// Sets calls Find on every element, so it compresses the whole forest.
func (d *DSU) Sets() [][]int {
	index := make(map[int]int)
	out := make([][]int, 0)
	for i := range d.parent {
		root := d.Find(i)
		pos, ok := index[root]
		if !ok {
			pos = len(out)
			index[root] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], i)
	}
	return out
}

// String formats the partition, e.g. "DSU[[0 1] [2]]".
func (d *DSU) String() string {
	sb := strings.Builder{}
	sb.WriteString("DSU[")
	for i, set := range d.Clone().Sets() {
		if i != 0 {
			sb.WriteString(" ")
		}
		fmt.Fprint(&sb, set)
	}
	sb.WriteString("]")
	return sb.String()
}
