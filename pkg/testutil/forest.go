package testutil

import (
	"fmt"
	"math/rand"
)

// Forest is the read-only view of a parent-pointer forest needed to check it
type Forest interface {
	Len() int
	Parent(x int) int
}

// CheckForest verifies that every parent pointer is in range and that walking
// parents from any element reaches a root within Len() steps.
func CheckForest(f Forest) error {
	n := f.Len()
	for i := 0; i < n; i++ {
		x := i
		for steps := 0; ; steps++ {
			p := f.Parent(x)
			if p < 0 || p >= n {
				return fmt.Errorf("element %d has parent %d outside [0, %d)", x, p, n)
			}
			if p == x {
				break
			}
			if steps >= n {
				return fmt.Errorf("walk from element %d does not reach a root", i)
			}
			x = p
		}
	}
	return nil
}

// RandomPairs returns count pairs of ids in [0, n) drawn from r
func RandomPairs(r *rand.Rand, n, count int) [][2]int {
	pairs := make([][2]int, count)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	return pairs
}
