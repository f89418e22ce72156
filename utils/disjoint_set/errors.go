package disjoint_set

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by the checked lookups when an element id
// falls outside [0, Len()).
var ErrIndexOutOfRange = errors.New("element index out of range")

func (d *DSU) checkIndex(x int) error {
	if !d.Contains(x) {
		return fmt.Errorf("element %d with length %d: %w", x, len(d.parent), ErrIndexOutOfRange)
	}
	return nil
}

// Lookup is Find for ids that have not been validated. It returns an error
// wrapping ErrIndexOutOfRange instead of panicking.
func (d *DSU) Lookup(x int) (int, error) {
	if err := d.checkIndex(x); err != nil {
		return 0, err
	}
	return d.Find(x), nil
}

// TryUnion is Union for ids that have not been validated. Neither set is
// touched when either id is out of range.
func (d *DSU) TryUnion(a int, b int) (bool, error) {
	if err := d.checkIndex(a); err != nil {
		return false, err
	}
	if err := d.checkIndex(b); err != nil {
		return false, err
	}
	return d.Union(a, b), nil
}
