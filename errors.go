package utreexo

import "fmt"

// InvariantError marks a failure that should be structurally impossible:
// a sibling subtree's root disagreeing with its proof hash during delete,
// splitting a height-0 tree, or merging trees of different heights. These
// indicate a bug or memory corruption rather than a bad caller input, so
// they panic instead of returning an error — continuing would let the
// accumulator's roots silently diverge from the forest's.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string {
	return "utreexo: invariant violation: " + e.msg
}

func panicInvariant(format string, args ...interface{}) {
	panic(&InvariantError{msg: fmt.Sprintf(format, args...)})
}
