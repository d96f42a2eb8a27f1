package utreexo

// leafSet is an insertion-ordered, duplicate-rejecting set of leaf hashes.
// It exists solely so Tree.Prove can look up a leaf's insertion index in
// O(1) instead of scanning the tree linearly. order holds the hashes in
// insertion order; index maps a hash back to its position in order.
type leafSet struct {
	order []Hash
	index map[Hash]int
}

func newLeafSet(capacity int) *leafSet {
	return &leafSet{
		order: make([]Hash, 0, capacity),
		index: make(map[Hash]int, capacity),
	}
}

func singletonLeafSet(h Hash) *leafSet {
	s := newLeafSet(1)
	s.mustAdd(h)
	return s
}

// mustAdd appends h, panicking if it is already present. Callers are
// expected to have already checked uniqueness across the whole forest, so a
// collision here indicates memory corruption, not user error.
func (s *leafSet) mustAdd(h Hash) {
	if _, ok := s.index[h]; ok {
		panicInvariant("leafSet: duplicate leaf hash %s", h)
	}
	s.index[h] = len(s.order)
	s.order = append(s.order, h)
}

// IndexOf returns the insertion index of h and true, or (0, false) if h is
// not present.
func (s *leafSet) IndexOf(h Hash) (int, bool) {
	i, ok := s.index[h]
	return i, ok
}

func (s *leafSet) Len() int {
	return len(s.order)
}

// split partitions the set in insertion order: the first half goes to the
// left set, the second half to the right, matching how Tree.Split must
// partition its node array.
func (s *leafSet) split() (left, right *leafSet) {
	n := len(s.order)
	half := n / 2

	left = newLeafSet(half)
	for _, h := range s.order[:half] {
		left.mustAdd(h)
	}

	right = newLeafSet(n - half)
	for _, h := range s.order[half:] {
		right.mustAdd(h)
	}
	return left, right
}

// mergeLeafSets concatenates left's and right's hashes, in order.
func mergeLeafSets(left, right *leafSet) *leafSet {
	out := newLeafSet(left.Len() + right.Len())
	for _, h := range left.order {
		out.mustAdd(h)
	}
	for _, h := range right.order {
		out.mustAdd(h)
	}
	return out
}

func (s *leafSet) hashes() []Hash {
	out := make([]Hash, len(s.order))
	copy(out, s.order)
	return out
}
