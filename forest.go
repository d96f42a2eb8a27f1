package utreexo

// RootEntry is one row of Roots(): the height of a slot and its root hash,
// if the slot is occupied.
type RootEntry struct {
	Height uint
	Hash   *Hash
}

// Inserter accepts new leaf values, silently ignoring ones already present.
type Inserter interface {
	Insert(value []byte)
}

// Verifier checks inclusion proofs against whichever root they claim.
type Verifier interface {
	Verify(proof Proof) bool
}

// Deleter consumes a verified proof to remove its leaf from the structure.
type Deleter interface {
	Delete(proof Proof) bool
}

// Rooter exposes the current per-height root sequence.
type Rooter interface {
	Roots() []RootEntry
}

// Accumulator is the capability shared by Forest and RootAccumulator: both
// can be inserted into, verified against, deleted from, and inspected for
// roots, so callers can write code generic over either.
type Accumulator interface {
	Inserter
	Verifier
	Deleter
	Rooter
}

var (
	_ Accumulator = (*Forest)(nil)
	_ Accumulator = (*RootAccumulator)(nil)
)

// Forest is an ordered collection of perfect Merkle trees, one per
// occupied bit of the current leaf count. It is the witness-holder
// variant: it keeps full tree bodies so it can produce proofs.
type Forest struct {
	slots  []*Tree // slots[h] is nil or a tree of exactly 2^h leaves
	hasher Hasher
}

// NewForest creates an empty Forest. A nil hasher selects DefaultHasher.
func NewForest(hasher Hasher) *Forest {
	return &Forest{hasher: pickHasher(hasher)}
}

// Leaves returns the total number of leaves across all slots.
func (f *Forest) Leaves() int {
	n := 0
	for _, t := range f.slots {
		if t != nil {
			n += t.NumLeaves()
		}
	}
	return n
}

// Len returns the total number of nodes across all slots.
func (f *Forest) Len() int {
	n := 0
	for _, t := range f.slots {
		if t != nil {
			n += 2*t.NumLeaves() - 1
		}
	}
	return n
}

// IsEmpty reports whether the forest holds no leaves.
func (f *Forest) IsEmpty() bool {
	return f.Leaves() == 0
}

func (f *Forest) containsHash(leafHash Hash) bool {
	for _, t := range f.slots {
		if t != nil && t.Contains(leafHash) {
			return true
		}
	}
	return false
}

// Insert adds value to the set. If its leaf hash is already present
// anywhere in the forest, Insert is a silent no-op (the forest is a set,
// not a multiset).
func (f *Forest) Insert(value []byte) {
	leafHash := f.hasher.HashLeaf(value)
	if f.containsHash(leafHash) {
		return
	}

	candidate := newLeafTree(f.hasher, leafHash)
	height := uint(0)
	for int(height) < len(f.slots) && f.slots[height] != nil {
		existing := f.slots[height]
		f.slots[height] = nil
		candidate = mergeTrees(f.hasher, existing, candidate)
		height++
	}

	for int(height) >= len(f.slots) {
		f.slots = append(f.slots, nil)
	}
	f.slots[height] = candidate
}

// Extend inserts each value in order. It is a plain loop over Insert: a
// batched multi-lane hashing trick has no equivalent with the default
// hasher, so this stays straightforward.
func (f *Forest) Extend(values [][]byte) {
	for _, v := range values {
		f.Insert(v)
	}
}

// Prove returns the inclusion proof for value, or false if value's leaf
// hash is not present in any slot.
func (f *Forest) Prove(value []byte) (Proof, bool) {
	leafHash := f.hasher.HashLeaf(value)
	for _, t := range f.slots {
		if t == nil {
			continue
		}
		if proof, ok := t.Prove(leafHash); ok {
			return proof, true
		}
	}
	return Proof{}, false
}

// Verify reports whether proof is valid against this forest's current
// state: the slot at proof's height must be occupied, and the proof must
// verify against that slot's root.
func (f *Forest) Verify(proof Proof) bool {
	h := proof.Height()
	if int(h) >= len(f.slots) || f.slots[h] == nil {
		return false
	}
	return proof.Verify(f.hasher, f.slots[h].RootHash())
}

// Delete verifies proof and, if valid, removes its leaf from the forest,
// re-distributing the sibling subtrees it exposes into the now-lower
// slots. It returns false (and leaves the forest untouched) if the proof
// does not verify.
func (f *Forest) Delete(proof Proof) bool {
	h := proof.Height()
	if int(h) >= len(f.slots) || f.slots[h] == nil {
		return false
	}
	if !proof.Verify(f.hasher, f.slots[h].RootHash()) {
		return false
	}

	// Materialize the sibling subtree at each level by recursively
	// splitting the containing tree along the proof's path, root-to-leaf.
	// siblingsRootToLeaf[k] is the sibling exposed at level k of that
	// descent, which has height (h-1-k).
	siblingsRootToLeaf := make([]*Tree, h)
	current := f.slots[h]
	for k, direction := range proof.Path.Directions() {
		left, right := current.Split()

		var sibling, next *Tree
		if direction == Left {
			sibling, next = right, left
		} else {
			sibling, next = left, right
		}

		// The proof was already verified above; this is a sanity check
		// that the materialized sibling matches the hash the proof
		// already committed to, not a new trust decision.
		if sibling.RootHash() != proof.SiblingHashes[int(h)-1-k] {
			panicInvariant("Forest.Delete: sibling subtree root disagrees with proof at level %d", k)
		}

		siblingsRootToLeaf[k] = sibling
		current = next
	}

	f.slots[h] = nil

	var acc *Tree
	for height := uint(0); height < h; height++ {
		sibling := siblingsRootToLeaf[int(h)-1-height]

		switch {
		case acc == nil && (int(height) >= len(f.slots) || f.slots[height] == nil):
			f.ensureSlot(height)
			f.slots[height] = sibling
		case acc == nil:
			acc = mergeTrees(f.hasher, sibling, f.slots[height])
			f.slots[height] = nil
		default:
			acc = mergeTrees(f.hasher, sibling, acc)
		}
	}

	f.ensureSlot(h)
	f.slots[h] = acc // nil is a valid, empty slot
	return true
}

func (f *Forest) ensureSlot(height uint) {
	for int(height) >= len(f.slots) {
		f.slots = append(f.slots, nil)
	}
}

// Roots returns the forest's occupied slot heights and root hashes, in
// ascending height order.
func (f *Forest) Roots() []RootEntry {
	out := make([]RootEntry, 0, len(f.slots))
	for h, t := range f.slots {
		if t == nil {
			continue
		}
		root := t.RootHash()
		out = append(out, RootEntry{Height: uint(h), Hash: &root})
	}
	return out
}
