package utreexo

// RootAccumulator is the root-only variant of Forest: each slot holds just
// a root hash instead of a tree body. It can verify and apply proofs but,
// lacking any leaf knowledge, cannot produce them — Forest is the
// witness-holder a RootAccumulator's proofs come from.
//
// Unlike Forest, RootAccumulator cannot reject duplicate inserts on its
// own: a root-only slot has no way to tell whether a hash it has already
// folded away is the same value being inserted again. Driving a
// RootAccumulator directly (not by mirroring a Forest that already
// rejected the duplicate) is the caller's responsibility (see DESIGN.md).
type RootAccumulator struct {
	slots  []*Hash // slots[h] is nil or the root hash of a tree of 2^h leaves
	hasher Hasher
}

// NewAccumulator creates an empty RootAccumulator. A nil hasher selects
// DefaultHasher.
func NewAccumulator(hasher Hasher) *RootAccumulator {
	return &RootAccumulator{hasher: pickHasher(hasher)}
}

// Insert folds value's leaf hash into the accumulator.
func (a *RootAccumulator) Insert(value []byte) {
	newHash := a.hasher.HashLeaf(value)

	for i, slot := range a.slots {
		if slot == nil {
			h := newHash
			a.slots[i] = &h
			return
		}
		newHash = a.hasher.HashIntermediate(*slot, newHash)
		a.slots[i] = nil
	}

	h := newHash
	a.slots = append(a.slots, &h)
}

// Verify reports whether proof is valid against this accumulator's current
// state.
func (a *RootAccumulator) Verify(proof Proof) bool {
	h := proof.Height()
	if int(h) >= len(a.slots) || a.slots[h] == nil {
		return false
	}
	return proof.Verify(a.hasher, *a.slots[h])
}

// Delete verifies proof and, if valid, applies it: the proof's sibling
// hashes directly become (or are folded into) the new contents of the
// lower slots, since a root-only accumulator needs no subtree bodies to
// repopulate them.
func (a *RootAccumulator) Delete(proof Proof) bool {
	if !a.Verify(proof) {
		return false
	}

	h := proof.Height()
	var acc *Hash

	for height := uint(0); height < h; height++ {
		sibling := proof.SiblingHashes[height]

		switch {
		case acc == nil && a.slots[height] == nil:
			s := sibling
			a.slots[height] = &s
		case acc == nil:
			merged := a.hasher.HashIntermediate(sibling, *a.slots[height])
			acc = &merged
			a.slots[height] = nil
		default:
			merged := a.hasher.HashIntermediate(sibling, *acc)
			acc = &merged
		}
	}

	if int(h) == len(a.slots) {
		a.slots = append(a.slots, acc)
	} else {
		a.slots[h] = acc
	}
	return true
}

// Roots returns the accumulator's occupied slot heights and root hashes,
// in ascending height order.
func (a *RootAccumulator) Roots() []RootEntry {
	out := make([]RootEntry, 0, len(a.slots))
	for h, root := range a.slots {
		if root == nil {
			continue
		}
		v := *root
		out = append(out, RootEntry{Height: uint(h), Hash: &v})
	}
	return out
}
