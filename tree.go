package utreexo

import "math/bits"

// Tree representation: numbers are the index/position of each node in the
// flat slice that backs the tree.
//
//              14 <- Root hash
//              / \
//             /   \
//            /     \
//           /       \
//          /         \
//         /           \
//        /             \
//       6              13
//      / \             / \
//     /   \           /   \
//    /     \         /     \
//   2       5       9      12
//  / \     / \     / \     / \
// 0   1   3   4   7   8  10   11 <- Leaves
//
// For n = 2*leaves-1 nodes, the left subtree occupies [0, (n-1)/2), the
// right subtree occupies [(n-1)/2, n-1), and the root sits at n-1. The same
// layout applies recursively to each subtree, which is why Split is a plain
// slice operation.
//
// In addition to the nodes, a Tree keeps an insertion-ordered set of its
// leaf hashes, used only to make Prove sub-linear.
type Tree struct {
	nodes  []Hash
	leaves *leafSet
	hasher Hasher
}

// newLeafTree creates a height-0 Tree holding a single leaf.
func newLeafTree(hasher Hasher, leafHash Hash) *Tree {
	return &Tree{
		nodes:  []Hash{leafHash},
		leaves: singletonLeafSet(leafHash),
		hasher: hasher,
	}
}

// NumLeaves returns the number of leaves in the tree.
func (t *Tree) NumLeaves() int {
	return t.leaves.Len()
}

// Height returns h such that the tree holds 2^h leaves.
func (t *Tree) Height() uint {
	return uint(bits.TrailingZeros(uint(t.NumLeaves())))
}

// RootHash returns the tree's root hash, the last node in the layout.
func (t *Tree) RootHash() Hash {
	return t.nodes[len(t.nodes)-1]
}

// Contains reports whether leafHash is one of this tree's leaves.
func (t *Tree) Contains(leafHash Hash) bool {
	_, ok := t.leaves.IndexOf(leafHash)
	return ok
}

// LeafHashes enumerates the tree's leaf hashes in insertion order.
func (t *Tree) LeafHashes() []Hash {
	return t.leaves.hashes()
}

// LeafPaths returns the 2^h canonical paths of the tree's leaves, indexed
// the same way as LeafHashes.
func (t *Tree) LeafPaths() []Path {
	height := t.Height()
	n := t.NumLeaves()
	out := make([]Path, n)
	for i := 0; i < n; i++ {
		out[i] = ForHeightAndNum(height, uint64(i))
	}
	return out
}

// Split divides the tree into its two equal-height subtrees. It requires
// at least two leaves.
func (t *Tree) Split() (left, right *Tree) {
	if t.NumLeaves() < 2 {
		panicInvariant("Tree.Split: cannot split a tree with %d leaf(ves)", t.NumLeaves())
	}

	nodesToTake := (len(t.nodes) - 1) / 2
	leftNodes := append([]Hash(nil), t.nodes[:nodesToTake]...)
	rightNodes := append([]Hash(nil), t.nodes[nodesToTake:len(t.nodes)-1]...)

	leftLeaves, rightLeaves := t.leaves.split()

	left = &Tree{nodes: leftNodes, leaves: leftLeaves, hasher: t.hasher}
	right = &Tree{nodes: rightNodes, leaves: rightLeaves, hasher: t.hasher}
	return left, right
}

// mergeTrees merges two equal-height trees into one, in O(1) extra work
// beyond the append: the new node slice is left's nodes followed by
// right's, followed by one intermediate hash of the two roots.
func mergeTrees(hasher Hasher, left, right *Tree) *Tree {
	if left.Height() != right.Height() {
		panicInvariant("mergeTrees: height mismatch (%d vs %d)", left.Height(), right.Height())
	}

	newRoot := hasher.HashIntermediate(left.RootHash(), right.RootHash())

	nodes := make([]Hash, 0, len(left.nodes)+len(right.nodes)+1)
	nodes = append(nodes, left.nodes...)
	nodes = append(nodes, right.nodes...)
	nodes = append(nodes, newRoot)

	return &Tree{
		nodes:  nodes,
		leaves: mergeLeafSets(left.leaves, right.leaves),
		hasher: hasher,
	}
}

// Prove builds the inclusion proof for leafHash, or reports false if it is
// not one of this tree's leaves.
//
// The path is walked root-to-leaf, splitting the (conceptual) tree slice at
// each step: the child not descended into contributes its root as the next
// sibling. Siblings are collected in that root-to-leaf order and reversed
// at the end, since Proof orders its sibling list leaf-to-root.
func (t *Tree) Prove(leafHash Hash) (Proof, bool) {
	index, ok := t.leaves.IndexOf(leafHash)
	if !ok {
		return Proof{}, false
	}

	height := t.Height()
	path := ForHeightAndNum(height, uint64(index))

	siblingsRootToLeaf := make([]Hash, 0, height)

	base, root := 0, len(t.nodes)-1
	for _, direction := range path.Directions() {
		n := root - base + 1
		nodesToTake := (n - 1) / 2
		leftRoot := base + nodesToTake - 1
		rightRoot := root - 1

		if direction == Left {
			siblingsRootToLeaf = append(siblingsRootToLeaf, t.nodes[rightRoot])
			root = leftRoot
		} else {
			siblingsRootToLeaf = append(siblingsRootToLeaf, t.nodes[leftRoot])
			base += nodesToTake
			root = rightRoot
		}
	}

	if t.nodes[base] != leafHash {
		panicInvariant("Tree.Prove: descended to %s, expected leaf %s", t.nodes[base], leafHash)
	}

	siblingHashes := make([]Hash, len(siblingsRootToLeaf))
	for i, h := range siblingsRootToLeaf {
		siblingHashes[len(siblingsRootToLeaf)-1-i] = h
	}

	return Proof{Path: path, Leaf: leafHash, SiblingHashes: siblingHashes}, true
}
