package utreexo

import (
	"github.com/bits-and-blooms/bitset"
)

// Direction selects which child to descend into at one level of a Path.
type Direction bool

const (
	// Left descends into the left child.
	Left Direction = false
	// Right descends into the right child.
	Right Direction = true
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	return !d
}

// Path is the bit sequence describing which child to descend into at each
// level of a perfect Merkle tree, ordered root-to-leaf. Height equals the
// number of bits.
type Path struct {
	bits   *bitset.BitSet
	height uint
}

// ForHeightAndNum builds the canonical path of the given height for leaf
// index i (0 <= i < 2^height): the direction at level k (root-to-leaf) is
// the binary digit of i at position (height-1-k), with 0 -> Left, 1 ->
// Right.
//
// For height=3, i=3 (binary 011) the directions root-to-leaf are
// Left, Right, Right. For height=3, i=4 (binary 100) they are
// Right, Left, Left.
func ForHeightAndNum(height uint, i uint64) Path {
	bits := bitset.New(height)
	for k := uint(0); k < height; k++ {
		bitPos := height - 1 - k
		if i&(1<<bitPos) != 0 {
			bits.Set(k)
		}
	}
	return Path{bits: bits, height: height}
}

// Height returns the number of levels in the path.
func (p Path) Height() uint {
	return p.height
}

// Leaves returns 2^height, the number of leaves in a perfect tree of this
// height.
func (p Path) Leaves() uint64 {
	return uint64(1) << p.height
}

// At returns the direction at level k (0 = root side, height-1 = leaf
// side).
func (p Path) At(k uint) Direction {
	if p.bits.Test(k) {
		return Right
	}
	return Left
}

// Directions enumerates the path root-to-leaf.
func (p Path) Directions() []Direction {
	out := make([]Direction, p.height)
	for k := uint(0); k < p.height; k++ {
		out[k] = p.At(k)
	}
	return out
}

// Reversed enumerates the path leaf-to-root, the order Proof.Verify and
// Proof's sibling list use.
func (p Path) Reversed() []Direction {
	dirs := p.Directions()
	out := make([]Direction, len(dirs))
	for i, d := range dirs {
		out[len(dirs)-1-i] = d
	}
	return out
}

// Equal reports whether two paths have identical height and directions.
func (p Path) Equal(other Path) bool {
	if p.height != other.height {
		return false
	}
	return p.bits.Equal(other.bits)
}
