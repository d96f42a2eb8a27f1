package utreexo

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Proof is an inclusion proof: a path, the leaf hash it points at, and the
// sibling hashes along that path. It is self-contained and detached from
// any Tree or Forest memory once returned.
//
// Both the leaf-hash and leaf-value forms are seen in practice; this
// implementation carries the leaf hash, for storage economy.
type Proof struct {
	Path Path
	Leaf Hash
	// SiblingHashes is ordered leaf-to-root: SiblingHashes[0] is the
	// sibling adjacent to Leaf, SiblingHashes[len-1] is the sibling just
	// below the root.
	SiblingHashes []Hash
}

// Height returns the height of the proof's path.
func (p Proof) Height() uint {
	return p.Path.Height()
}

// Verify recomputes the root from the leaf hash and the sibling hashes and
// reports whether it equals root. An empty-path proof verifies iff root
// equals the leaf hash itself.
func (p Proof) Verify(hasher Hasher, root Hash) bool {
	if uint(len(p.SiblingHashes)) != p.Path.Height() {
		return false // ProofMalformed
	}

	if p.Path.Height() == 0 {
		return root == p.Leaf
	}

	acc := p.Leaf

	directions := p.Path.Reversed()
	for i, direction := range directions {
		sibling := p.SiblingHashes[i]
		if direction == Left {
			acc = hasher.HashIntermediate(acc, sibling)
		} else {
			acc = hasher.HashIntermediate(sibling, acc)
		}
	}

	return acc == root
}

// proofCBOR is the wire shape for Proof: a byte height, the path packed
// LSB-first within each byte, the leaf hash, and the ordered sibling
// hashes. This is an optional serialization format; nothing in the core
// depends on it.
type proofCBOR struct {
	Height   uint8
	PathBits []byte
	Leaf     [HashSize]byte
	Siblings [][HashSize]byte
}

// MarshalBinary encodes the proof in the CBOR wire format described above.
func (p Proof) MarshalBinary() ([]byte, error) {
	if p.Path.Height() > 255 {
		return nil, fmt.Errorf("utreexo: proof height %d exceeds wire format limit", p.Path.Height())
	}

	wire := proofCBOR{
		Height:   uint8(p.Path.Height()),
		PathBits: packPathBits(p.Path),
		Leaf:     p.Leaf,
		Siblings: make([][HashSize]byte, len(p.SiblingHashes)),
	}
	for i, s := range p.SiblingHashes {
		wire.Siblings[i] = s
	}

	return cbor.Marshal(wire)
}

// UnmarshalBinary decodes a proof encoded by MarshalBinary.
func (p *Proof) UnmarshalBinary(data []byte) error {
	var wire proofCBOR
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return err
	}
	if len(wire.Siblings) != int(wire.Height) {
		return fmt.Errorf("utreexo: proof sibling count %d does not match height %d", len(wire.Siblings), wire.Height)
	}
	if len(wire.PathBits) < (int(wire.Height)+7)/8 {
		return fmt.Errorf("utreexo: proof path bits (%d bytes) too short for height %d", len(wire.PathBits), wire.Height)
	}

	p.Path = unpackPathBits(uint(wire.Height), wire.PathBits)
	p.Leaf = wire.Leaf
	p.SiblingHashes = make([]Hash, len(wire.Siblings))
	for i, s := range wire.Siblings {
		p.SiblingHashes[i] = s
	}
	return nil
}

// packPathBits packs a path's root-to-leaf directions LSB-first into bytes.
func packPathBits(path Path) []byte {
	height := path.Height()
	out := make([]byte, (height+7)/8)
	for k, d := range path.Directions() {
		if d == Right {
			out[k/8] |= 1 << uint(k%8)
		}
	}
	return out
}

// unpackPathBits is the inverse of packPathBits.
func unpackPathBits(height uint, packed []byte) Path {
	bits := make([]uint64, 0, height)
	for k := uint(0); k < height; k++ {
		bit := packed[k/8]&(1<<uint(k%8)) != 0
		var n uint64
		if bit {
			n = 1 << (height - 1 - k)
		}
		bits = append(bits, n)
	}
	var num uint64
	for _, n := range bits {
		num |= n
	}
	return ForHeightAndNum(height, num)
}
