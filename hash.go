// Implementation as per https://tools.ietf.org/html/rfc6962#section-2.1,
// adapted from a variable-size Merkle Tree Hash to the fixed domain
// separation used by a perfect-tree forest.

package utreexo

import (
	"bytes"

	"lukechampine.com/blake3"
)

const (
	// LeafPrefix domain-separates a leaf hash from an intermediate hash, so
	// an intermediate node can never be replayed as a leaf.
	LeafPrefix = byte(0x00)
	// NodePrefix domain-separates an intermediate (parent) hash.
	NodePrefix = byte(0x01)

	// HashSize is the fixed width, in bytes, of every Hash value.
	HashSize = 32
)

// Hash is an opaque 32-byte digest. Two Hash values are equal iff their
// bytes are equal.
type Hash [HashSize]byte

// IsZero reports whether h is the all-zero hash.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Compare returns -1, 0, or 1 depending on whether h sorts before, equal to,
// or after other, using byte-wise ordering.
func (h Hash) Compare(other Hash) int {
	return bytes.Compare(h[:], other[:])
}

func (h Hash) String() string {
	const hextable = "0123456789abcdef"
	buf := make([]byte, 2*HashSize)
	for i, b := range h {
		buf[i*2] = hextable[b>>4]
		buf[i*2+1] = hextable[b&0x0f]
	}
	return string(buf)
}

// Hasher is the abstract hash function the core consumes. The core never
// hashes directly; it always goes through HashLeaf/HashIntermediate so that
// every participant in a deployment agrees on both the algorithm and the
// leaf/intermediate domain separator. Any collision-resistant 32-byte hash
// may be used, provided every peer agrees.
type Hasher interface {
	// HashLeaf returns H(0x00 || value).
	HashLeaf(value []byte) Hash
	// HashIntermediate returns H(0x01 || left || right).
	HashIntermediate(left, right Hash) Hash
}

// blake3Hasher is the default Hasher, backed by BLAKE3.
type blake3Hasher struct{}

// DefaultHasher is the Hasher used by NewForest/NewAccumulator when the
// caller does not supply one.
var DefaultHasher Hasher = blake3Hasher{}

func (blake3Hasher) HashLeaf(value []byte) Hash {
	h := blake3.New(HashSize, nil)
	h.Write([]byte{LeafPrefix})
	h.Write(value)
	return sumInto(h)
}

func (blake3Hasher) HashIntermediate(left, right Hash) Hash {
	h := blake3.New(HashSize, nil)
	h.Write([]byte{NodePrefix})
	h.Write(left[:])
	h.Write(right[:])
	return sumInto(h)
}

func sumInto(h *blake3.Hasher) Hash {
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func pickHasher(h Hasher) Hasher {
	if h == nil {
		return DefaultHasher
	}
	return h
}
