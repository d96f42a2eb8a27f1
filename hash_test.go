package utreexo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashLeafAndIntermediateAreDomainSeparated(t *testing.T) {
	value := make([]byte, 2*HashSize) // the same bytes as Hash{} || Hash{}
	leaf := DefaultHasher.HashLeaf(value)

	// An intermediate hash built from the same bytes used as a leaf's
	// "children" must never collide with a genuine leaf hash.
	fakeIntermediate := DefaultHasher.HashIntermediate(Hash{}, Hash{})
	assert.NotEqual(t, leaf, fakeIntermediate)
}

func TestHashDeterministic(t *testing.T) {
	value := []byte("deterministic")
	assert.Equal(t, DefaultHasher.HashLeaf(value), DefaultHasher.HashLeaf(value))

	left := DefaultHasher.HashLeaf([]byte("left"))
	right := DefaultHasher.HashLeaf([]byte("right"))
	assert.Equal(t,
		DefaultHasher.HashIntermediate(left, right),
		DefaultHasher.HashIntermediate(left, right),
	)
}

func TestHashIntermediateOrderMatters(t *testing.T) {
	left := DefaultHasher.HashLeaf([]byte("left"))
	right := DefaultHasher.HashLeaf([]byte("right"))
	assert.NotEqual(t,
		DefaultHasher.HashIntermediate(left, right),
		DefaultHasher.HashIntermediate(right, left),
	)
}

func TestHashStringIsHex(t *testing.T) {
	h := DefaultHasher.HashLeaf([]byte("x"))
	assert.Len(t, h.String(), HashSize*2)
}

func TestHashIsZero(t *testing.T) {
	var z Hash
	assert.True(t, z.IsZero())
	assert.False(t, DefaultHasher.HashLeaf([]byte("x")).IsZero())
}

func TestHashCompare(t *testing.T) {
	low := Hash{0x01}
	high := Hash{0x02}

	assert.Equal(t, 0, low.Compare(low))
	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
}
