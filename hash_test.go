package merkletree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeafAndNodeHashAreDomainSeparated(t *testing.T) {
	// A leaf over "ab" must never collide with a node over two leaves whose
	// hashes happen to concatenate to "ab"'s hash input; the cheap check
	// here is simply that the two prefixes never produce equal digests for
	// the same underlying bytes.
	d := make([]byte, 2*DigestSize) // the bytes of Digest{} || Digest{}
	l := leafHash(d)
	n := nodeHash(Digest{}, Digest{})
	assert.NotEqual(t, l, n)
}

func TestLeafHashDeterministic(t *testing.T) {
	a := leafHash([]byte("hello"))
	b := leafHash([]byte("hello"))
	assert.Equal(t, a, b)

	c := leafHash([]byte("world"))
	assert.NotEqual(t, a, c)
}

func TestNodeHashOrderSensitive(t *testing.T) {
	a := leafHash([]byte("a"))
	b := leafHash([]byte("b"))
	assert.NotEqual(t, nodeHash(a, b), nodeHash(b, a))
}

func TestDigestHex(t *testing.T) {
	d := leafHash(nil)
	hex := d.Hex()
	assert.Len(t, hex, 64)
	for _, c := range hex {
		assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f'))
	}
}
