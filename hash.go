// Package merkletree implements a history-authenticating Merkle tree: an
// append-only, immutable binary hash tree supporting membership proofs and
// incremental (consistency) proofs across versions.
package merkletree

import "crypto/sha256"

// DigestSize is the width, in bytes, of a single digest (SHA-256, 256 bits).
const DigestSize = sha256.Size

// The two domain-separation prefixes. Hashing a leaf's data under a
// different prefix than an internal node's children prevents any internal
// node's preimage from being confused with any leaf's preimage, which is
// what makes membership and incremental proofs sound. Follows the same
// domain-separation discipline as RFC 6962's LeafPrefix/NodePrefix.
const (
	leafPrefix byte = 0x00
	nodePrefix byte = 0x01
)

// leafHash computes H(0x00 || d), the digest of a leaf carrying data d.
func leafHash(d []byte) Digest {
	h := sha256.New()
	h.Write([]byte{leafPrefix})
	h.Write(d)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// nodeHash computes H(0x01 || a || b), the digest of an internal node whose
// children have digests a and b.
func nodeHash(a, b Digest) Digest {
	h := sha256.New()
	h.Write([]byte{nodePrefix})
	h.Write(a[:])
	h.Write(b[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// LeafHash exposes leafHash for external callers (proof construction,
// verification, and the kvstore overlay) that need to derive the digest of
// a raw block without building a Tree.
func LeafHash(d []byte) Digest {
	return leafHash(d)
}

// NodeHash exposes nodeHash for external callers that need to recompute an
// internal digest from two child digests, such as proof verifiers.
func NodeHash(a, b Digest) Digest {
	return nodeHash(a, b)
}
