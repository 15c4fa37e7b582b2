// Package kvstore is an append-only key-value overlay on top of
// merkletree.Tree: every Put appends a serialized (key, value) entry as a
// new leaf, and an auxiliary index tracks, for each key, the ordinals at
// which it was written, most recent first. There are no deletions.
package kvstore

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/arriqaaq/historymerkle"
)

// Store is the KV overlay described in the core spec's overlay section: a
// Merkle tree of serialized entries, an index from leaf ordinal to entry,
// and a history of ordinals per key. Ordinals are 0-indexed and a Put
// reads the tree's size before inserting, so Put's returned ordinal is
// exactly the index Get's History will later report for that write.
type Store struct {
	tree  *merkletree.Tree
	index map[int]Entry
	hist  map[string][]int
}

// New returns an empty Store backed by an empty Tree.
func New() *Store {
	return &Store{
		tree:  merkletree.New(nil),
		index: make(map[int]Entry),
		hist:  make(map[string][]int),
	}
}

// Put appends (key, value) as a new leaf and returns the ordinal it was
// written at.
func (s *Store) Put(key, value []byte) (int, error) {
	ordinal := s.tree.Size()
	blob := encode(key, value)
	tree, err := s.tree.Add(blob)
	if err != nil {
		return 0, errors.Wrap(err, "kvstore: put")
	}
	s.tree = tree
	s.index[ordinal] = Entry{
		Key:   append([]byte(nil), key...),
		Value: append([]byte(nil), value...),
	}
	s.hist[string(key)] = append([]int{ordinal}, s.hist[string(key)]...)
	log.Debug().Str("key", string(key)).Int("ordinal", ordinal).Msg("kvstore: put")
	return ordinal, nil
}

// Get returns the most recently written value for key, if any.
func (s *Store) Get(key []byte) (Entry, bool) {
	ordinals := s.hist[string(key)]
	if len(ordinals) == 0 {
		return Entry{}, false
	}
	return s.index[ordinals[0]], true
}

// History returns the ordinals key was written at, most recent first.
func (s *Store) History(key []byte) []int {
	return append([]int(nil), s.hist[string(key)]...)
}

// EntryAt returns the entry stored at a given ordinal.
func (s *Store) EntryAt(ordinal int) (Entry, bool) {
	e, ok := s.index[ordinal]
	return e, ok
}

// Tree exposes the underlying Merkle tree so callers can generate and
// verify membership and incremental proofs over the KV overlay's history.
func (s *Store) Tree() *merkletree.Tree {
	return s.tree
}

// LeafDigest returns the digest that the leaf at ordinal commits to, for
// use with merkletree.VerifyMembership.
func (s *Store) LeafDigest(ordinal int) (merkletree.Digest, bool) {
	e, ok := s.index[ordinal]
	if !ok {
		return merkletree.Digest{}, false
	}
	return merkletree.LeafHash(encode(e.Key, e.Value)), true
}
