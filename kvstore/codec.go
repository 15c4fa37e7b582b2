package kvstore

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Entry is a single (key, value) pair stored as a Merkle leaf.
type Entry struct {
	Key   []byte
	Value []byte
}

// encode serializes a (key, value) pair to a stable, self-describing byte
// representation: a big-endian uint32 length prefix for the key, the key
// bytes, a big-endian uint32 length prefix for the value, then the value
// bytes. The encoding is deterministic and injective, which is all the
// core Tree requires of a leaf's underlying data.
func encode(key, value []byte) []byte {
	buf := make([]byte, 0, 8+len(key)+len(value))
	var lenBuf [4]byte

	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(key)))
	buf = append(buf, lenBuf[:]...)
	buf = append(buf, key...)

	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(value)))
	buf = append(buf, lenBuf[:]...)
	buf = append(buf, value...)

	return buf
}

// decode is the inverse of encode.
func decode(b []byte) (Entry, error) {
	key, rest, err := takeLengthPrefixed(b)
	if err != nil {
		return Entry{}, errors.Wrap(err, "kvstore: decode key")
	}
	value, rest, err := takeLengthPrefixed(rest)
	if err != nil {
		return Entry{}, errors.Wrap(err, "kvstore: decode value")
	}
	if len(rest) != 0 {
		return Entry{}, errors.New("kvstore: decode: trailing bytes after value")
	}
	return Entry{Key: key, Value: value}, nil
}

func takeLengthPrefixed(b []byte) (field, rest []byte, err error) {
	if len(b) < 4 {
		return nil, nil, errors.New("kvstore: truncated length prefix")
	}
	n := binary.BigEndian.Uint32(b)
	b = b[4:]
	if uint64(len(b)) < uint64(n) {
		return nil, nil, errors.New("kvstore: truncated field")
	}
	return b[:n], b[n:], nil
}
