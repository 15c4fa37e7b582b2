package merkletree

import "github.com/pkg/errors"

// Kind classifies the error conditions a Tree or proof operation can raise,
// mirroring the error taxonomy of an append-only history structure: bad
// indices, invariant breaks, and (separately, never as an error) failed
// proof verification.
type Kind int

const (
	// KindIndexOutOfRange means a proof or access index fell outside the
	// bounds the operation requires (e.g. i >= size for a membership proof,
	// or j >= size for an incremental proof).
	KindIndexOutOfRange Kind = iota
	// KindInvariantViolation means an operation would have broken a
	// structural invariant of the tree (overwriting a non-default leaf,
	// an impossible path divergence during incremental-proof construction,
	// or a malformed proof shape).
	KindInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case KindIndexOutOfRange:
		return "index out of range"
	case KindInvariantViolation:
		return "invariant violation"
	default:
		return "unknown error kind"
	}
}

// TreeError is the concrete error type returned by core operations. It
// carries a Kind so callers can distinguish the two fatal-for-the-operation
// error classes described in the error handling design without parsing
// strings.
type TreeError struct {
	Kind Kind
	msg  string
}

func (e *TreeError) Error() string {
	return e.Kind.String() + ": " + e.msg
}

// Is allows errors.Is(err, ErrIndexOutOfRange) / errors.Is(err, ErrInvariantViolation)
// to match any TreeError of the same Kind, regardless of message.
func (e *TreeError) Is(target error) bool {
	t, ok := target.(*TreeError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for use with errors.Is. Their message is only the
// placeholder "sentinel"; wrapped instances returned by the package carry
// the detail.
var (
	ErrIndexOutOfRange    = &TreeError{Kind: KindIndexOutOfRange, msg: "sentinel"}
	ErrInvariantViolation = &TreeError{Kind: KindInvariantViolation, msg: "sentinel"}
)

func errIndexOutOfRange(msg string) error {
	return errors.WithStack(&TreeError{Kind: KindIndexOutOfRange, msg: msg})
}

func errInvariantViolation(msg string) error {
	return errors.WithStack(&TreeError{Kind: KindInvariantViolation, msg: msg})
}
