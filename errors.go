package treap

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("treap: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid position or range.
	ErrIndexOutOfBounds = errors.New("treap: index out of bounds")
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("treap: illegal arguments")
	// ErrCorruptTree signals a violated structural invariant, found by Check.
	ErrCorruptTree = errors.New("treap: tree invariant violated")
)
